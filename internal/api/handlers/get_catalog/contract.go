package get_catalog

import (
	"context"

	"github.com/m04kA/asperus-scheduler/internal/domain"
)

type BusinessHoursService interface {
	Load(ctx context.Context) (*domain.BusinessHours, error)
	Catalog(ctx context.Context) (*domain.Catalog, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
