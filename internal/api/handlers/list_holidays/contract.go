package list_holidays

import (
	"context"

	"github.com/m04kA/asperus-scheduler/internal/domain"
)

type HolidayService interface {
	List(ctx context.Context, from string) ([]domain.Holiday, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
