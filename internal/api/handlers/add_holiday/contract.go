package add_holiday

import (
	"context"

	"github.com/m04kA/asperus-scheduler/internal/domain"
)

type HolidayService interface {
	Add(ctx context.Context, date, description string) (*domain.Holiday, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
