package holidays

import (
	"context"
	"time"

	"github.com/m04kA/asperus-scheduler/internal/domain"
)

// HolidayRepository интерфейс репозитория праздников
type HolidayRepository interface {
	GetByDate(ctx context.Context, date time.Time) (*domain.Holiday, error)
	ListFrom(ctx context.Context, from time.Time) ([]domain.Holiday, error)
	Create(ctx context.Context, h *domain.Holiday) (*domain.Holiday, error)
	Delete(ctx context.Context, date time.Time) error
}

// Calendar гражданский календарь бизнеса
type Calendar interface {
	Today() time.Time
	ParseDate(s string) (time.Time, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
