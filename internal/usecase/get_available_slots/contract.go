package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/asperus-scheduler/internal/domain"
	"github.com/m04kA/asperus-scheduler/pkg/types"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	// ActiveTimesByDate время начала активных бронирований на дату (для профессионала, если указан)
	ActiveTimesByDate(ctx context.Context, date time.Time, professional *string) ([]types.TimeString, error)
}

// HolidayRegistry реестр праздников
type HolidayRegistry interface {
	Find(ctx context.Context, date time.Time) (*domain.Holiday, error)
}

// BusinessHoursProvider часы работы с интервалом по умолчанию
type BusinessHoursProvider interface {
	Load(ctx context.Context) (*domain.BusinessHours, error)
}

// Calendar гражданский календарь бизнеса
type Calendar interface {
	ParseDate(s string) (time.Time, error)
	IsToday(date time.Time) bool
	IsPast(date time.Time) bool
	Now() types.TimeString
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
