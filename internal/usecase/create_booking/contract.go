package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/asperus-scheduler/internal/domain"
	"github.com/m04kA/asperus-scheduler/pkg/types"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
	HasActiveConflict(ctx context.Context, date time.Time, at types.TimeString, professional *string, excludeID *string) (bool, error)
	ExistsActiveCode(ctx context.Context, contact, code string) (bool, error)
}

// HolidayChecker проверка праздничных дней
type HolidayChecker interface {
	IsHoliday(ctx context.Context, date time.Time) (bool, error)
}

// Calendar гражданский календарь бизнеса
type Calendar interface {
	ParseDate(s string) (time.Time, error)
	HasStarted(date time.Time, start types.TimeString) bool
	Timestamp() time.Time
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Notifier отправка событий после коммита
type Notifier interface {
	Notify(ctx context.Context, eventType domain.EventType, res *domain.Reservation)
}

// Metrics счетчики попыток бронирования
type Metrics interface {
	IncReservation(result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
