package reservations

import (
	"context"
	"time"

	"github.com/m04kA/asperus-scheduler/internal/domain"
	"github.com/m04kA/asperus-scheduler/pkg/types"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Reservation, error)
	List(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error)
	FindActiveByCode(ctx context.Context, contact, code string, fromDate time.Time) ([]*domain.Reservation, error)
	HasActiveConflict(ctx context.Context, date time.Time, at types.TimeString, professional *string, excludeID *string) (bool, error)
	UpdateStatus(ctx context.Context, id string, status domain.ReservationStatus, at time.Time) error
	SetOutcome(ctx context.Context, id string, outcome domain.Outcome, at time.Time) error
	Reschedule(ctx context.Context, id string, date time.Time, at types.TimeString, updatedAt time.Time) error
}

// HolidayChecker проверка праздничных дней
type HolidayChecker interface {
	IsHoliday(ctx context.Context, date time.Time) (bool, error)
}

// Calendar гражданский календарь бизнеса
type Calendar interface {
	Today() time.Time
	Timestamp() time.Time
	ParseDate(s string) (time.Time, error)
	HasStarted(date time.Time, start types.TimeString) bool
}

// Notifier отправка событий после коммита
type Notifier interface {
	Notify(ctx context.Context, eventType domain.EventType, res *domain.Reservation)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
