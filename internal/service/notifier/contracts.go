package notifier

import (
	"context"
	"time"

	"github.com/m04kA/asperus-scheduler/internal/domain"
)

// Publisher транспорт событий (RabbitMQ или no-op)
type Publisher interface {
	Publish(ctx context.Context, event domain.ReservationEvent) error
}

// Clock источник времени события
type Clock interface {
	Timestamp() time.Time
}

// Metrics счётчик отправленных событий
type Metrics interface {
	IncEvent(eventType string, ok bool)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
