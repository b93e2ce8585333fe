package notifier

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/asperus-scheduler/internal/domain"
	"github.com/m04kA/asperus-scheduler/pkg/civiltime"
)

const publishTimeout = 5 * time.Second

// Notifier отправляет события об изменениях бронирований.
// Вызывается только после коммита; ошибка отправки логируется и не откатывает изменение.
type Notifier struct {
	publisher Publisher
	clock     Clock
	metrics   Metrics
	logger    Logger
}

// New создает notifier
func New(publisher Publisher, clock Clock, metrics Metrics, logger Logger) *Notifier {
	return &Notifier{
		publisher: publisher,
		clock:     clock,
		metrics:   metrics,
		logger:    logger,
	}
}

// Notify публикует событие eventType по бронированию res
func (n *Notifier) Notify(ctx context.Context, eventType domain.EventType, res *domain.Reservation) {
	event := n.buildEvent(eventType, res)

	// Клиент мог уже отключиться, а изменение закоммичено
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	if err := n.publisher.Publish(ctx, event); err != nil {
		n.logger.Error("Notify: failed to publish %s for reservation=%s: %v", eventType, res.ID, err)
		n.metrics.IncEvent(string(eventType), false)
		return
	}

	n.metrics.IncEvent(string(eventType), true)
}

func (n *Notifier) buildEvent(eventType domain.EventType, res *domain.Reservation) domain.ReservationEvent {
	return domain.ReservationEvent{
		ID:            uuid.NewString(),
		Type:          eventType,
		ReservationID: res.ID,
		Date:          civiltime.FormatDate(res.Date),
		Time:          res.Time,
		Professional:  res.Professional,
		Service:       res.Service,
		Status:        res.Status,
		Outcome:       res.Outcome,
		OccurredAt:    n.clock.Timestamp(),
	}
}
