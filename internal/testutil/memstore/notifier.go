package memstore

import (
	"context"
	"sync"

	"github.com/m04kA/asperus-scheduler/internal/domain"
)

// Notifier records notified events
type Notifier struct {
	mu     sync.Mutex
	events []domain.EventType
	ids    []string
}

func (n *Notifier) Notify(_ context.Context, eventType domain.EventType, res *domain.Reservation) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, eventType)
	n.ids = append(n.ids, res.ID)
}

// Events returns the recorded event types in order
func (n *Notifier) Events() []domain.EventType {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]domain.EventType(nil), n.events...)
}
