package events

import (
	"context"

	"github.com/m04kA/asperus-scheduler/internal/domain"
)

// NopPublisher используется, когда события выключены в конфигурации
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, domain.ReservationEvent) error { return nil }

func (NopPublisher) Close() error { return nil }
