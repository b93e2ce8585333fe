package domain

import (
	"time"

	"github.com/m04kA/asperus-scheduler/pkg/types"
)

// EventType is the routing key of a reservation event
type EventType string

const (
	EventReservationCreated     EventType = "reservation.created"
	EventReservationCancelled   EventType = "reservation.cancelled"
	EventReservationRescheduled EventType = "reservation.rescheduled"
	EventOutcomeMarked          EventType = "reservation.outcome_marked"
)

// ReservationEvent is emitted after a reservation change is committed.
// It never carries the retrieval code or client contact.
type ReservationEvent struct {
	ID            string            `json:"id"`
	Type          EventType         `json:"type"`
	ReservationID string            `json:"reservationId"`
	Date          string            `json:"date"`
	Time          types.TimeString  `json:"time"`
	Professional  *string           `json:"professional,omitempty"`
	Service       string            `json:"service"`
	Status        ReservationStatus `json:"status"`
	Outcome       *Outcome          `json:"outcome,omitempty"`
	OccurredAt    time.Time         `json:"occurredAt"`
}
