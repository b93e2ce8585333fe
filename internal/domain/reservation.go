package domain

import (
	"time"

	"github.com/m04kA/asperus-scheduler/pkg/types"
)

// ReservationStatus represents the lifecycle state of a reservation
type ReservationStatus string

const (
	StatusScheduled   ReservationStatus = "SCHEDULED"
	StatusRescheduled ReservationStatus = "RESCHEDULED"
	StatusCancelled   ReservationStatus = "CANCELLED"
)

// Outcome is the post-hoc result of an active reservation
type Outcome string

const (
	OutcomeFulfilled    Outcome = "FULFILLED"
	OutcomeNotFulfilled Outcome = "NOT_FULFILLED"
)

// Reservation represents one claimed slot
type Reservation struct {
	ID            string
	Date          time.Time
	Time          types.TimeString
	ClientName    string
	ClientContact string
	Professional  *string // nil = unassigned, consumes the slot for every professional
	Service       string
	Status        ReservationStatus
	Outcome       *Outcome
	RetrievalCode string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true for SCHEDULED and RESCHEDULED reservations
func (r *Reservation) IsActive() bool {
	return r.Status.IsActive()
}

// IsAssigned returns true if a professional is set
func (r *Reservation) IsAssigned() bool {
	return r.Professional != nil && *r.Professional != ""
}

// CanMarkOutcome returns true while the reservation is active
func (r *Reservation) CanMarkOutcome() bool {
	return r.IsActive()
}

// IsActive returns true if the status counts toward slot uniqueness
func (s ReservationStatus) IsActive() bool {
	return s == StatusScheduled || s == StatusRescheduled
}

// IsValid returns true for known statuses
func (s ReservationStatus) IsValid() bool {
	return s.IsActive() || s == StatusCancelled
}

// CanTransitionTo reports whether the lifecycle allows from -> to.
// CANCELLED is terminal; the active statuses may move to each other or be cancelled.
func (s ReservationStatus) CanTransitionTo(to ReservationStatus) bool {
	if !s.IsActive() {
		return false
	}
	return to.IsValid()
}

// IsValid returns true for known outcomes
func (o Outcome) IsValid() bool {
	return o == OutcomeFulfilled || o == OutcomeNotFulfilled
}

// SlotKey identifies the (date, time, professional-or-unassigned) tuple
// that is unique among active reservations
type SlotKey struct {
	Date         time.Time
	Time         types.TimeString
	Professional *string
}

// ReservationsFilter фильтр выборки бронирований
type ReservationsFilter struct {
	Date             *time.Time         // Конкретная дата (опционально)
	FromDate         *time.Time         // Начиная с даты включительно (опционально)
	Professional     *string            // Только этот профессионал (опционально)
	ClientContact    *string            // Только этот контакт (опционально)
	ClientName       *string            // Только это имя (опционально)
	Time             *types.TimeString  // Конкретное время (опционально)
	IncludeCancelled bool               // Включать ли отменённые бронирования
	Status           *ReservationStatus // Конкретный статус (опционально, приоритетнее IncludeCancelled)
}
