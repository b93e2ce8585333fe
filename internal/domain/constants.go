package domain

import "github.com/m04kA/asperus-scheduler/pkg/types"

// Slot generation
const (
	DefaultSlotIntervalMinutes = 60

	// LatestSlotEnd caps slot generation: a slot is offered only if it ends by 21:00
	LatestSlotEnd types.TimeString = "21:00"
)

// Retrieval code
const (
	RetrievalCodeAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	RetrievalCodeLength   = 4
)

// Business validation constants
const (
	MaxClientNameLength    = 120
	MaxClientContactLength = 120
	MaxHolidayDescription  = 200
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses статусы, которые занимают слот
var ActiveStatuses = []ReservationStatus{
	StatusScheduled,
	StatusRescheduled,
}
