package domain

import (
	"time"

	"github.com/m04kA/asperus-scheduler/pkg/types"
)

// Availability is the bookable view of one date
type Availability struct {
	Date    time.Time
	Slots   []types.TimeString
	Holiday *Holiday // non-nil when the date is a holiday
}

// IsHoliday returns true if the date is unbookable because of a holiday
func (a *Availability) IsHoliday() bool {
	return a.Holiday != nil
}
