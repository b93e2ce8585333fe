package domain

import "time"

// Holiday is a date on which no slot may be offered or booked
type Holiday struct {
	Date        time.Time
	Description string
	CreatedAt   time.Time
}
