package domain

import (
	"strings"

	"github.com/m04kA/asperus-scheduler/pkg/types"
)

// BusinessHours is the opening/closing/interval row used for slot generation
type BusinessHours struct {
	ID                  int64
	OpeningTime         types.TimeString
	ClosingTime         types.TimeString
	SlotIntervalMinutes *int // NULL or non-positive = DefaultSlotIntervalMinutes
	Instructions        *string
}

// Interval returns the effective slot interval in minutes
func (b *BusinessHours) Interval() int {
	return EffectiveInterval(b.SlotIntervalMinutes)
}

// EffectiveInterval applies the default to an unset or invalid interval
func EffectiveInterval(minutes *int) int {
	if minutes == nil || *minutes <= 0 {
		return DefaultSlotIntervalMinutes
	}
	return *minutes
}

// Professional is a staff member that can be booked
type Professional struct {
	ID       int64
	Name     string
	Position int
}

// Service is an offering a client can book
type Service struct {
	ID       int64
	Name     string
	Position int
}

// Catalog is the ordered, deduplicated set of professionals and services
type Catalog struct {
	Professionals []Professional
	Services      []Service
}

// HasProfessional reports whether name is a known professional (case-insensitive)
func (c *Catalog) HasProfessional(name string) bool {
	for _, p := range c.Professionals {
		if strings.EqualFold(p.Name, name) {
			return true
		}
	}
	return false
}

// HasService reports whether name is a known service (case-insensitive)
func (c *Catalog) HasService(name string) bool {
	for _, s := range c.Services {
		if strings.EqualFold(s.Name, name) {
			return true
		}
	}
	return false
}
