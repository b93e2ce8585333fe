package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReservationStatus_Transitions(t *testing.T) {
	assert.True(t, StatusScheduled.CanTransitionTo(StatusRescheduled))
	assert.True(t, StatusRescheduled.CanTransitionTo(StatusScheduled))
	assert.True(t, StatusScheduled.CanTransitionTo(StatusCancelled))
	assert.False(t, StatusCancelled.CanTransitionTo(StatusScheduled))
	assert.False(t, StatusCancelled.CanTransitionTo(StatusCancelled))
	assert.False(t, StatusScheduled.CanTransitionTo("DONE"))
}

func TestEffectiveInterval(t *testing.T) {
	zero, thirty := 0, 30

	assert.Equal(t, DefaultSlotIntervalMinutes, EffectiveInterval(nil))
	assert.Equal(t, DefaultSlotIntervalMinutes, EffectiveInterval(&zero))
	assert.Equal(t, 30, EffectiveInterval(&thirty))
}

func TestKind(t *testing.T) {
	assert.Equal(t, "conflict", Kind(fmt.Errorf("create: %w", ErrConflict)))
	assert.Equal(t, "holiday", Kind(fmt.Errorf("%w: 2024-12-25", ErrHoliday)))
	assert.Equal(t, "internal", Kind(assert.AnError))
}

func TestCatalog_Lookup(t *testing.T) {
	c := Catalog{
		Professionals: []Professional{{Name: "Ana"}, {Name: "Bruno"}},
		Services:      []Service{{Name: "Corte"}},
	}

	assert.True(t, c.HasProfessional("ana"))
	assert.False(t, c.HasProfessional("Carla"))
	assert.True(t, c.HasService("CORTE"))
}

func TestRequireText(t *testing.T) {
	v, err := RequireText("name", "  Maria  ", 10)
	assert.NoError(t, err)
	assert.Equal(t, "Maria", v)

	_, err = RequireText("name", "   ", 10)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = RequireText("name", "Maria da Silva", 5)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestNormalizeRetrievalCode(t *testing.T) {
	code, err := NormalizeRetrievalCode(" a1b2 ")
	assert.NoError(t, err)
	assert.Equal(t, "A1B2", code)

	for _, bad := range []string{"", "ABC", "ABCDE", "AB-1"} {
		_, err := NormalizeRetrievalCode(bad)
		assert.ErrorIs(t, err, ErrValidation, bad)
	}
}
