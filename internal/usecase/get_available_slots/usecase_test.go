package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/asperus-scheduler/internal/domain"
	"github.com/m04kA/asperus-scheduler/internal/service/businesshours"
	"github.com/m04kA/asperus-scheduler/internal/testutil/memstore"
	"github.com/m04kA/asperus-scheduler/pkg/civiltime"
	"github.com/m04kA/asperus-scheduler/pkg/logger"
	"github.com/m04kA/asperus-scheduler/pkg/ptr"
	"github.com/m04kA/asperus-scheduler/pkg/types"
)

type holidayMap map[string]*domain.Holiday

func (h holidayMap) Find(_ context.Context, date time.Time) (*domain.Holiday, error) {
	return h[civiltime.FormatDate(date)], nil
}

type stubHours struct {
	hours *domain.BusinessHours
	err   error
}

func (s stubHours) Load(context.Context) (*domain.BusinessHours, error) {
	return s.hours, s.err
}

func newTestUseCase(store *memstore.Store, now time.Time, holidays holidayMap, hours stubHours) *UseCase {
	cal := civiltime.NewCalendar(civiltime.FixedClock{At: now}, time.UTC)
	return NewUseCase(store, holidays, hours, cal, logger.Nop())
}

func defaultHours() stubHours {
	return stubHours{hours: &domain.BusinessHours{OpeningTime: "09:00", ClosingTime: "18:00", SlotIntervalMinutes: ptr.Ptr(30)}}
}

func TestUseCase_ProfessionalFiltering(t *testing.T) {
	date := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	store := memstore.New()
	store.Seed(&domain.Reservation{ID: "1", Date: date, Time: "10:00", Professional: ptr.Ptr("Ana"), Status: domain.StatusScheduled})

	uc := newTestUseCase(store, time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC), holidayMap{}, defaultHours())

	ana, err := uc.Execute(context.Background(), &Request{Date: "2024-05-10", Professional: "Ana"})
	require.NoError(t, err)
	assert.NotContains(t, ana.Slots, types.TimeString("10:00"))

	bruno, err := uc.Execute(context.Background(), &Request{Date: "2024-05-10", Professional: "Bruno"})
	require.NoError(t, err)
	assert.Contains(t, bruno.Slots, types.TimeString("10:00"))

	// без фильтра любое активное бронирование занимает время
	all, err := uc.Execute(context.Background(), &Request{Date: "2024-05-10"})
	require.NoError(t, err)
	assert.NotContains(t, all.Slots, types.TimeString("10:00"))
}

func TestUseCase_CancelledDoesNotBlock(t *testing.T) {
	date := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	store := memstore.New()
	store.Seed(&domain.Reservation{ID: "1", Date: date, Time: "10:00", Professional: ptr.Ptr("Ana"), Status: domain.StatusCancelled})

	uc := newTestUseCase(store, time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC), holidayMap{}, defaultHours())

	resp, err := uc.Execute(context.Background(), &Request{Date: "2024-05-10", Professional: "Ana"})
	require.NoError(t, err)
	assert.Contains(t, resp.Slots, types.TimeString("10:00"))
}

func TestUseCase_TodayCutoff(t *testing.T) {
	uc := newTestUseCase(memstore.New(), time.Date(2024, 5, 10, 14, 7, 0, 0, time.UTC), holidayMap{}, defaultHours())

	resp, err := uc.Execute(context.Background(), &Request{Date: "2024-05-10"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Slots)
	assert.Equal(t, types.TimeString("14:30"), resp.Slots[0])
	assert.Equal(t, types.TimeString("20:30"), resp.Slots[len(resp.Slots)-1])
}

func TestUseCase_Holiday(t *testing.T) {
	holidays := holidayMap{"2024-12-25": {Date: time.Date(2024, 12, 25, 0, 0, 0, 0, time.UTC), Description: "Natal"}}
	uc := newTestUseCase(memstore.New(), time.Date(2024, 12, 1, 9, 0, 0, 0, time.UTC), holidays, defaultHours())

	resp, err := uc.Execute(context.Background(), &Request{Date: "2024-12-25"})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
	require.NotNil(t, resp.Holiday)
	assert.Equal(t, "Natal", resp.Holiday.Description)
}

func TestUseCase_PastDateIsEmpty(t *testing.T) {
	uc := newTestUseCase(memstore.New(), time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC), holidayMap{}, defaultHours())

	resp, err := uc.Execute(context.Background(), &Request{Date: "2024-05-09"})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
	assert.Nil(t, resp.Holiday)
}

func TestUseCase_InvalidDate(t *testing.T) {
	uc := newTestUseCase(memstore.New(), time.Now(), holidayMap{}, defaultHours())

	for _, date := range []string{"", "10/05/2024", "2024-13-01"} {
		_, err := uc.Execute(context.Background(), &Request{Date: date})
		assert.ErrorIs(t, err, domain.ErrValidation, date)
	}
}

func TestUseCase_ConfigurationAbsent(t *testing.T) {
	uc := newTestUseCase(memstore.New(), time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC), holidayMap{},
		stubHours{err: businesshours.ErrNotConfigured})

	_, err := uc.Execute(context.Background(), &Request{Date: "2024-05-10"})
	assert.ErrorIs(t, err, domain.ErrInternal)
}
