package create_booking

import (
	"context"
	"errors"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/asperus-scheduler/internal/domain"
	"github.com/m04kA/asperus-scheduler/internal/testutil/memstore"
	"github.com/m04kA/asperus-scheduler/pkg/civiltime"
	"github.com/m04kA/asperus-scheduler/pkg/logger"
	"github.com/m04kA/asperus-scheduler/pkg/ptr"
	"github.com/m04kA/asperus-scheduler/pkg/txmanager"
)

type holidaySet map[string]bool

func (h holidaySet) IsHoliday(_ context.Context, date time.Time) (bool, error) {
	return h[civiltime.FormatDate(date)], nil
}

type resultCounter struct {
	mu     sync.Mutex
	counts map[string]int
}

func (c *resultCounter) IncReservation(result string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.counts == nil {
		c.counts = make(map[string]int)
	}
	c.counts[result]++
}

func (c *resultCounter) get(result string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.counts[result]
}

type failingCommitTx struct{}

func (failingCommitTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := fn(ctx); err != nil {
		return err
	}
	return txmanager.ErrSerialization
}

type fixture struct {
	store    *memstore.Store
	notifier *memstore.Notifier
	metrics  *resultCounter
	uc       *UseCase
}

// now: 2024-05-10 14:07, 2024-05-20 праздник
func newFixture(opts Options) *fixture {
	f := &fixture{
		store:    memstore.New(),
		notifier: &memstore.Notifier{},
		metrics:  &resultCounter{},
	}
	cal := civiltime.NewCalendar(civiltime.FixedClock{At: time.Date(2024, 5, 10, 14, 7, 0, 0, time.UTC)}, time.UTC)
	f.uc = NewUseCase(f.store, holidaySet{"2024-05-20": true}, cal, memstore.TxManager{}, f.notifier, f.metrics, logger.Nop(), opts)
	return f
}

func validRequest() *Request {
	return &Request{
		Date:         "2024-05-11",
		Time:         "10:00",
		Name:         "Maria Silva",
		Contact:      "+55 11 99999-0000",
		Professional: "Ana",
		Service:      "Corte",
	}
}

var codePattern = regexp.MustCompile(`^[0-9A-Z]{4}$`)

func TestUseCase_Execute_Success(t *testing.T) {
	f := newFixture(Options{})

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "2024-05-11", resp.Date)
	assert.Equal(t, "10:00", resp.Time)
	assert.Equal(t, string(domain.StatusScheduled), resp.Status)
	assert.Equal(t, "Ana", *resp.Professional)
	assert.Regexp(t, codePattern, resp.RetrievalCode)
	assert.Equal(t, time.Date(2024, 5, 10, 14, 7, 0, 0, time.UTC), resp.CreatedAt)

	stored := f.store.All()
	require.Len(t, stored, 1)
	assert.Equal(t, resp.RetrievalCode, stored[0].RetrievalCode)
	assert.Equal(t, []domain.EventType{domain.EventReservationCreated}, f.notifier.Events())
	assert.Equal(t, 1, f.metrics.get("created"))
}

func TestUseCase_Execute_TrimsInput(t *testing.T) {
	f := newFixture(Options{})

	req := validRequest()
	req.Name = "  Maria Silva "
	req.Professional = " Ana"

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "Maria Silva", resp.ClientName)
	assert.Equal(t, "Ana", *resp.Professional)
}

func TestUseCase_Execute_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *Request)
		want   error
	}{
		{name: "missing date", mutate: func(r *Request) { r.Date = "" }, want: ErrInvalidDate},
		{name: "bad date", mutate: func(r *Request) { r.Date = "10/05/2024" }, want: ErrInvalidDate},
		{name: "bad time", mutate: func(r *Request) { r.Time = "25:00" }, want: ErrInvalidTime},
		{name: "missing name", mutate: func(r *Request) { r.Name = "  " }, want: domain.ErrValidation},
		{name: "missing contact", mutate: func(r *Request) { r.Contact = "" }, want: domain.ErrValidation},
		{name: "missing professional", mutate: func(r *Request) { r.Professional = "" }, want: domain.ErrValidation},
		{name: "missing service", mutate: func(r *Request) { r.Service = "" }, want: domain.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(Options{})
			req := validRequest()
			tt.mutate(req)

			resp, err := f.uc.Execute(context.Background(), req)
			require.Error(t, err)
			assert.Nil(t, resp)
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, "validation", domain.Kind(err))
			assert.Empty(t, f.store.All())
			assert.Equal(t, 1, f.metrics.get("invalid"))
		})
	}
}

func TestUseCase_Execute_Holiday(t *testing.T) {
	f := newFixture(Options{})
	req := validRequest()
	req.Date = "2024-05-20"

	_, err := f.uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrHoliday)
	assert.Equal(t, "holiday", domain.Kind(err))
	assert.Empty(t, f.store.All())
	assert.Empty(t, f.notifier.Events())
}

func TestUseCase_Execute_HolidayCheckedBeforeConflict(t *testing.T) {
	f := newFixture(Options{})
	holiday := time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC)
	f.store.Seed(&domain.Reservation{ID: "x", Date: holiday, Time: "10:00", Professional: ptr.Ptr("Ana"), Status: domain.StatusScheduled})

	req := validRequest()
	req.Date = "2024-05-20"

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrHoliday)
}

func TestUseCase_Execute_SlotElapsed(t *testing.T) {
	tests := []struct {
		name string
		date string
		time string
	}{
		{name: "earlier today", date: "2024-05-10", time: "14:00"},
		{name: "past date", date: "2024-05-09", time: "18:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(Options{})
			req := validRequest()
			req.Date, req.Time = tt.date, tt.time

			_, err := f.uc.Execute(context.Background(), req)
			require.ErrorIs(t, err, ErrSlotElapsed)
			assert.Equal(t, "validation", domain.Kind(err))
		})
	}

	t.Run("later today is allowed", func(t *testing.T) {
		f := newFixture(Options{})
		req := validRequest()
		req.Date, req.Time = "2024-05-10", "14:30"

		_, err := f.uc.Execute(context.Background(), req)
		assert.NoError(t, err)
	})
}

func TestUseCase_Execute_Conflict(t *testing.T) {
	date := time.Date(2024, 5, 11, 0, 0, 0, 0, time.UTC)

	t.Run("same professional", func(t *testing.T) {
		f := newFixture(Options{})
		f.store.Seed(&domain.Reservation{ID: "x", Date: date, Time: "10:00", Professional: ptr.Ptr("Ana"), Status: domain.StatusScheduled})

		_, err := f.uc.Execute(context.Background(), validRequest())
		require.ErrorIs(t, err, ErrSlotTaken)
		assert.Equal(t, "conflict", domain.Kind(err))
		assert.Equal(t, 1, f.metrics.get("conflict"))
	})

	t.Run("unassigned reservation blocks everyone", func(t *testing.T) {
		f := newFixture(Options{})
		f.store.Seed(&domain.Reservation{ID: "x", Date: date, Time: "10:00", Status: domain.StatusRescheduled})

		_, err := f.uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrSlotTaken)
	})

	t.Run("other professional is free", func(t *testing.T) {
		f := newFixture(Options{})
		f.store.Seed(&domain.Reservation{ID: "x", Date: date, Time: "10:00", Professional: ptr.Ptr("Bruno"), Status: domain.StatusScheduled})

		_, err := f.uc.Execute(context.Background(), validRequest())
		assert.NoError(t, err)
	})

	t.Run("cancelled reservation frees the slot", func(t *testing.T) {
		f := newFixture(Options{})
		f.store.Seed(&domain.Reservation{ID: "x", Date: date, Time: "10:00", Professional: ptr.Ptr("Ana"), Status: domain.StatusCancelled})

		_, err := f.uc.Execute(context.Background(), validRequest())
		assert.NoError(t, err)
	})
}

func TestUseCase_Execute_ConcurrentRace(t *testing.T) {
	f := newFixture(Options{})

	const callers = 2
	var (
		wg    sync.WaitGroup
		start = make(chan struct{})
		errs  = make([]error, callers)
	)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			_, errs[i] = f.uc.Execute(context.Background(), validRequest())
		}(i)
	}
	close(start)
	wg.Wait()

	var ok, conflicts int
	for _, err := range errs {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, domain.ErrConflict):
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, 1, conflicts)
	assert.Len(t, f.store.All(), 1)
}

func TestUseCase_Execute_SerializationFailureIsConflict(t *testing.T) {
	f := newFixture(Options{})
	cal := civiltime.NewCalendar(civiltime.FixedClock{At: time.Date(2024, 5, 10, 14, 7, 0, 0, time.UTC)}, time.UTC)
	uc := NewUseCase(f.store, holidaySet{}, cal, failingCommitTx{}, f.notifier, f.metrics, logger.Nop(), Options{})

	_, err := uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrSlotTaken)
	assert.Empty(t, f.notifier.Events())
}

func TestUseCase_Execute_UniqueCodePerContact(t *testing.T) {
	f := newFixture(Options{UniqueCodePerContact: true})
	f.store.Seed(&domain.Reservation{
		ID: "x", Date: time.Date(2024, 5, 12, 0, 0, 0, 0, time.UTC), Time: "11:00",
		ClientContact: "+55 11 99999-0000", RetrievalCode: "AAAA", Status: domain.StatusScheduled,
	})

	codes := []string{"AAAA", "AAAA", "B7C9"}
	f.uc.newCode = func() (string, error) {
		code := codes[0]
		codes = codes[1:]
		return code, nil
	}

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, "B7C9", resp.RetrievalCode)
}

func TestUseCase_Execute_UniqueCodeExhausted(t *testing.T) {
	f := newFixture(Options{UniqueCodePerContact: true})
	f.store.Seed(&domain.Reservation{
		ID: "x", Date: time.Date(2024, 5, 12, 0, 0, 0, 0, time.UTC), Time: "11:00",
		ClientContact: "+55 11 99999-0000", RetrievalCode: "AAAA", Status: domain.StatusScheduled,
	})
	f.uc.newCode = func() (string, error) { return "AAAA", nil }

	_, err := f.uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrCodeExhausted)
	assert.Equal(t, "internal", domain.Kind(err))
}

func TestUseCase_Execute_DuplicateCodesAllowedByDefault(t *testing.T) {
	f := newFixture(Options{})
	f.store.Seed(&domain.Reservation{
		ID: "x", Date: time.Date(2024, 5, 12, 0, 0, 0, 0, time.UTC), Time: "11:00",
		ClientContact: "+55 11 99999-0000", RetrievalCode: "AAAA", Status: domain.StatusScheduled,
	})
	f.uc.newCode = func() (string, error) { return "AAAA", nil }

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, "AAAA", resp.RetrievalCode)
}

func TestGenerateRetrievalCode(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 200; i++ {
		code, err := generateRetrievalCode()
		require.NoError(t, err)
		require.Regexp(t, codePattern, code)
		seen[code] = struct{}{}
	}
	assert.Greater(t, len(seen), 1)
}
