// Package memstore is an in-memory reservation ledger for tests.
// It enforces the active-slot uniqueness rule under a mutex, the same rule
// the reservations_active_slot_uniq index and the conflict probe enforce in PostgreSQL.
package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/m04kA/asperus-scheduler/internal/domain"
	reservationRepo "github.com/m04kA/asperus-scheduler/internal/infra/storage/reservation"
	"github.com/m04kA/asperus-scheduler/pkg/civiltime"
	"github.com/m04kA/asperus-scheduler/pkg/types"
)

// Store in-memory реализация репозитория бронирований
type Store struct {
	mu   sync.Mutex
	rows map[string]*domain.Reservation
}

func New() *Store {
	return &Store{rows: make(map[string]*domain.Reservation)}
}

// Seed adds reservations as-is, bypassing the uniqueness check
func (s *Store) Seed(list ...*domain.Reservation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range list {
		cp := *r
		s.rows[r.ID] = &cp
	}
}

// All returns copies of every stored reservation
func (s *Store) All() []*domain.Reservation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sorted(func(*domain.Reservation) bool { return true })
}

func (s *Store) Create(_ context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.conflictLocked(res.Date, res.Time, res.Professional, nil) {
		return nil, reservationRepo.ErrSlotTaken
	}

	res.UpdatedAt = res.CreatedAt
	cp := *res
	s.rows[res.ID] = &cp
	return res, nil
}

func (s *Store) HasActiveConflict(_ context.Context, date time.Time, at types.TimeString, professional *string, excludeID *string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conflictLocked(date, at, professional, excludeID), nil
}

func (s *Store) ActiveTimesByDate(_ context.Context, date time.Time, professional *string) ([]types.TimeString, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	times := make([]types.TimeString, 0)
	for _, r := range s.sorted(func(r *domain.Reservation) bool {
		return r.IsActive() && civiltime.SameDay(r.Date, date) && sameOrUnassigned(r.Professional, professional)
	}) {
		times = append(times, r.Time)
	}
	return times, nil
}

func (s *Store) GetByID(_ context.Context, id string) (*domain.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.rows[id]
	if !ok {
		return nil, reservationRepo.ErrReservationNotFound
	}
	cp := *r
	return &cp, nil
}

func (s *Store) List(_ context.Context, f domain.ReservationsFilter) ([]*domain.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sorted(func(r *domain.Reservation) bool {
		switch {
		case f.Date != nil && !civiltime.SameDay(r.Date, *f.Date):
			return false
		case f.FromDate != nil && civiltime.CompareDates(r.Date, *f.FromDate) < 0:
			return false
		case f.Time != nil && r.Time != *f.Time:
			return false
		case f.Professional != nil && (r.Professional == nil || *r.Professional != *f.Professional):
			return false
		case f.ClientName != nil && r.ClientName != *f.ClientName:
			return false
		case f.ClientContact != nil && r.ClientContact != *f.ClientContact:
			return false
		case f.Status != nil:
			return r.Status == *f.Status
		case !f.IncludeCancelled:
			return r.IsActive()
		}
		return true
	}), nil
}

func (s *Store) FindActiveByCode(_ context.Context, contact, code string, fromDate time.Time) ([]*domain.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sorted(func(r *domain.Reservation) bool {
		return r.IsActive() &&
			r.ClientContact == contact &&
			r.RetrievalCode == code &&
			civiltime.CompareDates(r.Date, fromDate) >= 0
	}), nil
}

func (s *Store) ExistsActiveCode(_ context.Context, contact, code string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range s.rows {
		if r.IsActive() && r.ClientContact == contact && r.RetrievalCode == code {
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) UpdateStatus(_ context.Context, id string, status domain.ReservationStatus, at time.Time) error {
	return s.update(id, func(r *domain.Reservation) error {
		if status.IsActive() && !r.IsActive() && s.conflictLocked(r.Date, r.Time, r.Professional, &r.ID) {
			return reservationRepo.ErrSlotTaken
		}
		r.Status = status
		r.UpdatedAt = at
		return nil
	})
}

func (s *Store) SetOutcome(_ context.Context, id string, outcome domain.Outcome, at time.Time) error {
	return s.update(id, func(r *domain.Reservation) error {
		r.Outcome = &outcome
		r.UpdatedAt = at
		return nil
	})
}

func (s *Store) Reschedule(_ context.Context, id string, date time.Time, at types.TimeString, updatedAt time.Time) error {
	return s.update(id, func(r *domain.Reservation) error {
		if s.conflictLocked(date, at, r.Professional, &r.ID) {
			return reservationRepo.ErrSlotTaken
		}
		r.Date = date
		r.Time = at
		r.Status = domain.StatusRescheduled
		r.UpdatedAt = updatedAt
		return nil
	})
}

func (s *Store) update(id string, fn func(r *domain.Reservation) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.rows[id]
	if !ok {
		return reservationRepo.ErrReservationNotFound
	}
	return fn(r)
}

func (s *Store) conflictLocked(date time.Time, at types.TimeString, professional *string, excludeID *string) bool {
	for _, r := range s.rows {
		if excludeID != nil && r.ID == *excludeID {
			continue
		}
		if !r.IsActive() || !civiltime.SameDay(r.Date, date) || r.Time.Minutes() != at.Minutes() {
			continue
		}
		if professional == nil || sameOrUnassigned(r.Professional, professional) {
			return true
		}
	}
	return false
}

// sorted returns copies of matching rows ordered by date, time, creation
func (s *Store) sorted(match func(r *domain.Reservation) bool) []*domain.Reservation {
	result := make([]*domain.Reservation, 0)
	for _, r := range s.rows {
		if match(r) {
			cp := *r
			result = append(result, &cp)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		a, b := result[i], result[j]
		if c := civiltime.CompareDates(a.Date, b.Date); c != 0 {
			return c < 0
		}
		if a.Time != b.Time {
			return a.Time.IsBefore(b.Time)
		}
		return a.CreatedAt.Before(b.CreatedAt)
	})
	return result
}

// sameOrUnassigned: the stored row blocks the requested professional
// when it is assigned to the same one or not assigned at all
func sameOrUnassigned(stored, requested *string) bool {
	if requested == nil {
		return true
	}
	return stored == nil || *stored == *requested
}
