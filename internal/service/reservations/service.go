package reservations

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/asperus-scheduler/internal/domain"
	reservationRepo "github.com/m04kA/asperus-scheduler/internal/infra/storage/reservation"
	"github.com/m04kA/asperus-scheduler/internal/service/reservations/models"
	"github.com/m04kA/asperus-scheduler/pkg/txmanager"
	"github.com/m04kA/asperus-scheduler/pkg/types"
)

// Service сервис для работы с существующими бронированиями
type Service struct {
	reservationRepo ReservationRepository
	holidays        HolidayChecker
	calendar        Calendar
	txManager       TransactionManager
	notifier        Notifier
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	reservationRepo ReservationRepository,
	holidays HolidayChecker,
	calendar Calendar,
	txManager TransactionManager,
	notifier Notifier,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		holidays:        holidays,
		calendar:        calendar,
		txManager:       txManager,
		notifier:        notifier,
		logger:          logger,
	}
}

// Cancel отменяет активные бронирования клиента на (дату, время)
// Все совпадения отменяются в одной транзакции; повторная отмена возвращает ErrReservationNotFound
func (s *Service) Cancel(ctx context.Context, req *models.CancelRequest) (*models.CancelResponse, error) {
	name, err := domain.RequireText("name", req.Name, domain.MaxClientNameLength)
	if err != nil {
		return nil, err
	}
	contact, err := domain.RequireText("contact", req.Contact, domain.MaxClientContactLength)
	if err != nil {
		return nil, err
	}
	date, at, err := s.parseSlot(req.Date, req.Time)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Cancel: date=%s time=%s", req.Date, at)

	var cancelled []*domain.Reservation
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		matches, err := s.reservationRepo.List(ctx, domain.ReservationsFilter{
			Date:          &date,
			Time:          &at,
			ClientName:    &name,
			ClientContact: &contact,
		})
		if err != nil {
			return fmt.Errorf("%w: Cancel - find reservations: %v", ErrInternal, err)
		}
		if len(matches) == 0 {
			return ErrReservationNotFound
		}

		now := s.calendar.Timestamp()
		for _, res := range matches {
			if err := s.reservationRepo.UpdateStatus(ctx, res.ID, domain.StatusCancelled, now); err != nil {
				return fmt.Errorf("%w: Cancel - update status id=%s: %v", ErrInternal, res.ID, err)
			}
			res.Status = domain.StatusCancelled
			res.UpdatedAt = now
		}
		cancelled = matches
		return nil
	})
	if err != nil {
		s.logOperationError("Cancel", req.Date+" "+at.String(), err)
		return nil, err
	}

	for _, res := range cancelled {
		s.notifier.Notify(ctx, domain.EventReservationCancelled, res)
	}

	s.logger.Info("Cancel: cancelled %d reservation(s) for date=%s time=%s", len(cancelled), req.Date, at)
	return &models.CancelResponse{Cancelled: len(cancelled)}, nil
}

// Lookup возвращает будущие активные бронирования по контакту и коду доступа
// Сегодняшние бронирования, время которых уже наступило, не возвращаются
func (s *Service) Lookup(ctx context.Context, req *models.LookupRequest) ([]*models.ReservationResponse, error) {
	contact, err := domain.RequireText("contact", req.Contact, domain.MaxClientContactLength)
	if err != nil {
		return nil, err
	}
	code, err := domain.NormalizeRetrievalCode(req.RetrievalCode)
	if err != nil {
		return nil, err
	}

	found, err := s.reservationRepo.FindActiveByCode(ctx, contact, code, s.calendar.Today())
	if err != nil {
		s.logger.Error("Lookup: repository error: %v", err)
		return nil, fmt.Errorf("%w: Lookup - repository error: %v", ErrInternal, err)
	}

	upcoming := make([]*domain.Reservation, 0, len(found))
	for _, res := range found {
		if s.calendar.HasStarted(res.Date, res.Time) {
			continue
		}
		upcoming = append(upcoming, res)
	}

	return models.FromDomainReservationList(upcoming), nil
}

// MarkOutcome отмечает итог визита (FULFILLED / NOT_FULFILLED)
// Доступно только для активных бронирований
func (s *Service) MarkOutcome(ctx context.Context, req *models.MarkOutcomeRequest) (*models.ReservationResponse, error) {
	if err := validateID(req.ID); err != nil {
		return nil, err
	}
	outcome := domain.Outcome(req.Outcome)
	if !outcome.IsValid() {
		return nil, ErrInvalidOutcome
	}

	s.logger.Info("MarkOutcome: id=%s outcome=%s", req.ID, outcome)

	var updated *domain.Reservation
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		res, err := s.getForUpdate(ctx, req.ID)
		if err != nil {
			return err
		}
		if !res.CanMarkOutcome() {
			return ErrNotActive
		}

		now := s.calendar.Timestamp()
		if err := s.reservationRepo.SetOutcome(ctx, res.ID, outcome, now); err != nil {
			return fmt.Errorf("%w: MarkOutcome - set outcome: %v", ErrInternal, err)
		}
		res.Outcome = &outcome
		res.UpdatedAt = now
		updated = res
		return nil
	})
	if err != nil {
		s.logOperationError("MarkOutcome", req.ID, err)
		return nil, err
	}

	s.notifier.Notify(ctx, domain.EventOutcomeMarked, updated)

	return models.FromDomainReservation(updated), nil
}

// Reschedule переносит активное бронирование на другой слот и выставляет статус RESCHEDULED
func (s *Service) Reschedule(ctx context.Context, req *models.RescheduleRequest) (*models.ReservationResponse, error) {
	if err := validateID(req.ID); err != nil {
		return nil, err
	}
	date, at, err := s.parseSlot(req.Date, req.Time)
	if err != nil {
		return nil, err
	}

	holiday, err := s.holidays.IsHoliday(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("%w: Reschedule - holiday check: %v", ErrInternal, err)
	}
	if holiday {
		return nil, ErrHoliday
	}
	if s.calendar.HasStarted(date, at) {
		return nil, ErrSlotElapsed
	}

	s.logger.Info("Reschedule: id=%s to date=%s time=%s", req.ID, req.Date, at)

	var updated *domain.Reservation
	err = s.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		res, err := s.getForUpdate(ctx, req.ID)
		if err != nil {
			return err
		}
		if !res.IsActive() {
			return ErrNotActive
		}

		taken, err := s.reservationRepo.HasActiveConflict(ctx, date, at, res.Professional, &res.ID)
		if err != nil {
			return s.mapStorageConflict("Reschedule - conflict check", err)
		}
		if taken {
			return ErrSlotTaken
		}

		now := s.calendar.Timestamp()
		if err := s.reservationRepo.Reschedule(ctx, res.ID, date, at, now); err != nil {
			return s.mapStorageConflict("Reschedule - update", err)
		}
		res.Date = date
		res.Time = at
		res.Status = domain.StatusRescheduled
		res.UpdatedAt = now
		updated = res
		return nil
	})
	if err != nil {
		// Конфликт сериализации может прийти на коммите
		if errors.Is(err, txmanager.ErrSerialization) {
			err = ErrSlotTaken
		}
		s.logOperationError("Reschedule", req.ID, err)
		return nil, err
	}

	s.notifier.Notify(ctx, domain.EventReservationRescheduled, updated)

	return models.FromDomainReservation(updated), nil
}

// ListByDate лист дня для оператора, по времени
func (s *Service) ListByDate(ctx context.Context, req *models.ListByDateRequest) ([]*models.ReservationResponse, error) {
	date, err := s.calendar.ParseDate(req.Date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	list, err := s.reservationRepo.List(ctx, domain.ReservationsFilter{
		Date:             &date,
		IncludeCancelled: req.IncludeCancelled,
	})
	if err != nil {
		s.logger.Error("ListByDate: repository error for date=%s: %v", req.Date, err)
		return nil, fmt.Errorf("%w: ListByDate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByDate: fetched %d reservations for date=%s", len(list), req.Date)
	return models.FromDomainReservationList(list), nil
}

func (s *Service) getForUpdate(ctx context.Context, id string) (*domain.Reservation, error) {
	res, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, fmt.Errorf("%w: get reservation id=%s: %v", ErrInternal, id, err)
	}
	return res, nil
}

func (s *Service) mapStorageConflict(op string, err error) error {
	if errors.Is(err, reservationRepo.ErrSlotTaken) {
		return ErrSlotTaken
	}
	return fmt.Errorf("%w: %s: %v", ErrInternal, op, err)
}

func (s *Service) logOperationError(op, target string, err error) {
	if domain.Kind(err) == domain.ErrInternal.Error() {
		s.logger.Error("%s: %s: %v", op, target, err)
		return
	}
	s.logger.Warn("%s: %s: %v", op, target, err)
}

func (s *Service) parseSlot(date, at string) (time.Time, types.TimeString, error) {
	parsedDate, err := s.calendar.ParseDate(date)
	if err != nil {
		return time.Time{}, "", ErrInvalidDate
	}
	parsedTime, err := types.NewTimeStringFromString(at)
	if err != nil {
		return time.Time{}, "", ErrInvalidTime
	}
	return parsedDate, parsedTime, nil
}

func validateID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrInvalidID
	}
	return nil
}
