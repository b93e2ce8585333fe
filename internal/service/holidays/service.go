package holidays

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/asperus-scheduler/internal/domain"
	holidayRepo "github.com/m04kA/asperus-scheduler/internal/infra/storage/holiday"
	"github.com/m04kA/asperus-scheduler/pkg/civiltime"
)

// Service реестр праздников
type Service struct {
	holidayRepo HolidayRepository
	calendar    Calendar
	logger      Logger
}

// NewService создает новый экземпляр сервиса праздников
func NewService(holidayRepo HolidayRepository, calendar Calendar, logger Logger) *Service {
	return &Service{
		holidayRepo: holidayRepo,
		calendar:    calendar,
		logger:      logger,
	}
}

// Find возвращает праздник на дату или nil, если дата рабочая
func (s *Service) Find(ctx context.Context, date time.Time) (*domain.Holiday, error) {
	h, err := s.holidayRepo.GetByDate(ctx, date)
	if err != nil {
		if errors.Is(err, holidayRepo.ErrHolidayNotFound) {
			return nil, nil
		}
		s.logger.Error("Find: repository error for date=%s: %v", civiltime.FormatDate(date), err)
		return nil, fmt.Errorf("%w: Find - repository error: %v", ErrInternal, err)
	}
	return h, nil
}

// IsHoliday сообщает, является ли дата праздником
func (s *Service) IsHoliday(ctx context.Context, date time.Time) (bool, error) {
	h, err := s.Find(ctx, date)
	if err != nil {
		return false, err
	}
	return h != nil, nil
}

// List возвращает праздники начиная с from (по умолчанию с сегодняшнего дня)
func (s *Service) List(ctx context.Context, from string) ([]domain.Holiday, error) {
	fromDate := s.calendar.Today()
	if from != "" {
		parsed, err := s.calendar.ParseDate(from)
		if err != nil {
			return nil, ErrInvalidDate
		}
		fromDate = parsed
	}

	holidays, err := s.holidayRepo.ListFrom(ctx, fromDate)
	if err != nil {
		s.logger.Error("List: repository error from=%s: %v", civiltime.FormatDate(fromDate), err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return holidays, nil
}

// Add регистрирует праздник
func (s *Service) Add(ctx context.Context, date, description string) (*domain.Holiday, error) {
	parsed, err := s.calendar.ParseDate(date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	description, err = domain.RequireText("description", description, domain.MaxHolidayDescription)
	if err != nil {
		return nil, err
	}

	h, err := s.holidayRepo.Create(ctx, &domain.Holiday{Date: parsed, Description: description})
	if err != nil {
		if errors.Is(err, holidayRepo.ErrHolidayExists) {
			s.logger.Warn("Add: holiday already exists for date=%s", date)
			return nil, ErrHolidayExists
		}
		s.logger.Error("Add: repository error for date=%s: %v", date, err)
		return nil, fmt.Errorf("%w: Add - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Add: holiday registered date=%s", date)
	return h, nil
}

// Remove удаляет праздник
func (s *Service) Remove(ctx context.Context, date string) error {
	parsed, err := s.calendar.ParseDate(date)
	if err != nil {
		return ErrInvalidDate
	}

	if err := s.holidayRepo.Delete(ctx, parsed); err != nil {
		if errors.Is(err, holidayRepo.ErrHolidayNotFound) {
			return ErrHolidayNotFound
		}
		s.logger.Error("Remove: repository error for date=%s: %v", date, err)
		return fmt.Errorf("%w: Remove - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Remove: holiday removed date=%s", date)
	return nil
}
