package businesshours

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/asperus-scheduler/internal/domain"
	configRepo "github.com/m04kA/asperus-scheduler/internal/infra/storage/businessconfig"
)

// Service сервис часов работы и каталога
type Service struct {
	configRepo ConfigRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса часов работы
func NewService(configRepo ConfigRepository, logger Logger) *Service {
	return &Service{
		configRepo: configRepo,
		logger:     logger,
	}
}

// Load получает часы работы и подставляет интервал по умолчанию
func (s *Service) Load(ctx context.Context) (*domain.BusinessHours, error) {
	hours, err := s.configRepo.GetBusinessHours(ctx)
	if err != nil {
		if errors.Is(err, configRepo.ErrConfigNotFound) {
			s.logger.Error("Load: business hours not configured")
			return nil, ErrNotConfigured
		}
		s.logger.Error("Load: repository error: %v", err)
		return nil, fmt.Errorf("%w: Load - repository error: %v", ErrInternal, err)
	}

	if err := hours.OpeningTime.Validate(); err != nil {
		s.logger.Error("Load: invalid opening time %q: %v", hours.OpeningTime, err)
		return nil, ErrInvalidConfig
	}
	if err := hours.ClosingTime.Validate(); err != nil {
		s.logger.Error("Load: invalid closing time %q: %v", hours.ClosingTime, err)
		return nil, ErrInvalidConfig
	}

	interval := hours.Interval()
	hours.SlotIntervalMinutes = &interval

	return hours, nil
}

// Catalog собирает профессионалов и услуги без дубликатов (по имени без учёта регистра)
func (s *Service) Catalog(ctx context.Context) (*domain.Catalog, error) {
	professionals, err := s.configRepo.ListProfessionals(ctx)
	if err != nil {
		s.logger.Error("Catalog: failed to list professionals: %v", err)
		return nil, fmt.Errorf("%w: Catalog - professionals: %v", ErrInternal, err)
	}

	services, err := s.configRepo.ListServices(ctx)
	if err != nil {
		s.logger.Error("Catalog: failed to list services: %v", err)
		return nil, fmt.Errorf("%w: Catalog - services: %v", ErrInternal, err)
	}

	return &domain.Catalog{
		Professionals: dedup(professionals, func(p domain.Professional) string { return p.Name }),
		Services:      dedup(services, func(s domain.Service) string { return s.Name }),
	}, nil
}

// dedup сохраняет порядок и первое вхождение каждого имени
func dedup[T any](items []T, name func(T) string) []T {
	seen := make(map[string]struct{}, len(items))
	result := make([]T, 0, len(items))
	for _, item := range items {
		key := strings.ToLower(strings.TrimSpace(name(item)))
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, item)
	}
	return result
}
