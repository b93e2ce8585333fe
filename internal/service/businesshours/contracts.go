package businesshours

import (
	"context"

	"github.com/m04kA/asperus-scheduler/internal/domain"
)

// ConfigRepository интерфейс репозитория часов работы и справочников
type ConfigRepository interface {
	GetBusinessHours(ctx context.Context) (*domain.BusinessHours, error)
	ListProfessionals(ctx context.Context) ([]domain.Professional, error)
	ListServices(ctx context.Context) ([]domain.Service, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
