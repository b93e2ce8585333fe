package businesshours

import (
	"fmt"

	"github.com/m04kA/asperus-scheduler/internal/domain"
)

var (
	// ErrNotConfigured возвращается, когда часы работы не заданы
	ErrNotConfigured = fmt.Errorf("%w: business hours are not configured", domain.ErrInternal)

	// ErrInvalidConfig возвращается, когда сохранённые часы работы некорректны
	ErrInvalidConfig = fmt.Errorf("%w: business hours are invalid", domain.ErrInternal)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = fmt.Errorf("%w: business hours service", domain.ErrInternal)
)
