package get_available_slots

import (
	"fmt"

	"github.com/m04kA/asperus-scheduler/internal/domain"
)

var (
	// ErrInvalidDate возвращается при отсутствующей или некорректной дате
	ErrInvalidDate = fmt.Errorf("%w: date is required in format YYYY-MM-DD", domain.ErrValidation)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = fmt.Errorf("%w: get available slots", domain.ErrInternal)
)
