package holidays

import (
	"fmt"

	"github.com/m04kA/asperus-scheduler/internal/domain"
)

var (
	// ErrInvalidDate возвращается при некорректной дате
	ErrInvalidDate = fmt.Errorf("%w: invalid date, expected YYYY-MM-DD", domain.ErrValidation)

	// ErrHolidayNotFound возвращается, когда праздник на дату не найден
	ErrHolidayNotFound = fmt.Errorf("%w: holiday not found", domain.ErrNotFound)

	// ErrHolidayExists возвращается при повторном добавлении праздника
	ErrHolidayExists = fmt.Errorf("%w: holiday already registered for this date", domain.ErrConflict)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = fmt.Errorf("%w: holidays service", domain.ErrInternal)
)
