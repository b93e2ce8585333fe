package reservations

import (
	"fmt"

	"github.com/m04kA/asperus-scheduler/internal/domain"
)

var (
	// ErrReservationNotFound возвращается, когда активное бронирование не найдено
	ErrReservationNotFound = fmt.Errorf("%w: reservation not found", domain.ErrNotFound)

	// ErrNotActive возвращается при операции над отменённым бронированием
	ErrNotActive = fmt.Errorf("%w: reservation is not active", domain.ErrValidation)

	// ErrInvalidID возвращается при некорректном идентификаторе бронирования
	ErrInvalidID = fmt.Errorf("%w: invalid reservation id", domain.ErrValidation)

	// ErrInvalidDate возвращается при некорректной дате
	ErrInvalidDate = fmt.Errorf("%w: invalid date, expected YYYY-MM-DD", domain.ErrValidation)

	// ErrInvalidTime возвращается при некорректном времени
	ErrInvalidTime = fmt.Errorf("%w: invalid time, expected HH:MM", domain.ErrValidation)

	// ErrInvalidOutcome возвращается при неизвестном итоге визита
	ErrInvalidOutcome = fmt.Errorf("%w: outcome must be FULFILLED or NOT_FULFILLED", domain.ErrValidation)

	// ErrSlotElapsed возвращается при переносе на уже начавшийся слот
	ErrSlotElapsed = fmt.Errorf("%w: slot has already started", domain.ErrValidation)

	// ErrHoliday возвращается при переносе на праздничный день
	ErrHoliday = fmt.Errorf("%w: date is a holiday", domain.ErrHoliday)

	// ErrSlotTaken возвращается, когда целевой слот занят
	ErrSlotTaken = fmt.Errorf("%w: slot already taken", domain.ErrConflict)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = fmt.Errorf("%w: reservations service", domain.ErrInternal)
)
