package create_booking

import (
	"fmt"

	"github.com/m04kA/asperus-scheduler/internal/domain"
)

var (
	// ErrInvalidDate возвращается при отсутствующей или некорректной дате
	ErrInvalidDate = fmt.Errorf("%w: date is required in format YYYY-MM-DD", domain.ErrValidation)

	// ErrInvalidTime возвращается при отсутствующем или некорректном времени
	ErrInvalidTime = fmt.Errorf("%w: time is required in format HH:MM", domain.ErrValidation)

	// ErrSlotElapsed возвращается, когда время слота уже наступило
	ErrSlotElapsed = fmt.Errorf("%w: slot has already started", domain.ErrValidation)

	// ErrHoliday возвращается при попытке бронирования на праздничный день
	ErrHoliday = fmt.Errorf("%w: business is closed on this date", domain.ErrHoliday)

	// ErrSlotTaken возвращается, когда слот уже занят активным бронированием
	ErrSlotTaken = fmt.Errorf("%w: slot is already taken", domain.ErrConflict)

	// ErrCodeExhausted возвращается, когда не удалось подобрать свободный код доступа
	ErrCodeExhausted = fmt.Errorf("%w: could not issue a unique retrieval code", domain.ErrInternal)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = fmt.Errorf("%w: create booking", domain.ErrInternal)
)
