package domain

import "errors"

// Error kinds. Package-level sentinels wrap one of these so the API layer can
// tell "fix your input" from "try again".
var (
	// ErrValidation missing or malformed input
	ErrValidation = errors.New("validation")

	// ErrHoliday the date is unbookable
	ErrHoliday = errors.New("holiday")

	// ErrConflict the slot is already taken
	ErrConflict = errors.New("conflict")

	// ErrNotFound the target does not exist or is no longer active
	ErrNotFound = errors.New("not_found")

	// ErrInternal storage, configuration or other transient failure
	ErrInternal = errors.New("internal")
)

// Kind returns the name of the error kind wrapped by err
func Kind(err error) string {
	for _, kind := range []error{ErrValidation, ErrHoliday, ErrConflict, ErrNotFound} {
		if errors.Is(err, kind) {
			return kind.Error()
		}
	}
	return ErrInternal.Error()
}
