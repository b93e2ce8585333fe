package domain

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// RequireText trims value and fails with ErrValidation when it is empty or longer than maxLen
func RequireText(field, value string, maxLen int) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", fmt.Errorf("%w: %s is required", ErrValidation, field)
	}
	if maxLen > 0 && utf8.RuneCountInString(value) > maxLen {
		return "", fmt.Errorf("%w: %s must be at most %d characters", ErrValidation, field, maxLen)
	}
	return value, nil
}

// NormalizeRetrievalCode trims and upper-cases a code typed by a client
func NormalizeRetrievalCode(code string) (string, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return "", fmt.Errorf("%w: retrievalCode is required", ErrValidation)
	}
	if len(code) != RetrievalCodeLength {
		return "", fmt.Errorf("%w: retrievalCode must have %d characters", ErrValidation, RetrievalCodeLength)
	}
	for _, r := range code {
		if !strings.ContainsRune(RetrievalCodeAlphabet, r) {
			return "", fmt.Errorf("%w: retrievalCode must be alphanumeric", ErrValidation)
		}
	}
	return code, nil
}
