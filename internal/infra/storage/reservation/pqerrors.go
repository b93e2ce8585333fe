package reservation

import (
	"errors"

	"github.com/lib/pq"
)

const (
	pqUniqueViolation      = pq.ErrorCode("23505")
	pqSerializationFailure = pq.ErrorCode("40001")
)

// isSlotConflict сообщает, что запись не прошла из-за уникального индекса
// активных слотов или из-за конфликта SERIALIZABLE транзакций
func isSlotConflict(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return pqErr.Code == pqUniqueViolation || pqErr.Code == pqSerializationFailure
}
