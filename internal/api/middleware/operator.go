package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/m04kA/asperus-scheduler/internal/api/handlers"
)

// OperatorKeyHeader заголовок с ключом оператора
const OperatorKeyHeader = "X-Operator-Key"

const msgOperatorKeyRequired = "требуется ключ оператора"

// OperatorAuth пропускает запрос только с корректным X-Operator-Key
func OperatorAuth(apiKey string, logger Logger) func(http.Handler) http.Handler {
	expected := []byte(apiKey)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := []byte(r.Header.Get(OperatorKeyHeader))
			if len(expected) == 0 || subtle.ConstantTimeCompare(got, expected) != 1 {
				logger.Warn("%s %s - operator key rejected", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgOperatorKeyRequired)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
