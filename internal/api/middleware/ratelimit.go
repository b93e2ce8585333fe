package middleware

import (
	"net"
	"net/http"
	"strings"

	"github.com/m04kA/asperus-scheduler/internal/api/handlers"
)

const msgTooManyRequests = "слишком много запросов, попробуйте позже"

// RateLimit ограничивает запросы по IP клиента.
// При ошибке ограничителя запрос пропускается.
func RateLimit(limiter Limiter, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := ClientIP(r)
			allowed, err := limiter.Allow(r.Context(), ip)
			if err != nil {
				logger.Error("%s %s - rate limiter failed for ip=%s: %v", r.Method, r.URL.Path, ip, err)
				next.ServeHTTP(w, r)
				return
			}
			if !allowed {
				logger.Warn("%s %s - rate limit exceeded for ip=%s", r.Method, r.URL.Path, ip)
				handlers.RespondTooManyRequests(w, msgTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ClientIP первый адрес из X-Forwarded-For, иначе адрес соединения
func ClientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if first := strings.TrimSpace(strings.Split(fwd, ",")[0]); first != "" {
			return first
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
