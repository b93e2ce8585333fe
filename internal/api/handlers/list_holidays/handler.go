package list_holidays

import (
	"net/http"

	"github.com/m04kA/asperus-scheduler/internal/api/handlers"
)

type Handler struct {
	service HolidayService
	logger  Logger
}

func NewHandler(service HolidayService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/holidays
// Query params: from (опционально, по умолчанию сегодня)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	from := r.URL.Query().Get("from")

	result, err := h.service.List(r.Context(), from)
	if err != nil {
		h.logger.Warn("GET /holidays - Failed to list holidays: from=%q, error=%v", from, err)
		handlers.RespondKindError(w, err, "")
		return
	}

	h.logger.Info("GET /holidays - Holidays retrieved successfully: count=%d", len(result))
	handlers.RespondJSON(w, http.StatusOK, FromDomainList(result))
}
