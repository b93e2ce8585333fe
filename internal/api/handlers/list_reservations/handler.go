package list_reservations

import (
	"errors"
	"net/http"

	"github.com/m04kA/asperus-scheduler/internal/api/handlers"
	"github.com/m04kA/asperus-scheduler/internal/service/reservations"
)

const (
	msgMissingDate   = "дата обязательна"
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidParams = "некорректные параметры запроса"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/reservations
// Query params: date (required), includeCancelled (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /reservations - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	serviceReq, err := ToServiceRequest(dateStr, r.URL.Query().Get("includeCancelled"))
	if err != nil {
		h.logger.Warn("GET /reservations - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.ListByDate(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidDate):
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /reservations - Failed to list reservations: date=%s, error=%v", dateStr, err)
			handlers.RespondKindError(w, err, "")
		}
		return
	}

	h.logger.Info("GET /reservations - Reservations retrieved successfully: date=%s, count=%d", dateStr, len(result))
	handlers.RespondJSON(w, http.StatusOK, handlers.FromReservationList(result))
}
