package query_bookings

import (
	"net/http"

	"github.com/m04kA/asperus-scheduler/internal/api/handlers"
)

const msgInvalidRequestBody = "некорректное тело запроса"

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

// Handle POST /api/v1/bookings/lookup
// Возвращает предстоящие активные бронирования клиента; пустой список не является ошибкой
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req QueryBookingsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/lookup - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Lookup(r.Context(), req.ToServiceRequest())
	if err != nil {
		h.logger.Warn("POST /bookings/lookup - Lookup failed: %v", err)
		handlers.RespondKindError(w, err, "")
		return
	}

	h.logger.Info("POST /bookings/lookup - Bookings retrieved successfully: count=%d", len(result))
	handlers.RespondJSON(w, http.StatusOK, QueryBookingsResponse{Bookings: handlers.FromReservationList(result)})
}
