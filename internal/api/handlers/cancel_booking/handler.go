package cancel_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/asperus-scheduler/internal/api/handlers"
	"github.com/m04kA/asperus-scheduler/internal/service/reservations"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "активное бронирование с такими данными не найдено"
	msgCancelled          = "бронирование отменено"
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

// Handle POST /api/v1/bookings/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CancelBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/cancel - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Cancel(r.Context(), req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("POST /bookings/cancel - Booking not found: date=%s, time=%s", req.Date, req.Time)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("POST /bookings/cancel - Failed to cancel booking: date=%s, time=%s, error=%v",
				req.Date, req.Time, err)
			handlers.RespondKindError(w, err, "")
		}
		return
	}

	h.logger.Info("POST /bookings/cancel - Booking cancelled successfully: date=%s, time=%s, count=%d",
		req.Date, req.Time, result.Cancelled)
	handlers.RespondJSON(w, http.StatusOK, handlers.MessageResponse{Message: msgCancelled})
}
