package reschedule_reservation

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/asperus-scheduler/internal/api/handlers"
	"github.com/m04kA/asperus-scheduler/internal/service/reservations"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "бронирование не найдено"
	msgNotActive          = "бронирование не активно"
	msgHoliday            = "в выбранную дату запись недоступна"
	msgSlotTaken          = "выбранный временной слот уже занят"
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

// Handle PATCH /api/v1/reservations/{id}/reschedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req RescheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /reservations/{id}/reschedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Reschedule(r.Context(), req.ToServiceRequest(id))
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("PATCH /reservations/{id}/reschedule - Reservation not found: id=%s", id)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, reservations.ErrNotActive):
			handlers.RespondBadRequest(w, msgNotActive)

		case errors.Is(err, reservations.ErrHoliday):
			handlers.RespondKindError(w, err, msgHoliday)

		case errors.Is(err, reservations.ErrSlotTaken):
			h.logger.Warn("PATCH /reservations/{id}/reschedule - Slot taken: id=%s, date=%s, time=%s", id, req.Date, req.Time)
			handlers.RespondConflict(w, msgSlotTaken)

		default:
			h.logger.Error("PATCH /reservations/{id}/reschedule - Failed to reschedule: id=%s, error=%v", id, err)
			handlers.RespondKindError(w, err, "")
		}
		return
	}

	h.logger.Info("PATCH /reservations/{id}/reschedule - Reservation rescheduled: id=%s, date=%s, time=%s",
		id, result.Date, result.Time)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromReservation(result))
}
