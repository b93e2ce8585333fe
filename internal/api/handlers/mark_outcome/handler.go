package mark_outcome

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/asperus-scheduler/internal/api/handlers"
	"github.com/m04kA/asperus-scheduler/internal/service/reservations"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidID          = "некорректный ID бронирования"
	msgInvalidOutcome     = "итог должен быть FULFILLED или NOT_FULFILLED"
	msgNotFound           = "бронирование не найдено"
	msgNotActive          = "бронирование не активно"
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

// Handle PATCH /api/v1/reservations/{id}/outcome
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req MarkOutcomeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /reservations/{id}/outcome - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.MarkOutcome(r.Context(), req.ToServiceRequest(id))
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidID):
			handlers.RespondBadRequest(w, msgInvalidID)

		case errors.Is(err, reservations.ErrInvalidOutcome):
			handlers.RespondBadRequest(w, msgInvalidOutcome)

		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("PATCH /reservations/{id}/outcome - Reservation not found: id=%s", id)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, reservations.ErrNotActive):
			h.logger.Warn("PATCH /reservations/{id}/outcome - Reservation not active: id=%s", id)
			handlers.RespondBadRequest(w, msgNotActive)

		default:
			h.logger.Error("PATCH /reservations/{id}/outcome - Failed to mark outcome: id=%s, error=%v", id, err)
			handlers.RespondKindError(w, err, "")
		}
		return
	}

	h.logger.Info("PATCH /reservations/{id}/outcome - Outcome marked successfully: id=%s, outcome=%s", id, req.Outcome)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromReservation(result))
}
