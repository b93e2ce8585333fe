package add_holiday

import (
	"errors"
	"net/http"

	"github.com/m04kA/asperus-scheduler/internal/api/handlers"
	"github.com/m04kA/asperus-scheduler/internal/service/holidays"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgHolidayExists      = "праздник на эту дату уже добавлен"
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

// Handle POST /api/v1/holidays
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req AddHolidayRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /holidays - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Add(r.Context(), req.Date, req.Description)
	if err != nil {
		switch {
		case errors.Is(err, holidays.ErrHolidayExists):
			h.logger.Warn("POST /holidays - Holiday already exists: date=%s", req.Date)
			handlers.RespondConflict(w, msgHolidayExists)

		default:
			h.logger.Warn("POST /holidays - Failed to add holiday: date=%s, error=%v", req.Date, err)
			handlers.RespondKindError(w, err, "")
		}
		return
	}

	h.logger.Info("POST /holidays - Holiday added successfully: date=%s", req.Date)
	handlers.RespondJSON(w, http.StatusCreated, FromDomain(result))
}
