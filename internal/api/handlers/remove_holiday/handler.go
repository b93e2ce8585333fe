package remove_holiday

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/asperus-scheduler/internal/api/handlers"
	"github.com/m04kA/asperus-scheduler/internal/service/holidays"
)

const msgNotFound = "праздник на эту дату не найден"

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

// Handle DELETE /api/v1/holidays/{date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date := mux.Vars(r)["date"]

	if err := h.service.Remove(r.Context(), date); err != nil {
		switch {
		case errors.Is(err, holidays.ErrHolidayNotFound):
			h.logger.Warn("DELETE /holidays/{date} - Holiday not found: date=%s", date)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Warn("DELETE /holidays/{date} - Failed to remove holiday: date=%s, error=%v", date, err)
			handlers.RespondKindError(w, err, "")
		}
		return
	}

	h.logger.Info("DELETE /holidays/{date} - Holiday removed successfully: date=%s", date)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
