package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/asperus-scheduler/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/asperus-scheduler/internal/usecase/get_available_slots"
)

const (
	msgMissingDate = "дата обязательна"
	msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/slots
// Query params: date (required, YYYY-MM-DD), professional (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}
	professional := r.URL.Query().Get("professional")

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{
		Date:         dateStr,
		Professional: professional,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidDate):
			h.logger.Warn("GET /slots - Invalid date: %q", dateStr)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /slots - Failed to get slots: date=%s, professional=%q, error=%v",
				dateStr, professional, err)
			handlers.RespondKindError(w, err, "")
		}
		return
	}

	h.logger.Info("GET /slots - Slots retrieved successfully: date=%s, professional=%q, slots_count=%d",
		dateStr, professional, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
