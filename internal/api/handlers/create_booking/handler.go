package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/asperus-scheduler/internal/api/handlers"
	"github.com/m04kA/asperus-scheduler/internal/domain"
	createBooking "github.com/m04kA/asperus-scheduler/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты бронирования, ожидается YYYY-MM-DD"
	msgInvalidTime        = "некорректный формат времени, ожидается HH:MM"
	msgSlotElapsed        = "выбранное время уже прошло"
	msgHoliday            = "в выбранную дату запись недоступна"
	msgSlotTaken          = "выбранный временной слот уже занят"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidDate):
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, createBooking.ErrInvalidTime):
			handlers.RespondBadRequest(w, msgInvalidTime)

		case errors.Is(err, createBooking.ErrSlotElapsed):
			handlers.RespondBadRequest(w, msgSlotElapsed)

		case errors.Is(err, domain.ErrHoliday):
			h.logger.Warn("POST /bookings - Holiday: date=%s", req.Date)
			handlers.RespondError(w, http.StatusBadRequest, domain.ErrHoliday.Error(), msgHoliday)

		case errors.Is(err, domain.ErrConflict):
			h.logger.Warn("POST /bookings - Slot taken: date=%s, time=%s, professional=%q",
				req.Date, req.Time, req.Professional)
			handlers.RespondConflict(w, msgSlotTaken)

		case errors.Is(err, domain.ErrValidation):
			handlers.RespondKindError(w, err, "")

		default:
			h.logger.Error("POST /bookings - Failed to create booking: date=%s, time=%s, error=%v",
				req.Date, req.Time, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: id=%s, date=%s, time=%s",
		result.ID, result.Date, result.Time)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
