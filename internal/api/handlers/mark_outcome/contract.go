package mark_outcome

import (
	"context"

	"github.com/m04kA/asperus-scheduler/internal/service/reservations/models"
)

type ReservationService interface {
	MarkOutcome(ctx context.Context, req *models.MarkOutcomeRequest) (*models.ReservationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
