package cancel_booking

import (
	"context"

	"github.com/m04kA/asperus-scheduler/internal/service/reservations/models"
)

type ReservationService interface {
	Cancel(ctx context.Context, req *models.CancelRequest) (*models.CancelResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
