package query_bookings

import (
	"context"

	"github.com/m04kA/asperus-scheduler/internal/service/reservations/models"
)

type ReservationService interface {
	Lookup(ctx context.Context, req *models.LookupRequest) ([]*models.ReservationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
