package query_bookings

import (
	"github.com/m04kA/asperus-scheduler/internal/api/handlers"
	"github.com/m04kA/asperus-scheduler/internal/service/reservations/models"
)

// QueryBookingsRequest HTTP request model
type QueryBookingsRequest struct {
	Contact       string `json:"contact"`
	RetrievalCode string `json:"retrievalCode"`
}

// QueryBookingsResponse HTTP response model
type QueryBookingsResponse struct {
	Bookings []*handlers.ReservationResponse `json:"bookings"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *QueryBookingsRequest) ToServiceRequest() *models.LookupRequest {
	return &models.LookupRequest{
		Contact:       r.Contact,
		RetrievalCode: r.RetrievalCode,
	}
}
