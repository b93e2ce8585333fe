package cancel_booking

import (
	"github.com/m04kA/asperus-scheduler/internal/service/reservations/models"
)

// CancelBookingRequest HTTP request model
type CancelBookingRequest struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
	Date    string `json:"date"`
	Time    string `json:"time"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *CancelBookingRequest) ToServiceRequest() *models.CancelRequest {
	return &models.CancelRequest{
		Name:    r.Name,
		Contact: r.Contact,
		Date:    r.Date,
		Time:    r.Time,
	}
}
