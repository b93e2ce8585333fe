package reschedule_reservation

import (
	"github.com/m04kA/asperus-scheduler/internal/service/reservations/models"
)

// RescheduleRequest HTTP request model
type RescheduleRequest struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *RescheduleRequest) ToServiceRequest(id string) *models.RescheduleRequest {
	return &models.RescheduleRequest{
		ID:   id,
		Date: r.Date,
		Time: r.Time,
	}
}
