package mark_outcome

import (
	"github.com/m04kA/asperus-scheduler/internal/service/reservations/models"
)

// MarkOutcomeRequest HTTP request model
type MarkOutcomeRequest struct {
	Outcome string `json:"outcome"` // FULFILLED | NOT_FULFILLED
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *MarkOutcomeRequest) ToServiceRequest(id string) *models.MarkOutcomeRequest {
	return &models.MarkOutcomeRequest{
		ID:      id,
		Outcome: r.Outcome,
	}
}
