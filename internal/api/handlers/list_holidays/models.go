package list_holidays

import (
	"github.com/m04kA/asperus-scheduler/internal/domain"
	"github.com/m04kA/asperus-scheduler/pkg/civiltime"
)

// HolidayResponse HTTP response model
type HolidayResponse struct {
	Date        string `json:"date"`
	Description string `json:"description"`
}

// FromDomainList конвертирует список праздников
func FromDomainList(list []domain.Holiday) []HolidayResponse {
	result := make([]HolidayResponse, 0, len(list))
	for _, h := range list {
		result = append(result, HolidayResponse{
			Date:        civiltime.FormatDate(h.Date),
			Description: h.Description,
		})
	}
	return result
}
