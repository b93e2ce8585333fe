package add_holiday

import (
	"github.com/m04kA/asperus-scheduler/internal/domain"
	"github.com/m04kA/asperus-scheduler/pkg/civiltime"
)

// AddHolidayRequest HTTP request model
type AddHolidayRequest struct {
	Date        string `json:"date"`
	Description string `json:"description"`
}

// HolidayResponse HTTP response model
type HolidayResponse struct {
	Date        string `json:"date"`
	Description string `json:"description"`
}

// FromDomain конвертирует праздник в HTTP response
func FromDomain(h *domain.Holiday) *HolidayResponse {
	return &HolidayResponse{
		Date:        civiltime.FormatDate(h.Date),
		Description: h.Description,
	}
}
