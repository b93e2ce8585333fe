package get_available_slots

import (
	getAvailableSlots "github.com/m04kA/asperus-scheduler/internal/usecase/get_available_slots"
	"github.com/m04kA/asperus-scheduler/pkg/civiltime"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date      string           `json:"date"`
	Slots     []string         `json:"slots"`
	IsHoliday bool             `json:"isHoliday,omitempty"`
	Holiday   *HolidayResponse `json:"holiday,omitempty"`
}

// HolidayResponse данные праздника
type HolidayResponse struct {
	Date        string `json:"date"`
	Description string `json:"description"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]string, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = slot.String()
	}

	result := &AvailableSlotsResponse{
		Date:  civiltime.FormatDate(resp.Date),
		Slots: slots,
	}
	if resp.Holiday != nil {
		result.IsHoliday = true
		result.Holiday = &HolidayResponse{
			Date:        civiltime.FormatDate(resp.Holiday.Date),
			Description: resp.Holiday.Description,
		}
	}
	return result
}
