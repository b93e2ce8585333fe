package list_reservations

import (
	"strconv"

	"github.com/m04kA/asperus-scheduler/internal/service/reservations/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров
func ToServiceRequest(dateStr, includeCancelledStr string) (*models.ListByDateRequest, error) {
	req := &models.ListByDateRequest{Date: dateStr}

	if includeCancelledStr != "" {
		includeCancelled, err := strconv.ParseBool(includeCancelledStr)
		if err != nil {
			return nil, err
		}
		req.IncludeCancelled = includeCancelled
	}

	return req, nil
}
