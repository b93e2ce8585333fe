package handlers

import (
	"time"

	"github.com/m04kA/asperus-scheduler/internal/service/reservations/models"
)

// ReservationResponse бронирование в HTTP ответе; код доступа не возвращается
type ReservationResponse struct {
	ID            string  `json:"id"`
	Date          string  `json:"date"`
	Time          string  `json:"time"`
	ClientName    string  `json:"clientName"`
	ClientContact string  `json:"clientContact"`
	Professional  *string `json:"professional,omitempty"`
	Service       string  `json:"service"`
	Status        string  `json:"status"`
	Outcome       *string `json:"outcome,omitempty"`
	CreatedAt     string  `json:"createdAt"`
	UpdatedAt     string  `json:"updatedAt"`
}

// FromReservation конвертирует модель сервиса в HTTP response
func FromReservation(r *models.ReservationResponse) *ReservationResponse {
	return &ReservationResponse{
		ID:            r.ID,
		Date:          r.Date,
		Time:          r.Time,
		ClientName:    r.ClientName,
		ClientContact: r.ClientContact,
		Professional:  r.Professional,
		Service:       r.Service,
		Status:        r.Status,
		Outcome:       r.Outcome,
		CreatedAt:     r.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     r.UpdatedAt.Format(time.RFC3339),
	}
}

// FromReservationList конвертирует список; пустой список сериализуется как []
func FromReservationList(list []*models.ReservationResponse) []*ReservationResponse {
	result := make([]*ReservationResponse, 0, len(list))
	for _, r := range list {
		result = append(result, FromReservation(r))
	}
	return result
}
