package models

import (
	"time"

	"github.com/m04kA/asperus-scheduler/internal/domain"
	"github.com/m04kA/asperus-scheduler/pkg/civiltime"
)

// Request модели

// CancelRequest отмена по данным клиента
type CancelRequest struct {
	Name    string
	Contact string
	Date    string // "2024-05-10"
	Time    string // "10:00"
}

// LookupRequest поиск своих бронирований по контакту и коду
type LookupRequest struct {
	Contact       string
	RetrievalCode string
}

// MarkOutcomeRequest отметка итога визита оператором
type MarkOutcomeRequest struct {
	ID      string
	Outcome string
}

// RescheduleRequest перенос бронирования оператором
type RescheduleRequest struct {
	ID   string
	Date string
	Time string
}

// ListByDateRequest лист дня для оператора
type ListByDateRequest struct {
	Date             string
	IncludeCancelled bool
}

// Response модели

// ReservationResponse данные бронирования (без кода доступа)
type ReservationResponse struct {
	ID            string
	Date          string
	Time          string
	ClientName    string
	ClientContact string
	Professional  *string
	Service       string
	Status        string
	Outcome       *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// CancelResponse результат отмены
type CancelResponse struct {
	Cancelled int
}

// FromDomainReservation конвертирует domain модель в response
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	resp := &ReservationResponse{
		ID:            r.ID,
		Date:          civiltime.FormatDate(r.Date),
		Time:          r.Time.String(),
		ClientName:    r.ClientName,
		ClientContact: r.ClientContact,
		Professional:  r.Professional,
		Service:       r.Service,
		Status:        string(r.Status),
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
	if r.Outcome != nil {
		outcome := string(*r.Outcome)
		resp.Outcome = &outcome
	}
	return resp
}

// FromDomainReservationList конвертирует список бронирований
func FromDomainReservationList(list []*domain.Reservation) []*ReservationResponse {
	result := make([]*ReservationResponse, 0, len(list))
	for _, r := range list {
		result = append(result, FromDomainReservation(r))
	}
	return result
}
