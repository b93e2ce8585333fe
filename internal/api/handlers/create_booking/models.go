package create_booking

import (
	"time"

	createBooking "github.com/m04kA/asperus-scheduler/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	Date         string `json:"date"` // "2024-05-10"
	Time         string `json:"time"` // "10:00"
	Name         string `json:"name"`
	Contact      string `json:"contact"`
	Professional string `json:"professional"`
	Service      string `json:"service"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID            string  `json:"id"`
	Date          string  `json:"date"`
	Time          string  `json:"time"`
	ClientName    string  `json:"clientName"`
	ClientContact string  `json:"clientContact"`
	Professional  *string `json:"professional,omitempty"`
	Service       string  `json:"service"`
	Status        string  `json:"status"`
	RetrievalCode string  `json:"retrievalCode"`
	CreatedAt     string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() *createBooking.Request {
	return &createBooking.Request{
		Date:         r.Date,
		Time:         r.Time,
		Name:         r.Name,
		Contact:      r.Contact,
		Professional: r.Professional,
		Service:      r.Service,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:            resp.ID,
		Date:          resp.Date,
		Time:          resp.Time,
		ClientName:    resp.ClientName,
		ClientContact: resp.ClientContact,
		Professional:  resp.Professional,
		Service:       resp.Service,
		Status:        resp.Status,
		RetrievalCode: resp.RetrievalCode,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
	}
}
