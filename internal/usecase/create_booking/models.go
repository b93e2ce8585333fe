package create_booking

import (
	"time"

	"github.com/m04kA/asperus-scheduler/internal/domain"
	"github.com/m04kA/asperus-scheduler/pkg/civiltime"
)

// Request модель запроса на создание бронирования
type Request struct {
	Date         string // "2024-05-10"
	Time         string // "10:00"
	Name         string // Имя клиента
	Contact      string // Телефон или e-mail клиента
	Professional string
	Service      string
}

// Response модель ответа с созданным бронированием
// RetrievalCode возвращается клиенту только здесь
type Response struct {
	ID            string
	Date          string
	Time          string
	ClientName    string
	ClientContact string
	Professional  *string
	Service       string
	Status        string
	RetrievalCode string
	CreatedAt     time.Time
}

// Options настройки usecase
type Options struct {
	// UniqueCodePerContact перевыбирает код, пока он совпадает с кодом активного бронирования того же контакта
	UniqueCodePerContact bool
}

func newResponse(r *domain.Reservation) *Response {
	return &Response{
		ID:            r.ID,
		Date:          civiltime.FormatDate(r.Date),
		Time:          r.Time.String(),
		ClientName:    r.ClientName,
		ClientContact: r.ClientContact,
		Professional:  r.Professional,
		Service:       r.Service,
		Status:        string(r.Status),
		RetrievalCode: r.RetrievalCode,
		CreatedAt:     r.CreatedAt,
	}
}
