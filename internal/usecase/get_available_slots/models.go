package get_available_slots

import (
	"time"

	"github.com/m04kA/asperus-scheduler/internal/domain"
	"github.com/m04kA/asperus-scheduler/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	Date         string // "2024-05-10"
	Professional string // пусто = все профессионалы
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date    time.Time          // Дата, на которую запрашивались слоты
	Slots   []types.TimeString // Свободные слоты по возрастанию
	Holiday *domain.Holiday    // Не nil, если дата праздничная
}
