package get_catalog

import (
	"github.com/m04kA/asperus-scheduler/internal/domain"
)

// CatalogResponse HTTP response model для формы записи
type CatalogResponse struct {
	Professionals       []string `json:"professionals"`
	Services            []string `json:"services"`
	OpeningTime         string   `json:"openingTime"`
	ClosingTime         string   `json:"closingTime"`
	SlotIntervalMinutes int      `json:"slotIntervalMinutes"`
	Instructions        *string  `json:"instructions,omitempty"`
}

// FromDomain собирает ответ из часов работы и каталога
func FromDomain(hours *domain.BusinessHours, catalog *domain.Catalog) *CatalogResponse {
	professionals := make([]string, 0, len(catalog.Professionals))
	for _, p := range catalog.Professionals {
		professionals = append(professionals, p.Name)
	}
	services := make([]string, 0, len(catalog.Services))
	for _, s := range catalog.Services {
		services = append(services, s.Name)
	}

	return &CatalogResponse{
		Professionals:       professionals,
		Services:            services,
		OpeningTime:         hours.OpeningTime.String(),
		ClosingTime:         hours.ClosingTime.String(),
		SlotIntervalMinutes: hours.Interval(),
		Instructions:        hours.Instructions,
	}
}
