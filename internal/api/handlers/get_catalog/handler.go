package get_catalog

import (
	"net/http"

	"github.com/m04kA/asperus-scheduler/internal/api/handlers"
)

type Handler struct {
	service BusinessHoursService
	logger  Logger
}

func NewHandler(service BusinessHoursService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/catalog
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	hours, err := h.service.Load(r.Context())
	if err != nil {
		h.logger.Error("GET /catalog - Failed to load business hours: %v", err)
		handlers.RespondKindError(w, err, "")
		return
	}

	catalog, err := h.service.Catalog(r.Context())
	if err != nil {
		h.logger.Error("GET /catalog - Failed to load catalog: %v", err)
		handlers.RespondKindError(w, err, "")
		return
	}

	h.logger.Info("GET /catalog - Catalog retrieved successfully: professionals=%d, services=%d",
		len(catalog.Professionals), len(catalog.Services))
	handlers.RespondJSON(w, http.StatusOK, FromDomain(hours, catalog))
}
