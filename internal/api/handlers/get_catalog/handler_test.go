package get_catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/asperus-scheduler/internal/domain"
	"github.com/m04kA/asperus-scheduler/internal/service/businesshours"
	"github.com/m04kA/asperus-scheduler/pkg/logger"
	"github.com/m04kA/asperus-scheduler/pkg/ptr"
)

type stubService struct {
	hours   *domain.BusinessHours
	catalog *domain.Catalog
	err     error
}

func (s stubService) Load(context.Context) (*domain.BusinessHours, error) {
	return s.hours, s.err
}

func (s stubService) Catalog(context.Context) (*domain.Catalog, error) {
	return s.catalog, nil
}

func get(svc stubService) *httptest.ResponseRecorder {
	h := NewHandler(svc, logger.Nop())
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/catalog", nil))
	return rec
}

func TestHandler_Catalog(t *testing.T) {
	rec := get(stubService{
		hours: &domain.BusinessHours{OpeningTime: "09:00", ClosingTime: "18:00", Instructions: ptr.Ptr("Chegue 10 minutos antes")},
		catalog: &domain.Catalog{
			Professionals: []domain.Professional{{Name: "Ana"}, {Name: "Bruno"}},
			Services:      []domain.Service{{Name: "Corte"}},
		},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"professionals":["Ana","Bruno"],
		"services":["Corte"],
		"openingTime":"09:00",
		"closingTime":"18:00",
		"slotIntervalMinutes":60,
		"instructions":"Chegue 10 minutos antes"
	}`, rec.Body.String())
}

func TestHandler_NotConfigured(t *testing.T) {
	rec := get(stubService{err: businesshours.ErrNotConfigured})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), `"kind":"internal"`)
}
