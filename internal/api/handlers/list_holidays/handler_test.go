package list_holidays

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/asperus-scheduler/internal/domain"
	"github.com/m04kA/asperus-scheduler/internal/service/holidays"
	"github.com/m04kA/asperus-scheduler/pkg/logger"
)

type stubService struct {
	list []domain.Holiday
	err  error
	from string
}

func (s *stubService) List(_ context.Context, from string) ([]domain.Holiday, error) {
	s.from = from
	return s.list, s.err
}

func get(svc *stubService, target string) *httptest.ResponseRecorder {
	h := NewHandler(svc, logger.Nop())
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandler_List(t *testing.T) {
	svc := &stubService{list: []domain.Holiday{
		{Date: time.Date(2024, 12, 25, 0, 0, 0, 0, time.UTC), Description: "Christmas"},
		{Date: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), Description: "New Year"},
	}}

	rec := get(svc, "/api/v1/holidays?from=2024-12-01")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "2024-12-01", svc.from)

	var body []HolidayResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []HolidayResponse{
		{Date: "2024-12-25", Description: "Christmas"},
		{Date: "2025-01-01", Description: "New Year"},
	}, body)
}

func TestHandler_EmptyListIsArray(t *testing.T) {
	rec := get(&stubService{}, "/api/v1/holidays")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestHandler_InvalidFrom(t *testing.T) {
	rec := get(&stubService{err: holidays.ErrInvalidDate}, "/api/v1/holidays?from=25.12.2024")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"kind":"validation"`)
}
