package remove_holiday

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/asperus-scheduler/internal/service/holidays"
	"github.com/m04kA/asperus-scheduler/pkg/logger"
)

type stubService struct {
	err     error
	removed string
}

func (s *stubService) Remove(_ context.Context, date string) error {
	s.removed = date
	return s.err
}

func del(svc *stubService, date string) *httptest.ResponseRecorder {
	h := NewHandler(svc, logger.Nop())
	req := mux.SetURLVars(httptest.NewRequest(http.MethodDelete, "/api/v1/holidays/"+date, nil), map[string]string{"date": date})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandler_Removed(t *testing.T) {
	svc := &stubService{}

	rec := del(svc, "2024-12-25")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "2024-12-25", svc.removed)
}

func TestHandler_NotFound(t *testing.T) {
	rec := del(&stubService{err: holidays.ErrHolidayNotFound}, "2024-12-26")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
