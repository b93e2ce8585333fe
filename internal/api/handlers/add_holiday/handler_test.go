package add_holiday

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/asperus-scheduler/internal/domain"
	"github.com/m04kA/asperus-scheduler/internal/service/holidays"
	"github.com/m04kA/asperus-scheduler/pkg/logger"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) Add(ctx context.Context, date, description string) (*domain.Holiday, error) {
	args := m.Called(ctx, date, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Holiday), args.Error(1)
}

func post(svc *mockService, payload string) *httptest.ResponseRecorder {
	h := NewHandler(svc, logger.Nop())
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/holidays", strings.NewReader(payload)))
	return rec
}

func TestHandler_Added(t *testing.T) {
	svc := &mockService{}
	svc.On("Add", mock.Anything, "2024-12-25", "Natal").
		Return(&domain.Holiday{Date: time.Date(2024, 12, 25, 0, 0, 0, 0, time.UTC), Description: "Natal"}, nil)

	rec := post(svc, `{"date":"2024-12-25","description":"Natal"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"date":"2024-12-25","description":"Natal"}`, rec.Body.String())
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{name: "duplicate", err: holidays.ErrHolidayExists, status: http.StatusConflict},
		{name: "bad date", err: holidays.ErrInvalidDate, status: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockService{}
			svc.On("Add", mock.Anything, mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := post(svc, `{"date":"2024-12-25","description":"Natal"}`)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
