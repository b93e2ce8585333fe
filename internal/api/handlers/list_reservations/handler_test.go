package list_reservations

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/asperus-scheduler/internal/service/reservations"
	"github.com/m04kA/asperus-scheduler/internal/service/reservations/models"
	"github.com/m04kA/asperus-scheduler/pkg/logger"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) ListByDate(ctx context.Context, req *models.ListByDateRequest) ([]*models.ReservationResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.ReservationResponse), args.Error(1)
}

func get(svc *mockService, target string) *httptest.ResponseRecorder {
	h := NewHandler(svc, logger.Nop())
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandler_List(t *testing.T) {
	svc := &mockService{}
	svc.On("ListByDate", mock.Anything, &models.ListByDateRequest{Date: "2024-05-10", IncludeCancelled: true}).
		Return([]*models.ReservationResponse{{ID: "r1", Date: "2024-05-10", Time: "09:00", Status: "CANCELLED"}}, nil)

	rec := get(svc, "/api/v1/reservations?date=2024-05-10&includeCancelled=true")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"CANCELLED"`)
	svc.AssertExpectations(t)
}

func TestHandler_BadParams(t *testing.T) {
	tests := []struct {
		name   string
		target string
		err    error
	}{
		{name: "missing date", target: "/api/v1/reservations"},
		{name: "bad flag", target: "/api/v1/reservations?date=2024-05-10&includeCancelled=maybe"},
		{name: "bad date", target: "/api/v1/reservations?date=2024-13-40", err: reservations.ErrInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockService{}
			if tt.err != nil {
				svc.On("ListByDate", mock.Anything, mock.Anything).Return(nil, tt.err)
			}

			rec := get(svc, tt.target)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}
