package reschedule_reservation

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/asperus-scheduler/internal/service/reservations"
	"github.com/m04kA/asperus-scheduler/internal/service/reservations/models"
	"github.com/m04kA/asperus-scheduler/pkg/logger"
)

const reservationID = "5f0c6f1e-8a0e-4a43-9d4c-1f4f7f3a0b11"

type mockService struct {
	mock.Mock
}

func (m *mockService) Reschedule(ctx context.Context, req *models.RescheduleRequest) (*models.ReservationResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ReservationResponse), args.Error(1)
}

func patch(svc *mockService, payload string) *httptest.ResponseRecorder {
	h := NewHandler(svc, logger.Nop())
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/reservations/"+reservationID+"/reschedule", strings.NewReader(payload))
	req = mux.SetURLVars(req, map[string]string{"id": reservationID})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandler_Rescheduled(t *testing.T) {
	svc := &mockService{}
	svc.On("Reschedule", mock.Anything, &models.RescheduleRequest{ID: reservationID, Date: "2024-05-12", Time: "11:00"}).
		Return(&models.ReservationResponse{ID: reservationID, Date: "2024-05-12", Time: "11:00", Status: "RESCHEDULED"}, nil)

	rec := patch(svc, `{"date":"2024-05-12","time":"11:00"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"RESCHEDULED"`)
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		kind   string
	}{
		{name: "not found", err: reservations.ErrReservationNotFound, status: http.StatusNotFound, kind: "not_found"},
		{name: "holiday", err: reservations.ErrHoliday, status: http.StatusBadRequest, kind: "holiday"},
		{name: "taken", err: reservations.ErrSlotTaken, status: http.StatusConflict, kind: "conflict"},
		{name: "elapsed", err: reservations.ErrSlotElapsed, status: http.StatusBadRequest, kind: "validation"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockService{}
			svc.On("Reschedule", mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := patch(svc, `{"date":"2024-05-12","time":"11:00"}`)
			assert.Equal(t, tt.status, rec.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.kind, body["kind"])
		})
	}
}
