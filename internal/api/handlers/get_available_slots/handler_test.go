package get_available_slots

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/asperus-scheduler/internal/domain"
	getAvailableSlots "github.com/m04kA/asperus-scheduler/internal/usecase/get_available_slots"
	"github.com/m04kA/asperus-scheduler/pkg/logger"
	"github.com/m04kA/asperus-scheduler/pkg/types"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*getAvailableSlots.Response), args.Error(1)
}

func serve(uc *mockUseCase, target string) *httptest.ResponseRecorder {
	h := NewHandler(uc, logger.Nop())
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandler_Slots(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, &getAvailableSlots.Request{Date: "2024-05-10", Professional: "Ana"}).
		Return(&getAvailableSlots.Response{
			Date:  time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC),
			Slots: []types.TimeString{"09:00", "09:30"},
		}, nil)

	rec := serve(uc, "/api/v1/slots?date=2024-05-10&professional=Ana")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "2024-05-10", body["date"])
	assert.Equal(t, []interface{}{"09:00", "09:30"}, body["slots"])
	assert.NotContains(t, body, "isHoliday")
	uc.AssertExpectations(t)
}

func TestHandler_Holiday(t *testing.T) {
	date := time.Date(2024, 12, 25, 0, 0, 0, 0, time.UTC)
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, mock.Anything).Return(&getAvailableSlots.Response{
		Date:    date,
		Slots:   []types.TimeString{},
		Holiday: &domain.Holiday{Date: date, Description: "Natal"},
	}, nil)

	rec := serve(uc, "/api/v1/slots?date=2024-12-25")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"date":"2024-12-25","slots":[],"isHoliday":true,"holiday":{"date":"2024-12-25","description":"Natal"}}`,
		rec.Body.String())
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		name   string
		target string
		err    error
		status int
		kind   string
	}{
		{name: "missing date", target: "/api/v1/slots", status: http.StatusBadRequest, kind: "validation"},
		{name: "invalid date", target: "/api/v1/slots?date=10-05-2024", err: getAvailableSlots.ErrInvalidDate, status: http.StatusBadRequest, kind: "validation"},
		{
			name:   "configuration absent",
			target: "/api/v1/slots?date=2024-05-10",
			err:    fmt.Errorf("%w: business hours are not configured", domain.ErrInternal),
			status: http.StatusInternalServerError,
			kind:   "internal",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			if tt.err != nil {
				uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.err)
			}

			rec := serve(uc, tt.target)
			assert.Equal(t, tt.status, rec.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.kind, body["kind"])
			assert.NotEmpty(t, body["message"])
		})
	}
}
