package query_bookings

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
	"github.com/m04kA/asperus-scheduler/internal/service/reservations/models"
	"github.com/m04kA/asperus-scheduler/pkg/logger"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) Lookup(ctx context.Context, req *models.LookupRequest) ([]*models.ReservationResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.ReservationResponse), args.Error(1)
}

func post(svc *mockService, payload string) *httptest.ResponseRecorder {
	h := NewHandler(svc, logger.Nop())
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/bookings/lookup", strings.NewReader(payload)))
	return rec
}

func TestHandler_Found(t *testing.T) {
	at := time.Date(2024, 5, 10, 14, 7, 0, 0, time.UTC)
	svc := &mockService{}
	svc.On("Lookup", mock.Anything, &models.LookupRequest{Contact: "maria@example.com", RetrievalCode: "k7q2"}).
		Return([]*models.ReservationResponse{{
			ID: "r1", Date: "2024-05-11", Time: "10:00", ClientName: "Maria", ClientContact: "maria@example.com",
			Service: "Corte", Status: "SCHEDULED", CreatedAt: at, UpdatedAt: at,
		}}, nil)

	rec := post(svc, `{"contact":"maria@example.com","retrievalCode":"k7q2"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":"r1"`)
	assert.NotContains(t, rec.Body.String(), "retrievalCode")
}

func TestHandler_EmptyList(t *testing.T) {
	svc := &mockService{}
	svc.On("Lookup", mock.Anything, mock.Anything).Return([]*models.ReservationResponse{}, nil)

	rec := post(svc, `{"contact":"maria@example.com","retrievalCode":"ZZZZ"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"bookings":[]}`, rec.Body.String())
}

func TestHandler_InvalidCode(t *testing.T) {
	svc := &mockService{}
	_, codeErr := domain.NormalizeRetrievalCode("12")
	svc.On("Lookup", mock.Anything, mock.Anything).Return(nil, codeErr)

	rec := post(svc, `{"contact":"maria@example.com","retrievalCode":"12"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"kind":"validation"`)
}
