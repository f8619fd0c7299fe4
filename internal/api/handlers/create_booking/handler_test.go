package create_booking

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thalibook/thalibook-api/internal/api/handlers"
	"github.com/thalibook/thalibook-api/internal/api/middleware"
	"github.com/thalibook/thalibook-api/internal/auth"
	"github.com/thalibook/thalibook-api/internal/domain"
	createBooking "github.com/thalibook/thalibook-api/internal/usecase/create_booking"
	"github.com/thalibook/thalibook-api/pkg/types"
)

type fakeUseCase struct {
	resp    *createBooking.Response
	err     error
	lastReq *createBooking.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type fakeValidator struct {
	claims *auth.Claims
}

func (f *fakeValidator) Validate(string) (*auth.Claims, error) {
	return f.claims, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(t *testing.T, uc UseCase, body string) *httptest.ResponseRecorder {
	t.Helper()

	h := NewHandler(uc, nopLogger{})
	validator := &fakeValidator{claims: &auth.Claims{UserID: 5, Role: string(domain.RoleCustomer)}}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer token")

	rec := httptest.NewRecorder()
	middleware.Auth(validator, nopLogger{})(http.HandlerFunc(h.Handle)).ServeHTTP(rec, req)
	return rec
}

const validBody = `{"restaurantId":7,"date":"2026-09-15","time":"19:00","partySize":3}`

func TestHandle_CreatedWithUserFromToken(t *testing.T) {
	startTime, err := types.NewTimeStringFromString("19:00")
	require.NoError(t, err)

	uc := &fakeUseCase{resp: &createBooking.Response{
		ID:           101,
		UserID:       5,
		RestaurantID: 7,
		TableID:      2,
		TableSize:    4,
		Date:         time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		Time:         startTime,
		PartySize:    3,
		Status:       string(domain.StatusConfirmed),
		CreatedAt:    time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
	}}

	rec := serve(t, uc, validBody)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, uc.lastReq)
	assert.Equal(t, int64(5), uc.lastReq.UserID)

	var resp BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(101), resp.ID)
	assert.Equal(t, "2026-09-15", resp.Date)
	assert.Equal(t, "19:00", resp.Time)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
}

func TestHandle_ErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"invalid input", createBooking.ErrInvalidInput, http.StatusBadRequest},
		{"past date", createBooking.ErrInvalidDate, http.StatusBadRequest},
		{"restaurant not found", createBooking.ErrRestaurantNotFound, http.StatusNotFound},
		{"restaurant closed", createBooking.ErrRestaurantClosed, http.StatusConflict},
		{"party too large", createBooking.ErrPartyTooLarge, http.StatusConflict},
		{"no table available", createBooking.ErrNoTableAvailable, http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, &fakeUseCase{err: tt.err}, validBody)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandle_UnexpectedErrorHidesDetails(t *testing.T) {
	rec := serve(t, &fakeUseCase{err: errors.New("pq: connection refused")}, validBody)

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	// Внутренние детали не утекают в ответ
	var resp handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "internal server error", resp.Error)
}

func TestHandle_MalformedBody(t *testing.T) {
	uc := &fakeUseCase{}

	rec := serve(t, uc, `{"restaurantId":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(t, uc, `{"restaurantId":7,"date":"15-09-2026","time":"19:00","partySize":3}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(t, uc, `{"restaurantId":7,"date":"2026-09-15","time":"7pm","partySize":3}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	assert.Nil(t, uc.lastReq)
}
