package get_available_slots

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	getAvailableSlots "github.com/m04kA/Salon-BookingService/internal/usecase/get_available_slots"
)

type fakeUseCase struct {
	resp *getAvailableSlots.Response
	err  error

	gotReq *getAvailableSlots.Request
}

func (u *fakeUseCase) Execute(_ context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	u.gotReq = req
	return u.resp, u.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newRouter(uc *fakeUseCase) *mux.Router {
	h := NewHandler(uc, nopLogger{})
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/professionals/{professionalId}/available-slots", h.Handle).Methods(http.MethodGet)
	return r
}

func doRequest(t *testing.T, uc *fakeUseCase, url string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	rec := httptest.NewRecorder()
	newRouter(uc).ServeHTTP(rec, req)
	return rec
}

func TestHandle_Success(t *testing.T) {
	uc := &fakeUseCase{
		resp: &getAvailableSlots.Response{
			Date:            time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC),
			ProfessionalID:  1,
			ServiceID:       10,
			DurationMinutes: 60,
			Slots: []getAvailableSlots.Slot{
				{StartTime: "08:00", DurationMinutes: 60},
				{StartTime: "08:30", DurationMinutes: 60},
			},
		},
	}

	rec := doRequest(t, uc, "/api/v1/professionals/1/available-slots?serviceId=10&date=2026-03-16")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp AvailableSlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, "2026-03-16", resp.Date)
	assert.False(t, resp.Degraded)
	require.Len(t, resp.Slots, 2)
	assert.Equal(t, "08:00", resp.Slots[0].StartTime)

	require.NotNil(t, uc.gotReq)
	assert.Equal(t, int64(1), uc.gotReq.ProfessionalID)
	assert.Equal(t, int64(10), uc.gotReq.ServiceID)
	assert.Equal(t, 0, uc.gotReq.DurationMinutes)
}

func TestHandle_DegradedFlagPassedThrough(t *testing.T) {
	uc := &fakeUseCase{
		resp: &getAvailableSlots.Response{
			Date:            time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC),
			ProfessionalID:  1,
			ServiceID:       10,
			DurationMinutes: 60,
			Slots:           []getAvailableSlots.Slot{{StartTime: "08:00", DurationMinutes: 60}},
			Degraded:        true,
		},
	}

	rec := doRequest(t, uc, "/api/v1/professionals/1/available-slots?serviceId=10&date=2026-03-16")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp AvailableSlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Degraded)
}

func TestHandle_DurationOverride(t *testing.T) {
	uc := &fakeUseCase{resp: &getAvailableSlots.Response{DurationMinutes: 90}}

	rec := doRequest(t, uc, "/api/v1/professionals/1/available-slots?serviceId=10&date=2026-03-16&durationMinutes=90")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 90, uc.gotReq.DurationMinutes)
}

func TestHandle_ExplicitZeroDurationMeansCatalogDefault(t *testing.T) {
	// durationMinutes=0 эквивалентен отсутствию параметра:
	// правило "0 = из каталога услуг" принадлежит use case
	uc := &fakeUseCase{resp: &getAvailableSlots.Response{DurationMinutes: 45}}

	rec := doRequest(t, uc, "/api/v1/professionals/1/available-slots?serviceId=10&date=2026-03-16&durationMinutes=0")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0, uc.gotReq.DurationMinutes)
}

func TestHandle_BadRequests(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{name: "invalid professional id", url: "/api/v1/professionals/abc/available-slots?serviceId=10&date=2026-03-16"},
		{name: "missing service id", url: "/api/v1/professionals/1/available-slots?date=2026-03-16"},
		{name: "invalid service id", url: "/api/v1/professionals/1/available-slots?serviceId=abc&date=2026-03-16"},
		{name: "missing date", url: "/api/v1/professionals/1/available-slots?serviceId=10"},
		{name: "bad date format", url: "/api/v1/professionals/1/available-slots?serviceId=10&date=16.03.2026"},
		{name: "non-numeric duration", url: "/api/v1/professionals/1/available-slots?serviceId=10&date=2026-03-16&durationMinutes=abc"},
		{name: "negative duration", url: "/api/v1/professionals/1/available-slots?serviceId=10&date=2026-03-16&durationMinutes=-30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeUseCase{}
			rec := doRequest(t, uc, tt.url)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Nil(t, uc.gotReq)
		})
	}
}

func TestHandle_UseCaseErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "professional not found", err: getAvailableSlots.ErrProfessionalNotFound, wantStatus: http.StatusNotFound},
		{name: "professional inactive", err: getAvailableSlots.ErrProfessionalInactive, wantStatus: http.StatusBadRequest},
		{name: "service not found", err: getAvailableSlots.ErrServiceNotFound, wantStatus: http.StatusNotFound},
		{name: "past date", err: getAvailableSlots.ErrInvalidDate, wantStatus: http.StatusBadRequest},
		{name: "invalid duration", err: getAvailableSlots.ErrInvalidDuration, wantStatus: http.StatusBadRequest},
		{name: "internal", err: getAvailableSlots.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeUseCase{err: tt.err}
			rec := doRequest(t, uc, "/api/v1/professionals/1/available-slots?serviceId=10&date=2026-03-16")

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
