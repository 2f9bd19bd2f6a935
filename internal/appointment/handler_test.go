package appointment

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

type failingStore struct {
	*fakeStore
}

func (f *failingStore) CountConflicts(ctx context.Context, doctorID, date, fromClock, toClock string) (int64, error) {
	return 0, errors.New("connection reset")
}

func (f *failingStore) CreateAppointment(ctx context.Context, appt *Appointment) error {
	return errors.New("connection reset")
}

func postJSON(t *testing.T, handler echo.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	if err := handler(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler: %v", err)
	}
	return rec
}

func TestCheckAvailabilityHandlerStatusCodes(t *testing.T) {
	service, _, _ := newTestService()
	handler := NewAppointmentHandler(service)

	cases := []struct {
		name string
		body string
		code int
	}{
		{
			name: "available",
			body: `{"doctorId":"` + doctorUserID + `","date":"2026-09-01","time":"10:00"}`,
			code: http.StatusOK,
		},
		{
			name: "malformed time",
			body: `{"doctorId":"` + doctorUserID + `","date":"2026-09-01","time":"10am"}`,
			code: http.StatusBadRequest,
		},
		{
			name: "unknown doctor",
			body: `{"doctorId":"nobody","date":"2026-09-01","time":"10:00"}`,
			code: http.StatusNotFound,
		},
	}
	for _, c := range cases {
		rec := postJSON(t, handler.CheckAvailability, c.body)
		if rec.Code != c.code {
			t.Fatalf("%s: expected %d, got %d", c.name, c.code, rec.Code)
		}
	}
}

func TestCheckAvailabilityStorageFailureIsServerError(t *testing.T) {
	service, store, _ := newTestService()
	service.store = &failingStore{fakeStore: store}
	handler := NewAppointmentHandler(service)

	rec := postJSON(t, handler.CheckAvailability,
		`{"doctorId":"`+doctorUserID+`","date":"2026-09-01","time":"10:00"}`)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "connection reset") {
		t.Fatalf("storage error leaked to client: %s", rec.Body.String())
	}
}

func TestBookStorageFailureIsServerError(t *testing.T) {
	service, store, _ := newTestService()
	service.store = &failingStore{fakeStore: store}
	handler := NewAppointmentHandler(service)

	rec := postJSON(t, handler.Book,
		`{"doctorId":"`+doctorUserID+`","userId":"`+patientUserID+`","date":"2026-09-01","time":"10:00"}`)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "connection reset") {
		t.Fatalf("storage error leaked to client: %s", rec.Body.String())
	}
}

func TestBookValidationFailureIsBadRequest(t *testing.T) {
	service, _, _ := newTestService()
	handler := NewAppointmentHandler(service)

	rec := postJSON(t, handler.Book,
		`{"doctorId":"`+doctorUserID+`","date":"2026-09-01","time":"10:00"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "doctorId and userId are required") {
		t.Fatalf("expected validation message, got %s", rec.Body.String())
	}
}
