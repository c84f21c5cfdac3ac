package payment_webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arnakr/AeroPark-Service/internal/integrations/payments"
	"github.com/arnakr/AeroPark-Service/internal/service/bookings"
)

type fakeBookingService struct {
	confirmed []string
	err       error
}

func (f *fakeBookingService) Confirm(_ context.Context, reference string) error {
	if f.err != nil {
		return f.err
	}
	f.confirmed = append(f.confirmed, reference)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func post(t *testing.T, h *Handler, event payments.WebhookEvent) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(event)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/webhooks/payment", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_PaidConfirmsBooking(t *testing.T) {
	svc := &fakeBookingService{}
	h := NewHandler(svc, nopLogger{})

	rec := post(t, h, payments.WebhookEvent{Reference: "AP-TESTREFX", SessionID: "sess-1", Outcome: "paid"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"AP-TESTREFX"}, svc.confirmed)
}

func TestHandle_UnknownReferenceAnswersOK(t *testing.T) {
	svc := &fakeBookingService{err: bookings.ErrBookingNotFound}
	h := NewHandler(svc, nopLogger{})

	rec := post(t, h, payments.WebhookEvent{Reference: "AP-MISSINGX", SessionID: "sess-1", Outcome: "paid"})

	// The provider retries on any non-2xx; an unknown reference must not loop
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]bool
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body["ignored"])
}

func TestHandle_TerminalBookingAnswersOK(t *testing.T) {
	svc := &fakeBookingService{err: bookings.ErrIllegalTransition}
	h := NewHandler(svc, nopLogger{})

	rec := post(t, h, payments.WebhookEvent{Reference: "AP-TESTREFX", SessionID: "sess-1", Outcome: "paid"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), msgConflict)
}

func TestHandle_FailedPaymentLeavesBookingAlone(t *testing.T) {
	svc := &fakeBookingService{}
	h := NewHandler(svc, nopLogger{})

	rec := post(t, h, payments.WebhookEvent{Reference: "AP-TESTREFX", SessionID: "sess-1", Outcome: "failed"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, svc.confirmed)
}

func TestHandle_MalformedPayloadRejected(t *testing.T) {
	h := NewHandler(&fakeBookingService{}, nopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/webhooks/payment", bytes.NewReader([]byte("{")))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
