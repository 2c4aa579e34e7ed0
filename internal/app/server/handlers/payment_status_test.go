package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"merchantpay/payment-broker-go/internal/models"
)

type stubStatusStore struct {
	events map[string]*models.StatusEvent
	err    error
}

func (s *stubStatusStore) GetStatus(ctx context.Context, orderID string) (*models.StatusEvent, error) {
	if s.err != nil {
		return nil, s.err
	}

	return s.events[orderID], nil
}

func getStatus(t *testing.T, store StatusStore, orderID string) *httptest.ResponseRecorder {
	t.Helper()

	handlers := NewHandlers(testConfig(), nil, nil, store, nil)

	router := chi.NewRouter()
	router.Get("/api/payment-status/{orderID}", handlers.PaymentStatus)

	req := httptest.NewRequest(http.MethodGet, "/api/payment-status/"+orderID, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func TestPaymentStatusRecordedOrder(t *testing.T) {
	store := &stubStatusStore{events: map[string]*models.StatusEvent{
		"ORD1": {OrderID: "ORD1", Status: models.StatusSucceeded, PaymentID: "PAY1"},
	}}

	rec := getStatus(t, store, "ORD1")

	require.Equal(t, http.StatusOK, rec.Code)

	var response map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "ORD1", response["orderId"])
	assert.Equal(t, "succeeded", response["status"])
	assert.Equal(t, "PAY1", response["paymentId"])
}

func TestPaymentStatusUnknownOrderPending(t *testing.T) {
	store := &stubStatusStore{}

	rec := getStatus(t, store, "ORD-UNKNOWN")

	require.Equal(t, http.StatusOK, rec.Code)

	var response map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "ORD-UNKNOWN", response["orderId"])
	assert.Equal(t, "pending", response["status"])
	assert.NotContains(t, response, "paymentId")
}

func TestPaymentStatusStoreError(t *testing.T) {
	store := &stubStatusStore{err: errors.New("connection refused")}

	rec := getStatus(t, store, "ORD1")

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var response map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, false, response["success"])
	assert.Equal(t, "internal", response["error"])
}
