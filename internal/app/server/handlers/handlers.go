package handlers

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/bytedance/sonic"

	"merchantpay/payment-broker-go/internal/app/callback"
	"merchantpay/payment-broker-go/internal/app/payment"
	"merchantpay/payment-broker-go/internal/config"
	"merchantpay/payment-broker-go/internal/models"
)

// StatusStore reads recorded payment statuses.
type StatusStore interface {
	GetStatus(ctx context.Context, orderID string) (*models.StatusEvent, error)
}

type Handlers struct {
	cfg            *config.Config
	paymentService *payment.Service
	verifier       *callback.Verifier
	statusStore    StatusStore
	statusEventsCh chan any
}

func NewHandlers(cfg *config.Config, paymentService *payment.Service, verifier *callback.Verifier, statusStore StatusStore, statusEventsCh chan any) *Handlers {
	return &Handlers{
		cfg:            cfg,
		paymentService: paymentService,
		verifier:       verifier,
		statusStore:    statusStore,
		statusEventsCh: statusEventsCh,
	}
}

type apiError struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// resolveBaseURL picks the configured public base URL when set, otherwise
// derives scheme+host from the inbound request. X-Forwarded-Proto wins
// over the direct connection scheme when a proxy sits in front.
func (h *Handlers) resolveBaseURL(r *http.Request) string {
	if h.cfg.Merchant.PublicBaseURL != "" {
		return strings.TrimRight(h.cfg.Merchant.PublicBaseURL, "/")
	}

	scheme := "http"
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	} else if r.TLS != nil {
		scheme = "https"
	}

	return scheme + "://" + r.Host
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	data, err := sonic.Marshal(body)
	if err != nil {
		log.Printf("Error encoding response: %v", err)
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(data)
}
