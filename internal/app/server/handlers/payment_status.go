package handlers

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"merchantpay/payment-broker-go/internal/models"
)

type paymentStatusResponse struct {
	OrderID   string               `json:"orderId"`
	Status    models.PaymentStatus `json:"status"`
	PaymentID string               `json:"paymentId,omitempty"`
}

func (h *Handlers) PaymentStatus(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderID")

	event, err := h.statusStore.GetStatus(r.Context(), orderID)
	if err != nil {
		log.Printf("Error getting payment status for order %s: %v", orderID, err)
		writeJSON(w, http.StatusInternalServerError, apiError{Error: "internal"})
		return
	}

	response := paymentStatusResponse{
		OrderID: orderID,
		Status:  models.StatusPending,
	}
	if event != nil {
		response.Status = event.Status
		response.PaymentID = event.PaymentID
	}

	writeJSON(w, http.StatusOK, response)
}
