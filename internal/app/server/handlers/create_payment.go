package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/bytedance/sonic"

	"merchantpay/payment-broker-go/internal/app/payment"
	"merchantpay/payment-broker-go/internal/models"
)

type createPaymentResponse struct {
	Success    bool   `json:"success"`
	PaymentURL string `json:"paymentUrl"`
	PaymentID  string `json:"paymentId"`
}

func (h *Handlers) CreatePayment(w http.ResponseWriter, r *http.Request) {
	var order models.OrderRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	if err := decoder.Decode(&order); err != nil {
		writeJSON(w, http.StatusBadRequest, apiError{Error: "invalid request body"})
		return
	}

	baseURL := h.resolveBaseURL(r)

	result, err := h.paymentService.CreatePayment(r.Context(), &order, baseURL)
	if err != nil {
		h.writePaymentError(w, &order, err)
		return
	}

	writeJSON(w, http.StatusOK, createPaymentResponse{
		Success:    true,
		PaymentURL: result.PaymentURL,
		PaymentID:  result.PaymentID,
	})
}

func (h *Handlers) writePaymentError(w http.ResponseWriter, order *models.OrderRequest, err error) {
	var validation *payment.ValidationError
	if errors.As(err, &validation) {
		writeJSON(w, http.StatusBadRequest, apiError{Error: validation.Error()})
		return
	}

	var rejection *payment.RejectionError
	if errors.As(err, &rejection) {
		writeJSON(w, http.StatusBadRequest, apiError{Error: rejection.Message})
		return
	}

	log.Printf("Create payment failed for order %s: %v", order.OrderID, err)
	writeJSON(w, http.StatusInternalServerError, apiError{Error: "internal"})
}
