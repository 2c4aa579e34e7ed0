package models

import (
	"strconv"
	"time"
)

// OrderRequest is the merchant-side payload accepted by the create-payment
// endpoint. Amount is in major currency units and is converted to minor
// units by the request builder.
type OrderRequest struct {
	Amount        float64 `json:"amount"`
	OrderID       string  `json:"orderId"`
	Email         string  `json:"email"`
	Phone         string  `json:"phone,omitempty"`
	Description   string  `json:"description,omitempty"`
	PaymentMethod string  `json:"paymentMethod,omitempty"`
}

// PaymentRequest is the signed payload submitted to the payment gateway.
type PaymentRequest struct {
	MerchantID    string `json:"merchant_id"`
	Amount        int64  `json:"amount"`
	Currency      string `json:"currency"`
	OrderID       string `json:"order_id"`
	Description   string `json:"description"`
	CustomerEmail string `json:"customer_email"`
	CustomerPhone string `json:"customer_phone,omitempty"`
	SuccessURL    string `json:"success_url"`
	FailURL       string `json:"fail_url"`
	CallbackURL   string `json:"callback_url"`
	PaymentMethod string `json:"payment_method"`
	Sign          string `json:"sign"`
}

// Fields returns the request as a field map with empty optional values
// already pruned. The sign field is never part of the map.
func (r *PaymentRequest) Fields() map[string]string {
	fields := map[string]string{
		"merchant_id":    r.MerchantID,
		"amount":         strconv.FormatInt(r.Amount, 10),
		"currency":       r.Currency,
		"order_id":       r.OrderID,
		"description":    r.Description,
		"customer_email": r.CustomerEmail,
		"customer_phone": r.CustomerPhone,
		"success_url":    r.SuccessURL,
		"fail_url":       r.FailURL,
		"callback_url":   r.CallbackURL,
		"payment_method": r.PaymentMethod,
	}

	for key, value := range fields {
		if value == "" {
			delete(fields, key)
		}
	}

	return fields
}

// GatewayResult is the interpreted outcome of a gateway submission.
type GatewayResult struct {
	Success    bool
	PaymentURL string
	PaymentID  string
}

// StatusEvent is a verified callback outcome handed to the status workers.
type StatusEvent struct {
	OrderID    string        `json:"orderId"`
	Status     PaymentStatus `json:"status"`
	PaymentID  string        `json:"paymentId"`
	ReceivedAt time.Time     `json:"receivedAt"`
}
