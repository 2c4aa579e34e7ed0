package payment

import (
	"fmt"

	"github.com/shopspring/decimal"

	"merchantpay/payment-broker-go/internal/models"
	"merchantpay/payment-broker-go/internal/signing"
)

const (
	defaultCurrency      = "RUB"
	defaultPaymentMethod = "card"
)

// Builder assembles signed payment requests for the gateway.
type Builder struct {
	merchantID string
	secret     string
}

func NewBuilder(merchantID, secret string) *Builder {
	return &Builder{
		merchantID: merchantID,
		secret:     secret,
	}
}

// Build validates the order, normalizes the amount to minor units and
// returns a fully signed PaymentRequest. baseURL is the merchant-facing
// scheme+host the redirect and callback URLs are built on.
func (b *Builder) Build(order *models.OrderRequest, baseURL string) (*models.PaymentRequest, error) {
	if order.Amount == 0 {
		return nil, &ValidationError{Field: "amount"}
	}
	if order.OrderID == "" {
		return nil, &ValidationError{Field: "orderId"}
	}
	if order.Email == "" {
		return nil, &ValidationError{Field: "email"}
	}

	description := order.Description
	if description == "" {
		description = fmt.Sprintf("Payment for order %s", order.OrderID)
	}

	method := order.PaymentMethod
	if method == "" {
		method = defaultPaymentMethod
	}

	request := &models.PaymentRequest{
		MerchantID:    b.merchantID,
		Amount:        minorUnits(order.Amount),
		Currency:      defaultCurrency,
		OrderID:       order.OrderID,
		Description:   description,
		CustomerEmail: order.Email,
		CustomerPhone: order.Phone,
		SuccessURL:    baseURL + "/success?order_id=" + order.OrderID,
		FailURL:       baseURL + "/fail?order_id=" + order.OrderID,
		CallbackURL:   baseURL + "/api/payment-callback?order_id=" + order.OrderID,
		PaymentMethod: method,
	}
	request.Sign = signing.Sign(request.Fields(), b.secret)

	return request, nil
}

// minorUnits converts a major-unit amount to minor units, rounding half
// away from zero.
func minorUnits(amount float64) int64 {
	return decimal.NewFromFloat(amount).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}
