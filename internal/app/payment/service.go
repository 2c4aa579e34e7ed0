package payment

import (
	"context"

	"merchantpay/payment-broker-go/internal/models"
)

// Service ties request building and gateway submission together for the
// create-payment flow.
type Service struct {
	builder *Builder
	client  *Client
}

func NewService(builder *Builder, client *Client) *Service {
	return &Service{
		builder: builder,
		client:  client,
	}
}

// CreatePayment builds a signed request for the order and submits it to
// the gateway.
func (s *Service) CreatePayment(ctx context.Context, order *models.OrderRequest, baseURL string) (*models.GatewayResult, error) {
	request, err := s.builder.Build(order, baseURL)
	if err != nil {
		return nil, err
	}

	return s.client.Submit(ctx, request)
}
