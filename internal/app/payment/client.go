package payment

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/sony/gobreaker"
	"github.com/valyala/fasthttp"

	"merchantpay/payment-broker-go/internal/models"
)

type gatewayResponse struct {
	Success    bool   `json:"success"`
	PaymentURL string `json:"payment_url"`
	PaymentID  string `json:"payment_id"`
	Error      string `json:"error"`
}

// Client submits signed payment requests to the gateway. A circuit breaker
// fails fast once the gateway stops answering at the transport level;
// business rejections do not count against it.
type Client struct {
	url     string
	timeout time.Duration
	client  *fasthttp.Client
	breaker *gobreaker.CircuitBreaker
}

func NewClient(url string, timeout time.Duration) *Client {
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "payment-gateway",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	})

	return &Client{
		url:     url,
		timeout: timeout,
		client:  &fasthttp.Client{},
		breaker: breaker,
	}
}

// Submit performs a single POST of the signed request to the gateway and
// interprets the reply. Transport failures are logged with full detail and
// surfaced to the caller only as ErrGatewayUnavailable.
func (c *Client) Submit(ctx context.Context, request *models.PaymentRequest) (*models.GatewayResult, error) {
	payload, err := sonic.Marshal(request)
	if err != nil {
		log.Printf("Gateway submit: failed to marshal request for order %s: %v", request.OrderID, err)
		return nil, ErrGatewayUnavailable
	}

	body, err := c.breaker.Execute(func() (any, error) {
		return c.post(payload)
	})
	if err != nil {
		log.Printf("Gateway submit failed for order %s: %v", request.OrderID, err)
		return nil, ErrGatewayUnavailable
	}

	var response gatewayResponse
	if err := sonic.Unmarshal(body.([]byte), &response); err != nil {
		log.Printf("Gateway submit: malformed response for order %s: %v", request.OrderID, err)
		return nil, ErrGatewayUnavailable
	}

	if !response.Success || response.PaymentURL == "" {
		message := response.Error
		if message == "" {
			message = "payment was rejected by the gateway"
		}
		return nil, &RejectionError{Message: message}
	}

	return &models.GatewayResult{
		Success:    true,
		PaymentURL: response.PaymentURL,
		PaymentID:  response.PaymentID,
	}, nil
}

func (c *Client) post(payload []byte) ([]byte, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer func() {
		fasthttp.ReleaseRequest(req)
		fasthttp.ReleaseResponse(resp)
	}()

	req.SetRequestURI(c.url + "/api/v1/payments")
	req.Header.SetMethod(http.MethodPost)
	req.Header.SetContentType("application/json")
	req.SetBody(payload)

	if err := c.client.DoTimeout(req, resp, c.timeout); err != nil {
		return nil, fmt.Errorf("failed to make payment request: %w", err)
	}

	// The body is interpreted even on non-200 replies, the gateway reports
	// rejections in it. Copy before the response is released.
	body := make([]byte, len(resp.Body()))
	copy(body, resp.Body())

	return body, nil
}
