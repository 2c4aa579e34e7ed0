package payment

import (
	"errors"
	"fmt"
)

// ErrGatewayUnavailable covers any transport-level failure talking to the
// gateway. The underlying detail is logged, never returned to the caller.
var ErrGatewayUnavailable = errors.New("payment gateway unavailable")

// ValidationError reports a missing or empty mandatory field in a
// create-payment request.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required field: %s", e.Field)
}

// RejectionError carries the gateway's business-level rejection message.
type RejectionError struct {
	Message string
}

func (e *RejectionError) Error() string {
	return e.Message
}
