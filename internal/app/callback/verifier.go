package callback

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"merchantpay/payment-broker-go/internal/models"
	"merchantpay/payment-broker-go/internal/signing"
)

var ErrSignatureMismatch = errors.New("invalid callback signature")

// Verifier authenticates gateway status callbacks.
type Verifier struct {
	secret string
}

func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: secret}
}

// Handle verifies the callback signature and maps the payload onto a
// status event. The gateway's status vocabulary is open: unknown values
// verify fine and come back as StatusUnrecognized so the caller can
// acknowledge without acting on them.
func (v *Verifier) Handle(payload map[string]any) (*models.StatusEvent, error) {
	fields := stringifyFields(payload)

	provided := fields[signing.SignField]
	delete(fields, signing.SignField)

	if !signing.Verify(fields, provided, v.secret) {
		return nil, ErrSignatureMismatch
	}

	return &models.StatusEvent{
		OrderID:    fields["order_id"],
		Status:     models.ParseStatus(fields["status"]),
		PaymentID:  fields["payment_id"],
		ReceivedAt: time.Now().UTC(),
	}, nil
}

// stringifyFields flattens a decoded JSON object into the string field map
// the signature protocol is defined over. Null and empty values are
// dropped; non-string scalars use their canonical decimal form.
func stringifyFields(payload map[string]any) map[string]string {
	fields := make(map[string]string, len(payload))
	for key, value := range payload {
		var s string
		switch v := value.(type) {
		case nil:
			continue
		case string:
			s = v
		case bool:
			s = strconv.FormatBool(v)
		case float64:
			s = strconv.FormatFloat(v, 'f', -1, 64)
		default:
			s = fmt.Sprintf("%v", v)
		}

		if s == "" {
			continue
		}
		fields[key] = s
	}

	return fields
}
