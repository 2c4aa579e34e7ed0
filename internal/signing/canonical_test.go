package signing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeSortsKeys(t *testing.T) {
	fields := map[string]string{
		"order_id": "ORD1",
		"amount":   "10000",
		"currency": "RUB",
	}

	assert.Equal(t, "amount=10000&currency=RUB&order_id=ORD1", Canonicalize(fields))
}

func TestCanonicalizePrunesEmptyValues(t *testing.T) {
	fields := map[string]string{
		"order_id":       "ORD1",
		"customer_phone": "",
		"description":    "",
	}

	canonical := Canonicalize(fields)

	assert.Equal(t, "order_id=ORD1", canonical)
	assert.NotContains(t, canonical, "customer_phone")
	assert.NotContains(t, canonical, "description")
}

func TestCanonicalizeDeterministic(t *testing.T) {
	first := map[string]string{}
	first["amount"] = "500"
	first["order_id"] = "A"
	first["currency"] = "RUB"

	second := map[string]string{}
	second["currency"] = "RUB"
	second["order_id"] = "A"
	second["amount"] = "500"

	assert.Equal(t, Canonicalize(first), Canonicalize(second))
}

func TestCanonicalizeEmptySet(t *testing.T) {
	assert.Equal(t, "", Canonicalize(map[string]string{}))
	assert.Equal(t, "", Canonicalize(nil))
}

func TestCanonicalizeValuesVerbatim(t *testing.T) {
	fields := map[string]string{
		"success_url": "https://shop.example/success?order_id=ORD1",
	}

	// No URL encoding is applied to values.
	assert.Equal(t, "success_url=https://shop.example/success?order_id=ORD1", Canonicalize(fields))
}
