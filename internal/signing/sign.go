package signing

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// SignField is the payload key carrying the signature. It is always
// stripped before the canonical string is computed.
const SignField = "sign"

// Sign computes the lowercase hex HMAC-SHA256 of the canonical string of
// fields, keyed by secret.
func Sign(fields map[string]string, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(Canonicalize(fields)))

	return hex.EncodeToString(mac.Sum(nil))
}

// Verify recomputes the signature over fields, with any embedded sign field
// stripped first, and compares it against the provided one. Malformed input
// never fails hard; a missing or garbage signature simply does not match.
func Verify(fields map[string]string, provided, secret string) bool {
	if provided == "" {
		return false
	}

	if _, ok := fields[SignField]; ok {
		stripped := make(map[string]string, len(fields))
		for key, value := range fields {
			if key == SignField {
				continue
			}
			stripped[key] = value
		}
		fields = stripped
	}

	expected := Sign(fields, secret)

	return hmac.Equal([]byte(expected), []byte(provided))
}
