// Package signing implements the gateway signature protocol: deterministic
// canonicalization of a field set and HMAC-SHA256 signing keyed by the
// shared merchant secret.
package signing

import (
	"sort"
	"strings"
)

// Canonicalize serializes a field map into the string signatures are
// computed over. Entries with empty values are dropped, the remaining keys
// are sorted ascending, and each pair is joined as key=value with & between
// pairs. Values are inserted verbatim, without URL encoding. An empty field
// set yields an empty string.
func Canonicalize(fields map[string]string) string {
	keys := make([]string, 0, len(fields))
	for key, value := range fields {
		if value == "" {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, key := range keys {
		pairs = append(pairs, key+"="+fields[key])
	}

	return strings.Join(pairs, "&")
}
