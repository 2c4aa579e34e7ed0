package server

import (
	"net/http"

	"github.com/google/uuid"
)

// requestID stamps every request with an id for log correlation, keeping a
// caller-supplied one when present.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-Id")
		if id == "" {
			id = uuid.New().String()
		}

		w.Header().Set("X-Request-Id", id)
		next.ServeHTTP(w, r)
	})
}
