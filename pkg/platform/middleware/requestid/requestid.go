// Package requestid assigns each request a correlation ID. Incoming
// X-Request-Id headers are trusted so IDs survive proxy hops; otherwise a
// fresh UUID is minted.
package requestid

import (
	"net/http"

	"github.com/google/uuid"

	"adcheck/pkg/requestcontext"
)

// Header is the correlation ID header, both inbound and outbound.
const Header = "X-Request-Id"

// Middleware stores the request ID in the context and echoes it in the
// response.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(Header)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		ctx := requestcontext.WithRequestID(r.Context(), requestID)
		w.Header().Set(Header, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
