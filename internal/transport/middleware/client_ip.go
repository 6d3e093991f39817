package middleware

import (
	"net/http"

	"github.com/heartmarshall/telemetry-backend/pkg/clientip"
	"github.com/heartmarshall/telemetry-backend/pkg/ctxutil"
)

// ClientIP resolves the caller's address once per request and stores it in
// the context. Requests whose address cannot be resolved pass through
// without one.
func ClientIP() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if ip, ok := clientip.FromRequest(r); ok {
				r = r.WithContext(ctxutil.WithClientIP(r.Context(), ip))
			}
			next.ServeHTTP(w, r)
		})
	}
}
