package middleware

import (
	"net/http"
)

const tooLargeBody = `{"ok":false,"error":"request body too large"}` + "\n"

// BodyLimit rejects requests whose declared Content-Length exceeds limit
// with 413 and caps the readable body of all others at limit bytes. Reading
// past the cap fails with *http.MaxBytesError.
func BodyLimit(limit int64) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > limit {
				w.Header().Set("Content-Type", "application/json")
				w.Header().Set("Connection", "close")
				w.WriteHeader(http.StatusRequestEntityTooLarge)
				_, _ = w.Write([]byte(tooLargeBody))
				return
			}
			r.Body = http.MaxBytesReader(w, r.Body, limit)
			next.ServeHTTP(w, r)
		})
	}
}
