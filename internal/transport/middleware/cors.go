package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/heartmarshall/telemetry-backend/internal/config"
)

// CORS returns middleware that answers browser cross-origin checks for the
// admin page and the ingestion endpoints. A "*" entry allows any origin; it
// is echoed literally unless credentials are enabled, in which case the
// request origin is reflected instead. OPTIONS requests are answered with
// 204 and never reach the handler.
func CORS(cfg config.CORSConfig) Middleware {
	allowAny := false
	allowed := make(map[string]struct{})
	for _, o := range strings.Split(cfg.AllowedOrigins, ",") {
		o = strings.TrimSpace(o)
		switch o {
		case "":
		case "*":
			allowAny = true
		default:
			allowed[o] = struct{}{}
		}
	}
	maxAge := strconv.Itoa(cfg.MaxAge)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Add("Vary", "Origin")

			if origin := r.Header.Get("Origin"); origin != "" {
				_, listed := allowed[origin]
				switch {
				case listed || (allowAny && cfg.AllowCredentials):
					h.Set("Access-Control-Allow-Origin", origin)
				case allowAny:
					h.Set("Access-Control-Allow-Origin", "*")
				}
				if cfg.AllowCredentials && h.Get("Access-Control-Allow-Origin") != "" {
					h.Set("Access-Control-Allow-Credentials", "true")
				}
			}

			if r.Method == http.MethodOptions {
				h.Set("Access-Control-Allow-Methods", cfg.AllowedMethods)
				h.Set("Access-Control-Allow-Headers", cfg.AllowedHeaders)
				h.Set("Access-Control-Max-Age", maxAge)
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
