package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

const allowOriginHeader = "Access-Control-Allow-Origin"

// CORS marks every response as readable from any origin.
//
// The wildcard header is set before the downstream handler runs, so routed
// responses, 404/405 fallbacks and recovered panics all carry it, with or
// without an Origin request header. Preflight requests are answered by
// go-chi/cors and never reach the router.
func CORS() func(http.Handler) http.Handler {
	preflight := cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodHead,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Content-Type",
			"X-Request-Id",
		},
		ExposedHeaders: []string{"X-Request-Id"},
		MaxAge:         300,
	})
	return func(next http.Handler) http.Handler {
		h := preflight(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set(allowOriginHeader, "*")
			h.ServeHTTP(w, r)
		})
	}
}
