package middleware

import (
	"net/http"
	"strings"
)

// Security sets OWASP REST security headers on all responses except a skip
// path itself or anything below it (the HTML docs page needs to load scripts).
//
// Cross-Origin-Resource-Policy is "cross-origin": the API is meant to be
// fetched from pages on other origins.
func Security(skipPaths ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, p := range skipPaths {
				if p != "" && (r.URL.Path == p || strings.HasPrefix(r.URL.Path, p+"/")) {
					next.ServeHTTP(w, r)
					return
				}
			}
			h := w.Header()
			h.Set("Cache-Control", "no-store")
			h.Set("Content-Security-Policy", "frame-ancestors 'none'")
			h.Set("Cross-Origin-Resource-Policy", "cross-origin")
			h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("X-Frame-Options", "DENY")
			next.ServeHTTP(w, r)
		})
	}
}
