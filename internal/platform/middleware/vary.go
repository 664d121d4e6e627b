package middleware

import "net/http"

// Vary adds Accept to the Vary header on all responses, since the body format
// (JSON or CBOR) is negotiated from it. The CORS layer adds Origin itself.
func Vary() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Add("Vary", "Accept")
			next.ServeHTTP(w, r)
		})
	}
}
