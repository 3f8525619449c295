package middleware

import (
	"net/http"

	"github.com/gorilla/mux"
)

// APIKey returns a middleware that rejects requests whose X-API-Key header
// does not match serviceKey.
func APIKey(serviceKey string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.Header.Get("X-API-Key")
			if key == "" || key != serviceKey {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
