package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"yt2blog/internal/api/middleware"
)

// NewRouter wires the HTTP surface. serviceKey, when non-empty, puts the
// generate route behind X-API-Key auth; the health check stays public.
func NewRouter(generator Generator, serviceKey string) http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/health", healthCheck).Methods(http.MethodGet)

	protected := r.PathPrefix("").Subrouter()
	if serviceKey != "" {
		protected.Use(middleware.APIKey(serviceKey))
	}

	handler := NewGenerateHandler(generator)
	protected.HandleFunc("/generate", handler.Generate).Methods(http.MethodPost)

	// Wrong method on a known route gets the JSON error body, not mux's
	// plain-text default.
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, msgInvalidMethod)
	})

	return r
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
