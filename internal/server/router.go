// Package server wires the HTTP routes.
package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"bookscout/internal/recommend"
	"bookscout/web"
)

// New builds the router. CORS is global so OPTIONS preflight works for the
// browser frontend served at /.
func New(h *recommend.Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Post("/api/recommend", h.Recommend)
	r.Get("/api/test-gemini", h.TestGemini)

	r.Handle("/*", http.FileServer(http.FS(web.Static())))

	return r
}
