package http

import (
	"net/http"

	"github.com/MKhiriev/go-portfolio-panel/internal/view"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	if len(h.settings.AllowedOrigins) > 0 {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   h.settings.AllowedOrigins,
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders:   []string{"Accept", "Content-Type", traceIDHeader},
			ExposedHeaders:   []string{traceIDHeader, supersededHeader},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}
	router.Use(h.withTraceID, h.withLogging, withGZip)

	router.Get("/", h.page)
	router.Get("/api/version/", h.getServerVersion)
	router.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(view.Static()))))

	// fragment endpoints called by the panel script
	router.Group(func(r chi.Router) {
		r.Use(h.withSession, h.withRateLimit)
		r.Method(http.MethodPost, "/ui/optimize", ComponentHandler(h.optimize))
		r.Method(http.MethodGet, "/ui/decrypt", ComponentHandler(h.decrypt))
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
