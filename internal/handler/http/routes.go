package http

import (
	"net/http"

	"github.com/MKhiriev/go-trips/internal/app"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Init builds the complete route table. Unknown paths and unsupported
// methods answer 404 with a JSON body.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()

	router.NotFound(notFound)
	router.MethodNotAllowed(notFound)

	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withMetrics)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: h.cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
		ExposedHeaders: []string{traceIDHeader},
		MaxAge:         300,
	}))
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}

	router.Handle("/metrics", h.metrics.Handler())

	router.Route("/api", func(r chi.Router) {
		// routes without authorization
		r.Post("/auth/register", h.register)
		r.Post("/auth/login", h.login)
		r.Get("/banners", h.listBanners)

		r.Route("/trips", func(r chi.Router) {
			r.Use(h.auth)

			r.Get("/", h.searchTrips)
			r.Post("/", h.createTrip)
			r.Get("/{id}", h.getTrip)
			r.Put("/{id}", h.updateTrip)
			r.Delete("/{id}", h.deleteTrip)
		})
	})

	return router
}

func notFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, app.MsgNotFound, http.StatusNotFound)
}
