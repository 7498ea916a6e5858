package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/atelierkoba/site-api/internal/consent"
	"github.com/atelierkoba/site-api/internal/contact"
	httpmiddleware "github.com/atelierkoba/site-api/internal/http/middleware"
	"github.com/atelierkoba/site-api/pkg/logging"
)

// Config holds router configuration.
type Config struct {
	Logger         *logging.Logger
	ContactHandler *contact.Handler
	ConsentHandler *consent.Handler // optional, requires redis
	MetricsHandler http.Handler     // optional

	CORSAllowedOrigins []string
	ContactRateLimit   float64
	ContactRateBurst   int
}

// New creates a new chi router with all routes configured.
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(httpmiddleware.CORS(cfg.CORSAllowedOrigins))
	}
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	r.Route("/api", func(api chi.Router) {
		contactRoute := api.With()
		if cfg.ContactRateLimit > 0 {
			contactRoute = api.With(httpmiddleware.RateLimit(cfg.ContactRateLimit, cfg.ContactRateBurst))
		}
		contactRoute.Post("/contact", cfg.ContactHandler.Submit)

		if cfg.ConsentHandler != nil {
			api.Route("/consent", func(c chi.Router) {
				c.Get("/{visitorID}", cfg.ConsentHandler.Get)
				c.Post("/{visitorID}", cfg.ConsentHandler.Set)
			})
		}
	})

	return r
}
