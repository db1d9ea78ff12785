package httpapi

import (
	stdhttp "net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"campaign/internal/http/handlers"
	"campaign/internal/middleware"
)

// Options tune the router's middleware chain.
type Options struct {
	Logger          zerolog.Logger
	AllowedOrigins  []string
	RateLimitPerMin int
}

// NewRouter wires every endpoint: public lead-capture forms behind a rate
// limit, the admin console endpoints without one.
func NewRouter(app *handlers.App, opts Options) stdhttp.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.RequestID,
		chimiddleware.RealIP,
		chimiddleware.Recoverer,
		middleware.Logger(opts.Logger),
	)
	if len(opts.AllowedOrigins) > 0 {
		r.Use(middleware.CORS(opts.AllowedOrigins))
	}

	limit := func(next stdhttp.Handler) stdhttp.Handler { return next }
	if opts.RateLimitPerMin > 0 {
		limit = middleware.RateLimit(opts.RateLimitPerMin, time.Minute)
	}

	r.Get("/v1/healthz", app.Health)

	r.Route("/api", func(r chi.Router) {
		r.With(limit).Post("/create-payment-intent", app.PaymentIntentCreate)

		r.Route("/volunteers", func(r chi.Router) {
			r.With(limit).Post("/", app.VolunteersCreate)
			r.Get("/", app.VolunteersList)
			r.Get("/export", app.VolunteersExport)
			r.Post("/bulk-delete", app.VolunteersBulkDelete)
			r.Put("/{id}", app.VolunteersUpdate)
			r.Delete("/{id}", app.VolunteersDelete)
		})

		r.Route("/yard-sign-requests", func(r chi.Router) {
			r.With(limit).Post("/", app.YardSignsCreate)
			r.Get("/", app.YardSignsList)
			r.Get("/export", app.YardSignsExport)
			r.Post("/bulk-delete", app.YardSignsBulkDelete)
			r.Put("/{id}", app.YardSignsUpdate)
			r.Delete("/{id}", app.YardSignsDelete)
		})

		r.Route("/donations", func(r chi.Router) {
			r.Get("/", app.DonationsList)
			r.Get("/export", app.DonationsExport)
			r.With(limit).Post("/{id}/status", app.DonationsUpdateStatus)
		})

		r.Route("/newsletter", func(r chi.Router) {
			r.With(limit).Post("/", app.NewsletterCreate)
			r.Get("/", app.NewsletterList)
			r.Get("/export", app.NewsletterExport)
			r.Post("/bulk-delete", app.NewsletterBulkDelete)
			r.Delete("/{id}", app.NewsletterDelete)
		})

		r.Get("/admin/stats", app.StatsSummary)
	})

	return r
}
