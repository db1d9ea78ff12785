package handlers

import (
	"encoding/json"
	"net"
	"net/http"
	"net/mail"
	"time"

	"github.com/rs/zerolog"

	"campaign/internal/domain"
	"campaign/internal/infra/geoip"
	"campaign/internal/notify"
	"campaign/internal/providers/payment"
)

// App carries the handler dependencies.
type App struct {
	Log        zerolog.Logger
	Volunteers domain.VolunteerRepository
	YardSigns  domain.YardSignRepository
	Donations  domain.DonationRepository
	Newsletter domain.NewsletterRepository
	Analytics  domain.AnalyticsRepository
	Payments   payment.Client
	Notifier   notify.Notifier
	Geo        geoip.CountryResolver

	// Currency is the ISO code donations are charged in; defaults to usd.
	Currency string
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, status int, code, message string) {
	a.json(w, status, map[string]any{"error": code, "message": message})
}

// invalid renders a 400 with per-field messages. Validation stops at this
// boundary; nothing malformed reaches the repositories.
func (a *App) invalid(w http.ResponseWriter, fields map[string]string) {
	a.json(w, http.StatusBadRequest, map[string]any{
		"error":   "validation",
		"message": "invalid submission",
		"fields":  fields,
	})
}

// notify publishes a capture event, enriched with the submitter's country
// when a GeoIP database is configured. Best-effort: never fails the request.
func (a *App) notify(r *http.Request, eventType string, payload map[string]any) {
	if a.Notifier == nil {
		return
	}
	if country := a.clientCountry(r); country != "" {
		payload["country"] = country
	}
	a.Notifier.Publish(r.Context(), notify.NewEvent(eventType, payload))
}

// record bumps today's signup counters. Failures are logged, not surfaced.
func (a *App) record(r *http.Request, counters map[string]int) {
	if a.Analytics == nil {
		return
	}
	day := time.Now().UTC().Format("2006-01-02")
	if err := a.Analytics.IncrementCounters(r.Context(), day, counters); err != nil {
		a.Log.Warn().Err(err).Msg("failed to update signup counters")
	}
}

func (a *App) clientCountry(r *http.Request) string {
	if a.Geo == nil {
		return ""
	}
	ip := r.RemoteAddr
	if host, _, err := net.SplitHostPort(ip); err == nil {
		ip = host
	}
	country, err := a.Geo.CountryCode(ip)
	if err != nil {
		return ""
	}
	return country
}

func validEmail(s string) bool {
	if s == "" {
		return false
	}
	_, err := mail.ParseAddress(s)
	return err == nil
}
