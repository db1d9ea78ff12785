package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"campaign/internal/console"
	"campaign/internal/domain"
	"campaign/internal/notify"
)

type newsletterRequest struct {
	Email string `json:"email"`
}

func newsletterPayload(s domain.NewsletterSubscription) map[string]any {
	return map[string]any{
		"id":        s.ID,
		"email":     s.Email,
		"createdAt": s.CreatedAt,
	}
}

func (a *App) NewsletterCreate(w http.ResponseWriter, r *http.Request) {
	var req newsletterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if !validEmail(req.Email) {
		a.invalid(w, map[string]string{"email": "Valid email is required"})
		return
	}

	created, err := a.Newsletter.Create(r.Context(), &domain.NewsletterSubscription{Email: req.Email})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			a.invalid(w, map[string]string{"email": "Email is already subscribed"})
			return
		}
		a.Log.Error().Err(err).Msg("failed to create newsletter subscription")
		a.error(w, http.StatusInternalServerError, "internal", "failed to create subscription")
		return
	}

	a.record(r, map[string]int{"subscriptions": 1})
	a.notify(r, notify.EventNewsletter, newsletterPayload(*created))
	a.json(w, http.StatusOK, map[string]any{"success": true, "subscription": newsletterPayload(*created)})
}

func (a *App) NewsletterList(w http.ResponseWriter, r *http.Request) {
	listView(a, w, r, a.Newsletter.List, console.NewsletterFields, console.NewsletterSearchFields, newsletterPayload)
}

func (a *App) NewsletterDelete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid id")
		return
	}
	if err := a.Newsletter.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.error(w, http.StatusNotFound, "not_found", "subscription not found")
			return
		}
		a.error(w, http.StatusInternalServerError, "internal", "failed to delete subscription")
		return
	}
	a.json(w, http.StatusOK, map[string]any{"success": true})
}

func (a *App) NewsletterBulkDelete(w http.ResponseWriter, r *http.Request) {
	bulkDelete(a, w, r, a.Newsletter.List,
		func(s domain.NewsletterSubscription) int { return s.ID },
		a.Newsletter.Delete)
}

func (a *App) NewsletterExport(w http.ResponseWriter, r *http.Request) {
	exportCSV(a, w, r, a.Newsletter.List,
		func(s domain.NewsletterSubscription) int { return s.ID },
		console.NewsletterColumns, "newsletter-subscribers")
}
