package handlers

import (
	"net/http"
)

func (a *App) StatsSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := a.Analytics.GetSummary(r.Context())
	if err != nil {
		a.error(w, http.StatusInternalServerError, "internal", "failed to load stats")
		return
	}
	a.json(w, http.StatusOK, map[string]any{
		"volunteers":            summary.Volunteers,
		"yard_sign_requests":    summary.YardSignRequests,
		"donations":             summary.Donations,
		"donation_amount_cents": summary.DonationAmountCents,
		"subscriptions":         summary.Subscriptions,
		"volunteers_last_7d":    summary.VolunteersLast7d,
		"yard_signs_last_7d":    summary.YardSignsLast7d,
		"donations_last_7d":     summary.DonationsLast7d,
		"subscriptions_last_7d": summary.SubscriptionsLast7d,
	})
}
