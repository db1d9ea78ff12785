package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"campaign/internal/console"
	"campaign/internal/domain"
	"campaign/internal/notify"
)

type paymentIntentRequest struct {
	Amount float64 `json:"amount"`
	Email  string  `json:"email"`
}

type donationStatusRequest struct {
	Status     string `json:"status"`
	PaymentRef string `json:"paymentRef"`
}

func donationPayload(d domain.Donation) map[string]any {
	return map[string]any{
		"id":         d.ID,
		"email":      d.Email,
		"amount":     d.AmountCents,
		"status":     string(d.Status),
		"paymentRef": d.PaymentRef,
		"createdAt":  d.CreatedAt,
	}
}

// PaymentIntentCreate persists a pending donation, opens a charge with the
// payment processor, and hands the client-confirmable secret back. On
// processor failure the donation stays pending and the error surfaces once.
func (a *App) PaymentIntentCreate(w http.ResponseWriter, r *http.Request) {
	var req paymentIntentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	fields := make(map[string]string)
	if req.Amount <= 0 {
		fields["amount"] = "Amount must be positive"
	}
	if !validEmail(req.Email) {
		fields["email"] = "Valid email is required"
	}
	if len(fields) > 0 {
		a.invalid(w, fields)
		return
	}
	if a.Payments == nil {
		a.error(w, http.StatusServiceUnavailable, "unavailable", "payments are not configured")
		return
	}

	amountCents := int64(math.Round(req.Amount * 100))
	donation, err := a.Donations.Create(r.Context(), &domain.Donation{
		Email:       req.Email,
		AmountCents: amountCents,
		Status:      domain.DonationPending,
	})
	if err != nil {
		a.Log.Error().Err(err).Msg("failed to create donation")
		a.error(w, http.StatusInternalServerError, "internal", "failed to create donation")
		return
	}

	intent, err := a.Payments.CreateIntent(r.Context(), amountCents, a.currency(), map[string]string{
		"donation_id": strconv.Itoa(donation.ID),
		"email":       req.Email,
	})
	if err != nil {
		err = fmt.Errorf("%w: %v", domain.ErrProcessorFailure, err)
		a.Log.Error().Err(err).Int("donation_id", donation.ID).Msg("payment processor rejected intent")
		a.error(w, http.StatusBadGateway, "processor", "failed to create payment intent")
		return
	}

	if _, err := a.Donations.UpdateStatus(r.Context(), donation.ID, domain.DonationPending, intent.ID); err != nil {
		a.Log.Error().Err(err).Int("donation_id", donation.ID).Msg("failed to store payment reference")
	}

	a.record(r, map[string]int{"donations": 1, "donation_amount_cents": int(amountCents)})
	payload := donationPayload(*donation)
	payload["paymentRef"] = intent.ID
	a.notify(r, notify.EventDonation, payload)

	a.json(w, http.StatusOK, map[string]any{"clientSecret": intent.ClientSecret})
}

// DonationsUpdateStatus applies the processor's success or failure outcome.
func (a *App) DonationsUpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid id")
		return
	}
	var req donationStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	status := domain.DonationStatus(req.Status)
	if !status.Valid() || status == domain.DonationPending {
		a.invalid(w, map[string]string{"status": "Status must be succeeded or failed"})
		return
	}

	updated, err := a.Donations.UpdateStatus(r.Context(), id, status, req.PaymentRef)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.error(w, http.StatusNotFound, "not_found", "donation not found")
			return
		}
		a.error(w, http.StatusInternalServerError, "internal", "failed to update donation")
		return
	}
	a.json(w, http.StatusOK, donationPayload(*updated))
}

func (a *App) DonationsList(w http.ResponseWriter, r *http.Request) {
	listView(a, w, r, a.Donations.List, console.DonationFields, console.DonationSearchFields, donationPayload)
}

func (a *App) DonationsExport(w http.ResponseWriter, r *http.Request) {
	exportCSV(a, w, r, a.Donations.List,
		func(d domain.Donation) int { return d.ID },
		console.DonationColumns, "donations")
}

func (a *App) currency() string {
	if a.Currency != "" {
		return a.Currency
	}
	return "usd"
}
