package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"campaign/internal/domain"
	"campaign/internal/http/handlers"
	"campaign/internal/http/httpapi"
	"campaign/internal/notify"
	"campaign/internal/providers/payment"
)

func TestPaymentIntentCreateOpensChargeAndStoresReference(t *testing.T) {
	donations := newFakeDonationRepo()
	payments := &fakePayments{intent: &payment.Intent{ID: "pi_123", ClientSecret: "pi_123_secret"}}
	notifier := &fakeNotifier{}
	app := &handlers.App{
		Log:       zerolog.Nop(),
		Donations: donations,
		Analytics: &fakeAnalytics{},
		Payments:  payments,
		Notifier:  notifier,
		Currency:  "usd",
	}

	body := `{"amount":25.00,"email":"donor@example.com"}`
	req := httptest.NewRequest(http.MethodPost, "/api/create-payment-intent", strings.NewReader(body))
	rr := httptest.NewRecorder()
	app.PaymentIntentCreate(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	var resp struct {
		ClientSecret string `json:"clientSecret"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.ClientSecret != "pi_123_secret" {
		t.Fatalf("client secret mismatch: %q", resp.ClientSecret)
	}

	if payments.gotAmount != 2500 || payments.gotCurrency != "usd" {
		t.Fatalf("processor call mismatch: amount=%d currency=%q", payments.gotAmount, payments.gotCurrency)
	}
	if payments.gotMetadata["donation_id"] != "1" || payments.gotMetadata["email"] != "donor@example.com" {
		t.Fatalf("metadata mismatch: %v", payments.gotMetadata)
	}

	if len(donations.items) != 1 {
		t.Fatalf("donation not persisted: %v", donations.items)
	}
	d := donations.items[0]
	if d.Status != domain.DonationPending || d.AmountCents != 2500 || d.PaymentRef != "pi_123" {
		t.Fatalf("stored donation mismatch: %+v", d)
	}
	if len(notifier.events) != 1 || notifier.events[0].Type != notify.EventDonation {
		t.Fatalf("expected one donation event, got %v", notifier.events)
	}
}

func TestPaymentIntentCreateProcessorFailureLeavesDonationPending(t *testing.T) {
	donations := newFakeDonationRepo()
	app := &handlers.App{
		Log:       zerolog.Nop(),
		Donations: donations,
		Analytics: &fakeAnalytics{},
		Payments:  &fakePayments{err: errors.New("stripe: unexpected status 500")},
		Notifier:  &fakeNotifier{},
	}

	body := `{"amount":10,"email":"donor@example.com"}`
	req := httptest.NewRequest(http.MethodPost, "/api/create-payment-intent", strings.NewReader(body))
	rr := httptest.NewRecorder()
	app.PaymentIntentCreate(rr, req)

	if rr.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rr.Code)
	}
	if len(donations.items) != 1 || donations.items[0].Status != domain.DonationPending {
		t.Fatalf("donation should remain pending: %v", donations.items)
	}
}

func TestPaymentIntentCreateValidation(t *testing.T) {
	app := &handlers.App{
		Log:       zerolog.Nop(),
		Donations: newFakeDonationRepo(),
		Payments:  &fakePayments{intent: &payment.Intent{ID: "pi", ClientSecret: "s"}},
	}

	body := `{"amount":0,"email":"bad"}`
	req := httptest.NewRequest(http.MethodPost, "/api/create-payment-intent", strings.NewReader(body))
	rr := httptest.NewRecorder()
	app.PaymentIntentCreate(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
	var payload struct {
		Fields map[string]string `json:"fields"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.Fields["amount"] == "" || payload.Fields["email"] == "" {
		t.Fatalf("expected field messages, got %v", payload.Fields)
	}
}

func TestPaymentIntentCreateWithoutProcessorConfigured(t *testing.T) {
	app := &handlers.App{Log: zerolog.Nop(), Donations: newFakeDonationRepo()}

	body := `{"amount":10,"email":"donor@example.com"}`
	req := httptest.NewRequest(http.MethodPost, "/api/create-payment-intent", strings.NewReader(body))
	rr := httptest.NewRecorder()
	app.PaymentIntentCreate(rr, req)

	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rr.Code)
	}
}

func TestDonationsUpdateStatus(t *testing.T) {
	donations := newFakeDonationRepo()
	donations.items = []domain.Donation{{
		ID:          1,
		Email:       "donor@example.com",
		AmountCents: 2500,
		Status:      domain.DonationPending,
		PaymentRef:  "pi_123",
		CreatedAt:   time.Now(),
	}}
	app := &handlers.App{Log: zerolog.Nop(), Donations: donations}
	router := httpapi.NewRouter(app, httpapi.Options{Logger: zerolog.Nop()})

	body := `{"status":"succeeded"}`
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/donations/1/status", strings.NewReader(body)))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	if donations.items[0].Status != domain.DonationSucceeded {
		t.Fatalf("status not applied: %+v", donations.items[0])
	}

	// Unknown id is a rejected operation, not a retry.
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/donations/99/status", strings.NewReader(body)))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}

	// Pending is not a valid processor outcome.
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/donations/1/status", strings.NewReader(`{"status":"pending"}`)))
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestDonationsListFiltersByStatusSearch(t *testing.T) {
	donations := newFakeDonationRepo()
	now := time.Now()
	donations.items = []domain.Donation{
		{ID: 1, Email: "a@example.com", AmountCents: 100, Status: domain.DonationSucceeded, CreatedAt: now},
		{ID: 2, Email: "b@example.org", AmountCents: 200, Status: domain.DonationFailed, CreatedAt: now},
	}
	app := &handlers.App{Log: zerolog.Nop(), Donations: donations}

	req := httptest.NewRequest(http.MethodGet, "/api/donations?q=example.org", nil)
	rr := httptest.NewRecorder()
	app.DonationsList(rr, req)

	var items []map[string]any
	if err := json.NewDecoder(rr.Body).Decode(&items); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(items) != 1 || items[0]["email"] != "b@example.org" {
		t.Fatalf("search result mismatch: %v", items)
	}
}
