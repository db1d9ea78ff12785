// Package payment wraps the payment processor behind a narrow interface: the
// service hands over an amount and gets back a client-confirmable payment
// handle. Status transitions are persisted by the caller.
package payment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Intent is a client-confirmable pending charge.
type Intent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
}

// Client opens pending charges with the payment processor.
type Client interface {
	CreateIntent(ctx context.Context, amountCents int64, currency string, metadata map[string]string) (*Intent, error)
}

const stripeDefaultTimeout = 15 * time.Second

// StripeOptions configures the Stripe-backed client.
type StripeOptions struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
}

// StripeClient creates PaymentIntents through the Stripe REST API.
type StripeClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewStripeClient validates options and builds the client.
func NewStripeClient(opts StripeOptions) (*StripeClient, error) {
	if strings.TrimSpace(opts.APIKey) == "" {
		return nil, errors.New("stripe api key is required")
	}
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = "https://api.stripe.com/v1"
	}
	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: stripeDefaultTimeout}
	}
	return &StripeClient{
		apiKey:  strings.TrimSpace(opts.APIKey),
		baseURL: baseURL,
		client:  client,
	}, nil
}

type stripeError struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// CreateIntent opens a PaymentIntent for the given amount in minor units.
func (s *StripeClient) CreateIntent(ctx context.Context, amountCents int64, currency string, metadata map[string]string) (*Intent, error) {
	form := url.Values{}
	form.Set("amount", strconv.FormatInt(amountCents, 10))
	form.Set("currency", currency)
	for key, value := range metadata {
		form.Set("metadata["+key+"]", value)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/payment_intents", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("stripe: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("stripe: create payment intent: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr stripeError
		if decodeErr := json.NewDecoder(resp.Body).Decode(&apiErr); decodeErr == nil && apiErr.Error.Message != "" {
			return nil, fmt.Errorf("stripe: %s (status %d)", apiErr.Error.Message, resp.StatusCode)
		}
		return nil, fmt.Errorf("stripe: unexpected status %d", resp.StatusCode)
	}

	var intent Intent
	if err := json.NewDecoder(resp.Body).Decode(&intent); err != nil {
		return nil, fmt.Errorf("stripe: decode response: %w", err)
	}
	if intent.ID == "" || intent.ClientSecret == "" {
		return nil, errors.New("stripe: response missing intent id or client secret")
	}
	return &intent, nil
}
