// Package rates fetches exchange-rate quotes from the external market-data
// service.
package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

const providerName = "fxmarket"

// Client wraps interactions with the rate provider API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient constructs a new client.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type rateResponse struct {
	Rate      string    `json:"rate"`
	Source    string    `json:"source"`
	Timestamp time.Time `json:"timestamp"`
}

// Fetch retrieves the current rate for one market and side. Connection
// failures, non-2xx responses and malformed bodies all surface as
// errs.UpstreamUnavailableError so callers can decide on a fallback.
func (c *Client) Fetch(ctx context.Context, kind ports.RateKind, side ports.RateSide) (ports.RateQuote, error) {
	url := fmt.Sprintf("%s/rates/%s?side=%s", c.baseURL, kind, side)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return ports.RateQuote{}, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ports.RateQuote{}, errs.NewUpstreamUnavailableError(providerName, false, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode >= 400 {
		return ports.RateQuote{}, errs.NewUpstreamUnavailableError(providerName, false,
			fmt.Errorf("provider returned status %d", resp.StatusCode))
	}

	var body rateResponse
	if err = json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return ports.RateQuote{}, errs.NewUpstreamUnavailableError(providerName, false, err)
	}

	rate, err := decimal.NewFromString(body.Rate)
	if err != nil || !rate.IsPositive() {
		return ports.RateQuote{}, errs.NewUpstreamUnavailableError(providerName, false,
			fmt.Errorf("provider returned rate %q", body.Rate))
	}

	source := body.Source
	if source == "" {
		source = providerName
	}
	timestamp := body.Timestamp
	if timestamp.IsZero() {
		timestamp = time.Now().UTC()
	}

	return ports.RateQuote{Rate: rate, Source: source, Timestamp: timestamp}, nil
}
