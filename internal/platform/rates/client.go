package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/shopspring/decimal"

	"github.com/retailbank/bank_backend/internal/apperrors"
	portssvc "github.com/retailbank/bank_backend/internal/core/ports/services"
	"github.com/retailbank/bank_backend/internal/middleware"
)

// Client fetches currency conversion rates from an external provider
// (freecurrencyapi-style JSON API). It carries its own HTTP timeout so a slow
// upstream cannot hold an account lock; callers convert before opening the
// account transaction.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a rate provider client.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Ensure Client implements the consumed rate provider contract.
var _ portssvc.RateProviderSvcFacade = (*Client)(nil)

// latestResponse is the provider's wire format: rates keyed by target
// currency under "data".
type latestResponse struct {
	Data map[string]decimal.Decimal `json:"data"`
}

// Rate returns the conversion rate from baseCurrency into targetCurrency.
// Any transport failure, non-2xx status, or missing target rate surfaces as
// apperrors.ErrRateUnavailable.
func (c *Client) Rate(ctx context.Context, baseCurrency, targetCurrency string) (decimal.Decimal, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	endpoint := fmt.Sprintf("%s/latest?apikey=%s&base_currency=%s",
		c.baseURL, url.QueryEscape(c.apiKey), url.QueryEscape(baseCurrency))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: building rate request: %v", apperrors.ErrRateUnavailable, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Warn("Rate provider request failed", slog.String("base", baseCurrency), slog.String("error", err.Error()))
		return decimal.Zero, fmt.Errorf("%w: %v", apperrors.ErrRateUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logger.Warn("Rate provider returned non-success status", slog.Int("status", resp.StatusCode))
		return decimal.Zero, fmt.Errorf("%w: provider returned status %d", apperrors.ErrRateUnavailable, resp.StatusCode)
	}

	var body latestResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return decimal.Zero, fmt.Errorf("%w: decoding provider response: %v", apperrors.ErrRateUnavailable, err)
	}

	rate, ok := body.Data[targetCurrency]
	if !ok || rate.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, fmt.Errorf("%w: no rate for %s", apperrors.ErrRateUnavailable, targetCurrency)
	}

	return rate, nil
}

// Convert returns amount expressed in toCurrency using the provider's
// current rate. Implements portssvc.RateProviderSvcFacade.
func (c *Client) Convert(ctx context.Context, amount decimal.Decimal, fromCurrency, toCurrency string) (decimal.Decimal, error) {
	rate, err := c.Rate(ctx, fromCurrency, toCurrency)
	if err != nil {
		return decimal.Zero, err
	}
	return amount.Mul(rate), nil
}
