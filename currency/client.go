package currency

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"gitlab.com/mkubat/kapsa/logger"
)

const defaultBaseURL = "https://api.exchangerate-api.com/v4"

// Client fetches exchange-rate tables over HTTP. Any transport, status or
// decode failure degrades to the static fallback table instead of erroring,
// so a conversion can still proceed offline with approximate rates.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

type ratesResponse struct {
	Rates map[string]json.Number `json:"rates"`
}

// NewClient creates an exchange-rate API client.
func NewClient(baseURL string, timeout time.Duration) *Client {
	trimmed := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if trimmed == "" {
		trimmed = defaultBaseURL
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	return &Client{
		baseURL: trimmed,
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

// Latest returns the rate table anchored at base. On any fetch failure the
// static fallback table is returned, never an error; the caller cannot tell
// the difference apart from the logged warning.
func (c *Client) Latest(ctx context.Context, base string) (Rates, error) {
	base = NormalizeCode(base)
	if base == "" {
		return nil, errors.New("base currency is required")
	}

	rates, err := c.fetchLatest(ctx, base)
	if err != nil {
		logger.Log.Warn().
			Err(err).
			Str("base", base).
			Msg("Exchange rate fetch failed, using fallback rates")
		return FallbackRates(base), nil
	}
	return rates, nil
}

func (c *Client) fetchLatest(ctx context.Context, base string) (Rates, error) {
	endpoint := fmt.Sprintf("%s/latest/%s", c.baseURL, url.PathEscape(base))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create rates request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to request rates: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("exchange API returned status %d", resp.StatusCode)
	}

	decoder := json.NewDecoder(resp.Body)
	decoder.UseNumber()

	var payload ratesResponse
	if err := decoder.Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode rates response: %w", err)
	}
	if len(payload.Rates) == 0 {
		return nil, errors.New("rates missing in response")
	}

	rates := make(Rates, len(payload.Rates))
	for code, raw := range payload.Rates {
		rate, err := decimal.NewFromString(raw.String())
		if err != nil {
			return nil, fmt.Errorf("failed to parse rate for %s: %w", code, err)
		}
		rates[NormalizeCode(code)] = rate
	}
	return rates, nil
}
