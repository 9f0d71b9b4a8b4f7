// Package backend is a client for the finance dashboard API: the four
// read endpoints behind the dashboard and the two recompute triggers.
package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

const (
	DefaultTimeout   = 30 * time.Second
	DefaultRateLimit = 10 // requests per second

	apiKeyHeader    = "X_API_KEY"
	requestIDHeader = "X-Request-Id"

	// maxErrorBody bounds how much of an error response is kept.
	maxErrorBody = 512
)

const (
	pathBasicInfo         = "/get_basic_info"
	pathHoldings          = "/get_cse_info"
	pathLiveHoldings      = "/get_cse_live_data"
	pathMonthlyBudget     = "/monthly_budget_data"
	pathUpdateValuations  = "/update_cal_data"
	pathUpdateStockPrices = "/update_stock_prices"
)

// Client talks to the dashboard backend.
type Client struct {
	baseURL    *url.URL
	apiKey     string
	httpClient *http.Client
	timeout    time.Duration
	limiter    *rate.Limiter
	logger     *log.Logger
}

// Option configures the client
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client. A nil client is
// ignored.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout sets the HTTP timeout. It applies to a copy of the HTTP
// client, whichever option supplied it.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithRateLimit sets the rate limit. Zero or less disables it.
func WithRateLimit(requestsPerSecond int) Option {
	return func(c *Client) {
		if requestsPerSecond <= 0 {
			c.limiter = rate.NewLimiter(rate.Inf, 0)
			return
		}
		c.limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond)
	}
}

// WithLogger sets the logger
func WithLogger(logger *log.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient returns a client for the API rooted at baseURL.
func NewClient(baseURL, apiKey string, opts ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", baseURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid base URL %q: must be absolute", baseURL)
	}

	c := &Client{
		baseURL: u,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		limiter: rate.NewLimiter(rate.Limit(DefaultRateLimit), DefaultRateLimit),
		logger:  log.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.timeout > 0 {
		hc := *c.httpClient
		hc.Timeout = c.timeout
		c.httpClient = &hc
	}

	return c, nil
}

// GetBasicInfo fetches assets, liabilities and the net worth summary.
func (c *Client) GetBasicInfo(ctx context.Context) (FinancialData, error) {
	var data FinancialData
	if err := c.get(ctx, pathBasicInfo, &data); err != nil {
		return nil, err
	}
	if data == nil {
		data = FinancialData{}
	}
	return data, nil
}

// GetHoldings fetches the brokerage holdings per owner.
func (c *Client) GetHoldings(ctx context.Context) (Portfolio[Holding], error) {
	return getCompanies[Holding](ctx, c, pathHoldings)
}

// GetLiveHoldings fetches the holdings per owner with live quotes.
func (c *Client) GetLiveHoldings(ctx context.Context) (Portfolio[LiveHolding], error) {
	return getCompanies[LiveHolding](ctx, c, pathLiveHoldings)
}

// GetMonthlyBudget fetches the current month's budget entries.
func (c *Client) GetMonthlyBudget(ctx context.Context) ([]BudgetEntry, error) {
	var resp budgetResponse
	if err := c.get(ctx, pathMonthlyBudget, &resp); err != nil {
		return nil, err
	}
	if resp.Entries == nil {
		return nil, &DecodeError{
			Endpoint: pathMonthlyBudget,
			Err:      fmt.Errorf("%w: monthly_budget_data", ErrMissingField),
		}
	}
	return *resp.Entries, nil
}

// UpdateValuations asks the backend to recompute the CAL unit trust values.
func (c *Client) UpdateValuations(ctx context.Context) error {
	return c.get(ctx, pathUpdateValuations, nil)
}

// UpdateStockPrices asks the backend to refresh stock prices.
func (c *Client) UpdateStockPrices(ctx context.Context) error {
	return c.get(ctx, pathUpdateStockPrices, nil)
}

func getCompanies[T any](ctx context.Context, c *Client, endpoint string) (Portfolio[T], error) {
	var resp companiesResponse[T]
	if err := c.get(ctx, endpoint, &resp); err != nil {
		return nil, err
	}
	if resp.Companies == nil {
		return nil, &DecodeError{
			Endpoint: endpoint,
			Err:      fmt.Errorf("%w: companies", ErrMissingField),
		}
	}
	return resp.Companies, nil
}

// get issues a GET against endpoint and decodes the body into out.
// A nil out discards the body.
func (c *Client) get(ctx context.Context, endpoint string, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL.JoinPath(endpoint).String(), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	// set directly so the underscore name goes out as written
	req.Header[apiKeyHeader] = []string{c.apiKey}
	req.Header.Set("Accept", "application/json")
	requestID := uuid.NewString()
	req.Header.Set(requestIDHeader, requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("backend request failed", "endpoint", endpoint, "request_id", requestID, "error", err)
		return fmt.Errorf("%s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		c.logger.Warn("backend non-OK response", "endpoint", endpoint, "request_id", requestID, "status", resp.StatusCode)
		return &StatusError{
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &DecodeError{Endpoint: endpoint, Err: err}
	}

	return nil
}
