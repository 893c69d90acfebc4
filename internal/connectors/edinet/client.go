package edinet

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"
)

const (
	// DefaultBaseURL is the EDINET v2 API endpoint.
	DefaultBaseURL = "https://api.edinet-fsa.go.jp/api/v2"

	// DefaultTimeout bounds each HTTP request, connect and read included.
	DefaultTimeout = 30 * time.Second

	// DefaultRequestsPerSecond is the proactive throttle rate. EDINET
	// publishes no quota headers, so the client self-limits.
	DefaultRequestsPerSecond = 2

	// listType is the documents.json type parameter requesting both
	// metadata and the results collection.
	listType = 2
)

// Client wraps the EDINET v2 HTTP API.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	limiter *rate.Limiter
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API endpoint. Used by tests.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithRateLimit overrides the proactive requests-per-second throttle.
func WithRateLimit(rps float64) Option {
	return func(c *Client) { c.limiter = rate.NewLimiter(rate.Limit(rps), 1) }
}

// NewClient creates an EDINET API client authenticated by subscription key.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: DefaultTimeout},
		limiter: rate.NewLimiter(rate.Limit(DefaultRequestsPerSecond), 1),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// DocumentList fetches the filing listing for one calendar date.
func (c *Client) DocumentList(ctx context.Context, day time.Time) (*documentListResponse, error) {
	target := day.Format(time.DateOnly)

	query := url.Values{}
	query.Set("date", target)
	query.Set("type", strconv.Itoa(listType))

	body, err := c.get(ctx, "/documents.json", query, "list", target)
	if err != nil {
		return nil, err
	}

	var resp documentListResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &InvalidResponseError{Target: target, Reason: fmt.Sprintf("malformed JSON: %v", err)}
	}
	return &resp, nil
}

// Document downloads one filing's raw bytes by upstream id and EDINET
// transport format code. Bytes are returned unmodified.
func (c *Client) Document(ctx context.Context, docID string, formatCode int) ([]byte, error) {
	query := url.Values{}
	query.Set("type", strconv.Itoa(formatCode))

	return c.get(ctx, "/documents/"+url.PathEscape(docID), query, "download", docID)
}

// get performs one rate-limited API call and maps non-success statuses
// onto the connector's error kinds.
func (c *Client) get(ctx context.Context, path string, query url.Values, op, target string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	query.Set("Subscription-Key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("edinet: build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &ConnectionError{Op: op, Target: target, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, &RateLimitError{RetryAfter: retryAfter(resp)}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    http.StatusText(resp.StatusCode),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ConnectionError{Op: op, Target: target, Err: err}
	}
	return body, nil
}

// retryAfter parses the Retry-After header, zero when absent or invalid.
func retryAfter(resp *http.Response) time.Duration {
	header := resp.Header.Get("Retry-After")
	if header == "" {
		return 0
	}
	seconds, err := strconv.Atoi(header)
	if err != nil || seconds < 0 {
		return 0
	}
	return time.Duration(seconds) * time.Second
}
