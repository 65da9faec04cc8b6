package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/colthorp/aocdata/internal/core"
)

// APIError is returned when the puzzle service answers with a non-success status.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("puzzle service error (HTTP %d): %s", e.StatusCode, e.Message)
}

// ClientConfig holds the settings for a Client.
type ClientConfig struct {
	BaseURL     string
	UserAgent   string
	Timeout     time.Duration
	MinInterval time.Duration
}

// Client fetches puzzle inputs over HTTP.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     zerolog.Logger
}

// NewClient creates a new puzzle-service client.
// A zero MinInterval disables request spacing; a zero Timeout means no timeout.
func NewClient(cfg ClientConfig, logger zerolog.Logger) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = core.ServiceBaseURL
	}
	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = core.DefaultUserAgent
	}

	limit := rate.Inf
	if cfg.MinInterval > 0 {
		limit = rate.Every(cfg.MinInterval)
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		userAgent:  userAgent,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		limiter:    rate.NewLimiter(limit, 1),
		logger:     logger.With().Str("component", "api").Logger(),
	}
}

// InputURL returns the endpoint for a year/day input.
func (c *Client) InputURL(year string, day int) string {
	return fmt.Sprintf("%s/%s/day/%d/input", c.baseURL, year, day)
}

// FetchInput performs an authenticated GET for the year/day input and returns
// the body verbatim. Responses are classified: refused sessions wrap
// ErrSessionRejected, locked puzzles ErrPuzzleLocked; every failure also
// matches core.ErrRemoteFetchFailed. No retries are attempted.
func (c *Client) FetchInput(ctx context.Context, year string, day int, token string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("%w: %w", core.ErrRemoteFetchFailed, err)
	}

	urlStr := c.InputURL(year, day)
	c.logger.Debug().Str("url", urlStr).Msg("GET")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return "", fmt.Errorf("%w: failed to create request: %w", core.ErrRemoteFetchFailed, err)
	}
	req.Header.Set("Cookie", core.SessionCookieName+"="+token)
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "text/plain")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: request failed: %w", core.ErrRemoteFetchFailed, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: failed to read response body: %w", core.ErrRemoteFetchFailed, err)
	}

	c.logger.Debug().Int("status", resp.StatusCode).Int("bytes", len(body)).Msg("Response")

	text := string(body)
	if err := classify(resp.StatusCode, text); err != nil {
		return "", err
	}
	return text, nil
}

// classify maps a response onto the error taxonomy. A nil result means the
// body is usable puzzle input.
func classify(status int, body string) error {
	apiErr := &APIError{StatusCode: status, Message: summarize(body)}

	switch {
	case status == http.StatusOK:
		if strings.TrimSpace(body) == "" {
			return fmt.Errorf("%w: %w: empty response body", core.ErrRemoteFetchFailed, core.ErrSessionRejected)
		}
		if strings.Contains(body, core.UserVarianceSentinel) {
			return fmt.Errorf("%w: %w: service returned a log-in notice instead of input",
				core.ErrRemoteFetchFailed, core.ErrSessionRejected)
		}
		return nil
	case status == http.StatusBadRequest || status == http.StatusUnauthorized || status == http.StatusForbidden:
		return fmt.Errorf("%w: %w: %w", core.ErrRemoteFetchFailed, core.ErrSessionRejected, apiErr)
	case status == http.StatusNotFound:
		return fmt.Errorf("%w: %w: %w", core.ErrRemoteFetchFailed, core.ErrPuzzleLocked, apiErr)
	default:
		return fmt.Errorf("%w: %w", core.ErrRemoteFetchFailed, apiErr)
	}
}

const maxSummaryRunes = 120

// summarize trims a body down to its first line for error messages.
func summarize(body string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(body), "\n")
	if utf8.RuneCountInString(line) > maxSummaryRunes {
		line = string([]rune(line)[:maxSummaryRunes]) + "…"
	}
	return line
}

// StatusCode extracts the HTTP status from an error chain, or 0.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}
