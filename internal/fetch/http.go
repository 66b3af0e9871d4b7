package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/rshade/usertable/internal/records"
)

const (
	defaultTimeout = 30 * time.Second
	defaultBackoff = 500 * time.Millisecond
	// defaultMaxBodyBytes caps the payload read from the upstream.
	defaultMaxBodyBytes = 32 << 20
	// errorBodyPreview is how much of a failed response body is logged.
	errorBodyPreview = 512
)

// HTTPLoader fetches a JSON array of records with a GET request.
type HTTPLoader struct {
	url     string
	client  *http.Client
	timeout time.Duration
	retries int
	backoff time.Duration
	maxBody int64
	logger  zerolog.Logger
}

// HTTPOption configures an HTTPLoader.
type HTTPOption func(*HTTPLoader)

// WithTimeout bounds each request attempt. Non-positive values keep the default.
func WithTimeout(d time.Duration) HTTPOption {
	return func(l *HTTPLoader) {
		if d > 0 {
			l.timeout = d
		}
	}
}

// WithRetries sets how many times a failed attempt is retried.
// Only transport errors and 5xx responses are retried.
func WithRetries(n int) HTTPOption {
	return func(l *HTTPLoader) {
		if n >= 0 {
			l.retries = n
		}
	}
}

// WithBackoff sets the minimum delay between attempts. Zero disables pacing.
func WithBackoff(d time.Duration) HTTPOption {
	return func(l *HTTPLoader) {
		l.backoff = d
	}
}

// WithMaxBodyBytes limits the size of the response body. Non-positive values keep the default.
func WithMaxBodyBytes(n int64) HTTPOption {
	return func(l *HTTPLoader) {
		if n > 0 {
			l.maxBody = n
		}
	}
}

// WithHTTPClient replaces the HTTP client.
func WithHTTPClient(c *http.Client) HTTPOption {
	return func(l *HTTPLoader) {
		l.client = c
	}
}

// WithLogger sets the logger.
func WithLogger(logger zerolog.Logger) HTTPOption {
	return func(l *HTTPLoader) {
		l.logger = logger
	}
}

// NewHTTPLoader creates a loader for url.
func NewHTTPLoader(url string, opts ...HTTPOption) *HTTPLoader {
	l := &HTTPLoader{
		url:     url,
		client:  http.DefaultClient,
		timeout: defaultTimeout,
		backoff: defaultBackoff,
		maxBody: defaultMaxBodyBytes,
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// URL returns the upstream address.
func (l *HTTPLoader) URL() string {
	return l.url
}

// Load fetches and decodes the collection, retrying transient failures.
// Attempts are paced by a limiter allowing one request per backoff interval.
func (l *HTTPLoader) Load(ctx context.Context) ([]records.Record, error) {
	pacer := rate.NewLimiter(rate.Every(l.backoff), 1)

	var lastErr error
	for attempt := 0; attempt <= l.retries; attempt++ {
		if attempt > 0 {
			l.logger.Warn().
				Str("component", "fetch").
				Str("url", l.url).
				Int("attempt", attempt+1).
				Dur("backoff", l.backoff).
				Err(lastErr).
				Msg("retrying record fetch")
		}
		if err := pacer.Wait(ctx); err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				err = ctxErr
			}
			return nil, &LoadError{Source: l.url, Err: err}
		}

		recs, err := l.loadOnce(ctx)
		if err == nil {
			l.logger.Debug().
				Str("component", "fetch").
				Str("url", l.url).
				Int("records", len(recs)).
				Int("attempt", attempt+1).
				Msg("records fetched")
			return recs, nil
		}
		lastErr = err
		if !retryable(ctx, err) {
			break
		}
	}

	l.logger.Error().
		Str("component", "fetch").
		Str("url", l.url).
		Err(lastErr).
		Msg("record fetch failed")
	return nil, lastErr
}

func (l *HTTPLoader) loadOnce(ctx context.Context) ([]records.Record, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctxWithTimeout, http.MethodGet, l.url, nil)
	if err != nil {
		return nil, &LoadError{Source: l.url, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, &LoadError{Source: l.url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		preview, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyPreview))
		l.logger.Debug().
			Str("component", "fetch").
			Int("status", resp.StatusCode).
			Str("body", string(preview)).
			Msg("unexpected response status")
		return nil, &LoadError{
			Source:     l.url,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("GET %s returned HTTP status %d", l.url, resp.StatusCode),
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, l.maxBody+1))
	if err != nil {
		return nil, &LoadError{Source: l.url, Err: fmt.Errorf("reading response body: %w", err)}
	}
	if int64(len(body)) > l.maxBody {
		return nil, &LoadError{Source: l.url, Err: fmt.Errorf("%w: more than %d bytes", ErrPayloadTooLarge, l.maxBody)}
	}

	recs, err := records.ParseJSON(body)
	if err != nil {
		return nil, &LoadError{Source: l.url, Err: fmt.Errorf("%w: %w", ErrDecode, err)}
	}
	return recs, nil
}

// retryable reports whether a failed attempt may succeed when repeated.
func retryable(ctx context.Context, err error) bool {
	if ctx.Err() != nil {
		return false
	}
	var le *LoadError
	if !errors.As(err, &le) {
		return false
	}
	if le.StatusCode != 0 {
		return le.StatusCode >= http.StatusInternalServerError
	}
	return !errors.Is(le.Err, ErrDecode) && !errors.Is(le.Err, ErrPayloadTooLarge)
}
