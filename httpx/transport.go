package httpx

import (
	"bytes"
	"io"
	"net/http"
	"strconv"
	"time"
)

// DefaultTimeout is the default request timeout for catalog and model
// listing calls.
const DefaultTimeout = 30 * time.Second

// DefaultMaxRetries is the default number of attempts per request.
const DefaultMaxRetries = 3

// DefaultRetryWait is the default initial wait between attempts.
const DefaultRetryWait = 1 * time.Second

// Transport is an http.RoundTripper that retries transient failures:
// network errors, 429s, and 5xx responses. Rate-limit responses honor the
// Retry-After header; everything else backs off exponentially.
type Transport struct {
	Base       http.RoundTripper
	MaxRetries int
	RetryWait  time.Duration
}

// RoundTrip implements http.RoundTripper.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}
	maxRetries := t.MaxRetries
	if maxRetries <= 0 {
		maxRetries = DefaultMaxRetries
	}
	retryWait := t.RetryWait
	if retryWait <= 0 {
		retryWait = DefaultRetryWait
	}

	// Buffer the body so it can be replayed on retry.
	var body []byte
	if req.Body != nil {
		var err error
		body, err = io.ReadAll(req.Body)
		req.Body.Close()
		if err != nil {
			return nil, err
		}
	}

	var lastErr error
	for attempt := range maxRetries {
		if body != nil {
			req.Body = io.NopCloser(bytes.NewReader(body))
		}

		resp, err := base.RoundTrip(req)
		if err != nil {
			lastErr = err
			if attempt < maxRetries-1 {
				wait := retryWait * time.Duration(1<<attempt)
				select {
				case <-req.Context().Done():
					return nil, req.Context().Err()
				case <-time.After(wait):
					continue
				}
			}
			return nil, err
		}

		if shouldRetry(resp) && attempt < maxRetries-1 {
			wait := retryAfter(resp, retryWait, attempt)
			resp.Body.Close()
			select {
			case <-req.Context().Done():
				return nil, req.Context().Err()
			case <-time.After(wait):
				continue
			}
		}

		return resp, nil
	}

	return nil, lastErr
}

// NewClient returns an http.Client with retrying transport and the default
// timeout.
func NewClient() *http.Client {
	return &http.Client{
		Timeout:   DefaultTimeout,
		Transport: &Transport{},
	}
}

func shouldRetry(resp *http.Response) bool {
	return resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500
}

func retryAfter(resp *http.Response, retryWait time.Duration, attempt int) time.Duration {
	if v := resp.Header.Get("Retry-After"); v != "" {
		if seconds, err := strconv.Atoi(v); err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return retryWait * time.Duration(1<<attempt)
}
