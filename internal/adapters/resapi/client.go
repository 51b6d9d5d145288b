// Package resapi is the typed client for the reservation platform's REST
// API. It owns bearer-token attachment, retry policy, the per-endpoint
// response envelope differences, and the unauthorized hook; callers get
// domain values and plain errors.
package resapi

import (
	"bytes"
	"context"
	crand "crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"stayfront/internal/adapters/observability"
)

// TokenFunc supplies the current bearer token, empty when unauthenticated.
// The client only ever reads through it; session state has a single writer
// elsewhere.
type TokenFunc func() string

type Client struct {
	base   string
	hc     *http.Client
	tokens TokenFunc
	rl     *rate.Limiter

	// onUnauthorized fires once per 401 response, after which the call
	// returns ErrUnauthorized. The hosting shell subscribes; the client
	// itself never navigates or touches session storage.
	onUnauthorized func()
}

func New(base string, tokens TokenFunc, rps int) *Client {
	if rps <= 0 {
		rps = 10
	}
	if tokens == nil {
		tokens = func() string { return "" }
	}
	return &Client{
		base:   strings.TrimSuffix(base, "/"),
		hc:     &http.Client{Timeout: 15 * time.Second},
		tokens: tokens,
		rl:     rate.NewLimiter(rate.Limit(rps), rps),
	}
}

func (c *Client) SetTimeout(d time.Duration) { c.hc.Timeout = d }

// OnUnauthorized registers the 401 hook. Pass nil to clear it.
func (c *Client) OnUnauthorized(fn func()) { c.onUnauthorized = fn }

var (
	ErrUnauthorized = errors.New("resapi: unauthorized")
	ErrForbidden    = errors.New("resapi: forbidden")
	ErrNotFound     = errors.New("resapi: not found")
)

// APIError is a business rejection from the server (4xx with a message).
// The message is surfaced to the user verbatim.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string { return e.Message }

// envelope is the wrapping object some endpoints use. Hotels routes wrap
// their payload; users, rooms, bookings and payments return it bare. The
// per-resource modules pick the right decoder so call sites never care.
type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func bare(dst any) func([]byte) error {
	if dst == nil {
		return nil
	}
	return func(b []byte) error { return json.Unmarshal(b, dst) }
}

func enveloped(dst any) func([]byte) error {
	if dst == nil {
		return nil
	}
	return func(b []byte) error {
		var env envelope
		if err := json.Unmarshal(b, &env); err != nil {
			return err
		}
		if len(env.Data) == 0 {
			return fmt.Errorf("resapi: envelope missing data field")
		}
		return json.Unmarshal(env.Data, dst)
	}
}

// do performs one API call with client-side rate limiting and, for
// idempotent verbs, retries on 429 and transient 5xx honoring Retry-After.
// POST is never retried; a double-submitted booking is worse than a failed
// one. label is the route template used for metrics.
func (c *Client) do(ctx context.Context, method, label, path string, q url.Values, body any, decode func([]byte) error) error {
	if err := c.rl.Wait(ctx); err != nil {
		return err
	}

	u := c.base + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}

	var payload []byte
	if body != nil {
		var err error
		if payload, err = json.Marshal(body); err != nil {
			return err
		}
	}

	retries := 3
	if method == http.MethodPost {
		retries = 0
	}

	var lastErr error
	for i := 0; ; i++ {
		var rd io.Reader
		if payload != nil {
			rd = bytes.NewReader(payload)
		}
		req, err := http.NewRequestWithContext(ctx, method, u, rd)
		if err != nil {
			return err
		}
		req.Header.Set("Accept", "application/json")
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		if tok := c.tokens(); tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}

		start := time.Now()
		resp, err := c.hc.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			lastErr = err
			if i < retries && sleepCtx(ctx, backoff(i)) {
				continue
			}
			return lastErr
		}
		observability.ObserveAPI(label, method, resp.StatusCode, time.Since(start))

		switch {
		case resp.StatusCode == http.StatusNoContent:
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			return nil

		case resp.StatusCode >= 200 && resp.StatusCode < 300:
			b, err := io.ReadAll(resp.Body)
			resp.Body.Close()
			if err != nil {
				return err
			}
			if decode == nil {
				return nil
			}
			return decode(b)

		case resp.StatusCode == http.StatusUnauthorized:
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			if c.onUnauthorized != nil {
				c.onUnauthorized()
			}
			return ErrUnauthorized

		case resp.StatusCode == http.StatusForbidden:
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			return ErrForbidden

		case resp.StatusCode == http.StatusNotFound:
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			return ErrNotFound

		case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
			wait := retryAfter(resp)
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			if wait == 0 {
				wait = backoff(i)
			}
			lastErr = fmt.Errorf("remote %d", resp.StatusCode)
			if i < retries && sleepCtx(ctx, wait) {
				continue
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return lastErr

		default: // remaining 4xx: a business rejection with a message
			b, _ := io.ReadAll(io.LimitReader(resp.Body, 8192))
			resp.Body.Close()
			return &APIError{Status: resp.StatusCode, Message: errorMessage(b, resp.StatusCode)}
		}
	}
}

// errorMessage digs the human-readable message out of an error body. The
// backend answers with either the envelope's message or a bare detail field.
func errorMessage(b []byte, status int) string {
	var e struct {
		Message string `json:"message"`
		Detail  string `json:"detail"`
	}
	if err := json.Unmarshal(b, &e); err == nil {
		if e.Message != "" {
			return e.Message
		}
		if e.Detail != "" {
			return e.Detail
		}
	}
	if s := strings.TrimSpace(string(b)); s != "" && len(s) < 200 {
		return s
	}
	return fmt.Sprintf("request failed with status %d", status)
}

// sleepCtx waits for d or returns early if ctx is done.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return true
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

// retryAfter parses Retry-After header (seconds or HTTP-date). Returns 0 if absent/invalid.
func retryAfter(resp *http.Response) time.Duration {
	h := resp.Header.Get("Retry-After")
	if h == "" {
		return 0
	}
	if secs, err := strconv.Atoi(strings.TrimSpace(h)); err == nil && secs >= 0 {
		return time.Duration(secs) * time.Second
	}
	if t, err := http.ParseTime(h); err == nil {
		if d := time.Until(t); d > 0 {
			return d
		}
	}
	return 0
}

// backoff returns an exponential backoff delay with concurrency-safe jitter.
// Base doubles each attempt (200ms, 400ms, 800ms...), with up to +50% random
// jitter to avoid thundering herds.
func backoff(i int) time.Duration {
	base := time.Duration(1<<i) * 200 * time.Millisecond
	var b [1]byte
	if _, err := crand.Read(b[:]); err != nil {
		return base
	}
	f := float64(b[0]) / 255.0
	j := time.Duration(0.5 * f * float64(base))
	return base + j
}
