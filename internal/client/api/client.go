// Package api implements the HTTP client for the JobEase backend. It
// attaches the bearer token from the persisted session store, normalizes
// error payloads into human-readable strings, and signals a forced logout on
// 401/403 responses outside login/signup attempts.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/jobease/jobease-cli/internal/common"
	"github.com/jobease/jobease-cli/internal/logging"
)

// TokenSource yields the stored bearer token, if any. The persisted session
// store satisfies this through a small adapter.
type TokenSource interface {
	Token(ctx context.Context) (string, bool, error)
}

// AuthRejectHandler runs when the backend rejects our credentials on a
// request that was not itself a login or signup attempt. The session layer
// uses it to clear the stored session and send the user back to the login
// view. This distinction prevents a failed login attempt from wiping out an
// existing unrelated session.
type AuthRejectHandler func(ctx context.Context)

// Client is the REST client. All verbs marshal the request body as JSON and
// decode the response into out (which may be nil). A failed call is returned
// as *Error, common.ErrUnavailable or common.ErrBackendDisabled; no retry is
// attempted.
type Client struct {
	baseURL      string
	http         *http.Client
	tokens       TokenSource
	onAuthReject AuthRejectHandler
	enabled      bool
	log          logging.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient substitutes the underlying http.Client (tests).
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithDisabledBackend replaces every verb with a stub that immediately
// fails. Deployment/testing toggle.
func WithDisabledBackend() Option {
	return func(c *Client) { c.enabled = false }
}

func New(baseURL string, tokens TokenSource, log logging.Logger, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		tokens:  tokens,
		enabled: true,
		log:     log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetAuthRejectHandler wires the forced-logout callback. The session layer
// registers itself here after construction; until then rejections only
// surface as errors.
func (c *Client) SetAuthRejectHandler(h AuthRejectHandler) {
	c.onAuthReject = h
}

func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPatch, path, body, out)
}

func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodDelete, path, nil, out)
}

// isAuthAttempt reports whether the request was itself a login or signup
// call. Rejections of those must not clear an existing session.
func isAuthAttempt(path string) bool {
	return strings.Contains(path, "/auth/login") || strings.Contains(path, "/auth/signup")
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	if !c.enabled {
		return common.ErrBackendDisabled
	}

	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	if token, ok, err := c.tokens.Token(ctx); err == nil && ok && token != "" {
		// Tolerate tokens stored with the scheme already prefixed.
		if !strings.HasPrefix(token, "Bearer ") {
			token = "Bearer " + token
		}
		req.Header.Set("Authorization", token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("%w: check your internet connection", common.ErrUnavailable)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode >= 400 {
		var payload errorPayload
		_ = json.Unmarshal(data, &payload)

		if (resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden) && !isAuthAttempt(path) {
			c.log.Warn(ctx, "auth rejected, clearing session", "status", resp.StatusCode, "path", path)
			if c.onAuthReject != nil {
				c.onAuthReject(ctx)
			}
		}
		return newError(resp.StatusCode, payload)
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}
