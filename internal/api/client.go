// Package api is the HTTP client of the logistics backend.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	custom_error "logistica/pkg/errors"
	"logistica/pkg/httpstatus"

	"go.uber.org/zap"
)

const maxLoggedBody = 256

type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Response carries every HTTP response, whatever its status.
type Response struct {
	Status int
	Data   []byte
	Header http.Header
}

func (r *Response) Decode(v any) error {
	if len(r.Data) == 0 {
		return fmt.Errorf("empty response body")
	}
	return json.Unmarshal(r.Data, v)
}

type Option func(*Client)

// WithHTTPClient replaces the transport. Its timeout is overridden by Config.Timeout.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithTokenSource attaches "Authorization: Bearer <token>" whenever the
// source returns a non-empty token.
func WithTokenSource(fn func(ctx context.Context) string) Option {
	return func(c *Client) {
		c.tokenSource = fn
	}
}

// WithUnauthorizedHandler is invoked when the backend answers 401 or 403 to a
// request that carried a bearer token. Credential checks such as Login never
// reach it.
func WithUnauthorizedHandler(fn func(ctx context.Context, status int)) Option {
	return func(c *Client) {
		c.onUnauthorized = fn
	}
}

type Client struct {
	baseURL        string
	http           *http.Client
	headers        http.Header
	log            *zap.Logger
	tokenSource    func(ctx context.Context) string
	onUnauthorized func(ctx context.Context, status int)
}

func NewClient(cfg Config, log *zap.Logger, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{},
		headers: http.Header{},
		log:     log,
	}
	c.headers.Set("Content-Type", "application/json")
	c.headers.Set("Accept", "application/json")

	for _, opt := range opts {
		opt(c)
	}

	// One timeout policy for every call, JSON and multipart alike.
	hc := *c.http
	hc.Timeout = cfg.Timeout
	c.http = &hc

	return c
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// Do sends a JSON request. Any HTTP response is returned as a Response; only
// transport failures produce an error, a NetworkError.
func (c *Client) Do(ctx context.Context, method, path string, body any, headers http.Header) (*Response, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode %s %s body: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("build %s %s: %w", method, path, err)
	}

	return c.send(req, headers)
}

func (c *Client) send(req *http.Request, headers http.Header) (*Response, error) {
	op := req.Method + " " + req.URL.Path

	for key, values := range c.headers {
		req.Header[key] = append([]string(nil), values...)
	}
	for key, values := range headers {
		req.Header[http.CanonicalHeaderKey(key)] = append([]string(nil), values...)
	}
	authenticated := false
	if c.tokenSource != nil && !isAnonymous(req.Context()) {
		if token := c.tokenSource(req.Context()); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
			authenticated = true
		}
	}

	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error("Request failed without response",
			zap.String("op", op),
			zap.Duration("elapsed", time.Since(started)),
			zap.Error(err),
		)
		return nil, &custom_error.NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		c.log.Error("Unable to read response body", zap.String("op", op), zap.Int("status", resp.StatusCode), zap.Error(err))
		return nil, &custom_error.NetworkError{Op: op, Err: fmt.Errorf("read body: %w", err)}
	}

	result := &Response{Status: resp.StatusCode, Data: data, Header: resp.Header}
	c.intercept(req, result, time.Since(started), authenticated)

	return result, nil
}

// intercept is an observability hook: it logs error responses and reports
// rejected sessions, and leaves the response untouched.
func (c *Client) intercept(req *http.Request, resp *Response, elapsed time.Duration, authenticated bool) {
	if resp.Status >= 200 && resp.Status < 300 {
		c.log.Debug("Request completed",
			zap.String("method", req.Method),
			zap.String("path", req.URL.Path),
			zap.Int("status", resp.Status),
			zap.Duration("elapsed", elapsed),
		)
		return
	}

	body := resp.Data
	if len(body) > maxLoggedBody {
		body = body[:maxLoggedBody]
	}
	c.log.Error("Request returned error status",
		zap.String("method", req.Method),
		zap.String("path", req.URL.Path),
		zap.Int("status", resp.Status),
		zap.String("category", string(httpstatus.Classify(resp.Status))),
		zap.ByteString("body", body),
		zap.Duration("elapsed", elapsed),
	)

	if authenticated && httpstatus.IsAuthRejected(resp.Status) && c.onUnauthorized != nil {
		c.onUnauthorized(req.Context(), resp.Status)
	}
}

type anonymousKey struct{}

// Anonymous marks ctx so requests sent with it carry no session token.
func Anonymous(ctx context.Context) context.Context {
	return context.WithValue(ctx, anonymousKey{}, true)
}

func isAnonymous(ctx context.Context) bool {
	anon, _ := ctx.Value(anonymousKey{}).(bool)
	return anon
}
