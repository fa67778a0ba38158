package curbwise

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/curbwise/curbwise-go/headers"
)

const defaultBaseURL = "https://api.curbwise.io/api/v1"

// TokenSource supplies the bearer credential attached to outbound requests.
// An empty string means "unauthenticated" and suppresses the header entirely.
type TokenSource interface {
	Token() string
}

type staticToken string

func (t staticToken) Token() string { return string(t) }

// Config wires authentication, base URL, and telemetry for the API client.
type Config struct {
	BaseURL string
	// AccessToken pins a fixed bearer credential. Most callers leave this
	// empty and bind a Session instead, which supplies the live credential.
	AccessToken string
	HTTPClient  *http.Client
	Telemetry   TelemetryHooks
	UserAgent   string
}

// Client provides high-level helpers for interacting with the Curbwise API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
	telemetry  TelemetryHooks
	userAgent  string

	// Grouped service clients.
	Auth           *AuthClient
	Users          *UsersClient
	Violations     *ViolationsClient
	Analytics      *AnalyticsClient
	Billing        *BillingClient
	ResidentPortal *ResidentPortalClient
}

// NewClient validates the configuration and returns a ready-to-use Client.
func NewClient(cfg Config) (*Client, error) {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	normalized, err := normalizeBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	ua := cfg.UserAgent
	if ua == "" {
		ua = defaultUserAgent
	}
	client := &Client{
		baseURL:    normalized,
		httpClient: httpClient,
		telemetry:  cfg.Telemetry,
		userAgent:  ua,
	}
	if token := normalizeBearer(cfg.AccessToken); token != "" {
		client.tokens = staticToken(token)
	}
	client.Auth = &AuthClient{client: client}
	client.Users = &UsersClient{client: client}
	client.Violations = &ViolationsClient{client: client}
	client.Analytics = &AnalyticsClient{client: client}
	client.Billing = &BillingClient{client: client}
	client.ResidentPortal = &ResidentPortalClient{client: client}
	return client, nil
}

// UseTokenSource binds the credential source consulted on every request.
// The session store calls this once at construction; the client only ever
// reads from the source, keeping the session-to-client dependency one-way.
func (c *Client) UseTokenSource(ts TokenSource) {
	c.tokens = ts
}

func normalizeBaseURL(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", errors.New("curbwise: base URL required")
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return "", fmt.Errorf("curbwise: invalid base URL: %w", err)
	}
	if u.Scheme == "" {
		return "", errors.New("curbwise: base URL missing scheme (http/https)")
	}
	if u.Host == "" {
		return "", errors.New("curbwise: base URL missing host")
	}
	u.Path = strings.TrimSuffix(u.Path, "/")
	return strings.TrimSuffix(u.String(), "/"), nil
}

func normalizeBearer(raw string) string {
	token := strings.TrimSpace(raw)
	if strings.HasPrefix(strings.ToLower(token), "bearer ") {
		token = strings.TrimSpace(token[7:])
	}
	return token
}

func (c *Client) newJSONRequest(ctx context.Context, method, path string, payload any) (*http.Request, error) {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(encoded)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.buildURL(path), body)
	if err != nil {
		return nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if req.Header.Get("Accept") == "" {
		req.Header.Set("Accept", "application/json")
	}
	injectTraceparent(ctx, req)
	return req, nil
}

// newFormRequest builds a form-encoded POST. The login exchange is the only
// endpoint on the backend that takes a form body instead of JSON.
func (c *Client) newFormRequest(ctx context.Context, path string, form url.Values) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.buildURL(path), strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	injectTraceparent(ctx, req)
	return req, nil
}

func (c *Client) prepare(req *http.Request) {
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
		req.Header.Set(headers.Client, c.userAgent)
	}
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
}

// send is the single outbound choke point: it injects the credential, fires
// telemetry hooks, and normalizes transport and HTTP failures. There is no
// retry or backoff at this layer.
func (c *Client) send(req *http.Request) (*http.Response, error) {
	c.prepare(req)
	if c.telemetry.OnHTTPRequest != nil {
		c.telemetry.OnHTTPRequest(req.Context(), req)
	}
	c.telemetry.log(req.Context(), LogLevelInfo, "http_request", map[string]any{
		"method": req.Method,
		"url":    req.URL.String(),
	})
	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if c.telemetry.OnHTTPResponse != nil {
		c.telemetry.OnHTTPResponse(req.Context(), req, resp, err, time.Since(start))
	}
	c.telemetry.metric(req.Context(), "sdk_http_request_latency_ms", float64(time.Since(start).Milliseconds()), map[string]string{
		"path": req.URL.Path,
	})
	if err != nil {
		return nil, TransportError{Cause: err}
	}
	if resp.StatusCode >= 400 {
		defer resp.Body.Close()
		return nil, decodeAPIError(resp)
	}
	return resp, nil
}

// sendAndDecode issues a JSON request and decodes the response body into out.
// A body that does not match out's shape surfaces as a DecodeError rather
// than propagating zero values.
func (c *Client) sendAndDecode(ctx context.Context, method, path string, payload any, out any) error {
	req, err := c.newJSONRequest(ctx, method, path, payload)
	if err != nil {
		return err
	}
	resp, err := c.send(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	return decodeJSON(resp, path, out)
}

func decodeJSON(resp *http.Response, path string, out any) error {
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return DecodeError{Path: path, Cause: err}
	}
	return nil
}

// sendRaw issues a request and returns the raw response body, for endpoints
// that serve binary or CSV payloads instead of JSON.
func (c *Client) sendRaw(ctx context.Context, method, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.buildURL(path), nil)
	if err != nil {
		return nil, err
	}
	injectTraceparent(ctx, req)
	resp, err := c.send(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	return io.ReadAll(resp.Body)
}

func (c *Client) buildURL(path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.baseURL + path
}
