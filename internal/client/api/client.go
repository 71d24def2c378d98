// Package api contains the typed Shelfhub REST client: a shared HTTP
// transport plus one endpoint group per file (auth, violations, scan,
// products, settings).
//
// The transport owns the cross-cutting request/response behavior: bearer
// token injection from durable storage, response content-type validation,
// and the global unauthorized handler. Endpoint groups are stateless
// request/response mappings with no retries and no caching; every failure
// propagates unchanged to the caller.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shelfhub/shelfhub/internal/client/repositories/localdata"
	"github.com/shelfhub/shelfhub/internal/common"
	"github.com/shelfhub/shelfhub/internal/logging"
)

const defaultTimeout = 30 * time.Second

type Client struct {
	baseURL    string
	httpClient *http.Client
	store      localdata.Repository
	log        logging.Logger

	// onSessionExpired is invoked after a 401 response has cleared the
	// stored token. The composition root supplies the concrete action
	// (the UI's navigation to the login screen); the transport itself
	// stays free of any navigation concerns.
	onSessionExpired func()
}

type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client (e.g. for timeouts
// or test doubles).
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpClient = h }
}

// WithSessionExpiredHandler installs the action performed after any
// unauthorized response. Invoked once per failing request; the handler
// must tolerate repeated invocation.
func WithSessionExpiredHandler(fn func()) Option {
	return func(c *Client) { c.onSessionExpired = fn }
}

// NewClient builds the shared transport. baseURL should come from
// ResolveBaseURL and stays fixed for the client's lifetime.
func NewClient(baseURL string, store localdata.Repository, log logging.Logger, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
		store:      store,
		log:        log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Auth returns the authentication endpoint group.
func (c *Client) Auth() *AuthAPI { return &AuthAPI{c: c} }

// Violations returns the filename-violation remediation endpoint group.
func (c *Client) Violations() *ViolationsAPI { return &ViolationsAPI{c: c} }

// Scan returns the scanning endpoint group.
func (c *Client) Scan() *ScanAPI { return &ScanAPI{c: c} }

// Products returns the catalog endpoint group.
func (c *Client) Products() *ProductsAPI { return &ProductsAPI{c: c} }

// Posts returns the knowledge-base endpoint group.
func (c *Client) Posts() *PostsAPI { return &PostsAPI{c: c} }

// Favorites returns the pinned-products endpoint group.
func (c *Client) Favorites() *FavoritesAPI { return &FavoritesAPI{c: c} }

// Scraps returns the bookmarked-posts endpoint group.
func (c *Client) Scraps() *ScrapsAPI { return &ScrapsAPI{c: c} }

// Settings returns the backend configuration endpoint group.
func (c *Client) Settings() *SettingsAPI { return &SettingsAPI{c: c} }

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, "", out)
}

func (c *Client) postJSON(ctx context.Context, path string, body any, out any) error {
	r, err := encodeJSON(body)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, path, nil, r, "application/json", out)
}

func (c *Client) putJSON(ctx context.Context, path string, body any, out any) error {
	r, err := encodeJSON(body)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPut, path, nil, r, "application/json", out)
}

func (c *Client) delete(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodDelete, path, query, nil, "", out)
}

func encodeJSON(body any) (io.Reader, error) {
	if body == nil {
		return nil, nil
	}
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request body: %w", err)
	}
	return bytes.NewReader(b), nil
}

// do performs one request against the resolved base URL and decodes the JSON
// response into out (when out is non-nil). See roundTrip for the shared
// response handling.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string, out any) error {
	u := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	return c.roundTrip(ctx, req, out)
}

// roundTrip attaches auth metadata, executes the request, and applies the
// global response rules:
//
//   - a bearer token is attached only when durable storage currently holds
//     one; a stale in-memory copy is never used;
//   - 401 clears the stored token and fires the session-expired handler,
//     then still fails the calling operation;
//   - markup content types are converted into a ProxyError, a silent
//     failure class;
//   - other non-2xx statuses become *APIError with the backend's detail.
func (c *Client) roundTrip(ctx context.Context, req *http.Request, out any) error {
	token, err := c.store.Get(ctx, common.AccessTokenKey)
	if err != nil {
		c.log.Warn(ctx, "failed to read stored token, sending unauthenticated", "error", err)
	}
	if len(token) > 0 {
		req.Header.Set("Authorization", "Bearer "+string(token))
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	isMarkup := strings.Contains(resp.Header.Get("Content-Type"), "text/html")

	if resp.StatusCode == http.StatusUnauthorized {
		c.expireSession(ctx)
		return &APIError{Status: resp.StatusCode, Detail: errorDetail(data)}
	}

	if resp.StatusCode >= 400 {
		apiErr := &APIError{Status: resp.StatusCode, Detail: errorDetail(data)}
		if isMarkup {
			apiErr.silent = true
			c.log.Debug(ctx, "markup error response", "status", resp.StatusCode, "path", req.URL.Path)
		} else {
			c.log.Error(ctx, "request rejected", "status", resp.StatusCode, "method", req.Method, "path", req.URL.Path)
		}
		return apiErr
	}

	if isMarkup {
		perr := &ProxyError{ContentType: resp.Header.Get("Content-Type")}
		c.log.Debug(ctx, "markup instead of JSON", "path", req.URL.Path)
		return perr
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

// expireSession is the global unauthorized side effect. It runs once per
// failing request; every step is idempotent, so concurrent 401s performing
// the same cleanup are safe.
func (c *Client) expireSession(ctx context.Context) {
	if err := c.store.Delete(ctx, common.AccessTokenKey); err != nil {
		c.log.Warn(ctx, "failed to clear stored token", "error", err)
	}
	if c.onSessionExpired != nil {
		c.onSessionExpired()
	}
}

// errorDetail pulls the backend's {"detail": ...} message out of an error
// body, falling back to the raw text for non-JSON bodies.
func errorDetail(data []byte) string {
	if len(data) == 0 {
		return ""
	}
	var envelope struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(data, &envelope); err == nil && envelope.Detail != "" {
		return envelope.Detail
	}
	return strings.TrimSpace(string(data))
}
