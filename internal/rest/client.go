// Package rest is the HTTP repository layer for the back-office API.
// One thin repository per resource, no business logic: GET/POST/PATCH/
// DELETE against /{resource}/ and /{resource}/{id}/, list envelopes
// paginated, create/update bodies sent as multipart form data so file
// attachments ride along.
package rest

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Config names everything a Client needs. Credentials come from the
// profile config; the session that minted the token is out of scope.
type Config struct {
	// Root is the API origin plus base path, e.g.
	// "https://example.com/api/v1.0".
	Root string
	// Token is sent as a Bearer credential on every request.
	Token string
	// AcceptLanguage is the already-resolved request locale; see
	// ResolveLocale.
	AcceptLanguage string
	// Timeout bounds each request. Zero means 30s.
	Timeout time.Duration
}

// ErrNoRoot is returned by NewClient for an empty or unparsable root.
var ErrNoRoot = fmt.Errorf("rest: api root is required")

// Client carries the shared HTTP client and request decoration.
type Client struct {
	http   *http.Client
	root   string
	token  string
	locale string
	log    *zap.Logger
}

func NewClient(cfg Config, log *zap.Logger) (*Client, error) {
	root := strings.TrimSuffix(cfg.Root, "/")
	if root == "" {
		return nil, ErrNoRoot
	}
	if _, err := url.Parse(root); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoRoot, err)
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		http:   &http.Client{Timeout: timeout},
		root:   root,
		token:  cfg.Token,
		locale: cfg.AcceptLanguage,
		log:    log,
	}, nil
}

// endpoint joins path segments under the root. Collection and detail
// routes both end with a trailing slash; the server redirects otherwise.
func (c *Client) endpoint(parts ...string) string {
	cleaned := make([]string, 0, len(parts)+1)
	cleaned = append(cleaned, c.root)
	for _, p := range parts {
		cleaned = append(cleaned, strings.Trim(p, "/"))
	}
	return strings.Join(cleaned, "/") + "/"
}

// do issues one request. body may be nil; when an encoded multipart
// payload is given its content type is set alongside.
func (c *Client) do(ctx context.Context, method, endpoint string, query url.Values, body *encodedForm) (*http.Response, error) {
	var req *http.Request
	var err error
	if body != nil {
		req, err = http.NewRequestWithContext(ctx, method, endpoint, body.reader)
	} else {
		req, err = http.NewRequestWithContext(ctx, method, endpoint, nil)
	}
	if err != nil {
		return nil, err
	}
	if len(query) > 0 {
		req.URL.RawQuery = query.Encode()
	}
	if body != nil {
		req.Header.Set("Content-Type", body.contentType)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	if c.locale != "" {
		req.Header.Set("Accept-Language", c.locale)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug("request failed",
			zap.String("method", method), zap.String("url", endpoint), zap.Error(err))
		return nil, err
	}
	c.log.Debug("request",
		zap.String("method", method),
		zap.String("url", endpoint),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)))
	return resp, nil
}
