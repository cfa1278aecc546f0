package ipath

import (
	"context"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/ipath/pkg/buildinfo"
	"github.com/matzehuels/ipath/pkg/errors"
	"github.com/matzehuels/ipath/pkg/observability"
)

// Service endpoints.
const (
	DefaultMappingURL = "https://pathways.embl.de/mapping.cgi"
	DefaultInspectURL = "https://pathways.embl.de/ipath.cgi"
)

// DefaultTimeout bounds a single request. Large maps at high DPI can take
// the service a while, so this is generous.
const DefaultTimeout = 60 * time.Second

// mapExt is the extension of files written by GetMap. The service's body
// is saved verbatim whatever the export type.
const mapExt = ".svg"

// Client submits selections to the iPath service.
// A Client holds no per-request state and may be reused.
type Client struct {
	http       *http.Client
	mappingURL string
	inspectURL string
	logger     *log.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the per-request timeout. Zero disables it.
// A client passed to [WithHTTPClient] is copied, not modified.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		hc := *c.http
		hc.Timeout = d
		c.http = &hc
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithMappingURL overrides the rendering endpoint.
func WithMappingURL(u string) Option {
	return func(c *Client) { c.mappingURL = u }
}

// WithInspectURL overrides the interactive endpoint.
func WithInspectURL(u string) Option {
	return func(c *Client) { c.inspectURL = u }
}

// WithLogger sets the logger used for request tracing.
func WithLogger(l *log.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewClient creates a Client for the public iPath service.
// Without options it uses [DefaultTimeout] and discards log output.
func NewClient(opts ...Option) *Client {
	c := &Client{
		http:       &http.Client{Timeout: DefaultTimeout},
		mappingURL: DefaultMappingURL,
		inspectURL: DefaultInspectURL,
		logger:     log.NewWithOptions(io.Discard, log.Options{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Render posts selection to the rendering endpoint and returns the
// response body. A response with status >= 400 fails with
// [errors.RemoteServiceError].
func (c *Client) Render(ctx context.Context, selection string, opts Options) ([]byte, error) {
	resp, id, err := c.post(ctx, c.mappingURL, selection, opts)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeNetwork, err, "read response")
	}
	if resp.StatusCode >= http.StatusBadRequest {
		c.logger.Debug("request failed", "request", id)
		return nil, &errors.RemoteServiceError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	c.logger.Debug("received map", "request", id, "bytes", len(body))
	return body, nil
}

// GetMap renders selection and writes the response body to
// <mapName>.svg, returning the path written.
func (c *Client) GetMap(ctx context.Context, selection, mapName string, opts Options) (string, error) {
	if err := errors.ValidateMapName(mapName); err != nil {
		return "", err
	}

	body, err := c.Render(ctx, selection, opts)
	if err != nil {
		return "", err
	}

	path := mapName + mapExt
	if err := os.WriteFile(path, body, 0o644); err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "write %s", path)
	}
	c.logger.Debug("saved map", "path", path)
	return path, nil
}

// Inspect posts selection to the interactive endpoint and returns the raw
// response. The status is not checked. The caller must close the body.
func (c *Client) Inspect(ctx context.Context, selection string, opts Options) (*http.Response, error) {
	resp, _, err := c.post(ctx, c.inspectURL, selection, opts)
	return resp, err
}

// post performs one form-encoded POST and returns the response together
// with the correlation id used in log lines.
func (c *Client) post(ctx context.Context, endpoint, selection string, opts Options) (*http.Response, string, error) {
	form, err := ToParameters(selection, opts)
	if err != nil {
		return nil, "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, "", errors.Wrap(errors.ErrCodeInvalidOption, err, "build request for %s", endpoint)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", buildinfo.UserAgent())

	id := uuid.NewString()
	c.logger.Debug("posting selection",
		"request", id,
		"url", endpoint,
		"lines", strings.Count(selection, "\n"),
		"export_type", opts.ExportType)

	hooks := observability.Service()
	hooks.OnRequest(ctx, endpoint)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		hooks.OnError(ctx, endpoint, err)
		return nil, id, errors.Wrap(errors.ErrCodeNetwork, err, "post %s", endpoint)
	}
	hooks.OnResponse(ctx, endpoint, resp.StatusCode, int(resp.ContentLength), time.Since(start))
	return resp, id, nil
}
