package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tacogips/create-repro/internal/debug"
)

const (
	// DefaultBaseURL is the public npm registry.
	DefaultBaseURL = "https://registry.npmjs.org"

	// abbreviatedMetadata asks the registry for the compact package document.
	abbreviatedMetadata = "application/vnd.npm.install-v1+json"

	defaultTimeout = 30 * time.Second
)

// Metadata is the subset of the registry package document used here.
type Metadata struct {
	Name     string                     `json:"name"`
	DistTags map[string]string          `json:"dist-tags"`
	Versions map[string]json.RawMessage `json:"versions"`
}

// Latest returns the "latest" dist-tag, or "" when the registry has none.
func (m *Metadata) Latest() string {
	return m.DistTags["latest"]
}

// VersionList returns the published version identifiers in no particular order.
func (m *Metadata) VersionList() []string {
	versions := make([]string, 0, len(m.Versions))
	for v := range m.Versions {
		versions = append(versions, v)
	}
	return versions
}

// Client queries an npm-compatible registry for one package.
type Client struct {
	pkg        string
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client (useful for testing).
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		cl.httpClient = c
	}
}

// WithBaseURL points the client at another registry.
func WithBaseURL(base string) Option {
	return func(cl *Client) {
		cl.baseURL = base
	}
}

// WithTimeout bounds each request.
func WithTimeout(d time.Duration) Option {
	return func(cl *Client) {
		cl.httpClient = &http.Client{Timeout: d}
	}
}

// New creates a Client for pkg with the given options.
func New(pkg string, opts ...Option) *Client {
	c := &Client{
		pkg:        pkg,
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Package returns the package this client resolves.
func (c *Client) Package() string {
	return c.pkg
}

// packageURL returns the metadata URL of the package. Scoped names keep
// their "@" and have the "/" escaped, as the registry expects.
func (c *Client) packageURL() string {
	return strings.TrimRight(c.baseURL, "/") + "/" + url.PathEscape(c.pkg)
}

// Fetch downloads the package metadata.
func (c *Client) Fetch(ctx context.Context) (*Metadata, error) {
	endpoint := c.packageURL()
	debug.Debug("[registry] GET %s", endpoint)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &LookupError{Type: LookupTransport, Package: c.pkg, Cause: err}
	}
	req.Header.Set("Accept", abbreviatedMetadata)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &LookupError{Type: LookupTransport, Package: c.pkg, Cause: err}
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, &LookupError{Type: LookupNotFound, Package: c.pkg, StatusCode: resp.StatusCode}
	default:
		return nil, &LookupError{Type: LookupStatus, Package: c.pkg, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &LookupError{Type: LookupTransport, Package: c.pkg, Cause: fmt.Errorf("reading response body: %w", err)}
	}

	var meta Metadata
	if err := json.Unmarshal(body, &meta); err != nil {
		return nil, &LookupError{Type: LookupDecode, Package: c.pkg, Cause: err}
	}
	debug.DebugValue("[registry] Versions published", len(meta.Versions))
	return &meta, nil
}

// FetchCatalog returns every published version, newest first, and the
// latest version. Any lookup failure yields (nil, ""); the cause is only
// written to the debug log.
func (c *Client) FetchCatalog(ctx context.Context) (Catalog, string) {
	meta, err := c.Fetch(ctx)
	if err != nil {
		debug.Debug("[registry] Version lookup unavailable: %v", err)
		return nil, ""
	}

	catalog := NewCatalog(meta.VersionList())
	if len(catalog) == 0 {
		debug.Debug("[registry] Registry returned no versions for %s", c.pkg)
		return nil, meta.Latest()
	}
	return catalog, meta.Latest()
}
