// Package restcountries implements ports.CountrySource against the public
// restcountries.com v3.1 API.
package restcountries

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

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/singleflight"

	"github.com/corey/wce/internal/adapters/metrics"
	"github.com/corey/wce/internal/domain/country"
	"github.com/corey/wce/internal/ports"
)

const (
	DefaultBaseURL   = "https://restcountries.com/v3.1"
	DefaultTimeout   = 10 * time.Second
	DefaultCacheSize = 256
	DefaultCacheTTL  = 30 * time.Minute

	// ListFields is requested for the list and map views.
	ListFields = "name,capital,population,region,subregion,flags,cca2,cca3,latlng"
	// DetailFields is requested for the detail view.
	DetailFields = "name,capital,population,region,subregion,flags,currencies,languages,borders,area,latlng,cca2,cca3,cioc"
)

// Endpoint labels used in metrics.
const (
	endpointAll    = "independent"
	endpointAlpha  = "alpha"
	endpointCodes  = "alpha_codes"
	endpointRegion = "region"
	endpointName   = "name"
)

// StatusError is returned for any non-2xx response other than 404.
type StatusError struct {
	URL    string
	Status int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("restcountries: %s returned %d %s", e.URL, e.Status, http.StatusText(e.Status))
}

// HTTPDoer is the subset of *http.Client the client needs.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Options configures a Client. Zero values select the defaults.
type Options struct {
	BaseURL    string
	Timeout    time.Duration
	CacheSize  int
	CacheTTL   time.Duration
	HTTPClient HTTPDoer
	Metrics    *metrics.Metrics
	UserAgent  string
}

// Client fetches country records over HTTP. Identical concurrent requests
// share one round trip, and detail lookups are cached for CacheTTL.
type Client struct {
	base    string
	http    HTTPDoer
	ua      string
	timeout time.Duration
	group   singleflight.Group
	details *expirable.LRU[string, country.Country]
	metrics *metrics.Metrics
}

// New creates a Client.
func New(opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.CacheSize <= 0 {
		opts.CacheSize = DefaultCacheSize
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = DefaultCacheTTL
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{Timeout: opts.Timeout}
	}
	if opts.UserAgent == "" {
		opts.UserAgent = "wce/1.0"
	}
	return &Client{
		base:    strings.TrimRight(opts.BaseURL, "/"),
		http:    opts.HTTPClient,
		ua:      opts.UserAgent,
		timeout: opts.Timeout,
		details: expirable.NewLRU[string, country.Country](opts.CacheSize, nil, opts.CacheTTL),
		metrics: opts.Metrics,
	}
}

// BaseURL is the API root the client talks to.
func (c *Client) BaseURL() string {
	return c.base
}

// All returns every independent country with the list-view fields.
func (c *Client) All(ctx context.Context) ([]country.Country, error) {
	q := url.Values{"status": {"true"}, "fields": {ListFields}}
	return c.list(ctx, endpointAll, "/independent?"+q.Encode())
}

// ByCode returns the full record for one code.
func (c *Client) ByCode(ctx context.Context, code string) (*country.Country, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, ports.ErrNotFound
	}
	if cached, ok := c.details.Get(code); ok {
		c.metrics.IncDetailCache(true)
		return &cached, nil
	}
	c.metrics.IncDetailCache(false)

	path := "/alpha/" + url.PathEscape(code) + "?" + url.Values{"fields": {DetailFields}}.Encode()
	data, err := c.fetch(ctx, endpointAlpha, path)
	if err != nil {
		return nil, err
	}

	// The alpha endpoint answers with an object when fields are given and
	// with a one-element array otherwise.
	var rec country.Country
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var list []country.Country
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
		if len(list) == 0 {
			return nil, ports.ErrNotFound
		}
		rec = list[0]
	} else if err := json.Unmarshal(trimmed, &rec); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	c.details.Add(code, rec)
	return &rec, nil
}

// ByCodes returns the records for several codes, in upstream order.
func (c *Client) ByCodes(ctx context.Context, codes []string) ([]country.Country, error) {
	clean := make([]string, 0, len(codes))
	for _, code := range codes {
		if code = strings.TrimSpace(code); code != "" {
			clean = append(clean, strings.ToUpper(code))
		}
	}
	if len(clean) == 0 {
		return nil, nil
	}
	q := url.Values{"codes": {strings.Join(clean, ",")}, "fields": {ListFields}}
	return c.list(ctx, endpointCodes, "/alpha?"+q.Encode())
}

// ByRegion returns the countries of one region.
func (c *Client) ByRegion(ctx context.Context, region string) ([]country.Country, error) {
	region = strings.ToLower(strings.TrimSpace(region))
	if region == "" {
		return nil, ports.ErrNotFound
	}
	q := url.Values{"fields": {ListFields}}
	return c.list(ctx, endpointRegion, "/region/"+url.PathEscape(region)+"?"+q.Encode())
}

// ByName returns countries whose name matches upstream.
func (c *Client) ByName(ctx context.Context, name string) ([]country.Country, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ports.ErrNotFound
	}
	q := url.Values{"fields": {ListFields}}
	return c.list(ctx, endpointName, "/name/"+url.PathEscape(name)+"?"+q.Encode())
}

func (c *Client) list(ctx context.Context, endpoint, path string) ([]country.Country, error) {
	data, err := c.fetch(ctx, endpoint, path)
	if err != nil {
		return nil, err
	}
	var out []country.Country
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return out, nil
}

// fetch performs one GET, collapsing identical in-flight requests.
func (c *Client) fetch(ctx context.Context, endpoint, path string) ([]byte, error) {
	// The shared request outlives any single caller; each caller only
	// stops waiting when its own context ends.
	ch := c.group.DoChan(path, func() (any, error) {
		rctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.timeout)
		defer cancel()
		data, err := c.get(rctx, c.base+path)
		switch {
		case err == nil:
			c.metrics.IncUpstream(endpoint, "ok")
		case errors.Is(err, ports.ErrNotFound):
			c.metrics.IncUpstream(endpoint, "not_found")
		default:
			c.metrics.IncUpstream(endpoint, "error")
		}
		return data, err
	})
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.([]byte), nil
	}
}

func (c *Client) get(ctx context.Context, u string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.ua)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("restcountries request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, ports.ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &StatusError{URL: u, Status: resp.StatusCode}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	return data, nil
}

var _ ports.CountrySource = (*Client)(nil)
