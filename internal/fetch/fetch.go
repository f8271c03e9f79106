// Package fetch downloads input images for the cutout pipeline.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

// Defaults applied by NewClient to zero Options fields.
const (
	DefaultUserAgent = "Mozilla/5.0"
	DefaultTimeout   = 20 * time.Second
	DefaultMaxBytes  = 32 << 20
)

// ErrFetch wraps every failure to obtain remote bytes: transport errors,
// timeouts, non-success statuses and oversized bodies.
var ErrFetch = errors.New("download failed")

// StatusError reports a response with a non-2xx status code.
type StatusError struct {
	URL        string
	StatusCode int
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP request failed with status %d: %s", e.StatusCode, e.URL)
}

// Fetcher returns the body behind a URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// Options configures a Client. Zero values select the defaults.
type Options struct {
	// Header is sent with every request. A missing User-Agent gets
	// DefaultUserAgent.
	Header map[string]string

	Timeout  time.Duration
	MaxBytes int64

	// Transport overrides http.DefaultTransport, mainly for tests.
	Transport http.RoundTripper
}

// Client fetches images over HTTP. It is safe for concurrent use.
type Client struct {
	client   *http.Client
	header   http.Header
	maxBytes int64
}

// NewClient builds a Client from opts, filling in defaults.
func NewClient(opts Options) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.MaxBytes <= 0 {
		opts.MaxBytes = DefaultMaxBytes
	}

	header := make(http.Header, len(opts.Header)+1)
	for k, v := range opts.Header {
		header.Set(k, v)
	}
	if header.Get("User-Agent") == "" {
		header.Set("User-Agent", DefaultUserAgent)
	}

	return &Client{
		client: &http.Client{
			Timeout:   opts.Timeout,
			Transport: opts.Transport,
		},
		header:   header,
		maxBytes: opts.MaxBytes,
	}
}

// Fetch GETs url and returns the body.
func (c *Client) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: new request: %w", ErrFetch, err)
	}
	for k, vs := range c.header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: do request: %w", ErrFetch, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %w", ErrFetch, &StatusError{URL: url, StatusCode: resp.StatusCode})
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %w", ErrFetch, err)
	}
	if int64(len(body)) > c.maxBytes {
		return nil, fmt.Errorf("%w: body of %s exceeds %d bytes", ErrFetch, url, c.maxBytes)
	}
	return body, nil
}

// FetchPair downloads the original and the mask concurrently. The first
// failure cancels the other download.
func FetchPair(ctx context.Context, f Fetcher, originalURL, maskURL string) (original, mask []byte, err error) {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		original, err = f.Fetch(ctx, originalURL)
		if err != nil {
			return fmt.Errorf("original: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		mask, err = f.Fetch(ctx, maskURL)
		if err != nil {
			return fmt.Errorf("mask: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return original, mask, nil
}

// IsURL reports whether location is an http or https URL.
func IsURL(location string) bool {
	return strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://")
}

// Open returns the bytes at location: fetched through f for http(s) URLs,
// read from the local file system otherwise.
func Open(ctx context.Context, f Fetcher, location string) ([]byte, error) {
	if IsURL(location) {
		return f.Fetch(ctx, location)
	}
	data, err := os.ReadFile(location)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", location, err)
	}
	return data, nil
}
