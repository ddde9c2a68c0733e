package shim

import (
	"context"
	"net/http"
	"time"
)

// Getter is the outbound GET capability consumed by code that takes the
// shim as an explicit dependency instead of relying on the ambient
// default transport.
type Getter interface {
	Get(ctx context.Context, url string, opts ...RequestOption) (*http.Response, error)
}

// Client issues GET requests through a header-injecting Transport. Beyond
// header augmentation it adds nothing: responses and errors from the
// underlying transport surface unchanged, and a non-2xx status is not
// converted into an error.
type Client struct {
	httpClient *http.Client
}

// ensure Client implements the interface
var _ Getter = (*Client)(nil)

// Option configures the header injection and the underlying transport at
// construction time.
type Option func(*settings)

type settings struct {
	name       string
	value      string
	override   bool
	base       http.RoundTripper
	httpClient *http.Client
	timeout    time.Duration
}

// WithHeader sets the managed header name and its fixed value.
func WithHeader(name, value string) Option {
	return func(s *settings) {
		s.name = name
		s.value = value
	}
}

// WithUserAgent sets the fixed User-Agent value.
func WithUserAgent(value string) Option {
	return func(s *settings) { s.value = value }
}

// WithOverride makes the fixed value replace a caller-supplied one instead
// of yielding to it.
func WithOverride() Option {
	return func(s *settings) { s.override = true }
}

// WithBase sets the transport that performs the actual requests.
func WithBase(rt http.RoundTripper) Option {
	return func(s *settings) { s.base = rt }
}

// WithHTTPClient copies settings such as cookie jar and redirect policy
// from an existing client. The client itself is not modified; its
// transport becomes the base of the injecting transport.
func WithHTTPClient(c *http.Client) Option {
	return func(s *settings) { s.httpClient = c }
}

// WithTimeout bounds each request end to end.
func WithTimeout(d time.Duration) Option {
	return func(s *settings) { s.timeout = d }
}

// NewClient creates a Client whose every request carries the configured
// identity header.
func NewClient(opts ...Option) *Client {
	var s settings
	for _, opt := range opts {
		opt(&s)
	}

	hc := &http.Client{}
	if s.httpClient != nil {
		copied := *s.httpClient
		hc = &copied
	}

	base := s.base
	if base == nil {
		base = hc.Transport
	}
	hc.Transport = &Transport{
		Base:     base,
		Name:     s.name,
		Value:    s.value,
		Override: s.override,
	}
	if s.timeout > 0 {
		hc.Timeout = s.timeout
	}

	return &Client{httpClient: hc}
}

// RequestOption adjusts a single request before it is sent.
type RequestOption func(*http.Request)

// WithHeaders merges hdr into the request. Entries here are explicit
// caller intent and win over the injected value on collision.
func WithHeaders(hdr http.Header) RequestOption {
	return func(req *http.Request) {
		for name, values := range hdr {
			for _, v := range values {
				req.Header.Add(name, v)
			}
		}
	}
}

// Get issues a GET request to url. Any error from the underlying
// transport, and any non-success status, is returned to the caller as is.
func (c *Client) Get(ctx context.Context, url string, opts ...RequestOption) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	for _, opt := range opts {
		opt(req)
	}

	return c.httpClient.Do(req)
}
