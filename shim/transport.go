// Package shim guarantees that a fixed identity header is present on every
// outbound HTTP request issued through it.
//
// The preferred usage is an explicit dependency: wrap any
// http.RoundTripper in a Transport, or hand a Client to whatever issues
// the calls. For call sites that take no dependency, Install wraps
// http.DefaultTransport process-wide and Uninstall restores it.
package shim

import (
	"net/http"
)

// Transport is an http.RoundTripper that injects a single fixed header
// into every request before delegating to Base.
//
// A value the caller already set for the managed header takes precedence
// over the fixed value; set Override to replace it instead. No header
// other than the managed one is ever touched.
type Transport struct {
	// Base performs the actual request. http.DefaultTransport when nil.
	Base http.RoundTripper
	// Name is the managed header name. HeaderUserAgent when empty.
	Name string
	// Value is the fixed identity value. DefaultUserAgent when empty.
	Value string
	// Override replaces a caller-supplied value instead of yielding to it.
	Override bool
}

// ensure Transport implements the interface
var _ http.RoundTripper = (*Transport)(nil)

// RoundTrip implements http.RoundTripper. The request is cloned before the
// header is set, so a header map owned by the caller is never mutated.
// The response and any error from Base are returned unchanged.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	name := t.Name
	if name == "" {
		name = HeaderUserAgent
	}
	value := t.Value
	if value == "" {
		value = DefaultUserAgent
	}

	req = req.Clone(req.Context())
	if t.Override || req.Header.Get(name) == "" {
		req.Header.Set(name, value)
	}

	return t.base().RoundTrip(req)
}

// Unwrap returns the transport that performs the actual requests.
func (t *Transport) Unwrap() http.RoundTripper {
	return t.base()
}

func (t *Transport) base() http.RoundTripper {
	if t.Base != nil {
		return t.Base
	}
	return http.DefaultTransport
}
