package shim

// Header names and default values managed by this package. Names are in
// the canonical form used by net/http.
const (
	// HeaderUserAgent is the identity header managed when no other name is
	// configured.
	HeaderUserAgent = "User-Agent"

	// DefaultUserAgent is the browser identity presented to endpoints that
	// reject requests from non-browser clients.
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)
