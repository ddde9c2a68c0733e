package shim

import (
	"errors"
	"net/http"
	"sync"
)

// Configuration errors reported by the install lifecycle.
var (
	// ErrAlreadyInstalled is returned by Install when the default
	// transport is already wrapped. Installing twice would silently
	// double-augment requests, so it is rejected instead.
	ErrAlreadyInstalled = errors.New("shim: already installed")

	// ErrNotInstalled is returned by Uninstall when there is nothing to
	// restore.
	ErrNotInstalled = errors.New("shim: not installed")
)

var (
	installMu sync.Mutex
	saved     http.RoundTripper
)

// Install wraps http.DefaultTransport so that every call site using the
// default transport picks up the identity header without modification.
// Only the header options (WithHeader, WithUserAgent, WithOverride) apply
// here; transport and timeout options belong to NewClient.
//
// Install and Uninstall are serialized; requests already in flight keep
// the transport they started with.
func Install(opts ...Option) error {
	installMu.Lock()
	defer installMu.Unlock()

	if saved != nil {
		return ErrAlreadyInstalled
	}

	var s settings
	for _, opt := range opts {
		opt(&s)
	}

	saved = http.DefaultTransport
	http.DefaultTransport = &Transport{
		Base:     saved,
		Name:     s.name,
		Value:    s.value,
		Override: s.override,
	}
	return nil
}

// Uninstall restores the transport that was in place before Install.
func Uninstall() error {
	installMu.Lock()
	defer installMu.Unlock()

	if saved == nil {
		return ErrNotInstalled
	}

	http.DefaultTransport = saved
	saved = nil
	return nil
}
