package api

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/vortextv/vortexcli/internal/common"
)

// Header holds the current Authorization header value for one HTTP client.
// It must only be written through the credential store, which is the single
// writer for every registered header — two components poking headers on
// different client instances is exactly the inconsistency this exists to
// prevent.
type Header struct {
	mu    sync.RWMutex
	value string
}

func NewHeader() *Header {
	return &Header{}
}

// ApplyAuthHeader sets the bearer value derived from token.
func (h *Header) ApplyAuthHeader(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.value = "Bearer " + token
}

// RemoveAuthHeader strips the bearer value.
func (h *Header) RemoveAuthHeader() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.value = ""
}

// Value returns the current header value, empty when no credential is set.
func (h *Header) Value() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.value
}

// SharedHeader is the process-wide default header. Any HTTP client built
// outside the dedicated API client (see NewRawClient) injects from it, so
// a credential update reaches stray clients too, not only the main one.
var SharedHeader = NewHeader()

type skipAuthKey struct{}

// withSkipAuth marks a request so the transport leaves the Authorization
// header off. Login and register must not carry a stale bearer token.
func withSkipAuth(ctx context.Context) context.Context {
	return context.WithValue(ctx, skipAuthKey{}, true)
}

// authTransport injects the Authorization header from a Header provider and
// stamps a request ID on every outbound call.
type authTransport struct {
	header *Header
	base   http.RoundTripper
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	clone := req.Clone(req.Context())

	if clone.Header.Get(common.RequestIDHeaderName) == "" {
		clone.Header.Set(common.RequestIDHeaderName, uuid.NewString())
	}

	skip, _ := req.Context().Value(skipAuthKey{}).(bool)
	if !skip {
		if v := t.header.Value(); v != "" && clone.Header.Get(common.AuthorizationHeaderName) == "" {
			clone.Header.Set(common.AuthorizationHeaderName, v)
		}
	}

	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}
	return base.RoundTrip(clone)
}

// NewRawClient returns a plain *http.Client whose requests carry the shared
// bearer header. Intended for one-off calls outside the API surface (health
// probes, direct downloads).
func NewRawClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout:   timeout,
		Transport: &authTransport{header: SharedHeader},
	}
}
