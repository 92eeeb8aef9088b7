// Package common contains shared constants and sentinel errors used across
// VortexTV client components.
package common

// TokenStorageKey is the local-store key the bearer token is persisted under.
const TokenStorageKey = "token"

// SubscriptionCacheKey is the local-store key for the last-known-good
// subscription snapshot. The snapshot is a display fallback only and is
// never treated as authoritative.
const SubscriptionCacheKey = "vortextv_subscription_data"

// AuthorizationHeaderName is the HTTP header carrying the bearer token.
const AuthorizationHeaderName = "Authorization"

// RequestIDHeaderName is the HTTP header carrying the client-generated
// request ID.
const RequestIDHeaderName = "X-Request-ID"

// Routes the session controller and route guards navigate between.
const (
	RouteLogin         = "/login"
	RouteBrowse        = "/browse"
	RouteSubscriptions = "/subscriptions"
	RouteAdmin         = "/admin"
	RouteProfile       = "/profile"
)
