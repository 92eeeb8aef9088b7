// Package metadata is the client's persistent key-value store, the moral
// equivalent of browser localStorage: small named values (the bearer token,
// the subscription snapshot) that must survive restarts.
package metadata

import "context"

type Repository interface {
	// Get returns the value under key, or nil when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
