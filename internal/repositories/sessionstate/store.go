// Package sessionstate implements the scope stores the session manager
// persists into: an ephemeral store that lives only as long as the process,
// and a durable store that survives restarts.
package sessionstate

import "context"

// Store is a small key-value contract shared by both scopes.
//
// Get returns (nil, nil) when the key is absent; storage failures wrap
// common.ErrStorageUnavailable.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	// SetMany writes every entry or none of them.
	SetMany(ctx context.Context, entries map[string][]byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
