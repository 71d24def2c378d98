// Package localdata is the durable client-side key-value store. It survives
// restarts and holds exactly three well-known keys: the bearer token, the UI
// locale code, and the theme preference (see common.AccessTokenKey and
// friends). Values are plain strings with no schema versioning.
package localdata

import "context"

type Repository interface {
	// Get returns (nil, nil) when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set inserts or overwrites the value in a single atomic statement.
	Set(ctx context.Context, key string, value []byte) error
	// Delete removes the key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
	// Clear removes all keys.
	Clear(ctx context.Context) error
	List(ctx context.Context) (map[string][]byte, error)
}
