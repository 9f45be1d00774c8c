package store

import "context"

// KV is a durable string-keyed store. Every entity collection lives under
// one key and is always written whole.
type KV interface {
	// Load returns ok=false, err=nil when the key is absent.
	Load(ctx context.Context, key string) (value string, ok bool, err error)

	Save(ctx context.Context, key string, value string) error

	// Clear removes the key. Clearing an absent key is not an error.
	Clear(ctx context.Context, key string) error
}
