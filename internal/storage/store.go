package storage

import (
	"context"
	"errors"
)

// ErrCorrupt reports a backing container that exists but cannot be decoded.
var ErrCorrupt = errors.New("corrupt store")

// Store is a string-to-string key-value store.
// Get reports ok=false, with a nil error, when the key is absent.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key string, value string) error
	Remove(ctx context.Context, key string) error
}

// Entry is a single key/value pair for batch writes.
type Entry struct {
	Key   string
	Value string
}

// BatchSetter is implemented by stores that can write several keys at once.
type BatchSetter interface {
	SetMany(ctx context.Context, entries []Entry) error
}

// SetAll writes entries in one batch when the store supports it and one by
// one otherwise.
func SetAll(ctx context.Context, s Store, entries []Entry) error {
	if b, ok := s.(BatchSetter); ok {
		return b.SetMany(ctx, entries)
	}
	for _, e := range entries {
		if err := s.Set(ctx, e.Key, e.Value); err != nil {
			return err
		}
	}
	return nil
}
