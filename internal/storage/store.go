package storage

import (
	"context"
	"encoding/json"

	"github.com/crismov/storefront/pkg/logger"
)

// Store is a string-keyed blob store. Each key holds one JSON document and
// is read and written as a whole; there are no cross-key transactions.
type Store interface {
	Read(ctx context.Context, key string) ([]byte, bool, error)
	Write(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
}

// Get reads and decodes the value stored under key. It never fails: a
// missing key, a read error, or a malformed stored value all yield fallback.
// A malformed value is left in place, not healed.
func Get[T any](ctx context.Context, s Store, key string, fallback T) T {
	raw, ok, err := s.Read(ctx, key)
	if err != nil {
		logger.Debug(ctx).Err(err).Str("key", key).Msg("storage read failed, using fallback")
		return fallback
	}
	if !ok {
		return fallback
	}

	var value T
	if err := json.Unmarshal(raw, &value); err != nil {
		logger.Debug(ctx).Err(err).Str("key", key).Msg("stored value is malformed, using fallback")
		return fallback
	}
	return value
}

// Set serializes value fully before storing it under key. Nothing is written
// when serialization fails.
func Set[T any](ctx context.Context, s Store, key string, value T) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.Write(ctx, key, data)
}
