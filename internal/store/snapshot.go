package store

import (
	"context"
	"encoding/json"
	"fmt"
)

// LoadSnapshot reads and parses the collection stored under key.
//
// A missing key or a malformed blob yields the zero value of T: a corrupt
// snapshot must never prevent startup, it just resets that collection.
// Only a store I/O failure is returned as an error.
func LoadSnapshot[T any](ctx context.Context, s Store, key string) (T, error) {
	var zero T

	data, ok, err := s.Load(ctx, key)
	if err != nil {
		return zero, err
	}
	if !ok {
		return zero, nil
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		// fail open: treat the corrupt blob as absent
		return zero, nil
	}
	return v, nil
}

// SaveSnapshot serializes v and stores it under key.
func SaveSnapshot[T any](ctx context.Context, s Store, key string, v T) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to serialize snapshot[%s]: %w", key, err)
	}
	return s.Save(ctx, key, data)
}
