// Package kv mirrors named slices of storefront state to a durable
// key-value store. Every slice is stored independently as one JSON document
// and overwritten in full on each change.
package kv

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
)

// Slice names, shared with the browser build of the store so existing data
// can be imported as-is.
const (
	KeyProducts      = "products"
	KeyCategories    = "categories"
	KeyCart          = "cart"
	KeyOrders        = "orders"
	KeyShippingZones = "shippingZones"
	KeyUser          = "user"
	KeyLang          = "lang"
)

// KeyLoginID holds the server-side login ID that access tokens are bound to.
const KeyLoginID = "loginId"

// Store is a synchronous byte store. Get reports found=false for a missing
// key instead of an error.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, key string, value []byte) error
	Close() error
}

// Load reads the slice stored under key, or returns def when the key is
// absent. A value that no longer decodes as JSON is logged and replaced by
// def; slices the browser build writes unquoted are converted by their
// owner before loading.
func Load[T any](ctx context.Context, s Store, key string, def T) (T, error) {
	raw, ok, err := s.Get(ctx, key)
	if err != nil {
		return def, fmt.Errorf("kv: load %s: %w", key, err)
	}
	if !ok {
		return def, nil
	}

	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		log.Printf("kv: slice %q is corrupt, using defaults: %v", key, err)
		return def, nil
	}
	return v, nil
}

// Save serializes value and writes it under key.
func Save[T any](ctx context.Context, s Store, key string, value T) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("kv: encode %s: %w", key, err)
	}
	if err := s.Put(ctx, key, raw); err != nil {
		return fmt.Errorf("kv: save %s: %w", key, err)
	}
	return nil
}
