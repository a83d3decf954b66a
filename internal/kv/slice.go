package kv

import (
	"context"
	"sync"
)

// Slice is the in-memory owner of one persisted slice. Reads see the last
// successfully saved value; Update publishes a new value only after it has
// been written to the store.
type Slice[T any] struct {
	mu    sync.RWMutex
	store Store
	key   string
	val   T
}

func OpenSlice[T any](ctx context.Context, s Store, key string, def T) (*Slice[T], error) {
	v, err := Load(ctx, s, key, def)
	if err != nil {
		return nil, err
	}
	return &Slice[T]{store: s, key: key, val: v}, nil
}

func (s *Slice[T]) Get() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.val
}

// Update hands the current value to fn and saves what it returns. fn must
// not modify cur in place. If fn or the save fails, the slice is unchanged.
func (s *Slice[T]) Update(ctx context.Context, fn func(cur T) (T, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := fn(s.val)
	if err != nil {
		return err
	}
	if err := Save(ctx, s.store, s.key, next); err != nil {
		return err
	}
	s.val = next
	return nil
}
