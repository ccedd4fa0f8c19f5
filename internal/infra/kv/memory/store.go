// Package memory implements an in-memory slot Store for tests.
package memory

import (
	"context"
	"edugestao/internal/kv/core"
	"sort"
	"strings"
	"sync"
)

// Store implements core.Store backed by process memory. Intended for tests.
type Store struct {
	mu    sync.RWMutex
	slots map[string][]byte
}

// New returns an in-memory slot store.
func New() *Store { return &Store{slots: make(map[string][]byte)} }

// Driver returns the slot driver identifier.
func (s *Store) Driver() core.Driver { return core.DriverMemory }

// Get returns a copy of the slot payload.
func (s *Store) Get(_ context.Context, key string) ([]byte, bool, error) {
	if strings.TrimSpace(key) == "" {
		return nil, false, core.ErrEmptyKey
	}
	s.mu.RLock()
	data, ok := s.slots[key]
	s.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), data...), true, nil
}

// Put stores a copy of payload under key, replacing any previous value.
func (s *Store) Put(_ context.Context, key string, payload []byte) error {
	if strings.TrimSpace(key) == "" {
		return core.ErrEmptyKey
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slots[key] = append([]byte(nil), payload...)
	return nil
}

// Delete removes the slot returning true if it existed.
func (s *Store) Delete(_ context.Context, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.slots[key]
	if ok {
		delete(s.slots, key)
	}
	return ok, nil
}

// Close is a no-op.
func (s *Store) Close() error { return nil }

// Keys returns the stored slot names in ascending order.
func (s *Store) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, 0, len(s.slots))
	for k := range s.slots {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
