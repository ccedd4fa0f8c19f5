package core

import (
	"context"
	"fmt"
	"testing"
	"time"

	"edugestao/internal/kv"
)

var fixedTime = time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id%07d", n)
	}
}

func newTestStore(t *testing.T, opts ...Option) (*Store, kv.Store) {
	t.Helper()
	backend := kv.NewMemory()
	base := []Option{
		WithClock(func() time.Time { return fixedTime }),
		WithIDGenerator(sequentialIDs()),
	}
	return NewStore(backend, append(base, opts...)...), backend
}

func slotBytes(t *testing.T, backend kv.Store, slot string) []byte {
	t.Helper()
	data, _, err := backend.Get(context.Background(), slot)
	if err != nil {
		t.Fatalf("get %s: %v", slot, err)
	}
	return data
}
