package fs

import (
	"context"
	"edugestao/internal/kv/core"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestStore_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	store, err := New(dir)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if store.Driver() != core.DriverFilesystem {
		t.Fatalf("unexpected driver %s", store.Driver())
	}
	ctx := context.Background()
	if _, ok, err := store.Get(ctx, "edugestao_schools"); err != nil || ok {
		t.Fatalf("expected absent slot, got ok=%v err=%v", ok, err)
	}
	if err := store.Put(ctx, "edugestao_schools", []byte(`[]`)); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := store.Put(ctx, "edugestao_schools", []byte(`[{"id":"a"}]`)); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, ok, err := store.Get(ctx, "edugestao_schools")
	if err != nil || !ok || string(got) != `[{"id":"a"}]` {
		t.Fatalf("get: %q %v %v", got, ok, err)
	}
	if _, err := os.Stat(filepath.Join(dir, "edugestao_schools.json")); err != nil {
		t.Fatalf("expected slot file on disk: %v", err)
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Fatalf("expected temp files cleaned up, found %d entries", len(entries))
	}
	if ok, err := store.Delete(ctx, "edugestao_schools"); err != nil || !ok {
		t.Fatalf("delete: %v %v", ok, err)
	}
	if ok, err := store.Delete(ctx, "edugestao_schools"); err != nil || ok {
		t.Fatalf("expected second delete false, got %v %v", ok, err)
	}
}

func TestStore_InvalidKeys(t *testing.T) {
	store, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	ctx := context.Background()
	for _, key := range []string{"", "../escape", "/abs"} {
		if err := store.Put(ctx, key, []byte("x")); err == nil {
			t.Fatalf("expected error for key %q", key)
		}
	}
	if _, _, err := store.Get(ctx, " "); !errors.Is(err, core.ErrEmptyKey) {
		t.Fatalf("expected empty key error, got %v", err)
	}
}

func TestNew_DefaultRoot(t *testing.T) {
	wd, _ := os.Getwd()
	dir := t.TempDir()
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	defer func() { _ = os.Chdir(wd) }()
	store, err := New("")
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if store.Root() != "./data" {
		t.Fatalf("unexpected default root %s", store.Root())
	}
}
