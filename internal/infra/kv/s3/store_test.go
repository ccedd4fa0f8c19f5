package s3

import (
	"context"
	"edugestao/internal/kv/core"
	"errors"
	"testing"
)

func TestNewRequiresBucket(t *testing.T) {
	if _, err := New(context.Background(), Config{}); err == nil {
		t.Fatalf("expected bucket error")
	}
}

func TestNewWithStaticCredentials(t *testing.T) {
	store, err := New(context.Background(), Config{
		Bucket:          "edu",
		Prefix:          "slots/",
		Endpoint:        "http://localhost:9000",
		AccessKeyID:     "minio",
		SecretAccessKey: "minio123",
		PathStyle:       true,
	})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if store.Driver() != core.DriverS3 {
		t.Fatalf("unexpected driver %s", store.Driver())
	}
	if key, _ := store.objectKey("edugestao_roles"); key != "slots/edugestao_roles" {
		t.Fatalf("unexpected object key %s", key)
	}
}

func TestMockStoreLifecycle(t *testing.T) {
	store := NewMockForTests()
	ctx := context.Background()
	if _, ok, err := store.Get(ctx, "edugestao_classes"); err != nil || ok {
		t.Fatalf("expected absent slot, got ok=%v err=%v", ok, err)
	}
	if err := store.Put(ctx, "edugestao_classes", []byte(`[{"id":"c1"}]`)); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := store.Put(ctx, "edugestao_classes", []byte(`[]`)); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, ok, err := store.Get(ctx, "edugestao_classes")
	if err != nil || !ok || string(got) != `[]` {
		t.Fatalf("get: %q %v %v", got, ok, err)
	}
	if ok, err := store.Delete(ctx, "edugestao_classes"); err != nil || !ok {
		t.Fatalf("delete: %v %v", ok, err)
	}
	if ok, err := store.Delete(ctx, "edugestao_classes"); err != nil || ok {
		t.Fatalf("expected second delete false: %v %v", ok, err)
	}
	if err := store.Put(ctx, " ", nil); !errors.Is(err, core.ErrEmptyKey) {
		t.Fatalf("expected empty key error, got %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}
