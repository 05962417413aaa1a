package store

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
)

func TestRedisKVSetIfAbsent(t *testing.T) {
	redis := miniredis.RunT(t)
	kv := NewRedisKV(redis.Addr(), "")
	ctx := context.Background()

	if _, ok, err := kv.Get(ctx, "name"); err != nil || ok {
		t.Fatalf("expected miss on empty store, ok=%v err=%v", ok, err)
	}

	if err := kv.SetIfAbsent(ctx, "name", "Ishmael"); err != nil {
		t.Fatalf("set if absent: %v", err)
	}
	if err := kv.SetIfAbsent(ctx, "name", "Ahab"); err != nil {
		t.Fatalf("second set if absent: %v", err)
	}

	val, ok, err := kv.Get(ctx, "name")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok || val != "Ishmael" {
		t.Fatalf("got %q ok=%v, want first-written value", val, ok)
	}
}
