package redis_test

import (
	"context"
	"os"
	"testing"

	goredis "github.com/redis/go-redis/v9"

	"selection-assistant/internal/credential/repository/redis"
)

// Runs only when REDIS_ADDR points at a disposable redis instance.
func TestStore_GetSet(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}

	ctx := context.Background()
	client := goredis.NewClient(&goredis.Options{Addr: addr})
	defer client.Close()

	prefix := "selection-assistant-test:"
	defer client.Del(ctx, prefix+"api_key")

	s := redis.New(client, prefix)

	if _, ok, err := s.Get(ctx, "api_key"); err != nil || ok {
		t.Fatalf("expected missing key, ok=%v err=%v", ok, err)
	}
	if err := s.Set(ctx, "api_key", "secret"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, ok, err := s.Get(ctx, "api_key")
	if err != nil || !ok || v != "secret" {
		t.Fatalf("expected secret, got %q ok=%v err=%v", v, ok, err)
	}
}

func TestStore_Unreachable(t *testing.T) {
	client := goredis.NewClient(&goredis.Options{Addr: "127.0.0.1:1", MaxRetries: -1})
	defer client.Close()

	s := redis.New(client, "")
	if _, _, err := s.Get(context.Background(), "api_key"); err == nil {
		t.Fatal("expected connection error")
	}
}
