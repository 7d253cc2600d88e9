package redis

import (
	"testing"
	"time"
)

func TestNewListCache_TTL(t *testing.T) {
	if c := NewListCache(nil, 0); c.ttl != defaultCacheTTL {
		t.Fatalf("expected default ttl %v, got %v", defaultCacheTTL, c.ttl)
	}
	if c := NewListCache(nil, -time.Second); c.ttl != defaultCacheTTL {
		t.Fatalf("negative ttl must fall back to default, got %v", c.ttl)
	}
	if c := NewListCache(nil, 5*time.Minute); c.ttl != 5*time.Minute {
		t.Fatalf("configured ttl not applied, got %v", c.ttl)
	}
}
