package kv

import (
	"context"
	"time"
)

// Store is the key-value snapshot boundary. The session layer is its only
// consumer: a single serialized user record under a fixed key plus TTL'd
// session-token keys. Get returns (nil, nil) when the key is absent.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
	Close() error
}
