package core

import (
	"context"
	"errors"
)

var ErrKeyNotFound = errors.New("key not found")

// KeyValueService is the durable key space behind the feed store.
// Get must return ErrKeyNotFound for a missing key.
type KeyValueService interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
