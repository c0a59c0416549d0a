package kv

import (
	"context"
	"errors"

	"github.com/Masterminds/semver/v3"
	"github.com/go-redis/redis/v8"
	"pujo-gallery/internal/core"
)

var (
	_ core.KeyValueService = (*redisKeyValueServant)(nil)
	_ core.VersionInfo     = (*redisKeyValueServant)(nil)
)

type redisKeyValueServant struct {
	client *redis.Client
}

func (s *redisKeyValueServant) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, core.ErrKeyNotFound
	} else if err != nil {
		return nil, err
	}
	return data, nil
}

func (s *redisKeyValueServant) Set(ctx context.Context, key string, value []byte) error {
	return s.client.Set(ctx, key, value, 0).Err()
}

func (s *redisKeyValueServant) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, key).Err()
}

func (s *redisKeyValueServant) Name() string {
	return "Redis"
}

func (s *redisKeyValueServant) Version() *semver.Version {
	return semver.MustParse("v0.1.0")
}
