package kv

import (
	"context"
	"sync"

	"github.com/Masterminds/semver/v3"
	"pujo-gallery/internal/core"
)

var (
	_ core.KeyValueService = (*memoryKeyValueServant)(nil)
	_ core.VersionInfo     = (*memoryKeyValueServant)(nil)
)

// memoryKeyValueServant overwrites in place and never evicts, every key
// holds exactly its last value.
type memoryKeyValueServant struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func (s *memoryKeyValueServant) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.data[key]
	if !ok {
		return nil, core.ErrKeyNotFound
	}
	return append([]byte(nil), value...), nil
}

func (s *memoryKeyValueServant) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	s.data[key] = append([]byte(nil), value...)
	s.mu.Unlock()
	return nil
}

func (s *memoryKeyValueServant) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.data, key)
	s.mu.Unlock()
	return nil
}

// size reports the bytes held across all keys.
func (s *memoryKeyValueServant) size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, value := range s.data {
		n += len(value)
	}
	return n
}

func (s *memoryKeyValueServant) Name() string {
	return "Memory"
}

func (s *memoryKeyValueServant) Version() *semver.Version {
	return semver.MustParse("v0.2.0")
}
