package kv

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"pujo-gallery/internal/core"
)

func exerciseKeyValue(t *testing.T, s core.KeyValueService) {
	ctx := context.Background()
	if _, err := s.Get(ctx, "missing"); !errors.Is(err, core.ErrKeyNotFound) {
		t.Fatalf("want ErrKeyNotFound but got %v", err)
	}
	if err := s.Set(ctx, "pujoGalleryPosts", []byte(`[]`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := s.Set(ctx, "pujoGalleryPosts", []byte(`[{"id":"1"}]`)); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	data, err := s.Get(ctx, "pujoGalleryPosts")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(data) != `[{"id":"1"}]` {
		t.Errorf("want last written value but got %s", data)
	}
	if err = s.Delete(ctx, "pujoGalleryPosts"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err = s.Get(ctx, "pujoGalleryPosts"); !errors.Is(err, core.ErrKeyNotFound) {
		t.Errorf("want ErrKeyNotFound after delete but got %v", err)
	}
	if err = s.Delete(ctx, "pujoGalleryPosts"); err != nil {
		t.Errorf("delete of a missing key should succeed: %v", err)
	}
}

func TestMemoryKeyValue(t *testing.T) {
	s, v := NewMemoryKeyValueService()
	if v.Name() != "Memory" {
		t.Errorf("unexpected servant %s", v.Name())
	}
	exerciseKeyValue(t, s)
}

func TestMemoryKeyValueOverwrite(t *testing.T) {
	s, _ := NewMemoryKeyValueService()
	ctx := context.Background()
	snapshot := bytes.Repeat([]byte("x"), 1<<20)
	for i := 0; i < 200; i++ {
		snapshot[0] = byte(i)
		if err := s.Set(ctx, "pujoGalleryPosts", snapshot); err != nil {
			t.Fatalf("set %d: %v", i, err)
		}
	}
	if err := s.Set(ctx, "pujoGalleryLikes", []byte(`{}`)); err != nil {
		t.Fatal(err)
	}

	mem := s.(*memoryKeyValueServant)
	if got, want := mem.size(), len(snapshot)+2; got != want {
		t.Errorf("want %d bytes held after overwrites but got %d", want, got)
	}
	data, err := s.Get(ctx, "pujoGalleryPosts")
	if err != nil || data[0] != byte(199) {
		t.Errorf("want the last snapshot but got %v, %v", data[:1], err)
	}
	if _, err = s.Get(ctx, "pujoGalleryLikes"); err != nil {
		t.Errorf("other keys must survive overwrites: %v", err)
	}

	// callers may reuse their buffers
	data[0] = 'y'
	if again, _ := s.Get(ctx, "pujoGalleryPosts"); again[0] != byte(199) {
		t.Error("stored value shares memory with a returned slice")
	}
}

func TestRedisKeyValue(t *testing.T) {
	mr := miniredis.RunT(t)
	s := &redisKeyValueServant{
		client: redis.NewClient(&redis.Options{Addr: mr.Addr()}),
	}
	exerciseKeyValue(t, s)

	if err := s.Set(context.Background(), "userVerified:bikram-mondal", []byte("true")); err != nil {
		t.Fatal(err)
	}
	if got, _ := mr.Get("userVerified:bikram-mondal"); got != "true" {
		t.Errorf("want value stored in redis but got %q", got)
	}
}
