package cache

import (
	"context"
	"time"

	"github.com/allegro/bigcache/v3"
	"github.com/sirupsen/logrus"
	"pujo-gallery/internal/conf"
	"pujo-gallery/internal/core"
)

func NewBigCacheIndexService(ips core.IndexPostsService) (core.CacheIndexService, core.VersionInfo) {
	s := conf.BigCacheIndexSetting

	config := bigcache.DefaultConfig(s.ExpireInSecond)
	config.Shards = s.MaxIndexPage
	config.Verbose = s.Verbose
	config.MaxEntrySize = 10000
	config.Logger = logrus.StandardLogger()
	cache, err := bigcache.New(context.Background(), config)
	if err != nil {
		logrus.Fatalf("initial bigCahceIndex failure by err: %v", err)
	}

	cacheIndex := newBigCacheIndexServant(ips, cache, s.ExpireInSecond)
	go cacheIndex.startIndexPosts()

	return cacheIndex, cacheIndex
}

func NewNoneCacheIndexService(ips core.IndexPostsService) (core.CacheIndexService, core.VersionInfo) {
	obj := &noneCacheIndexServant{
		ips: ips,
	}
	return obj, obj
}

func newBigCacheIndexServant(ips core.IndexPostsService, cache *bigcache.BigCache, preventDuration time.Duration) *bigCacheIndexServant {
	return &bigCacheIndexServant{
		ips:             ips,
		cache:           cache,
		indexActionCh:   make(chan *core.IndexAction, 100),
		cachePostsCh:    make(chan *postsEntry, 100),
		preventDuration: preventDuration,
	}
}
