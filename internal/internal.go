package internal

import (
	"context"

	"pujo-gallery/internal/conf"
	"pujo-gallery/internal/core"
	"pujo-gallery/internal/dao"
	"pujo-gallery/internal/routers/api"
	"pujo-gallery/internal/service"
)

// Initialize wires the feed store to its backends and returns the server
// the routes are bound to.
func Initialize(ctx context.Context) *api.Server {
	store := service.NewFeedStore(dao.KeyValueService(), service.WithStorageKeys(conf.StorageSetting))
	store.Load(ctx)

	servants := dao.Servants()
	cache := dao.NewCacheIndexService(store)
	if v, ok := cache.(core.VersionInfo); ok {
		servants = append(servants, v)
	}
	store.AddSink(cache)

	ts := dao.TweetSearchService()
	store.AddSink(service.NewSearchIndexer(ts))
	go service.PushPostsToSearch(ts, store)

	return api.New(store, cache, ts, dao.ObjectStorageService(), servants...)
}
