package dao

import (
	"sync"

	"github.com/sirupsen/logrus"
	"pujo-gallery/internal/conf"
	"pujo-gallery/internal/core"
	"pujo-gallery/internal/dao/cache"
	"pujo-gallery/internal/dao/kv"
	"pujo-gallery/internal/dao/search"
	"pujo-gallery/internal/dao/storage"
)

var (
	kvs core.KeyValueService
	ts  core.TweetSearchService
	oss core.ObjectStorageService

	kvsVersion, tsVersion, ossVersion core.VersionInfo

	onceKv, onceTs, onceOss sync.Once
)

// KeyValueService is where the feed snapshot lives.
func KeyValueService() core.KeyValueService {
	onceKv.Do(func() {
		var v core.VersionInfo
		if conf.CfgIf("Redis") {
			kvs, v = kv.NewRedisKeyValueService()
		} else if conf.CfgIf("Mongo") {
			kvs, v = kv.NewMongoKeyValueService()
		} else if conf.CfgIf("MySQL") {
			kvs, v = kv.NewMySQLKeyValueService()
		} else {
			// default use in-process memory as key-value store
			kvs, v = kv.NewMemoryKeyValueService()
			kvsVersion = v
			logrus.Infof("use default Memory as key-value store by version %s", v.Version())
			return
		}
		kvsVersion = v
		logrus.Infof("use %s as key-value store by version %s", v.Name(), v.Version())
	})
	return kvs
}

// NewCacheIndexService is not a singleton, the cache wraps whatever
// index it is handed.
func NewCacheIndexService(ips core.IndexPostsService) core.CacheIndexService {
	var (
		cis core.CacheIndexService
		v   core.VersionInfo
	)
	if conf.CfgIf("BigCacheIndex") {
		cis, v = cache.NewBigCacheIndexService(ips)
	} else {
		cis, v = cache.NewNoneCacheIndexService(ips)
	}
	logrus.Infof("use %s as cache index service by version %s", v.Name(), v.Version())
	return cis
}

func ObjectStorageService() core.ObjectStorageService {
	onceOss.Do(func() {
		var v core.VersionInfo
		oss, v = storage.MustDataURIService()
		ossVersion = v
		logrus.Infof("use %s as object storage by version %s", v.Name(), v.Version())
	})
	return oss
}

func TweetSearchService() core.TweetSearchService {
	onceTs.Do(func() {
		var v core.VersionInfo
		if conf.CfgIf("Meili") {
			ts, v = search.NewMeiliTweetSearchService()
		} else {
			// default use Simple as tweet search service
			ts, v = search.NewSimpleTweetSearchService()
		}
		tsVersion = v
		logrus.Infof("use %s as tweet search serice by version %s", v.Name(), v.Version())

		ts = search.NewBridgeTweetSearchService(ts)
	})
	return ts
}

// Servants lists the version info of every singleton servant in use.
func Servants() []core.VersionInfo {
	KeyValueService()
	TweetSearchService()
	ObjectStorageService()
	return []core.VersionInfo{kvsVersion, tsVersion, ossVersion}
}
