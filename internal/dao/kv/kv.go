package kv

import (
	"pujo-gallery/internal/conf"
	"pujo-gallery/internal/core"
)

func NewMemoryKeyValueService() (core.KeyValueService, core.VersionInfo) {
	s := &memoryKeyValueServant{
		data: make(map[string][]byte),
	}
	return s, s
}

func NewRedisKeyValueService() (core.KeyValueService, core.VersionInfo) {
	s := &redisKeyValueServant{
		client: conf.MustRedis(),
	}
	return s, s
}

func NewMongoKeyValueService() (core.KeyValueService, core.VersionInfo) {
	s := &mongoKeyValueServant{
		coll: conf.MustMongoDB().Collection(TableKV),
	}
	return s, s
}

func NewMySQLKeyValueService() (core.KeyValueService, core.VersionInfo) {
	s := &jinzhuKeyValueServant{
		db: conf.MustGormDB(),
	}
	if err := s.db.AutoMigrate(&Entry{}); err != nil {
		panic(err)
	}
	return s, s
}
