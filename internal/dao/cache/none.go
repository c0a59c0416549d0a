package cache

import (
	"github.com/Masterminds/semver/v3"
	"pujo-gallery/internal/core"
	"pujo-gallery/internal/model"
)

var (
	_ core.CacheIndexService = (*noneCacheIndexServant)(nil)
	_ core.VersionInfo       = (*noneCacheIndexServant)(nil)
)

type noneCacheIndexServant struct {
	ips core.IndexPostsService
}

func (s *noneCacheIndexServant) IndexPosts(userID string, offset int, limit int) (*model.IndexPostsResp, error) {
	return s.ips.IndexPosts(userID, offset, limit)
}

func (s *noneCacheIndexServant) Revision() uint64 {
	return s.ips.Revision()
}

func (s *noneCacheIndexServant) SendAction(_act core.IdxAct, _post *model.Post) {
	// empty
}

func (s *noneCacheIndexServant) Name() string {
	return "NoneCacheIndex"
}

func (s *noneCacheIndexServant) Version() *semver.Version {
	return semver.MustParse("v0.1.0")
}
