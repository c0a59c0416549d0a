package cache

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/allegro/bigcache/v3"
	"github.com/sirupsen/logrus"
	"pujo-gallery/internal/core"
	"pujo-gallery/internal/model"
)

var (
	_ core.CacheIndexService = (*bigCacheIndexServant)(nil)
	_ core.VersionInfo       = (*bigCacheIndexServant)(nil)
)

type postsEntry struct {
	key    string
	tweets *model.IndexPostsResp
}

type bigCacheIndexServant struct {
	ips core.IndexPostsService

	indexActionCh      chan *core.IndexAction
	cachePostsCh       chan *postsEntry
	cache              *bigcache.BigCache
	lastCacheResetTime time.Time
	preventDuration    time.Duration
}

// IndexPosts keys pages by the feed revision, so a page cached before a
// mutation is never looked up again.
func (s *bigCacheIndexServant) IndexPosts(userID string, offset int, limit int) (*model.IndexPostsResp, error) {
	key := s.keyFrom(userID, s.ips.Revision(), offset, limit)
	posts, err := s.getPosts(key)
	if err == nil {
		logrus.Debugf("bigCacheIndexServant.IndexPosts get index posts from cache by key: %s", key)
		return posts, nil
	}

	if posts, err = s.ips.IndexPosts(userID, offset, limit); err != nil {
		return nil, err
	}
	logrus.Debugf("bigCacheIndexServant.IndexPosts get index posts from feed by key: %s", key)
	// the feed may have moved on while the page was built
	s.cachePosts(s.keyFrom(userID, posts.Revision, offset, limit), posts)
	return posts, nil
}

func (s *bigCacheIndexServant) Revision() uint64 {
	return s.ips.Revision()
}

func (s *bigCacheIndexServant) getPosts(key string) (*model.IndexPostsResp, error) {
	data, err := s.cache.Get(key)
	if err != nil {
		logrus.Debugf("bigCacheIndexServant.getPosts get posts by key: %s from cache err: %v", key, err)
		return nil, err
	}
	buf := bytes.NewBuffer(data)
	dec := gob.NewDecoder(buf)
	var resp model.IndexPostsResp
	if err := dec.Decode(&resp); err != nil {
		logrus.Debugf("bigCacheIndexServant.getPosts get posts from cache in decode err: %v", err)
		return nil, err
	}
	// gob drops empty slices
	for _, tweet := range resp.Tweets {
		if tweet.Comments == nil {
			tweet.Comments = []*model.Comment{}
		}
		if tweet.Tags == nil {
			tweet.Tags = []string{}
		}
	}
	return &resp, nil
}

func (s *bigCacheIndexServant) cachePosts(key string, tweets *model.IndexPostsResp) {
	entry := &postsEntry{key: key, tweets: tweets}
	select {
	case s.cachePostsCh <- entry:
		logrus.Debugf("bigCacheIndexServant.cachePosts cachePosts by chan of key: %s", key)
	default:
		go func(ch chan<- *postsEntry, entry *postsEntry) {
			logrus.Debugf("bigCacheIndexServant.cachePosts cachePosts indexAction by goroutine of key: %s", key)
			ch <- entry
		}(s.cachePostsCh, entry)
	}
}

func (s *bigCacheIndexServant) setPosts(entry *postsEntry) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(entry.tweets); err != nil {
		logrus.Debugf("bigCacheIndexServant.setPosts setPosts encode post entry err: %v", err)
		return
	}
	if err := s.cache.Set(entry.key, buf.Bytes()); err != nil {
		logrus.Debugf("bigCacheIndexServant.setPosts setPosts set cache err: %v", err)
		return
	}
	logrus.Debugf("bigCacheIndexServant.setPosts setPosts set cache by key: %s", entry.key)
}

func (s *bigCacheIndexServant) keyFrom(userID string, revision uint64, offset int, limit int) string {
	return fmt.Sprintf("index:%s:%d:%d:%d", userID, revision, offset, limit)
}

func (s *bigCacheIndexServant) SendAction(act core.IdxAct, post *model.Post) {
	action := core.NewIndexAction(act, post)
	select {
	case s.indexActionCh <- action:
		logrus.Debugf("bigCacheIndexServant.SendAction send indexAction by chan: %s", act)
	default:
		go func(ch chan<- *core.IndexAction, act *core.IndexAction) {
			logrus.Debugf("bigCacheIndexServant.SendAction send indexAction by goroutine: %s", action.Act)
			ch <- act
		}(s.indexActionCh, action)
	}
}

func (s *bigCacheIndexServant) startIndexPosts() {
	for {
		select {
		case entry := <-s.cachePostsCh:
			s.setPosts(entry)
		case action := <-s.indexActionCh:
			s.handleIndexAction(action)
		}
	}
}

// handleIndexAction only reclaims memory, revision keyed pages are already unreachable.
func (s *bigCacheIndexServant) handleIndexAction(action *core.IndexAction) {
	act, post := action.Act, action.Post

	var userID string
	if post != nil {
		userID = post.Author.ID
	}
	switch act {
	case core.IdxActCreatePost, core.IdxActDeletePost:
		if userID != "" {
			s.deleteCacheByUserID(userID)
			return
		}
	}

	if time.Since(s.lastCacheResetTime) > s.preventDuration {
		s.cache.Reset()
		s.lastCacheResetTime = time.Now()
		logrus.Debugf("bigCacheIndexServant.handleIndexAction reset cache by %s", action.Act)
	} else if userID != "" {
		s.deleteCacheByUserID(userID)
	}
}

func (s *bigCacheIndexServant) deleteCacheByUserID(userID string) {
	var keys []string

	for it := s.cache.Iterator(); it.SetNext(); {
		entry, err := it.Value()
		if err != nil {
			logrus.Debugf("bigCacheIndexServant.deleteCacheByUserID userID: %s err:%s", userID, err)
			return
		}
		key := entry.Key()
		keyParts := strings.Split(key, ":")
		if len(keyParts) > 2 && keyParts[0] == "index" && keyParts[1] == userID {
			keys = append(keys, key)
		}
	}

	for _, k := range keys {
		s.cache.Delete(k)
	}
	logrus.Debugf("bigCacheIndexServant.deleteCacheByUserID userID:%s", userID)
}

func (s *bigCacheIndexServant) Name() string {
	return "BigCacheIndex"
}

func (s *bigCacheIndexServant) Version() *semver.Version {
	return semver.MustParse("v0.2.0")
}
