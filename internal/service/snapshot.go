package service

import (
	"bytes"
	"context"
	"errors"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/sirupsen/logrus"
	"pujo-gallery/internal/core"
	"pujo-gallery/internal/model"
	"pujo-gallery/pkg/json"
)

var errChecksumMismatch = errors.New("checksum mismatch")

// postsSnapshot is the value stored under PostsKey. The checksum travels with
// the posts so a single write either lands whole or not at all.
type postsSnapshot struct {
	Sum   string          `json:"sum"`
	Posts json.RawMessage `json:"posts"`
}

func (s *FeedStore) verifiedKey(userID string) string {
	return s.keys.VerifiedKey + ":" + userID
}

func (s *FeedStore) badgeKey(userID string) string {
	return s.keys.BadgeKey + ":" + userID
}

func checksum(data []byte) string {
	return strconv.FormatUint(xxhash.Sum64(data), 16)
}

// loadPosts falls back to the seed posts when nothing usable is stored.
func (s *FeedStore) loadPosts(ctx context.Context) []*model.Post {
	data, err := s.kv.Get(ctx, s.keys.PostsKey)
	if errors.Is(err, core.ErrKeyNotFound) {
		logrus.Infoln("no feed snapshot found, use seed posts")
		return model.SeedPosts()
	} else if err != nil {
		logrus.Warnf("service.loadPosts read snapshot err: %v, use seed posts", err)
		return model.SeedPosts()
	}
	posts, err := decodePosts(data)
	if err != nil {
		logrus.Warnf("service.loadPosts snapshot is corrupt: %v, use seed posts", err)
		return model.SeedPosts()
	}
	return posts
}

// decodePosts accepts the checksummed snapshot and, for snapshots written
// before it existed, a bare JSON array which is trusted as is.
func decodePosts(data []byte) ([]*model.Post, error) {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '{' {
		var snapshot postsSnapshot
		if err := json.Unmarshal(data, &snapshot); err != nil {
			return nil, err
		}
		if snapshot.Sum != checksum(snapshot.Posts) {
			return nil, errChecksumMismatch
		}
		data = snapshot.Posts
	}

	var posts []*model.Post
	if err := json.Unmarshal(data, &posts); err != nil {
		return nil, err
	}
	res := make([]*model.Post, 0, len(posts))
	for _, post := range posts {
		if post == nil || post.ID == "" {
			return nil, errors.New("post without id")
		}
		if post.Kind == "" {
			post.Kind = model.PostKindRegular
		}
		if post.Comments == nil {
			post.Comments = []*model.Comment{}
		}
		res = append(res, post)
	}
	return res, nil
}

func (s *FeedStore) loadLikes(ctx context.Context) map[string]map[string]struct{} {
	likes := make(map[string]map[string]struct{})
	data, err := s.kv.Get(ctx, s.keys.LikesKey)
	if errors.Is(err, core.ErrKeyNotFound) {
		return likes
	} else if err != nil {
		logrus.Warnf("service.loadLikes read liked sets err: %v", err)
		return likes
	}
	var stored map[string][]string
	if err = json.Unmarshal(data, &stored); err != nil {
		logrus.Warnf("service.loadLikes liked sets are corrupt: %v", err)
		return likes
	}
	for userID, ids := range stored {
		if len(ids) == 0 {
			continue
		}
		liked := make(map[string]struct{}, len(ids))
		for _, id := range ids {
			liked[id] = struct{}{}
		}
		likes[userID] = liked
	}
	return likes
}

// verificationLocked reads through to the key-value service on first access.
func (s *FeedStore) verificationLocked(ctx context.Context, userID string) *model.Verification {
	if v, ok := s.verifications[userID]; ok {
		return v
	}
	v := &model.Verification{UserID: userID}
	data, err := s.kv.Get(ctx, s.verifiedKey(userID))
	if err != nil {
		if !errors.Is(err, core.ErrKeyNotFound) {
			logrus.Warnf("service.verification read %s err: %v", s.verifiedKey(userID), err)
			return v
		}
		s.verifications[userID] = v
		return v
	}
	v.Verified = string(data) == "true"
	if v.Verified {
		data, err = s.kv.Get(ctx, s.badgeKey(userID))
		if tier := model.BadgeTier(data); err == nil && tier.Valid() {
			v.BadgeTier = tier
		} else {
			v.BadgeTier = model.BadgeStandard
		}
	}
	s.verifications[userID] = v
	return v
}

// persistCtx outlives the request that caused the mutation, a client going
// away must not cut a snapshot write short.
func persistCtx() context.Context {
	return context.Background()
}

func encodePosts(posts []*model.Post) ([]byte, error) {
	data, err := json.Marshal(posts)
	if err != nil {
		return nil, err
	}
	return json.Marshal(&postsSnapshot{
		Sum:   checksum(data),
		Posts: data,
	})
}

func (s *FeedStore) persistPostsLocked() {
	data, err := encodePosts(s.posts)
	if err != nil {
		logrus.Errorf("service.persistPosts marshal err: %v", err)
		return
	}
	if err = s.kv.Set(persistCtx(), s.keys.PostsKey, data); err != nil {
		logrus.Errorf("service.persistPosts write snapshot err: %v", err)
	}
}

func (s *FeedStore) persistLikesLocked() {
	stored := make(map[string][]string, len(s.likes))
	for userID, liked := range s.likes {
		ids := make([]string, 0, len(liked))
		// keep the stored order of the feed
		for _, post := range s.posts {
			if _, ok := liked[post.ID]; ok {
				ids = append(ids, post.ID)
			}
		}
		stored[userID] = ids
	}
	data, err := json.Marshal(stored)
	if err != nil {
		logrus.Errorf("service.persistLikes marshal err: %v", err)
		return
	}
	if err = s.kv.Set(persistCtx(), s.keys.LikesKey, data); err != nil {
		logrus.Errorf("service.persistLikes write liked sets err: %v", err)
	}
}

func (s *FeedStore) persistVerificationLocked(v *model.Verification) {
	ctx := persistCtx()
	if err := s.kv.Set(ctx, s.verifiedKey(v.UserID), []byte(strconv.FormatBool(v.Verified))); err != nil {
		logrus.Errorf("service.persistVerification write %s err: %v", s.verifiedKey(v.UserID), err)
		return
	}
	if err := s.kv.Set(ctx, s.badgeKey(v.UserID), []byte(v.BadgeTier)); err != nil {
		logrus.Errorf("service.persistVerification write %s err: %v", s.badgeKey(v.UserID), err)
	}
}
