package service

import (
	"context"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gofrs/uuid"
	"github.com/oklog/ulid/v2"
	"github.com/sirupsen/logrus"
	"pujo-gallery/internal/conf"
	"pujo-gallery/internal/core"
	"pujo-gallery/internal/model"
	"pujo-gallery/pkg/errcode"
)

var _ core.IndexPostsService = (*FeedStore)(nil)

type Option func(*FeedStore)

// WithStorageKeys overrides the key names the snapshot is written under.
func WithStorageKeys(keys *conf.StorageSettingS) Option {
	return func(s *FeedStore) {
		if keys != nil {
			s.keys = *keys
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *FeedStore) {
		s.now = now
	}
}

func WithSinks(sinks ...core.IndexActionSink) Option {
	return func(s *FeedStore) {
		s.sinks = append(s.sinks, sinks...)
	}
}

// FeedStore owns the feed. Every mutation is applied, persisted and
// announced to the registered sinks in that order.
type FeedStore struct {
	kv   core.KeyValueService
	keys conf.StorageSettingS
	now  func() time.Time

	mu            sync.RWMutex
	posts         []*model.Post
	likes         map[string]map[string]struct{}
	verifications map[string]*model.Verification
	revision      uint64

	sinksMu sync.RWMutex
	sinks   []core.IndexActionSink
}

func NewFeedStore(kv core.KeyValueService, opts ...Option) *FeedStore {
	s := &FeedStore{
		kv: kv,
		keys: conf.StorageSettingS{
			PostsKey:    "pujoGalleryPosts",
			LikesKey:    "pujoGalleryLikes",
			VerifiedKey: "userVerified",
			BadgeKey:    "userBadgeType",
		},
		now:           time.Now,
		posts:         model.SeedPosts(),
		likes:         make(map[string]map[string]struct{}),
		verifications: make(map[string]*model.Verification),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AddSink registers a sink for every following mutation.
func (s *FeedStore) AddSink(sink core.IndexActionSink) {
	s.sinksMu.Lock()
	s.sinks = append(s.sinks, sink)
	s.sinksMu.Unlock()
}

// Load replaces the in-memory state with what the key-value service holds.
func (s *FeedStore) Load(ctx context.Context) {
	posts := s.loadPosts(ctx)
	likes := s.loadLikes(ctx)
	pruned := pruneLikes(likes, posts)

	s.mu.Lock()
	s.posts = posts
	s.likes = likes
	s.verifications = make(map[string]*model.Verification)
	if pruned > 0 {
		logrus.Warnf("feed store dropped %d likes of posts not in the feed", pruned)
		s.persistLikesLocked()
	}
	atomic.AddUint64(&s.revision, 1)
	s.mu.Unlock()
	logrus.Infof("feed store loaded %d posts and liked sets of %d users", len(posts), len(likes))
}

// pruneLikes drops liked ids that name no post of the feed and reports how
// many were dropped.
func pruneLikes(likes map[string]map[string]struct{}, posts []*model.Post) int {
	known := make(map[string]struct{}, len(posts))
	for _, post := range posts {
		known[post.ID] = struct{}{}
	}
	pruned := 0
	for userID, liked := range likes {
		for postID := range liked {
			if _, ok := known[postID]; !ok {
				delete(liked, postID)
				pruned++
			}
		}
		if len(liked) == 0 {
			delete(likes, userID)
		}
	}
	return pruned
}

func (s *FeedStore) CreatePost(ctx context.Context, draft *model.PostDraft) *model.Post {
	kind, image, video := draft.Media()
	now := s.now()
	post := &model.Post{
		ID:        "post-" + ulid.Make().String(),
		Author:    draft.Author,
		Timestamp: model.JustNow,
		CreatedOn: now.Unix(),
		Content:   draft.Content,
		Kind:      kind,
		Image:     image,
		Video:     video,
		Comments:  []*model.Comment{},
	}

	s.mu.Lock()
	if v := s.verificationLocked(ctx, post.Author.ID); v.Verified {
		post.Author.Verified = true
		post.Author.BadgeTier = v.BadgeTier
	}
	s.posts = append([]*model.Post{post}, s.posts...)
	s.persistPostsLocked()
	s.bumpLocked()
	res := post.Clone()
	s.mu.Unlock()

	s.notify(core.IdxActCreatePost, res)
	return res
}

// Like toggles postID in the liked set of userID and reports the new state.
func (s *FeedStore) Like(ctx context.Context, userID string, postID string) (*model.Post, bool, error) {
	s.mu.Lock()
	post := s.postLocked(postID)
	if post == nil {
		s.mu.Unlock()
		return nil, false, errcode.NoExistPost
	}

	liked := s.likes[userID]
	_, isLiked := liked[postID]
	if isLiked {
		delete(liked, postID)
		if len(liked) == 0 {
			delete(s.likes, userID)
		}
		if post.LikeCount > 0 {
			post.LikeCount--
		}
	} else {
		if liked == nil {
			liked = make(map[string]struct{})
			s.likes[userID] = liked
		}
		liked[postID] = struct{}{}
		post.LikeCount++
	}
	s.persistPostsLocked()
	s.persistLikesLocked()
	s.bumpLocked()
	res := post.Clone()
	s.mu.Unlock()

	s.notify(core.IdxActLikePost, res)
	return res.Clone(), !isLiked, nil
}

func (s *FeedStore) AddComment(ctx context.Context, postID string, draft *model.CommentDraft) (*model.Comment, error) {
	s.mu.Lock()
	post := s.postLocked(postID)
	if post == nil {
		s.mu.Unlock()
		return nil, errcode.NoExistPost
	}

	comment := &model.Comment{
		ID:     "comment-" + uuid.Must(uuid.NewV4()).String(),
		Author: draft.Author,
		Text:   draft.Text,
	}
	post.Comments = append(post.Comments, comment)
	post.CommentCount++
	s.persistPostsLocked()
	s.bumpLocked()
	res := post.Clone()
	s.mu.Unlock()

	s.notify(core.IdxActCommentPost, res)
	c := *comment
	return &c, nil
}

func (s *FeedStore) SharePost(ctx context.Context, postID string) (*model.Post, error) {
	s.mu.Lock()
	post := s.postLocked(postID)
	if post == nil {
		s.mu.Unlock()
		return nil, errcode.NoExistPost
	}

	post.ShareCount++
	s.persistPostsLocked()
	s.bumpLocked()
	res := post.Clone()
	s.mu.Unlock()

	s.notify(core.IdxActSharePost, res)
	return res.Clone(), nil
}

// DeletePost removes the post and forgets every like of it.
func (s *FeedStore) DeletePost(ctx context.Context, postID string) error {
	return s.deletePost(postID, func(*model.Post) error { return nil })
}

// DeletePostBy deletes postID only when userID authored it. The ownership
// check and the removal happen under one lock.
func (s *FeedStore) DeletePostBy(ctx context.Context, userID string, postID string) error {
	return s.deletePost(postID, func(post *model.Post) error {
		if !post.OwnedBy(userID) {
			return errcode.NoPermission
		}
		return nil
	})
}

func (s *FeedStore) deletePost(postID string, allow func(*model.Post) error) error {
	s.mu.Lock()
	idx := s.indexLocked(postID)
	if idx < 0 {
		s.mu.Unlock()
		return errcode.NoExistPost
	}
	post := s.posts[idx]
	if err := allow(post); err != nil {
		s.mu.Unlock()
		return err
	}

	s.posts = append(s.posts[:idx:idx], s.posts[idx+1:]...)
	likesChanged := false
	for userID, liked := range s.likes {
		if _, ok := liked[postID]; ok {
			delete(liked, postID)
			likesChanged = true
		}
		if len(liked) == 0 {
			delete(s.likes, userID)
		}
	}
	s.persistPostsLocked()
	if likesChanged {
		s.persistLikesLocked()
	}
	s.bumpLocked()
	s.mu.Unlock()

	s.notify(core.IdxActDeletePost, post)
	return nil
}

// VerifyUser marks userID verified with the tier its donation buys and
// restamps every post the user authored.
func (s *FeedStore) VerifyUser(ctx context.Context, userID string, amount float64) (*model.Verification, error) {
	if math.IsNaN(amount) || amount < model.MinVerifyDonation {
		return nil, errcode.InsufficientDonation
	}
	tier := model.ResolveBadge(amount)
	v := &model.Verification{
		UserID:    userID,
		Verified:  true,
		BadgeTier: tier,
	}

	s.mu.Lock()
	var touched []*model.Post
	for _, post := range s.posts {
		if post.Author.ID == userID {
			post.Author.Verified = true
			post.Author.BadgeTier = tier
			touched = append(touched, post.Clone())
		}
	}
	s.verifications[userID] = v
	if len(touched) > 0 {
		s.persistPostsLocked()
	}
	s.persistVerificationLocked(v)
	s.bumpLocked()
	s.mu.Unlock()

	for _, post := range touched {
		s.notify(core.IdxActVerifyUser, post)
	}
	res := *v
	return &res, nil
}

func (s *FeedStore) Posts(userID string) []*model.PostFormatted {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.formatLocked(userID, s.posts)
}

func (s *FeedStore) Post(userID string, postID string) (*model.PostFormatted, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	post := s.postLocked(postID)
	if post == nil {
		return nil, errcode.NoExistPost
	}
	return post.Format(userID, s.isLikedLocked(userID, postID)), nil
}

// RawPosts returns a copy of the stored sequence.
func (s *FeedStore) RawPosts() []*model.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()
	posts := make([]*model.Post, 0, len(s.posts))
	for _, post := range s.posts {
		posts = append(posts, post.Clone())
	}
	return posts
}

func (s *FeedStore) RawPost(postID string) (*model.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	post := s.postLocked(postID)
	if post == nil {
		return nil, errcode.NoExistPost
	}
	return post.Clone(), nil
}

func (s *FeedStore) IsLiked(userID string, postID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isLikedLocked(userID, postID)
}

func (s *FeedStore) Verification(ctx context.Context, userID string) *model.Verification {
	s.mu.RLock()
	v, ok := s.verifications[userID]
	s.mu.RUnlock()
	if !ok {
		s.mu.Lock()
		v = s.verificationLocked(ctx, userID)
		s.mu.Unlock()
	}
	res := *v
	return &res
}

func (s *FeedStore) IndexPosts(userID string, offset int, limit int) (*model.IndexPostsResp, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	total := len(s.posts)
	if offset < 0 {
		offset = 0
	}
	if offset > total {
		offset = total
	}
	end := total
	if limit > 0 && offset+limit < total {
		end = offset + limit
	}
	return &model.IndexPostsResp{
		Tweets:   s.formatLocked(userID, s.posts[offset:end]),
		Total:    int64(total),
		Revision: atomic.LoadUint64(&s.revision),
	}, nil
}

func (s *FeedStore) Revision() uint64 {
	return atomic.LoadUint64(&s.revision)
}

func (s *FeedStore) formatLocked(userID string, posts []*model.Post) []*model.PostFormatted {
	res := make([]*model.PostFormatted, 0, len(posts))
	for _, post := range posts {
		res = append(res, post.Format(userID, s.isLikedLocked(userID, post.ID)))
	}
	return res
}

func (s *FeedStore) isLikedLocked(userID string, postID string) bool {
	_, ok := s.likes[userID][postID]
	return ok
}

func (s *FeedStore) indexLocked(postID string) int {
	for i, post := range s.posts {
		if post.ID == postID {
			return i
		}
	}
	return -1
}

func (s *FeedStore) postLocked(postID string) *model.Post {
	if idx := s.indexLocked(postID); idx >= 0 {
		return s.posts[idx]
	}
	return nil
}

func (s *FeedStore) bumpLocked() {
	atomic.AddUint64(&s.revision, 1)
}

func (s *FeedStore) notify(act core.IdxAct, post *model.Post) {
	s.sinksMu.RLock()
	defer s.sinksMu.RUnlock()
	for _, sink := range s.sinks {
		sink.SendAction(act, post.Clone())
	}
}
