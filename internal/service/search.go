package service

import (
	"github.com/sirupsen/logrus"
	"pujo-gallery/internal/core"
	"pujo-gallery/internal/model"
)

var _ core.IndexActionSink = (*searchIndexer)(nil)

// searchIndexer keeps the search index in step with the feed.
type searchIndexer struct {
	ts core.TweetSearchService
}

func NewSearchIndexer(ts core.TweetSearchService) core.IndexActionSink {
	return &searchIndexer{ts: ts}
}

func (s *searchIndexer) SendAction(act core.IdxAct, post *model.Post) {
	if post == nil {
		return
	}
	switch act {
	case core.IdxActDeletePost:
		if err := s.ts.DeleteDocuments([]string{post.ID}); err != nil {
			logrus.Errorf("service.searchIndexer delete post %s err: %v", post.ID, err)
		}
	case core.IdxActNop:
	default:
		PushPostToSearch(s.ts, post)
	}
}

func postDocument(post *model.Post) map[string]interface{} {
	return map[string]interface{}{
		"id":            post.ID,
		"author_id":     post.Author.ID,
		"author_name":   post.Author.Name,
		"content":       post.Content,
		"tags":          model.HashtagsOf(post.Content),
		"kind":          post.Kind,
		"created_on":    post.CreatedOn,
		"like_count":    post.LikeCount,
		"comment_count": post.CommentCount,
		"share_count":   post.ShareCount,
	}
}

func PushPostToSearch(ts core.TweetSearchService, post *model.Post) {
	if _, err := ts.AddDocuments(core.DocItems{postDocument(post)}, "id"); err != nil {
		logrus.Errorf("service.PushPostToSearch add post %s err: %v", post.ID, err)
	}
}

// PushPostsToSearch reindexes the whole feed in batches.
func PushPostsToSearch(ts core.TweetSearchService, store *FeedStore) {
	splitNum := 1000
	posts := store.RawPosts()
	for start := 0; start < len(posts); start += splitNum {
		end := start + splitNum
		if end > len(posts) {
			end = len(posts)
		}
		docs := make(core.DocItems, 0, end-start)
		for _, post := range posts[start:end] {
			docs = append(docs, postDocument(post))
		}
		if _, err := ts.AddDocuments(docs, "id"); err != nil {
			logrus.Errorf("service.PushPostsToSearch add documents err: %v", err)
		}
	}
	logrus.Infof("service.PushPostsToSearch pushed %d posts to %s", len(posts), ts.IndexName())
}

// SearchPosts resolves hits through the store so results carry the current
// state and posts deleted since indexing drop out.
func SearchPosts(ts core.TweetSearchService, store *FeedStore, userID string, q *core.QueryReq, offset, limit int) ([]*model.PostFormatted, int64, error) {
	resp, err := ts.Search(q, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	posts := make([]*model.PostFormatted, 0, len(resp.IDs))
	total := resp.Total
	for _, id := range resp.IDs {
		post, err := store.Post(userID, id)
		if err != nil {
			total--
			continue
		}
		posts = append(posts, post)
	}
	return posts, total, nil
}
