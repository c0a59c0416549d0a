package core

import (
	"fmt"

	"pujo-gallery/internal/model"
)

// IdxAct index action
type IdxAct uint8

const (
	IdxActNop IdxAct = iota + 1
	IdxActCreatePost
	IdxActUpdatePost
	IdxActDeletePost
	IdxActLikePost
	IdxActCommentPost
	IdxActSharePost
	IdxActVerifyUser
)

func (a IdxAct) String() string {
	switch a {
	case IdxActNop:
		return "no operator"
	case IdxActCreatePost:
		return "create post"
	case IdxActUpdatePost:
		return "update post"
	case IdxActDeletePost:
		return "delete post"
	case IdxActLikePost:
		return "like post"
	case IdxActCommentPost:
		return "comment post"
	case IdxActSharePost:
		return "share post"
	case IdxActVerifyUser:
		return "verify user"
	default:
		return fmt.Sprintf("unknown action(%d)", uint8(a))
	}
}

type IndexAction struct {
	Act  IdxAct
	Post *model.Post
}

func NewIndexAction(act IdxAct, post *model.Post) *IndexAction {
	return &IndexAction{
		Act:  act,
		Post: post,
	}
}

// IndexActionSink receives every mutation of the feed after it is applied.
// The post is a copy owned by the sink.
type IndexActionSink interface {
	SendAction(act IdxAct, post *model.Post)
}

type IndexPostsService interface {
	IndexPosts(userID string, offset int, limit int) (*model.IndexPostsResp, error)
	Revision() uint64
}

// CacheIndexService cache index service interface
type CacheIndexService interface {
	IndexPostsService
	IndexActionSink
}
