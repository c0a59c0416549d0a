package api

import (
	"strings"

	"github.com/gin-gonic/gin"
	"pujo-gallery/internal/conf"
	"pujo-gallery/internal/core"
	"pujo-gallery/internal/middleware"
	"pujo-gallery/internal/service"
	"pujo-gallery/pkg/app"
	"pujo-gallery/pkg/convert"
	"pujo-gallery/pkg/errcode"
)

func (s *Server) GetPostList(c *gin.Context) {
	response := app.NewResponse(c)
	user := middleware.UserFrom(c)
	offset, limit := app.GetPageOffset(c)

	resp, err := s.cache.IndexPosts(user.ID, offset, limit)
	if err != nil {
		toErrorResponse(response, "cache.IndexPosts", err, errcode.GetPostsFailed)
		return
	}
	response.ToResponseList(resp.Tweets, resp.Total)
}

func (s *Server) GetPost(c *gin.Context) {
	response := app.NewResponse(c)
	postID := convert.StrTo(c.Query("id")).String()
	if postID == "" {
		response.ToErrorResponse(errcode.InvalidParams.WithDetails("id is required"))
		return
	}

	post, err := s.store.Post(middleware.UserFrom(c).ID, postID)
	if err != nil {
		toErrorResponse(response, "service.GetPost", err, errcode.GetPostFailed)
		return
	}
	response.ToResponse(post)
}

func (s *Server) CreatePost(c *gin.Context) {
	param := service.PostCreationReq{}
	response := app.NewResponse(c)
	valid, errs := app.BindAndValid(c, &param)
	if !valid {
		bindErrorResponse(response, errs)
		return
	}

	user := middleware.UserFrom(c)
	draft := param.Draft(user)
	if draft.IsEmpty() {
		response.ToErrorResponse(errcode.InvalidParams.WithDetails("content or media is required"))
		return
	}

	post := s.store.CreatePost(c.Request.Context(), draft)
	response.ToResponse(post.Format(user.ID, false))
}

func (s *Server) DeletePost(c *gin.Context) {
	response := app.NewResponse(c)
	postID := c.Query("id")
	if postID == "" {
		param := service.PostDelReq{}
		if valid, errs := app.BindAndValid(c, &param); !valid {
			bindErrorResponse(response, errs)
			return
		}
		postID = param.ID
	}

	user := middleware.UserFrom(c)
	if err := s.store.DeletePostBy(c.Request.Context(), user.ID, postID); err != nil {
		toErrorResponse(response, "service.DeletePost", err, errcode.DeletePostFailed)
		return
	}
	response.ToResponse(nil)
}

func (s *Server) GetPostLike(c *gin.Context) {
	response := app.NewResponse(c)
	postID := c.Query("id")
	user := middleware.UserFrom(c)

	if _, err := s.store.Post(user.ID, postID); err != nil {
		toErrorResponse(response, "service.GetPost", err, errcode.GetPostFailed)
		return
	}
	response.ToResponse(gin.H{
		"status": s.store.IsLiked(user.ID, postID),
	})
}

func (s *Server) PostLike(c *gin.Context) {
	param := service.PostLikeReq{}
	response := app.NewResponse(c)
	valid, errs := app.BindAndValid(c, &param)
	if !valid {
		bindErrorResponse(response, errs)
		return
	}

	post, liked, err := s.store.Like(c.Request.Context(), middleware.UserFrom(c).ID, param.ID)
	if err != nil {
		toErrorResponse(response, "service.Like", err, errcode.LikePostFailed)
		return
	}
	response.ToResponse(gin.H{
		"status":     liked,
		"like_count": post.LikeCount,
	})
}

func (s *Server) CreateComment(c *gin.Context) {
	param := service.CommentCreationReq{}
	response := app.NewResponse(c)
	valid, errs := app.BindAndValid(c, &param)
	if !valid {
		bindErrorResponse(response, errs)
		return
	}
	if strings.TrimSpace(param.Text) == "" {
		response.ToErrorResponse(errcode.InvalidParams.WithDetails("text is required"))
		return
	}

	comment, err := s.store.AddComment(c.Request.Context(), param.PostID, param.Draft(middleware.UserFrom(c)))
	if err != nil {
		toErrorResponse(response, "service.AddComment", err, errcode.CreateCommentFailed)
		return
	}
	response.ToResponse(comment)
}

// SharePost resolves the hand-off target before counting the share, an
// unknown platform leaves the post untouched.
func (s *Server) SharePost(c *gin.Context) {
	param := service.PostShareReq{}
	response := app.NewResponse(c)
	valid, errs := app.BindAndValid(c, &param)
	if !valid {
		bindErrorResponse(response, errs)
		return
	}

	post, err := s.store.RawPost(param.ID)
	if err != nil {
		toErrorResponse(response, "service.RawPost", err, errcode.SharePostFailed)
		return
	}
	target, err := service.ShareTargetOf(conf.AppSetting.Host, post, service.SharePlatform(param.Platform))
	if err != nil {
		toErrorResponse(response, "service.ShareTargetOf", err, errcode.SharePostFailed)
		return
	}

	shared, err := s.store.SharePost(c.Request.Context(), param.ID)
	if err != nil {
		toErrorResponse(response, "service.SharePost", err, errcode.SharePostFailed)
		return
	}
	response.ToResponse(gin.H{
		"share_count": shared.ShareCount,
		"link":        service.ShareLink(conf.AppSetting.Host, shared.ID),
		"target":      target,
		"targets":     service.ShareTargets(conf.AppSetting.Host, shared),
	})
}

func (s *Server) GetPostTags(c *gin.Context) {
	limit := convert.StrTo(c.Query("num")).MustInt()
	if limit <= 0 {
		limit = conf.AppSetting.TrendingLimit
	}
	tags := service.TrendingTags(s.store.RawPosts(), limit, conf.AppSetting.FallbackHashtags)
	app.NewResponse(c).ToResponse(tags)
}

func (s *Server) Search(c *gin.Context) {
	response := app.NewResponse(c)
	q := &core.QueryReq{
		Query: strings.TrimSpace(c.Query("query")),
		Type:  core.SearchTypeDefault,
	}
	switch core.SearchType(c.Query("type")) {
	case core.SearchTypeTag:
		q.Type = core.SearchTypeTag
	case core.SearchTypeAuthor:
		q.Type = core.SearchTypeAuthor
	}

	offset, limit := app.GetPageOffset(c)
	posts, total, err := service.SearchPosts(s.ts, s.store, middleware.UserFrom(c).ID, q, offset, limit)
	if err != nil {
		toErrorResponse(response, "service.SearchPosts", err, errcode.SearchFailed)
		return
	}
	response.ToResponseList(posts, total)
}
