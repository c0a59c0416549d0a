package api

import (
	"errors"

	"github.com/sirupsen/logrus"
	"pujo-gallery/internal/core"
	"pujo-gallery/internal/service"
	"pujo-gallery/pkg/app"
	"pujo-gallery/pkg/errcode"
	"pujo-gallery/pkg/richtext"
)

// Server holds what the handlers act on. It is built once by the
// composition root and shared by every request.
type Server struct {
	store     *service.FeedStore
	cache     core.CacheIndexService
	ts        core.TweetSearchService
	oss       core.ObjectStorageService
	formatter richtext.Formatter
	servants  []core.VersionInfo
}

func New(store *service.FeedStore, cache core.CacheIndexService, ts core.TweetSearchService, oss core.ObjectStorageService, servants ...core.VersionInfo) *Server {
	return &Server{
		store:     store,
		cache:     cache,
		ts:        ts,
		oss:       oss,
		formatter: richtext.Markdown{},
		servants:  servants,
	}
}

// toErrorResponse answers with err when it is already an errcode, or with
// fallback after logging it.
func toErrorResponse(response *app.Response, where string, err error, fallback *errcode.Error) {
	var cErr *errcode.Error
	if errors.As(err, &cErr) {
		response.ToErrorResponse(cErr)
		return
	}
	logrus.Errorf("%s err: %v", where, err)
	response.ToErrorResponse(fallback)
}

func bindErrorResponse(response *app.Response, errs app.ValidErrors) {
	logrus.Errorf("app.BindAndValid errs: %v", errs)
	response.ToErrorResponse(errcode.InvalidParams.WithDetails(errs.Errors()...))
}
