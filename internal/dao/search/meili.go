package search

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/gogf/gf/util/gconv"
	"github.com/meilisearch/meilisearch-go"
	"github.com/sirupsen/logrus"
	"pujo-gallery/internal/core"
)

var (
	_ core.TweetSearchService = (*meiliTweetSearchServant)(nil)
	_ core.VersionInfo        = (*meiliTweetSearchServant)(nil)
)

type meiliTweetSearchServant struct {
	client *meilisearch.Client
	index  *meilisearch.Index
}

func (s *meiliTweetSearchServant) Name() string {
	return "Meili"
}

func (s *meiliTweetSearchServant) Version() *semver.Version {
	return semver.MustParse("v0.2.0")
}

func (s *meiliTweetSearchServant) IndexName() string {
	return s.index.UID
}

func (s *meiliTweetSearchServant) AddDocuments(data core.DocItems, primaryKey ...string) (bool, error) {
	if len(data) == 0 {
		return true, nil
	}
	if _, err := s.index.AddDocuments(data, primaryKey...); err != nil {
		logrus.Errorf("meiliTweetSearchServant.AddDocuments error: %s", err)
		return false, err
	}
	return true, nil
}

func (s *meiliTweetSearchServant) DeleteDocuments(identifiers []string) error {
	task, err := s.index.DeleteDocuments(identifiers)
	if err != nil {
		logrus.Errorf("meiliTweetSearchServant.DeleteDocuments error: %s", err)
		return err
	}
	logrus.Debugf("meiliTweetSearchServant.DeleteDocuments task: (taskUID:%d, indexUID:%s, status:%s)", task.TaskUID, task.IndexUID, task.Status)
	return nil
}

func (s *meiliTweetSearchServant) Search(q *core.QueryReq, offset, limit int) (resp *core.QueryResp, err error) {
	request := &meilisearch.SearchRequest{
		Offset:               int64(offset),
		Limit:                int64(limit),
		Sort:                 []string{"created_on:desc"},
		AttributesToRetrieve: []string{"id"},
	}
	query := q.Query
	switch {
	case q.Type == core.SearchTypeTag && q.Query != "":
		request.Filter = fmt.Sprintf("tags = %q", "#"+strings.TrimPrefix(q.Query, "#"))
		query = ""
	case q.Type == core.SearchTypeAuthor && q.Query != "":
		request.Filter = fmt.Sprintf("author_id = %q", q.Query)
		query = ""
	}

	var result *meilisearch.SearchResponse
	if result, err = s.index.Search(query, request); err != nil {
		logrus.Errorf("meiliTweetSearchServant.Search searchType:%s query:%s error:%v", q.Type, q.Query, err)
		return
	}
	resp = &core.QueryResp{
		IDs:   make([]string, 0, len(result.Hits)),
		Total: result.TotalHits,
	}
	if resp.Total == 0 {
		resp.Total = result.EstimatedTotalHits
	}
	for _, hit := range result.Hits {
		if doc, ok := hit.(map[string]interface{}); ok {
			resp.IDs = append(resp.IDs, gconv.String(doc["id"]))
		}
	}
	logrus.Debugf("meiliTweetSearchServant.Search type:%s query:%s resp Hits:%d NbHits:%d offset: %d limit:%d ", q.Type, q.Query, len(resp.IDs), resp.Total, offset, limit)
	return
}
