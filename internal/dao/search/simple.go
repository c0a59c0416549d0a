package search

import (
	"sort"
	"strings"
	"sync"

	"github.com/Masterminds/semver/v3"
	"github.com/gogf/gf/util/gconv"
	"pujo-gallery/internal/core"
)

var (
	_ core.TweetSearchService = (*simpleTweetSearchServant)(nil)
	_ core.VersionInfo        = (*simpleTweetSearchServant)(nil)
)

type simpleDoc struct {
	id         string
	authorID   string
	authorName string
	content    string
	tags       []string
	createdOn  int64
}

// simpleTweetSearchServant keeps the index in process and scans it per query.
type simpleTweetSearchServant struct {
	indexName string

	mu   sync.RWMutex
	docs map[string]*simpleDoc
}

func newSimpleTweetSearchServant(indexName string) *simpleTweetSearchServant {
	return &simpleTweetSearchServant{
		indexName: indexName,
		docs:      make(map[string]*simpleDoc),
	}
}

func (s *simpleTweetSearchServant) Name() string {
	return "Simple"
}

func (s *simpleTweetSearchServant) Version() *semver.Version {
	return semver.MustParse("v0.1.0")
}

func (s *simpleTweetSearchServant) IndexName() string {
	return s.indexName
}

func (s *simpleTweetSearchServant) AddDocuments(data core.DocItems, primaryKey ...string) (bool, error) {
	key := "id"
	if len(primaryKey) > 0 && primaryKey[0] != "" {
		key = primaryKey[0]
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range data {
		id := gconv.String(item[key])
		if id == "" {
			continue
		}
		s.docs[id] = &simpleDoc{
			id:         id,
			authorID:   gconv.String(item["author_id"]),
			authorName: strings.ToLower(gconv.String(item["author_name"])),
			content:    strings.ToLower(gconv.String(item["content"])),
			tags:       gconv.Strings(item["tags"]),
			createdOn:  gconv.Int64(item["created_on"]),
		}
	}
	return true, nil
}

func (s *simpleTweetSearchServant) DeleteDocuments(identifiers []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range identifiers {
		delete(s.docs, id)
	}
	return nil
}

func (s *simpleTweetSearchServant) Search(q *core.QueryReq, offset, limit int) (*core.QueryResp, error) {
	s.mu.RLock()
	matched := make([]*simpleDoc, 0, len(s.docs))
	for _, doc := range s.docs {
		if doc.match(q) {
			matched = append(matched, doc)
		}
	}
	s.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool {
		if matched[i].createdOn != matched[j].createdOn {
			return matched[i].createdOn > matched[j].createdOn
		}
		return matched[i].id > matched[j].id
	})

	resp := &core.QueryResp{
		IDs:   []string{},
		Total: int64(len(matched)),
	}
	if offset < 0 {
		offset = 0
	}
	if offset >= len(matched) {
		return resp, nil
	}
	end := len(matched)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	for _, doc := range matched[offset:end] {
		resp.IDs = append(resp.IDs, doc.id)
	}
	return resp, nil
}

func (d *simpleDoc) match(q *core.QueryReq) bool {
	if q.Query == "" {
		return true
	}
	switch q.Type {
	case core.SearchTypeTag:
		tag := "#" + strings.TrimPrefix(q.Query, "#")
		for _, t := range d.tags {
			if strings.EqualFold(t, tag) {
				return true
			}
		}
		return false
	case core.SearchTypeAuthor:
		return d.authorID == q.Query
	default:
		query := strings.ToLower(q.Query)
		return strings.Contains(d.content, query) || strings.Contains(d.authorName, query)
	}
}
