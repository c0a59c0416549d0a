package core

const (
	SearchTypeDefault SearchType = "search"
	SearchTypeTag     SearchType = "tag"
	SearchTypeAuthor  SearchType = "author"
)

type (
	SearchType string

	// QueryReq Query holds the text, the hashtag or the author id depending on Type.
	QueryReq struct {
		Query string
		Type  SearchType
	}

	// QueryResp carries matching post ids, newest first.
	QueryResp struct {
		IDs   []string
		Total int64
	}
)

type DocItems []map[string]interface{}

// TweetSearchService tweet search service interface
type TweetSearchService interface {
	IndexName() string
	AddDocuments(documents DocItems, primaryKey ...string) (bool, error)
	DeleteDocuments(identifiers []string) error
	Search(q *QueryReq, offset, limit int) (*QueryResp, error)
}
