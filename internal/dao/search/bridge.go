package search

import (
	"github.com/sirupsen/logrus"
	"pujo-gallery/internal/core"
)

var (
	_ core.TweetSearchService = (*bridgeTweetSearchServant)(nil)
)

type documents struct {
	primaryKey  []string
	docItems    core.DocItems
	identifiers []string
}

// bridgeTweetSearchServant hands document updates to background workers and
// searches synchronously.
type bridgeTweetSearchServant struct {
	ts               core.TweetSearchService
	updateDocsCh     chan *documents
	updateDocsTempCh chan *documents
}

func (s *bridgeTweetSearchServant) IndexName() string {
	return s.ts.IndexName()
}

func (s *bridgeTweetSearchServant) AddDocuments(data core.DocItems, primaryKey ...string) (bool, error) {
	s.updateDocs(&documents{
		primaryKey: primaryKey,
		docItems:   data,
	})
	return true, nil
}

func (s *bridgeTweetSearchServant) DeleteDocuments(identifiers []string) error {
	s.updateDocs(&documents{
		identifiers: identifiers,
	})
	return nil
}

func (s *bridgeTweetSearchServant) Search(q *core.QueryReq, offset, limit int) (*core.QueryResp, error) {
	return s.ts.Search(q, offset, limit)
}

func (s *bridgeTweetSearchServant) updateDocs(doc *documents) {
	select {
	case s.updateDocsCh <- doc:
		logrus.Debugln("addDocuments send documents by updateDocsCh chan")
	default:
		select {
		case s.updateDocsTempCh <- doc:
			logrus.Debugln("addDocuments send documents by updateDocsTempCh chan")
		default:
			go func() {
				s.updateDocsCh <- doc
				logrus.Debugln("addDocuments send documents by updateDocsCh chan in goroutine")
			}()
		}
	}
}

func (s *bridgeTweetSearchServant) startUpdateDocs() {
	for {
		select {
		case doc := <-s.updateDocsCh:
			s.handleUpdate(doc)
		case doc := <-s.updateDocsTempCh:
			s.handleUpdate(doc)
		}
	}
}

func (s *bridgeTweetSearchServant) handleUpdate(doc *documents) {
	if len(doc.docItems) > 0 {
		if _, err := s.ts.AddDocuments(doc.docItems, doc.primaryKey...); err != nil {
			logrus.Errorf("bridgeTweetSearchServant.handleUpdate add documents err: %v", err)
		}
	}
	if len(doc.identifiers) > 0 {
		if err := s.ts.DeleteDocuments(doc.identifiers); err != nil {
			logrus.Errorf("bridgeTweetSearchServant.handleUpdate delete documents err: %v", err)
		}
	}
}
