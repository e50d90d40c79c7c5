package api

import (
	"github.com/sportscroll/sportscroll/app/feed"
	"github.com/sportscroll/sportscroll/app/store"
)

var _ feed.CardSink = (*store.Store)(nil)

// FeedRequest is the ingestion entrypoint's body. An empty category
// list means the default mix; Limit bounds the merged, sorted output.
type FeedRequest struct {
	Categories []string `json:"categories"`
	Limit      int      `json:"limit"`
	Append     bool     `json:"append"`
	SessionID  string   `json:"sessionId"`
}

// FeedResponse is the ingestion envelope. Error is set only when the
// whole request failed; per-source failures are absorbed upstream.
type FeedResponse struct {
	Success bool        `json:"success"`
	Items   []feed.Item `json:"items,omitempty"`
	Cards   []feed.Card `json:"cards,omitempty"`
	Count   int         `json:"count"`
	Error   string      `json:"error,omitempty"`
}

type Handler struct {
	processor *feed.Processor
	store     *store.Store
	extractor *feed.ContentExtractor
	catalog   *feed.Catalog
	sessions  *feed.SessionRegistry
}
