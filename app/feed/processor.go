package feed

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"time"
)

// ErrFetchInProgress marks a reentrant fetch for a session that
// already has one in flight.
var ErrFetchInProgress = errors.New("fetch already in progress for this session")

// ErrAllSourcesFailed is returned only when not a single upstream URL
// could be fetched; partial failure is absorbed silently.
var ErrAllSourcesFailed = errors.New("all feed sources failed")

// Request is the ingestion entrypoint's input shape.
type Request struct {
	Categories []string
	Limit      int
	Append     bool
	SessionID  string
}

// Result carries the admitted raw items and the cards built from
// them, in final display order.
type Result struct {
	Items []Item
	Cards []Card
}

// Processor wires the pipeline end to end: resolve sources, fetch,
// sort, dedupe, extract, normalize, and hand the batch to the card
// store.
type Processor struct {
	catalog      *Catalog
	fetcher      *Fetcher
	extractor    *Extractor
	normalizer   *Normalizer
	sessions     *SessionRegistry
	sink         CardSink
	defaultLimit int
}

func NewProcessor(catalog *Catalog, fetcher *Fetcher, extractor *Extractor,
	normalizer *Normalizer, sessions *SessionRegistry, sink CardSink, defaultLimit int) *Processor {
	if defaultLimit <= 0 {
		defaultLimit = 20
	}
	return &Processor{
		catalog:      catalog,
		fetcher:      fetcher,
		extractor:    extractor,
		normalizer:   normalizer,
		sessions:     sessions,
		sink:         sink,
		defaultLimit: defaultLimit,
	}
}

// Run executes one feed request. Per-source failures yield empty
// contributions; only a request that produces nothing from any source
// fails as a whole.
func (p *Processor) Run(ctx context.Context, req Request) (*Result, error) {
	started := time.Now()

	session := p.sessions.Get(req.SessionID)
	if !session.Begin(req.Categories) {
		return nil, ErrFetchInProgress
	}
	defer session.End()

	limit := req.Limit
	if limit <= 0 {
		limit = p.defaultLimit
	}

	refs := p.catalog.Resolve(req.Categories)
	fetched, okCount := p.fetcher.Run(ctx, refs)
	if okCount == 0 && len(refs) > 0 {
		return nil, ErrAllSourcesFailed
	}

	// Merge order across sources is arbitrary; the final contract is
	// newest first, stable for equal timestamps.
	sort.SliceStable(fetched, func(i, j int) bool {
		return fetched[i].PublishedAt.After(fetched[j].PublishedAt)
	})
	if len(fetched) > limit {
		fetched = fetched[:limit]
	}

	items := make([]Item, 0, len(fetched))
	cards := make([]Card, 0, len(fetched))
	for _, item := range fetched {
		if !session.deduper.Admit(item) {
			continue
		}
		entities := p.extractor.Run(item.Title, item.Description)
		cards = append(cards, p.normalizer.Run(item, entities, session.seenIDs))
		items = append(items, item)
	}

	if req.Append {
		p.sink.AddCards(cards)
	} else {
		p.sink.SetCards(cards)
	}

	slog.Info("Feed request processed",
		"session", session.id,
		"categories", req.Categories,
		"sources", len(refs),
		"sources_ok", okCount,
		"fetched", len(fetched),
		"duplicates", len(fetched)-len(items),
		"cards", len(cards),
		"duration", time.Since(started))

	return &Result{Items: items, Cards: cards}, nil
}
