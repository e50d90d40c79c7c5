package feed

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"
)

// Fetcher retrieves and parses upstream feeds concurrently. Every URL
// has its own failure boundary: a dead or slow source contributes
// nothing and never aborts its siblings.
type Fetcher struct {
	httpClient *http.Client
	parser     *Parser
	userAgent  string
	timeout    time.Duration
}

func NewFetcher(httpClient *http.Client, parser *Parser, userAgent string, timeout time.Duration) *Fetcher {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Fetcher{
		httpClient: httpClient,
		parser:     parser,
		userAgent:  userAgent,
		timeout:    timeout,
	}
}

// Run fetches all refs in parallel and returns the concatenated items
// plus the number of sources that responded successfully. Order across
// sources is not guaranteed; the processor re-sorts the merge.
func (f *Fetcher) Run(ctx context.Context, refs []SourceRef) ([]Item, int) {
	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		items   []Item
		okCount int
	)

	for _, ref := range refs {
		wg.Add(1)
		go func(ref SourceRef) {
			defer wg.Done()

			fetched, err := f.fetchOne(ctx, ref)
			if err != nil {
				slog.Warn("Feed source failed",
					"url", ref.URL,
					"category", ref.Category,
					"error", err)
				return
			}

			mu.Lock()
			items = append(items, fetched...)
			okCount++
			mu.Unlock()
		}(ref)
	}
	wg.Wait()

	return items, okCount
}

func (f *Fetcher) fetchOne(ctx context.Context, ref SourceRef) ([]Item, error) {
	timeoutCtx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(timeoutCtx, http.MethodGet, ref.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	items, err := f.parser.Run(data, ref.Category, SourceName(ref.URL))
	if err != nil {
		return nil, err
	}

	slog.Debug("Feed source fetched", "url", ref.URL, "items", len(items))
	return items, nil
}
