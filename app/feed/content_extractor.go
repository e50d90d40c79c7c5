package feed

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	readability "github.com/go-shiori/go-readability"
)

// ContentExtractor pulls the readable article body from a card's
// source page, on demand. Cards themselves stay immutable; the
// extracted text is returned to the caller only.
type ContentExtractor struct {
	httpClient *http.Client
	userAgent  string
	timeout    time.Duration
}

func NewContentExtractor(httpClient *http.Client, userAgent string, timeout time.Duration) *ContentExtractor {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &ContentExtractor{
		httpClient: httpClient,
		userAgent:  userAgent,
		timeout:    timeout,
	}
}

// Run fetches the article at url and extracts its main text content.
func (e *ContentExtractor) Run(ctx context.Context, url string) (string, error) {
	data, err := e.fetchPage(ctx, url)
	if err != nil {
		return "", err
	}

	article, err := readability.FromReader(strings.NewReader(string(data)), nil)
	if err != nil {
		return "", fmt.Errorf("failed to extract content: %w", err)
	}

	text := strings.TrimSpace(article.TextContent)
	if text == "" {
		return "", fmt.Errorf("no content extracted from %s", url)
	}

	slog.Debug("Content extracted",
		"url", url,
		"title", article.Title,
		"content_length", len(text))

	return text, nil
}

func (e *ContentExtractor) fetchPage(ctx context.Context, url string) ([]byte, error) {
	timeoutCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(timeoutCtx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", e.userAgent)

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return data, nil
}
