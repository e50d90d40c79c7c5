package feed

import (
	"bytes"
	"cmp"
	"fmt"
	"html"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/araddon/dateparse"
	"github.com/mmcdole/gofeed"
)

// Parser turns one raw feed document into pipeline items. gofeed
// carries the tolerant RSS/Atom/CDATA handling; this layer applies
// the field fallbacks, image discovery and text cleanup on top.
type Parser struct {
	gofeedParser *gofeed.Parser
	maxItems     int
}

func NewParser(maxItems int) *Parser {
	if maxItems <= 0 {
		maxItems = 10
	}
	return &Parser{
		gofeedParser: gofeed.NewParser(),
		maxItems:     maxItems,
	}
}

// Run parses feed data and returns the normalized items, tagged with
// the requested category and source name. Items missing a title or a
// link are dropped. At most maxItems items are taken per document.
func (p *Parser) Run(data []byte, category, source string) ([]Item, error) {
	parsed, err := p.gofeedParser.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	items := make([]Item, 0, min(len(parsed.Items), p.maxItems))
	for _, raw := range parsed.Items {
		if len(items) >= p.maxItems {
			break
		}

		item := p.normalizeItem(raw, category, source)
		if item.Title == "" || item.Link == "" {
			continue
		}
		items = append(items, item)
	}

	return items, nil
}

func (p *Parser) normalizeItem(raw *gofeed.Item, category, source string) Item {
	description := cmp.Or(raw.Description, raw.Content)

	return Item{
		Title:       cleanText(raw.Title),
		Description: cleanText(description),
		Link:        strings.TrimSpace(cmp.Or(raw.Link, raw.GUID)),
		PublishedAt: p.publishedAt(raw),
		ImageURL:    p.extractImage(raw, description),
		Category:    category,
		Source:      source,
	}
}

// publishedAt resolves the publish date: the parsed pubDate first,
// then the raw pubDate or dc:date strings gofeed left unparsed,
// defaulting to now so every item stays sortable.
func (p *Parser) publishedAt(raw *gofeed.Item) time.Time {
	if raw.PublishedParsed != nil {
		return *raw.PublishedParsed
	}

	candidates := []string{raw.Published}
	if raw.DublinCoreExt != nil {
		candidates = append(candidates, raw.DublinCoreExt.Date...)
	}
	for _, candidate := range candidates {
		if candidate == "" {
			continue
		}
		if t, err := dateparse.ParseAny(candidate); err == nil {
			return t
		}
	}

	return time.Now()
}

// extractImage tries, in order: media:content / media:thumbnail
// extension URLs, an image-typed enclosure, then the first <img> tag
// inside the description HTML. No image is a valid outcome; the
// normalizer assigns category fallbacks later.
func (p *Parser) extractImage(raw *gofeed.Item, description string) string {
	if u := mediaExtensionURL(raw); u != "" {
		return u
	}

	for _, enclosure := range raw.Enclosures {
		if enclosure == nil {
			continue
		}
		if strings.HasPrefix(enclosure.Type, "image") && enclosure.URL != "" {
			return enclosure.URL
		}
	}

	return imageFromHTML(description)
}

func mediaExtensionURL(raw *gofeed.Item) string {
	media, ok := raw.Extensions["media"]
	if !ok {
		return ""
	}
	for _, name := range []string{"content", "thumbnail"} {
		for _, extension := range media[name] {
			if u := extension.Attrs["url"]; u != "" {
				return u
			}
		}
	}
	return ""
}

func imageFromHTML(fragment string) string {
	if !strings.Contains(fragment, "<img") {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return ""
	}

	src, _ := doc.Find("img[src]").First().Attr("src")
	return src
}

var (
	tagRe        = regexp.MustCompile(`<[^>]*>`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// cleanText strips markup, unescapes HTML entities and collapses
// whitespace. Every stored text field goes through this.
func cleanText(s string) string {
	s = tagRe.ReplaceAllString(s, " ")
	s = html.UnescapeString(s)
	s = whitespaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
