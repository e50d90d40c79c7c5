package feed

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// SourceRef is one upstream feed URL resolved for a request, tagged
// with the category the caller asked it to serve.
type SourceRef struct {
	URL      string
	Category string
}

// Catalog maps sport categories to upstream feed URL lists. The
// built-in defaults mirror the production feed set; a YAML file can
// replace them wholesale.
type Catalog struct {
	feeds map[string][]string
}

type catalogFile struct {
	Feeds map[string][]string `yaml:"feeds"`
}

var defaultFeeds = map[string][]string{
	"football": {
		"https://feeds.bbci.co.uk/sport/football/rss.xml",
		"https://www.espn.com/espn/rss/soccer/news",
	},
	"basketball": {
		"https://www.espn.com/espn/rss/nba/news",
		"https://feeds.bbci.co.uk/sport/basketball/rss.xml",
	},
	"tennis": {
		"https://feeds.bbci.co.uk/sport/tennis/rss.xml",
		"https://www.espn.com/espn/rss/tennis/news",
	},
	"cycling": {
		"https://feeds.bbci.co.uk/sport/cycling/rss.xml",
	},
	"motorsport": {
		"https://feeds.bbci.co.uk/sport/formula1/rss.xml",
		"https://www.espn.com/espn/rss/rpm/news",
	},
	"golf": {
		"https://feeds.bbci.co.uk/sport/golf/rss.xml",
		"https://www.espn.com/espn/rss/golf/news",
	},
	"athletics": {
		"https://feeds.bbci.co.uk/sport/athletics/rss.xml",
	},
	"boxing": {
		"https://feeds.bbci.co.uk/sport/boxing/rss.xml",
		"https://www.espn.com/espn/rss/boxing/news",
	},
	"rugby": {
		"https://feeds.bbci.co.uk/sport/rugby-union/rss.xml",
	},
	"cricket": {
		"https://feeds.bbci.co.uk/sport/cricket/rss.xml",
	},
	"hockey": {
		"https://www.espn.com/espn/rss/nhl/news",
	},
	"swimming": {
		"https://feeds.bbci.co.uk/sport/swimming/rss.xml",
	},
	"general": {
		"https://feeds.bbci.co.uk/sport/rss.xml",
		"https://www.espn.com/espn/rss/news",
	},
}

// NewCatalog builds a catalog from the YAML file at path, or from the
// built-in defaults when path is empty or the file does not exist.
func NewCatalog(path string) (*Catalog, error) {
	if path == "" {
		return &Catalog{feeds: defaultFeeds}, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &Catalog{feeds: defaultFeeds}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sources file: %w", err)
	}

	var parsed catalogFile
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse sources file: %w", err)
	}

	if len(parsed.Feeds) == 0 {
		return nil, fmt.Errorf("sources file %s declares no feeds", path)
	}
	if _, ok := parsed.Feeds["general"]; !ok {
		return nil, fmt.Errorf("sources file %s must declare a 'general' category", path)
	}
	for category, urls := range parsed.Feeds {
		if len(urls) == 0 {
			return nil, fmt.Errorf("category %q has no feed URLs", category)
		}
	}

	return &Catalog{feeds: parsed.Feeds}, nil
}

// Resolve expands a category selection into the URL set to fetch.
// Unknown categories fall back to the general list. An empty
// selection yields the default mix: everything general plus one feed
// each for the major sports.
func (c *Catalog) Resolve(categories []string) []SourceRef {
	var refs []SourceRef

	if len(categories) == 0 {
		for _, u := range c.feeds["general"] {
			refs = append(refs, SourceRef{URL: u, Category: "general"})
		}
		for _, category := range []string{"football", "basketball", "tennis"} {
			if urls := c.feeds[category]; len(urls) > 0 {
				refs = append(refs, SourceRef{URL: urls[0], Category: category})
			}
		}
		return refs
	}

	for _, category := range categories {
		urls, ok := c.feeds[category]
		if !ok {
			urls = c.feeds["general"]
		}
		for _, u := range urls {
			refs = append(refs, SourceRef{URL: u, Category: category})
		}
	}
	return refs
}

// Categories returns every category the catalog knows about.
func (c *Catalog) Categories() []string {
	categories := make([]string, 0, len(c.feeds))
	for category := range c.feeds {
		categories = append(categories, category)
	}
	return categories
}

var knownSources = map[string]string{
	"bbc":       "BBC Sport",
	"bbci":      "BBC Sport",
	"espn":      "ESPN",
	"skysports": "Sky Sports",
}

var titleCaser = cases.Title(language.English)

// SourceName derives a human-readable publisher name from a feed URL.
func SourceName(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return "Unknown"
	}

	host := strings.ToLower(u.Host)
	for domain, name := range knownSources {
		if strings.Contains(host, domain+".") || strings.Contains(host, "."+domain) {
			return name
		}
	}

	// Fall back to the registrable label: strip a www/feeds prefix and
	// the TLD, then title-case what remains.
	parts := strings.Split(host, ".")
	if len(parts) >= 2 {
		label := parts[len(parts)-2]
		if label != "" {
			return titleCaser.String(label)
		}
	}
	return "Unknown"
}
