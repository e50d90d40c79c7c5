package feed

import (
	"time"
)

// SportCategory is the single sport classification driving default
// imagery and grouping.
type SportCategory string

const (
	CategoryFootball   SportCategory = "football"
	CategoryBasketball SportCategory = "basketball"
	CategoryTennis     SportCategory = "tennis"
	CategoryChess      SportCategory = "chess"
	CategoryCycling    SportCategory = "cycling"
	CategoryMotorsport SportCategory = "motorsport"
	CategoryEsports    SportCategory = "esports"
	CategoryLocal      SportCategory = "local"
	CategoryHockey     SportCategory = "hockey"
	CategoryBaseball   SportCategory = "baseball"
	CategoryGolf       SportCategory = "golf"
	CategoryAthletics  SportCategory = "athletics"
	CategorySwimming   SportCategory = "swimming"
	CategoryBoxing     SportCategory = "boxing"
	CategoryMMA        SportCategory = "mma"
	CategoryRugby      SportCategory = "rugby"
	CategoryCricket    SportCategory = "cricket"
)

// AllCategories lists every declared sport category.
var AllCategories = []SportCategory{
	CategoryFootball, CategoryBasketball, CategoryTennis, CategoryChess,
	CategoryCycling, CategoryMotorsport, CategoryEsports, CategoryLocal,
	CategoryHockey, CategoryBaseball, CategoryGolf, CategoryAthletics,
	CategorySwimming, CategoryBoxing, CategoryMMA, CategoryRugby,
	CategoryCricket,
}

type TagKind string

const (
	TagSport  TagKind = "sport"
	TagTeam   TagKind = "team"
	TagPlayer TagKind = "player"
	TagEvent  TagKind = "event"
	TagLeague TagKind = "league"
	TagTopic  TagKind = "topic"
)

// Tag is a named, typed entity attached to a card. Identity within a
// card is the lowercased name; ID is a presentation key only.
type Tag struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Kind     TagKind       `json:"type"`
	Category SportCategory `json:"category,omitempty"`
}

// Item is a single feed entry after parsing, before enrichment.
// Link and the (title, description) pair are the dedup keys.
type Item struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Link        string    `json:"link"`
	PublishedAt time.Time `json:"pubDate"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	Category    string    `json:"category"`
	Source      string    `json:"source"`
}

// AdData carries sponsored-card fields. Ads are injected by a
// separate path and never pass through the ingestion pipeline.
type AdData struct {
	Advertiser string `json:"advertiser"`
	CTA        string `json:"cta"`
	CTAURL     string `json:"ctaUrl"`
}

// Card is the normalized, displayable unit of news content. A card is
// immutable once built; the store only ever inserts, never rewrites.
type Card struct {
	ID               string        `json:"id"`
	Headline         string        `json:"headline"`
	Summary          string        `json:"summary"`
	OriginalTitle    string        `json:"originalTitle,omitempty"`
	ImageURL         string        `json:"imageUrl,omitempty"`
	ImageSource      string        `json:"imageSource,omitempty"`
	Tags             []Tag         `json:"tags"`
	PrimaryCategory  SportCategory `json:"primaryCategory"`
	SourceURL        string        `json:"sourceUrl"`
	SourceName       string        `json:"sourceName"`
	PublishedAt      time.Time     `json:"publishedAt"`
	IngestedAt       time.Time     `json:"ingestedAt"`
	HasPeopleContext bool          `json:"hasPeopleContext"`
	HasSportRules    bool          `json:"hasSportRules"`
	FullContent      string        `json:"fullContent,omitempty"`
	IsAd             bool          `json:"isAd,omitempty"`
	AdData           *AdData       `json:"adData,omitempty"`
}

// CardSink is the slice of the card store the pipeline writes to.
type CardSink interface {
	SetCards(cards []Card)
	AddCards(cards []Card)
}
