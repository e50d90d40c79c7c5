package feed

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// maxCardTags caps the assembled tag list per card.
const maxCardTags = 7

const idPrefix = "rss-"

// Maps feed categories onto sport categories; anything unknown falls
// back to football, as does the mixed "general" feed.
var categoryMapping = map[string]SportCategory{
	"football":   CategoryFootball,
	"basketball": CategoryBasketball,
	"tennis":     CategoryTennis,
	"chess":      CategoryChess,
	"cycling":    CategoryCycling,
	"motorsport": CategoryMotorsport,
	"esports":    CategoryEsports,
	"local":      CategoryLocal,
	"hockey":     CategoryHockey,
	"baseball":   CategoryBaseball,
	"golf":       CategoryGolf,
	"athletics":  CategoryAthletics,
	"swimming":   CategorySwimming,
	"boxing":     CategoryBoxing,
	"mma":        CategoryMMA,
	"rugby":      CategoryRugby,
	"cricket":    CategoryCricket,
	"general":    CategoryFootball,
}

// Normalizer assembles extracted data into immutable cards with
// session-unique identifiers.
type Normalizer struct {
	clock func() time.Time
}

func NewNormalizer() *Normalizer {
	return &Normalizer{clock: time.Now}
}

// Run builds a card from an admitted item and its extracted entities.
// seenIDs is the session's id registry; the chosen id is added to it
// before returning.
func (n *Normalizer) Run(item Item, entities Entities, seenIDs map[string]struct{}) Card {
	category := MapCategory(item.Category)
	id := n.buildID(item, seenIDs)

	imageURL := item.ImageURL
	imageSource := item.Source
	if imageURL == "" {
		imageURL, imageSource = FallbackImage(category)
	}

	return Card{
		ID:               id,
		Headline:         item.Title,
		Summary:          item.Description,
		OriginalTitle:    item.Title,
		ImageURL:         imageURL,
		ImageSource:      imageSource,
		Tags:             n.buildTags(id, item.Category, category, entities),
		PrimaryCategory:  category,
		SourceURL:        item.Link,
		SourceName:       item.Source,
		PublishedAt:      item.PublishedAt,
		IngestedAt:       n.clock(),
		HasPeopleContext: len(entities.Players) > 0,
		HasSportRules:    true,
		FullContent:      item.Description,
	}
}

// buildID derives a content-addressed id and probes numeric suffixes
// until it is unique within the session.
func (n *Normalizer) buildID(item Item, seenIDs map[string]struct{}) string {
	fingerprint := Fingerprint(item.Title, "")
	if runes := []rune(fingerprint); len(runes) > 20 {
		fingerprint = string(runes[:20])
	}

	base := idPrefix + fingerprint + "-" + strconv.FormatInt(n.clock().UnixMilli(), 10)

	id := base
	for counter := 1; ; counter++ {
		if _, taken := seenIDs[id]; !taken {
			break
		}
		id = fmt.Sprintf("%s-%d", base, counter)
	}
	seenIDs[id] = struct{}{}
	return id
}

// buildTags assembles the tag list: the sport first, then teams,
// players, events, leagues and topics, deduplicated by lowercased
// name and capped.
func (n *Normalizer) buildTags(cardID, feedCategory string, category SportCategory, entities Entities) []Tag {
	tags := []Tag{{
		ID:       "sport-" + cardID,
		Name:     titleCaser.String(feedCategory),
		Kind:     TagSport,
		Category: category,
	}}

	kinds := []struct {
		kind  TagKind
		names []string
	}{
		{TagTeam, entities.Teams},
		{TagPlayer, entities.Players},
		{TagEvent, entities.Events},
		{TagLeague, entities.Leagues},
		{TagTopic, entities.Topics},
	}

	for _, group := range kinds {
		for i, name := range group.names {
			tags = append(tags, Tag{
				ID:       fmt.Sprintf("%s-%s-%d", group.kind, cardID, i),
				Name:     name,
				Kind:     group.kind,
				Category: category,
			})
		}
	}

	seen := make(map[string]struct{}, len(tags))
	unique := tags[:0]
	for _, tag := range tags {
		key := strings.ToLower(tag.Name)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, tag)
		if len(unique) == maxCardTags {
			break
		}
	}

	return unique
}

// MapCategory resolves a feed category string to a sport category.
func MapCategory(feedCategory string) SportCategory {
	if category, ok := categoryMapping[feedCategory]; ok {
		return category
	}
	return CategoryFootball
}
