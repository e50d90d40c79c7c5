package store

import (
	"testing"
	"time"

	"github.com/sportscroll/sportscroll/app/feed"
)

func cardWithTags(id string, category feed.SportCategory, publishedAt time.Time, tagNames ...string) feed.Card {
	tags := make([]feed.Tag, len(tagNames))
	for i, name := range tagNames {
		tags[i] = feed.Tag{ID: id + "-" + name, Name: name, Kind: feed.TagTopic, Category: category}
	}
	return feed.Card{
		ID:              id,
		Headline:        "Headline " + id,
		Tags:            tags,
		PrimaryCategory: category,
		PublishedAt:     publishedAt,
	}
}

func TestSetCardsUpserts(t *testing.T) {
	s := New()

	original := cardWithTags("c1", feed.CategoryFootball, time.Now(), "x")
	s.SetCards([]feed.Card{original})

	updated := original
	updated.Headline = "Updated headline"
	s.SetCards([]feed.Card{updated})

	got, ok := s.GetCard("c1")
	if !ok {
		t.Fatal("Card not found after upsert")
	}
	if got.Headline != "Updated headline" {
		t.Errorf("SetCards should overwrite, got: %q", got.Headline)
	}
	if s.Count() != 1 {
		t.Errorf("Expected 1 card, got %d", s.Count())
	}
}

func TestAddCardsDoesNotClobber(t *testing.T) {
	s := New()

	original := cardWithTags("c1", feed.CategoryFootball, time.Now(), "x")
	s.SetCards([]feed.Card{original})

	replacement := original
	replacement.Headline = "Should not appear"
	fresh := cardWithTags("c2", feed.CategoryTennis, time.Now(), "y")
	s.AddCards([]feed.Card{replacement, fresh})

	got, _ := s.GetCard("c1")
	if got.Headline != original.Headline {
		t.Errorf("AddCards must not overwrite existing cards, got: %q", got.Headline)
	}
	if _, ok := s.GetCard("c2"); !ok {
		t.Error("AddCards should insert new cards")
	}
}

func TestBatchIsAtomicForListeners(t *testing.T) {
	s := New()

	observed := make([]int, 0, 2)
	unsubscribe := s.Subscribe(func() {
		observed = append(observed, s.Count())
	})
	defer unsubscribe()

	batch := []feed.Card{
		cardWithTags("c1", feed.CategoryFootball, time.Now(), "x"),
		cardWithTags("c2", feed.CategoryFootball, time.Now(), "y"),
		cardWithTags("c3", feed.CategoryFootball, time.Now(), "z"),
	}
	s.SetCards(batch)

	if len(observed) != 1 {
		t.Fatalf("Expected one notification per batch, got %d", len(observed))
	}
	if observed[0] != 3 {
		t.Errorf("Listener should observe the whole batch, saw %d cards", observed[0])
	}
}

func TestUnsubscribeStopsNotifications(t *testing.T) {
	s := New()

	calls := 0
	unsubscribe := s.Subscribe(func() { calls++ })

	s.SetCards([]feed.Card{cardWithTags("c1", feed.CategoryFootball, time.Now(), "x")})
	unsubscribe()
	s.SetCards([]feed.Card{cardWithTags("c2", feed.CategoryFootball, time.Now(), "y")})

	if calls != 1 {
		t.Errorf("Expected exactly one notification before unsubscribe, got %d", calls)
	}
}

func TestCountByCategory(t *testing.T) {
	s := New()
	s.SetCards([]feed.Card{
		cardWithTags("c1", feed.CategoryFootball, time.Now(), "x"),
		cardWithTags("c2", feed.CategoryFootball, time.Now(), "y"),
		cardWithTags("c3", feed.CategoryTennis, time.Now(), "z"),
	})

	counts := s.CountByCategory()
	if counts[feed.CategoryFootball] != 2 || counts[feed.CategoryTennis] != 1 {
		t.Errorf("Unexpected category counts: %v", counts)
	}
}

func TestFindRelatedCardsRanking(t *testing.T) {
	s := New()

	t1 := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)
	t3 := t1.Add(-time.Hour)

	reference := cardWithTags("ref", feed.CategoryFootball, t1, "x", "y", "z")
	// b shares two tags and the category: 2 + 0.5.
	b := cardWithTags("b", feed.CategoryFootball, t2, "x", "y")
	// c shares all three tags but not the category: 3.0.
	c := cardWithTags("c", feed.CategoryBasketball, t3, "x", "y", "z")
	// d shares nothing beyond the category: 0.5, below the threshold.
	d := cardWithTags("d", feed.CategoryFootball, t2, "unrelated")

	s.SetCards([]feed.Card{reference, b, c, d})

	related := s.FindRelatedCards(reference, 1.0)
	if len(related) != 2 {
		t.Fatalf("Expected 2 related cards, got %d: %+v", len(related), related)
	}
	if related[0].ID != "c" || related[1].ID != "b" {
		t.Errorf("Expected order [c b], got [%s %s]", related[0].ID, related[1].ID)
	}
}

func TestFindRelatedCardsTieBreaksByRecency(t *testing.T) {
	s := New()

	t1 := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	reference := cardWithTags("ref", feed.CategoryFootball, t1, "x")
	older := cardWithTags("older", feed.CategoryFootball, t1.Add(-time.Hour), "x")
	newer := cardWithTags("newer", feed.CategoryFootball, t1.Add(time.Hour), "x")

	s.SetCards([]feed.Card{reference, older, newer})

	related := s.FindRelatedCards(reference, 1.0)
	if len(related) != 2 {
		t.Fatalf("Expected 2 related cards, got %d", len(related))
	}
	if related[0].ID != "newer" {
		t.Errorf("Equal scores should order newest first, got: %s", related[0].ID)
	}
}

func TestFindRelatedCardsExcludesReferenceAndCaps(t *testing.T) {
	s := New()

	t1 := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	reference := cardWithTags("ref", feed.CategoryFootball, t1, "x")

	batch := []feed.Card{reference}
	for i := 0; i < 15; i++ {
		batch = append(batch, cardWithTags(
			"c"+string(rune('a'+i)), feed.CategoryFootball, t1.Add(time.Duration(i)*time.Minute), "x"))
	}
	s.SetCards(batch)

	related := s.FindRelatedCards(reference, 1.0)
	if len(related) != 10 {
		t.Errorf("Expected result capped at 10, got %d", len(related))
	}
	for _, card := range related {
		if card.ID == "ref" {
			t.Error("Reference card must not appear in its own related set")
		}
	}
}

func TestFindRelatedCardsMatchesTagNamesCaseInsensitively(t *testing.T) {
	s := New()

	t1 := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	reference := cardWithTags("ref", feed.CategoryFootball, t1, "Liverpool")
	other := cardWithTags("other", feed.CategoryBasketball, t1, "LIVERPOOL")

	s.SetCards([]feed.Card{reference, other})

	related := s.FindRelatedCards(reference, 1.0)
	if len(related) != 1 || related[0].ID != "other" {
		t.Errorf("Tag names should match case-insensitively, got: %+v", related)
	}
}
