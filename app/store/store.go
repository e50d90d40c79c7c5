// Package store holds every card seen during this process's
// lifetime. It is the only shared mutable state in the service:
// insert-only, memory-only, torn down with the process.
package store

import (
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/sportscroll/sportscroll/app/feed"
)

// CategoryBonus is added to a candidate's overlap score when it
// shares the reference card's primary category. Tunable weight, kept
// small so shared tags dominate the ranking.
const CategoryBonus = 0.5

// maxRelated caps the related-cards result.
const maxRelated = 10

// Listener is invoked after every insertion batch.
type Listener func()

// Store is a process-wide card registry. Cards are never mutated or
// removed once inserted; batches are applied atomically, so readers
// observe either all of a batch or none of it.
type Store struct {
	mu        sync.RWMutex
	cards     map[string]feed.Card
	listeners map[string]Listener
}

func New() *Store {
	return &Store{
		cards:     make(map[string]feed.Card),
		listeners: make(map[string]Listener),
	}
}

// SetCards upserts every given card and notifies subscribers once.
func (s *Store) SetCards(cards []feed.Card) {
	s.mu.Lock()
	for _, card := range cards {
		s.cards[card.ID] = card
	}
	listeners := s.listenerSnapshot()
	s.mu.Unlock()

	notify(listeners)
}

// AddCards inserts only cards whose id is not present yet, so
// incremental pagination never clobbers existing cards.
func (s *Store) AddCards(cards []feed.Card) {
	s.mu.Lock()
	for _, card := range cards {
		if _, exists := s.cards[card.ID]; !exists {
			s.cards[card.ID] = card
		}
	}
	listeners := s.listenerSnapshot()
	s.mu.Unlock()

	notify(listeners)
}

// GetCard is a point lookup; the second return reports presence.
func (s *Store) GetCard(id string) (feed.Card, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	card, ok := s.cards[id]
	return card, ok
}

// GetAllCards returns a snapshot of every stored card.
func (s *Store) GetAllCards() []feed.Card {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return lo.Values(s.cards)
}

// Count returns the number of stored cards.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.cards)
}

// CountByCategory returns card counts per primary category.
func (s *Store) CountByCategory() map[feed.SportCategory]int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[feed.SportCategory]int)
	for _, card := range s.cards {
		counts[card.PrimaryCategory]++
	}
	return counts
}

// Subscribe registers a change listener and returns its unsubscribe
// handle.
func (s *Store) Subscribe(listener Listener) func() {
	id := uuid.NewString()

	s.mu.Lock()
	s.listeners[id] = listener
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

// FindRelatedCards ranks every other stored card against the
// reference: overlap score is the count of shared lowercased tag
// names plus CategoryBonus for a matching primary category.
// Candidates below minOverlap are dropped; the rest are ordered by
// score descending, newest first on ties, capped at maxRelated.
func (s *Store) FindRelatedCards(card feed.Card, minOverlap float64) []feed.Card {
	refNames := make(map[string]struct{}, len(card.Tags))
	for _, tag := range card.Tags {
		refNames[strings.ToLower(tag.Name)] = struct{}{}
	}

	type scored struct {
		card    feed.Card
		overlap float64
	}

	s.mu.RLock()
	candidates := make([]scored, 0, len(s.cards))
	for _, candidate := range s.cards {
		if candidate.ID == card.ID {
			continue
		}

		overlap := 0.0
		for _, tag := range candidate.Tags {
			if _, shared := refNames[strings.ToLower(tag.Name)]; shared {
				overlap++
			}
		}
		if candidate.PrimaryCategory == card.PrimaryCategory {
			overlap += CategoryBonus
		}

		if overlap >= minOverlap {
			candidates = append(candidates, scored{card: candidate, overlap: overlap})
		}
	}
	s.mu.RUnlock()

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].overlap != candidates[j].overlap {
			return candidates[i].overlap > candidates[j].overlap
		}
		return candidates[i].card.PublishedAt.After(candidates[j].card.PublishedAt)
	})
	if len(candidates) > maxRelated {
		candidates = candidates[:maxRelated]
	}

	return lo.Map(candidates, func(c scored, _ int) feed.Card {
		return c.card
	})
}

func (s *Store) listenerSnapshot() []Listener {
	return lo.Values(s.listeners)
}

func notify(listeners []Listener) {
	for _, listener := range listeners {
		listener()
	}
}
