package feed

import (
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Session carries the per-consumer pipeline state that must survive
// "load more" calls: the dedup sets and the seen-id registry. The
// state resets when the consumer's category selection changes.
type Session struct {
	id string

	mu            sync.Mutex
	categoriesKey string
	deduper       *Deduper
	seenIDs       map[string]struct{}

	inFlight atomic.Bool
}

func newSession(id string) *Session {
	return &Session{
		id:      id,
		deduper: NewDeduper(),
		seenIDs: make(map[string]struct{}),
	}
}

// Begin claims the session for one fetch. It returns false when a
// fetch is already in flight; reentrant calls are a no-op for the
// caller, never queued. On a successful claim the session state is
// reset if the category selection changed since the last fetch.
func (s *Session) Begin(categories []string) bool {
	if !s.inFlight.CompareAndSwap(false, true) {
		return false
	}

	key := categoriesKey(categories)

	s.mu.Lock()
	defer s.mu.Unlock()
	if key != s.categoriesKey {
		s.categoriesKey = key
		s.deduper = NewDeduper()
		s.seenIDs = make(map[string]struct{})
	}
	return true
}

// End releases the in-flight claim.
func (s *Session) End() {
	s.inFlight.Store(false)
}

func categoriesKey(categories []string) string {
	if len(categories) == 0 {
		return ""
	}
	sorted := make([]string, len(categories))
	copy(sorted, categories)
	sort.Strings(sorted)
	return strings.Join(sorted, ",")
}

// DefaultSessionID serves callers that do not manage sessions.
const DefaultSessionID = "default"

// SessionRegistry hands out sessions keyed by a client-supplied id.
// Idle sessions are evicted after the TTL so abandoned consumers do
// not pin their dedup sets forever.
type SessionRegistry struct {
	mu       sync.Mutex
	sessions *gocache.Cache
	ttl      time.Duration
}

func NewSessionRegistry(ttl, cleanupInterval time.Duration) *SessionRegistry {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	if cleanupInterval <= 0 {
		cleanupInterval = 10 * time.Minute
	}
	return &SessionRegistry{
		sessions: gocache.New(ttl, cleanupInterval),
		ttl:      ttl,
	}
}

// Get returns the session for id, creating it on first use. Every
// call refreshes the session's TTL.
func (r *SessionRegistry) Get(id string) *Session {
	if id == "" {
		id = DefaultSessionID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if cached, found := r.sessions.Get(id); found {
		session := cached.(*Session)
		r.sessions.Set(id, session, r.ttl)
		return session
	}

	session := newSession(id)
	r.sessions.Set(id, session, r.ttl)
	return session
}

// Count returns the number of live sessions.
func (r *SessionRegistry) Count() int {
	return r.sessions.ItemCount()
}
