// Package session keeps short-lived per-conversation context so follow-up
// requests ("show me another") can exclude products already shown.
package session

import (
	"log"
	"sync"
	"time"

	"github.com/mediveda/healthbot/internal/catalog"
)

// DefaultID is used when the caller supplies no session identifier.
const DefaultID = "default"

// DefaultTTL is how long a session survives without activity.
const DefaultTTL = 30 * time.Minute

// DefaultSweepInterval is how often expired sessions are evicted.
const DefaultSweepInterval = 15 * time.Minute

// maxRemembered caps how many shown products a session tracks.
const maxRemembered = 20

// Context is the per-session conversation state. It is a value type;
// callers always work on copies.
type Context struct {
	LastProducts []catalog.Product
	LastKeyword  string
	LastCategory string
	LastQuery    string
	UpdatedAt    time.Time
}

// Remember appends newly shown products, keeping at most maxRemembered of
// the most recent entries.
func (c *Context) Remember(products []catalog.Product) {
	c.LastProducts = append(c.LastProducts, products...)
	if n := len(c.LastProducts); n > maxRemembered {
		c.LastProducts = c.LastProducts[n-maxRemembered:]
	}
}

// ShownIDs returns the identifiers of all products shown this session.
func (c *Context) ShownIDs() []string {
	return catalog.IDs(c.LastProducts)
}

// Store is an in-memory session map with TTL-based expiry. Writes are
// last-write-wins per session key; two concurrent requests for the same
// session may race, which is accepted since a conversational session is
// expected to be single-client and sequential.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]Context
	ttl      time.Duration
	now      func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithTTL overrides the session time-to-live.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) { s.ttl = ttl }
}

// WithClock injects a clock, used by tests to control expiry.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// NewStore creates an empty session store.
func NewStore(opts ...Option) *Store {
	s := &Store{
		sessions: make(map[string]Context),
		ttl:      DefaultTTL,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get returns the context for the session, or a zero Context if the session
// is unknown or has expired. Expired entries are evicted lazily.
func (s *Store) Get(id string) Context {
	if id == "" {
		id = DefaultID
	}

	s.mu.RLock()
	ctx, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return Context{}
	}

	if s.now().Sub(ctx.UpdatedAt) > s.ttl {
		s.mu.Lock()
		delete(s.sessions, id)
		s.mu.Unlock()
		return Context{}
	}
	return ctx
}

// Put stores the context for the session, stamping UpdatedAt.
func (s *Store) Put(id string, ctx Context) {
	if id == "" {
		id = DefaultID
	}
	ctx.UpdatedAt = s.now()

	s.mu.Lock()
	s.sessions[id] = ctx
	s.mu.Unlock()
}

// Len returns the number of stored sessions, expired or not.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Sweep evicts every session older than the TTL and returns how many were
// removed.
func (s *Store) Sweep() int {
	cutoff := s.now().Add(-s.ttl)

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, ctx := range s.sessions {
		if ctx.UpdatedAt.Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// StartSweeper launches a background goroutine that sweeps on the given
// interval. The returned function stops it.
func (s *Store) StartSweeper(interval time.Duration) (stop func()) {
	if interval <= 0 {
		interval = DefaultSweepInterval
	}
	ticker := time.NewTicker(interval)
	done := make(chan struct{})

	go func() {
		for {
			select {
			case <-ticker.C:
				if n := s.Sweep(); n > 0 {
					log.Printf("session: evicted %d expired session(s)", n)
				}
			case <-done:
				ticker.Stop()
				return
			}
		}
	}()

	var once sync.Once
	return func() { once.Do(func() { close(done) }) }
}
