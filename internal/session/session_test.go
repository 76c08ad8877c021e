package session

import (
	"testing"
	"time"

	"github.com/mediveda/healthbot/internal/catalog"
)

// fakeClock is a controllable clock for expiry tests.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func TestGetUnknownSession(t *testing.T) {
	store := NewStore()
	ctx := store.Get("nope")
	if ctx.LastKeyword != "" || len(ctx.LastProducts) != 0 {
		t.Errorf("expected zero context, got %+v", ctx)
	}
}

func TestPutAndGet(t *testing.T) {
	store := NewStore()
	store.Put("s1", Context{LastKeyword: "ashwagandha"})

	ctx := store.Get("s1")
	if ctx.LastKeyword != "ashwagandha" {
		t.Errorf("LastKeyword = %q, want ashwagandha", ctx.LastKeyword)
	}
	if ctx.UpdatedAt.IsZero() {
		t.Error("UpdatedAt not stamped")
	}
}

func TestEmptyIDUsesDefault(t *testing.T) {
	store := NewStore()
	store.Put("", Context{LastKeyword: "herbal"})

	if got := store.Get(DefaultID).LastKeyword; got != "herbal" {
		t.Errorf("default session LastKeyword = %q, want herbal", got)
	}
	if got := store.Get("").LastKeyword; got != "herbal" {
		t.Errorf("empty-id Get LastKeyword = %q, want herbal", got)
	}
}

func TestExpiredSessionIsAbsent(t *testing.T) {
	clock := newFakeClock()
	store := NewStore(WithClock(clock.now))

	store.Put("s1", Context{LastKeyword: "oil"})

	clock.advance(31 * time.Minute)
	ctx := store.Get("s1")
	if ctx.LastKeyword != "" {
		t.Errorf("expired session returned context %+v", ctx)
	}
	// Lazy eviction removed the entry.
	if store.Len() != 0 {
		t.Errorf("Len = %d after lazy eviction, want 0", store.Len())
	}
}

func TestSessionSurvivesWithinTTL(t *testing.T) {
	clock := newFakeClock()
	store := NewStore(WithClock(clock.now))

	store.Put("s1", Context{LastKeyword: "oil"})

	clock.advance(29 * time.Minute)
	if got := store.Get("s1").LastKeyword; got != "oil" {
		t.Errorf("LastKeyword = %q, want oil", got)
	}
}

func TestSweep(t *testing.T) {
	clock := newFakeClock()
	store := NewStore(WithClock(clock.now))

	store.Put("old", Context{})
	clock.advance(20 * time.Minute)
	store.Put("fresh", Context{})
	clock.advance(15 * time.Minute) // old is now 35m stale, fresh 15m

	if removed := store.Sweep(); removed != 1 {
		t.Errorf("Sweep removed %d, want 1", removed)
	}
	if store.Len() != 1 {
		t.Errorf("Len = %d, want 1", store.Len())
	}
	if got := store.Get("fresh"); got.UpdatedAt.IsZero() {
		t.Error("fresh session evicted by sweep")
	}
}

func TestRememberCapsAtTwenty(t *testing.T) {
	var ctx Context
	for i := 0; i < 3; i++ {
		batch := make([]catalog.Product, 10)
		for j := range batch {
			batch[j] = catalog.Product{ID: string(rune('a'+i)) + "-" + string(rune('0'+j))}
		}
		ctx.Remember(batch)
	}

	if len(ctx.LastProducts) != 20 {
		t.Fatalf("remembered %d products, want 20", len(ctx.LastProducts))
	}
	// The oldest batch fell off; most recent entries survive.
	if ctx.LastProducts[19].ID != "c-9" {
		t.Errorf("newest product = %s, want c-9", ctx.LastProducts[19].ID)
	}
}

func TestShownIDsSkipsEmpty(t *testing.T) {
	ctx := Context{LastProducts: []catalog.Product{{ID: "p1"}, {}, {ID: "p2"}}}
	ids := ctx.ShownIDs()
	if len(ids) != 2 || ids[0] != "p1" || ids[1] != "p2" {
		t.Errorf("ShownIDs = %v, want [p1 p2]", ids)
	}
}

func TestStartSweeperStops(t *testing.T) {
	store := NewStore(WithTTL(time.Millisecond))
	stop := store.StartSweeper(time.Millisecond)
	// Stopping twice must not panic.
	stop()
	stop()
}
