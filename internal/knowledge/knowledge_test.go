package knowledge

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/mediveda/healthbot/internal/db"
)

func setupStore(t *testing.T) *Store {
	t.Helper()
	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return NewStore(database)
}

func mustCreate(t *testing.T, store *Store, entry Entry) string {
	t.Helper()
	id, err := store.Create(context.Background(), entry)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	return id
}

func TestBestMatchWordBoundary(t *testing.T) {
	store := setupStore(t)
	mustCreate(t, store, Entry{
		Pattern: "ashwagandha", Answer: "It is an adaptogen.",
		Intent: "product_info", Confidence: 0.9, Approved: true,
	})

	entry, err := store.BestMatch(context.Background(), "what is ashwagandha?")
	if err != nil {
		t.Fatalf("BestMatch: %v", err)
	}
	if entry == nil {
		t.Fatal("expected a match")
	}
	if entry.Answer != "It is an adaptogen." {
		t.Errorf("Answer = %q", entry.Answer)
	}

	// Substring inside a larger word must not match.
	entry, err = store.BestMatch(context.Background(), "superashwagandhax")
	if err != nil {
		t.Fatalf("BestMatch: %v", err)
	}
	if entry != nil {
		t.Errorf("expected no match inside larger word, got %+v", entry)
	}
}

func TestBestMatchPrefersHigherConfidence(t *testing.T) {
	store := setupStore(t)
	mustCreate(t, store, Entry{
		Pattern: "turmeric", Answer: "low", Confidence: 0.5, Approved: true,
	})
	mustCreate(t, store, Entry{
		Pattern: "turmeric", Answer: "high", Confidence: 0.9, Approved: true,
	})

	entry, err := store.BestMatch(context.Background(), "tell me about turmeric")
	if err != nil {
		t.Fatalf("BestMatch: %v", err)
	}
	if entry == nil || entry.Answer != "high" {
		t.Errorf("expected the high-confidence entry, got %+v", entry)
	}
}

func TestBestMatchIgnoresUnapproved(t *testing.T) {
	store := setupStore(t)
	mustCreate(t, store, Entry{
		Pattern: "brahmi", Answer: "unapproved", Confidence: 0.9,
	})

	entry, err := store.BestMatch(context.Background(), "brahmi oil")
	if err != nil {
		t.Fatalf("BestMatch: %v", err)
	}
	if entry != nil {
		t.Errorf("unapproved entry matched: %+v", entry)
	}
}

func TestBestMatchSkipsBrokenPattern(t *testing.T) {
	store := setupStore(t)
	mustCreate(t, store, Entry{
		Pattern: "((broken", Answer: "bad", Confidence: 0.99, Approved: true,
	})
	mustCreate(t, store, Entry{
		Pattern: "giloy", Answer: "good", Confidence: 0.5, Approved: true,
	})

	entry, err := store.BestMatch(context.Background(), "got any giloy?")
	if err != nil {
		t.Fatalf("BestMatch: %v", err)
	}
	if entry == nil || entry.Answer != "good" {
		t.Errorf("expected the valid entry, got %+v", entry)
	}
}

func TestBestMatchCaseInsensitive(t *testing.T) {
	store := setupStore(t)
	mustCreate(t, store, Entry{
		Pattern: "chyawanprash", Answer: "ok", Confidence: 0.8, Approved: true,
	})

	entry, err := store.BestMatch(context.Background(), "CHYAWANPRASH benefits")
	if err != nil {
		t.Fatalf("BestMatch: %v", err)
	}
	if entry == nil {
		t.Error("expected case-insensitive match")
	}
}

func TestIncrementUsage(t *testing.T) {
	store := setupStore(t)
	id := mustCreate(t, store, Entry{
		Pattern: "tulsi", Answer: "holy basil", Confidence: 0.8, Approved: true,
	})

	for i := 0; i < 3; i++ {
		if err := store.IncrementUsage(context.Background(), id); err != nil {
			t.Fatalf("IncrementUsage: %v", err)
		}
	}

	entries, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 1 || entries[0].UsageCount != 3 {
		t.Errorf("UsageCount = %d, want 3", entries[0].UsageCount)
	}
}

func TestApprove(t *testing.T) {
	store := setupStore(t)
	id := mustCreate(t, store, Entry{
		Pattern: "neem", Answer: "skin support", Confidence: 0.7,
	})

	if err := store.Approve(context.Background(), id); err != nil {
		t.Fatalf("Approve: %v", err)
	}

	entry, err := store.BestMatch(context.Background(), "neem tablets")
	if err != nil {
		t.Fatalf("BestMatch: %v", err)
	}
	if entry == nil {
		t.Error("approved entry did not match")
	}

	if err := store.Approve(context.Background(), "missing"); err == nil {
		t.Error("expected error approving unknown id")
	}
}

func TestKeywordsRoundTrip(t *testing.T) {
	store := setupStore(t)
	mustCreate(t, store, Entry{
		Pattern: "sleep", Answer: "rest well", Confidence: 0.8,
		Keywords: []string{"sleep", "insomnia"}, Approved: true,
	})

	entry, err := store.BestMatch(context.Background(), "help me sleep")
	if err != nil {
		t.Fatalf("BestMatch: %v", err)
	}
	if entry == nil {
		t.Fatal("expected a match")
	}
	if entry.FirstKeyword("fallback") != "sleep" {
		t.Errorf("FirstKeyword = %q, want sleep", entry.FirstKeyword("fallback"))
	}
}

func TestDefaultEntriesAreApprovedAndValid(t *testing.T) {
	for _, e := range DefaultEntries {
		if !e.Approved {
			t.Errorf("default entry %q not approved", e.Pattern)
		}
		if e.Confidence <= 0 || e.Confidence > 1 {
			t.Errorf("default entry %q confidence %.2f outside (0,1]", e.Pattern, e.Confidence)
		}
	}
}

// --- HTTP handler tests ---

func setupRouter(t *testing.T) (chi.Router, *Store) {
	t.Helper()
	store := setupStore(t)
	r := chi.NewRouter()
	RegisterRoutes(r, store)
	return r, store
}

func TestHTTPCreateAndList(t *testing.T) {
	r, _ := setupRouter(t)

	body := `{"pattern":"amla","answer":"Vitamin C rich fruit.","confidence":0.8}`
	req := httptest.NewRequest(http.MethodPost, "/api/knowledge", strings.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusCreated)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/knowledge", nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	var entries []Entry
	if err := json.NewDecoder(rec.Body).Decode(&entries); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(entries) != 1 || entries[0].Pattern != "amla" {
		t.Errorf("expected one amla entry, got %+v", entries)
	}
}

func TestHTTPCreateRequiresFields(t *testing.T) {
	r, _ := setupRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/knowledge", strings.NewReader(`{"pattern":""}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestHTTPApprove(t *testing.T) {
	r, store := setupRouter(t)
	id := mustCreate(t, store, Entry{Pattern: "shatavari", Answer: "ok", Confidence: 0.7})

	req := httptest.NewRequest(http.MethodPost, "/api/knowledge/"+id+"/approve", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	entry, err := store.BestMatch(context.Background(), "shatavari powder")
	if err != nil {
		t.Fatalf("BestMatch: %v", err)
	}
	if entry == nil {
		t.Error("entry not approved via HTTP")
	}
}
