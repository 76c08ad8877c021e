package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
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

func seedProducts(t *testing.T, store *Store, products []Product) {
	t.Helper()
	ctx := context.Background()
	for _, p := range products {
		if err := store.Insert(ctx, p); err != nil {
			t.Fatalf("Insert(%s): %v", p.Name, err)
		}
	}
}

func fixtures() []Product {
	return []Product{
		{ID: "p1", Name: "Ashwagandha Capsules", Price: 450, Rating: 4.6, InStock: true, Description: "Stress relief supplement", Category: "Ayurvedic Supplements", Promoted: true},
		{ID: "p2", Name: "Triphala Powder", Price: 250, Rating: 4.2, InStock: true, Description: "Digestive support", Category: "Ayurvedic Supplements"},
		{ID: "p3", Name: "Turmeric Tablets", Price: 320, Rating: 4.8, InStock: true, Description: "Immunity booster", Category: "Herbal"},
		{ID: "p4", Name: "Brahmi Oil", Price: 780, Rating: 3.9, InStock: false, Description: "Hair and scalp care", Category: "Herbal Oils"},
	}
}

func TestSearchSubstring(t *testing.T) {
	store := setupStore(t)
	seedProducts(t, store, fixtures())
	ctx := context.Background()

	products, err := store.Search(ctx, "ashwagandha", 5)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(products) != 1 || products[0].ID != "p1" {
		t.Fatalf("expected p1, got %+v", products)
	}

	// Description terms match too.
	products, err = store.Search(ctx, "immunity", 5)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(products) != 1 || products[0].ID != "p3" {
		t.Errorf("expected p3 for immunity, got %+v", products)
	}
}

func TestSearchCaseInsensitive(t *testing.T) {
	store := setupStore(t)
	seedProducts(t, store, fixtures())

	products, err := store.Search(context.Background(), "TURMERIC", 5)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(products) != 1 || products[0].Name != "Turmeric Tablets" {
		t.Errorf("expected Turmeric Tablets, got %+v", products)
	}
}

func TestPriceFilters(t *testing.T) {
	store := setupStore(t)
	seedProducts(t, store, fixtures())
	ctx := context.Background()

	under, err := store.SearchByMaxPrice(ctx, 500, 10)
	if err != nil {
		t.Fatalf("SearchByMaxPrice: %v", err)
	}
	if len(under) != 3 {
		t.Fatalf("expected 3 products under 500, got %d", len(under))
	}
	for _, p := range under {
		if p.Price > 500 {
			t.Errorf("product %s priced %.0f above max", p.Name, p.Price)
		}
	}

	above, err := store.SearchByMinPrice(ctx, 500, 10)
	if err != nil {
		t.Fatalf("SearchByMinPrice: %v", err)
	}
	if len(above) != 1 || above[0].ID != "p4" {
		t.Errorf("expected only p4 above 500, got %+v", above)
	}

	within, err := store.SearchByPriceRange(ctx, 100, 300, 10)
	if err != nil {
		t.Fatalf("SearchByPriceRange: %v", err)
	}
	if len(within) != 1 || within[0].ID != "p2" {
		t.Errorf("expected only p2 in [100,300], got %+v", within)
	}
}

func TestTopOrdersByPromotedThenRating(t *testing.T) {
	store := setupStore(t)
	seedProducts(t, store, fixtures())

	products, err := store.Top(context.Background(), 10)
	if err != nil {
		t.Fatalf("Top: %v", err)
	}
	if len(products) != 4 {
		t.Fatalf("expected 4 products, got %d", len(products))
	}
	// p1 is promoted, p3 has the highest rating among the rest.
	if products[0].ID != "p1" {
		t.Errorf("first product = %s, want p1 (promoted)", products[0].ID)
	}
	if products[1].ID != "p3" {
		t.Errorf("second product = %s, want p3 (rating)", products[1].ID)
	}
}

func TestSearchExcluding(t *testing.T) {
	store := setupStore(t)
	seedProducts(t, store, fixtures())
	ctx := context.Background()

	products, err := store.SearchExcluding(ctx, "supplements", []string{"p1"}, 5)
	if err != nil {
		t.Fatalf("SearchExcluding: %v", err)
	}
	for _, p := range products {
		if p.ID == "p1" {
			t.Errorf("excluded product p1 returned")
		}
	}
	if len(products) != 1 || products[0].ID != "p2" {
		t.Errorf("expected p2, got %+v", products)
	}
}

func TestPopularExcluding(t *testing.T) {
	store := setupStore(t)
	seedProducts(t, store, fixtures())

	products, err := store.PopularExcluding(context.Background(), []string{"p1", "p3"}, 5)
	if err != nil {
		t.Fatalf("PopularExcluding: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(products))
	}
	for _, p := range products {
		if p.ID == "p1" || p.ID == "p3" {
			t.Errorf("excluded product %s returned", p.ID)
		}
	}
}

func TestFuzzyName(t *testing.T) {
	store := setupStore(t)
	seedProducts(t, store, fixtures())

	name, score, err := store.FuzzyName(context.Background(), "ashwaganda")
	if err != nil {
		t.Fatalf("FuzzyName: %v", err)
	}
	if name != "Ashwagandha Capsules" {
		t.Errorf("FuzzyName = %q, want Ashwagandha Capsules", name)
	}
	if score <= 0.35 {
		t.Errorf("score = %.2f, want > 0.35 for a close misspelling", score)
	}
}

func TestFuzzyNameEmptyCatalog(t *testing.T) {
	store := setupStore(t)

	name, score, err := store.FuzzyName(context.Background(), "anything")
	if err != nil {
		t.Fatalf("FuzzyName: %v", err)
	}
	if name != "" || score != 0 {
		t.Errorf("expected no match, got %q/%.2f", name, score)
	}
}

func TestInactiveProductsHidden(t *testing.T) {
	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	defer database.Close()

	store := NewStore(database)
	if err := store.Insert(context.Background(), Product{ID: "x1", Name: "Hidden Product"}); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if _, err := database.Exec("UPDATE products SET active = 0 WHERE product_id = 'x1'"); err != nil {
		t.Fatalf("deactivate: %v", err)
	}

	products, err := store.Search(context.Background(), "hidden", 5)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(products) != 0 {
		t.Errorf("inactive product returned: %+v", products)
	}
}

// --- HTTP handler tests ---

func TestHTTPSearch(t *testing.T) {
	store := setupStore(t)
	seedProducts(t, store, fixtures())

	r := chi.NewRouter()
	RegisterRoutes(r, store)

	req := httptest.NewRequest(http.MethodGet, "/api/products/search?q=triphala", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var products []Product
	if err := json.NewDecoder(rec.Body).Decode(&products); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(products) != 1 || products[0].Name != "Triphala Powder" {
		t.Errorf("expected Triphala Powder, got %+v", products)
	}
}

func TestHTTPSearchMissingQuery(t *testing.T) {
	store := setupStore(t)
	r := chi.NewRouter()
	RegisterRoutes(r, store)

	req := httptest.NewRequest(http.MethodGet, "/api/products/search", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}
