package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/mediveda/healthbot/internal/db"
)

const productColumns = "product_id, name, price, image, rating, in_stock, description, short_description, category, promoted"

// Store provides read access to the product catalog plus seeding helpers.
type Store struct {
	db *db.DB
}

// NewStore creates a Store backed by the given database.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// Search runs a case-insensitive substring search over product name,
// description and category. Results are ordered by popularity.
func (s *Store) Search(ctx context.Context, term string, limit int) ([]Product, error) {
	like := "%" + strings.ToLower(strings.TrimSpace(term)) + "%"
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+productColumns+` FROM products
		WHERE active = 1 AND (
			lower(name) LIKE ? OR lower(description) LIKE ?
			OR lower(short_description) LIKE ? OR lower(category) LIKE ?
		)
		ORDER BY promoted DESC, rating DESC
		LIMIT ?`, like, like, like, like, limit)
	if err != nil {
		return nil, fmt.Errorf("searching products: %w", err)
	}
	return scanProducts(rows)
}

// SearchByCategory matches products by category name.
func (s *Store) SearchByCategory(ctx context.Context, keyword string, limit int) ([]Product, error) {
	like := "%" + strings.ToLower(strings.TrimSpace(keyword)) + "%"
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+productColumns+` FROM products
		WHERE active = 1 AND lower(category) LIKE ?
		ORDER BY promoted DESC, rating DESC
		LIMIT ?`, like, limit)
	if err != nil {
		return nil, fmt.Errorf("searching by category: %w", err)
	}
	return scanProducts(rows)
}

// SearchByMaxPrice returns active products priced at or below max.
func (s *Store) SearchByMaxPrice(ctx context.Context, max float64, limit int) ([]Product, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+productColumns+` FROM products
		WHERE active = 1 AND price <= ?
		ORDER BY price ASC
		LIMIT ?`, max, limit)
	if err != nil {
		return nil, fmt.Errorf("searching by max price: %w", err)
	}
	return scanProducts(rows)
}

// SearchByMinPrice returns active products priced at or above min.
func (s *Store) SearchByMinPrice(ctx context.Context, min float64, limit int) ([]Product, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+productColumns+` FROM products
		WHERE active = 1 AND price >= ?
		ORDER BY price ASC
		LIMIT ?`, min, limit)
	if err != nil {
		return nil, fmt.Errorf("searching by min price: %w", err)
	}
	return scanProducts(rows)
}

// SearchByPriceRange returns active products with min <= price <= max.
func (s *Store) SearchByPriceRange(ctx context.Context, min, max float64, limit int) ([]Product, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+productColumns+` FROM products
		WHERE active = 1 AND price >= ? AND price <= ?
		ORDER BY price ASC
		LIMIT ?`, min, max, limit)
	if err != nil {
		return nil, fmt.Errorf("searching by price range: %w", err)
	}
	return scanProducts(rows)
}

// Top returns the most popular active products: promoted first, then by
// rating descending.
func (s *Store) Top(ctx context.Context, limit int) ([]Product, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+productColumns+` FROM products
		WHERE active = 1
		ORDER BY promoted DESC, rating DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing top products: %w", err)
	}
	return scanProducts(rows)
}

// SearchExcluding matches the keyword against name, description and
// category, skips the given product IDs, and returns a random selection.
func (s *Store) SearchExcluding(ctx context.Context, keyword string, excludeIDs []string, limit int) ([]Product, error) {
	like := "%" + strings.ToLower(strings.TrimSpace(keyword)) + "%"
	notIn, args := notInClause(excludeIDs)
	args = append([]any{like, like, like}, args...)
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, `
		SELECT `+productColumns+` FROM products
		WHERE active = 1 AND (
			lower(name) LIKE ? OR lower(description) LIKE ? OR lower(category) LIKE ?
		)`+notIn+`
		ORDER BY RANDOM()
		LIMIT ?`, args...)
	if err != nil {
		return nil, fmt.Errorf("searching alternatives by keyword: %w", err)
	}
	return scanProducts(rows)
}

// CategoryExcluding returns a random selection from a category, skipping
// the given product IDs.
func (s *Store) CategoryExcluding(ctx context.Context, category string, excludeIDs []string, limit int) ([]Product, error) {
	like := "%" + strings.ToLower(strings.TrimSpace(category)) + "%"
	notIn, args := notInClause(excludeIDs)
	args = append([]any{like}, args...)
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, `
		SELECT `+productColumns+` FROM products
		WHERE active = 1 AND lower(category) LIKE ?`+notIn+`
		ORDER BY RANDOM()
		LIMIT ?`, args...)
	if err != nil {
		return nil, fmt.Errorf("searching alternatives by category: %w", err)
	}
	return scanProducts(rows)
}

// PopularExcluding returns the popularity-ranked pool minus the given IDs.
func (s *Store) PopularExcluding(ctx context.Context, excludeIDs []string, limit int) ([]Product, error) {
	notIn, args := notInClause(excludeIDs)
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, `
		SELECT `+productColumns+` FROM products
		WHERE active = 1`+notIn+`
		ORDER BY promoted DESC, rating DESC
		LIMIT ?`, args...)
	if err != nil {
		return nil, fmt.Errorf("listing popular alternatives: %w", err)
	}
	return scanProducts(rows)
}

// FuzzyName scans active product names and returns the one with the highest
// trigram similarity to the query, along with its score. A score of zero
// with an empty name means no candidate existed.
func (s *Store) FuzzyName(ctx context.Context, query string) (string, float64, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT name FROM products WHERE active = 1")
	if err != nil {
		return "", 0, fmt.Errorf("loading product names: %w", err)
	}
	defer rows.Close()

	var bestName string
	var bestScore float64
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return "", 0, err
		}
		if score := Similarity(query, name); score > bestScore {
			bestName, bestScore = name, score
		}
	}
	return bestName, bestScore, rows.Err()
}

// Insert adds a product. A missing ID is replaced with a generated UUID.
func (s *Store) Insert(ctx context.Context, p Product) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO products (product_id, name, price, image, rating, in_stock,
			description, short_description, category, promoted)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Name, p.Price, p.Image, p.Rating, boolToInt(p.InStock),
		p.Description, p.Description, p.Category, boolToInt(p.Promoted),
	)
	if err != nil {
		return fmt.Errorf("inserting product: %w", err)
	}
	return nil
}

// Count returns the number of active products.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM products WHERE active = 1").Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting products: %w", err)
	}
	return n, nil
}

func notInClause(ids []string) (string, []any) {
	if len(ids) == 0 {
		return "", nil
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	return " AND product_id NOT IN (" + placeholders + ")", args
}

func scanProducts(rows *sql.Rows) ([]Product, error) {
	defer rows.Close()

	var products []Product
	for rows.Next() {
		var (
			p                 Product
			inStock, promoted int
			shortDescription  string
		)
		err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Image, &p.Rating,
			&inStock, &p.Description, &shortDescription, &p.Category, &promoted)
		if err != nil {
			return nil, err
		}
		p.InStock = inStock != 0
		p.Promoted = promoted != 0
		if shortDescription != "" {
			p.Description = shortDescription
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
