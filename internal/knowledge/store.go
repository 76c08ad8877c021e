package knowledge

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/mediveda/healthbot/internal/db"
)

// Store provides access to the curated knowledge base.
type Store struct {
	db *db.DB
}

// NewStore creates a Store backed by the given database.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// Create inserts a knowledge entry. If entry.ID is empty a UUID is generated.
func (s *Store) Create(ctx context.Context, entry Entry) (string, error) {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.Intent == "" {
		entry.Intent = "general"
	}

	keywords, err := json.Marshal(entry.Keywords)
	if err != nil {
		return "", fmt.Errorf("marshalling keywords: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO chatbot_knowledge (id, query_pattern, answer, intent,
			confidence_score, keywords, is_approved)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		entry.ID, entry.Pattern, entry.Answer, entry.Intent,
		entry.Confidence, string(keywords), boolToInt(entry.Approved),
	)
	if err != nil {
		return "", fmt.Errorf("inserting knowledge entry: %w", err)
	}
	return entry.ID, nil
}

// List returns all entries, approved or not, highest confidence first.
func (s *Store) List(ctx context.Context) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, query_pattern, answer, intent, confidence_score,
			keywords, is_approved, usage_count, created_at, updated_at
		FROM chatbot_knowledge
		ORDER BY confidence_score DESC, created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("listing knowledge entries: %w", err)
	}
	return scanEntries(rows)
}

// Approve marks an entry as eligible for matching.
func (s *Store) Approve(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE chatbot_knowledge
		SET is_approved = 1, updated_at = datetime('now')
		WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("approving knowledge entry: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("knowledge entry %s not found", id)
	}
	return nil
}

// IncrementUsage bumps the usage counter of an entry. Callers typically run
// this fire-and-forget after a successful match.
func (s *Store) IncrementUsage(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE chatbot_knowledge
		SET usage_count = usage_count + 1, updated_at = datetime('now')
		WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("incrementing usage count: %w", err)
	}
	return nil
}

// BestMatch returns the highest-confidence approved entry whose pattern
// matches the query with word-boundary semantics, or nil when nothing
// matches. Entries with patterns that fail to compile are skipped.
func (s *Store) BestMatch(ctx context.Context, query string) (*Entry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, query_pattern, answer, intent, confidence_score,
			keywords, is_approved, usage_count, created_at, updated_at
		FROM chatbot_knowledge
		WHERE is_approved = 1
		ORDER BY confidence_score DESC, created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("loading approved entries: %w", err)
	}

	entries, err := scanEntries(rows)
	if err != nil {
		return nil, err
	}

	for i := range entries {
		re, err := regexp.Compile(`(?i)\b(` + entries[i].Pattern + `)\b`)
		if err != nil {
			continue
		}
		if re.MatchString(query) {
			return &entries[i], nil
		}
	}
	return nil, nil
}

func scanEntries(rows *sql.Rows) ([]Entry, error) {
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			e                Entry
			keywordsJSON     string
			approved         int
			created, updated string
		)
		err := rows.Scan(&e.ID, &e.Pattern, &e.Answer, &e.Intent,
			&e.Confidence, &keywordsJSON, &approved, &e.UsageCount,
			&created, &updated)
		if err != nil {
			return nil, err
		}
		e.Approved = approved != 0
		if err := json.Unmarshal([]byte(keywordsJSON), &e.Keywords); err != nil {
			e.Keywords = nil
		}
		if t, err := time.Parse(time.DateTime, created); err == nil {
			e.CreatedAt = t
		}
		if t, err := time.Parse(time.DateTime, updated); err == nil {
			e.UpdatedAt = t
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
