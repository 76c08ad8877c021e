package chatlog

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mediveda/healthbot/internal/db"
)

// Store persists the assistant's audit records: unanswered queries, query
// logs and product clicks.
type Store struct {
	db *db.DB
}

// NewStore creates a Store backed by the given database.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// LogUnanswered upserts an unanswered-query row keyed by the lowercase,
// trimmed query text: first miss inserts with count 1, repeats increment
// the counter and refresh the timestamp.
func (s *Store) LogUnanswered(ctx context.Context, query, suggestedIntent string) error {
	normalized := strings.ToLower(strings.TrimSpace(query))
	if normalized == "" {
		return nil
	}
	if suggestedIntent == "" {
		suggestedIntent = "unknown"
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO chatbot_unanswered_queries (query, suggested_intent, occurrence_count)
		VALUES (?, ?, 1)
		ON CONFLICT (query) DO UPDATE SET
			occurrence_count = occurrence_count + 1,
			updated_at = datetime('now')`,
		normalized, suggestedIntent)
	if err != nil {
		return fmt.Errorf("logging unanswered query: %w", err)
	}
	return nil
}

// ListUnanswered returns unanswered queries, most frequent first.
func (s *Store) ListUnanswered(ctx context.Context, limit int) ([]UnansweredQuery, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT query, suggested_intent, occurrence_count, updated_at
		FROM chatbot_unanswered_queries
		ORDER BY occurrence_count DESC, updated_at DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing unanswered queries: %w", err)
	}
	defer rows.Close()

	var queries []UnansweredQuery
	for rows.Next() {
		var (
			q  UnansweredQuery
			ts string
		)
		if err := rows.Scan(&q.Query, &q.SuggestedIntent, &q.OccurrenceCount, &ts); err != nil {
			return nil, err
		}
		if t, err := time.Parse(time.DateTime, ts); err == nil {
			q.UpdatedAt = t
		}
		queries = append(queries, q)
	}
	return queries, rows.Err()
}

// InsertQueryLog writes a query-log row. NeedsReview is derived here:
// a failed query or one answered below 0.5 confidence needs curation.
func (s *Store) InsertQueryLog(ctx context.Context, entry QueryLog) (string, error) {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.SessionID == "" {
		entry.SessionID = "default"
	}
	needsReview := !entry.WasSuccessful || entry.Confidence < 0.5

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO chatbot_query_logs (id, user_query, matched_pattern, intent,
			response, confidence_score, was_successful, session_id, needs_review)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.ID, entry.UserQuery, entry.MatchedPattern, entry.Intent,
		entry.Response, entry.Confidence, boolToInt(entry.WasSuccessful),
		entry.SessionID, boolToInt(needsReview),
	)
	if err != nil {
		return "", fmt.Errorf("inserting query log: %w", err)
	}
	return entry.ID, nil
}

// SetFeedback attaches free-text user feedback to a query-log row.
func (s *Store) SetFeedback(ctx context.Context, id, feedback string) error {
	_, err := s.db.ExecContext(ctx,
		"UPDATE chatbot_query_logs SET user_feedback = ? WHERE id = ?",
		feedback, id)
	if err != nil {
		return fmt.Errorf("saving feedback: %w", err)
	}
	return nil
}

// Suggestions returns up to 5 distinct previously-successful queries that
// contain the partial input. Inputs shorter than 2 characters yield nothing.
func (s *Store) Suggestions(ctx context.Context, partial string) ([]string, error) {
	partial = strings.TrimSpace(partial)
	if len(partial) < 2 {
		return nil, nil
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT DISTINCT user_query FROM chatbot_query_logs
		WHERE lower(user_query) LIKE ? AND was_successful = 1
		ORDER BY user_query
		LIMIT 5`, "%"+strings.ToLower(partial)+"%")
	if err != nil {
		return nil, fmt.Errorf("loading suggestions: %w", err)
	}
	defer rows.Close()

	var suggestions []string
	for rows.Next() {
		var q string
		if err := rows.Scan(&q); err != nil {
			return nil, err
		}
		suggestions = append(suggestions, q)
	}
	return suggestions, rows.Err()
}

// InsertClick appends a product-click audit row.
func (s *Store) InsertClick(ctx context.Context, click Click) error {
	if click.ID == "" {
		click.ID = uuid.New().String()
	}
	if click.SessionID == "" {
		click.SessionID = "default"
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO chatbot_product_clicks (id, product_id, product_name, session_id)
		VALUES (?, ?, ?, ?)`,
		click.ID, click.ProductID, click.ProductName, click.SessionID)
	if err != nil {
		return fmt.Errorf("inserting product click: %w", err)
	}
	return nil
}

// CountNeedingReview returns how many query logs are flagged for curation.
func (s *Store) CountNeedingReview(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM chatbot_query_logs WHERE needs_review = 1").Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting reviews: %w", err)
	}
	return n, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
