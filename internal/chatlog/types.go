package chatlog

import "time"

// UnansweredQuery is an aggregated record of a query the assistant could
// not answer, keyed by its normalized text.
type UnansweredQuery struct {
	Query           string    `json:"query"`
	SuggestedIntent string    `json:"suggested_intent"`
	OccurrenceCount int       `json:"occurrence_count"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// QueryLog is the audit record of a single processed query.
type QueryLog struct {
	ID             string    `json:"id"`
	UserQuery      string    `json:"user_query"`
	MatchedPattern string    `json:"matched_pattern"`
	Intent         string    `json:"intent"`
	Response       string    `json:"response"`
	Confidence     float64   `json:"confidence"`
	WasSuccessful  bool      `json:"was_successful"`
	SessionID      string    `json:"session_id"`
	NeedsReview    bool      `json:"needs_review"`
	UserFeedback   string    `json:"user_feedback,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// Click records a product clicked from a chatbot result.
type Click struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"product_id"`
	ProductName string    `json:"product_name"`
	SessionID   string    `json:"session_id"`
	CreatedAt   time.Time `json:"created_at"`
}
