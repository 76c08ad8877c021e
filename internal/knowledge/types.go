package knowledge

import "time"

// Entry is a curated question pattern with its canonical answer. Only
// approved entries participate in matching.
type Entry struct {
	ID         string    `json:"id"`
	Pattern    string    `json:"pattern"`
	Answer     string    `json:"answer"`
	Intent     string    `json:"intent"`
	Confidence float64   `json:"confidence"`
	Keywords   []string  `json:"keywords,omitempty"`
	Approved   bool      `json:"approved"`
	UsageCount int       `json:"usage_count"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ProductIntent reports whether the entry's intent should attach product
// cards to the answer.
func (e *Entry) ProductIntent() bool {
	return e.Intent == "product_info" || e.Intent == "product_search"
}

// FirstKeyword returns the first curated keyword, or fallback when the
// entry carries none.
func (e *Entry) FirstKeyword(fallback string) string {
	if len(e.Keywords) > 0 && e.Keywords[0] != "" {
		return e.Keywords[0]
	}
	return fallback
}
