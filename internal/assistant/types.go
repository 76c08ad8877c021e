// Package assistant implements the rule-based query pipeline behind the
// shopping chatbot. A query runs through an ordered list of stages; the
// first stage that produces a response wins and everything after it is
// skipped.
package assistant

import "github.com/mediveda/healthbot/internal/catalog"

// Response intents. These are the routing outcomes of the pipeline and are
// a superset of the advisory labels the nlp classifier produces.
const (
	IntentGreeting           = "greeting"
	IntentAlternative        = "alternative_request"
	IntentPriceFilter        = "price_filter"
	IntentPriceFilterAbove   = "price_filter_above"
	IntentProductListing     = "product_listing"
	IntentAboutInfo          = "about_info"
	IntentNavigation         = "navigation"
	IntentContactInfo        = "contact_info"
	IntentProductSearch      = "product_search"
	IntentProductSearchFuzzy = "product_search_fuzzy"
	IntentFallback           = "fallback"
)

// Response is the assistant's answer to a single query. Products is never
// nil so JSON consumers always see an array.
type Response struct {
	Answer     string            `json:"answer"`
	Intent     string            `json:"intent"`
	Confidence float64           `json:"confidence"`
	Products   []catalog.Product `json:"products"`
	Suggestion string            `json:"suggestion,omitempty"`
}

// request carries the preprocessed query through the stages so every stage
// shares one tokenization pass.
type request struct {
	raw       string
	lower     string
	tokens    []string
	keywords  []string
	sessionID string
}
