// Package nlp holds the rule-based text helpers used by the assistant
// pipeline: tokenization, stop-word filtering and keyword-bucket intent
// scoring. There is no model here; everything is deterministic.
package nlp

import (
	"strings"
	"unicode"
)

// Intent is a coarse label describing the purpose of an utterance.
type Intent string

const (
	IntentGreeting      Intent = "greeting"
	IntentFarewell      Intent = "farewell"
	IntentAlternative   Intent = "alternative"
	IntentProductSearch Intent = "product_search"
	IntentHealthQuery   Intent = "health_query"
	IntentPricingInfo   Intent = "pricing_info"
	IntentWebsiteInfo   Intent = "website_info"
	IntentContactInfo   Intent = "contact_info"
	IntentAboutInfo     Intent = "about_info"
	IntentUnknown       Intent = "unknown"
)

// intentBucket pairs an intent with its keyword set. Declaration order is
// the tie-break order: on equal scores the first-declared bucket wins.
type intentBucket struct {
	intent   Intent
	keywords map[string]bool
}

var intentBuckets = []intentBucket{
	{IntentGreeting, keywordSet("hello", "hi", "hey", "hii", "helo", "greetings")},
	{IntentFarewell, keywordSet("bye", "goodbye", "thanks", "thank", "later")},
	{IntentAlternative, keywordSet("another", "other", "else", "different", "more", "next", "alternatives", "similar", "suggest")},
	{IntentProductSearch, keywordSet("find", "search", "show", "list", "give", "suggest", "recommend", "need", "want", "looking", "buy", "purchase")},
	{IntentHealthQuery, keywordSet("stress", "anxiety", "sleep", "insomnia", "immunity", "immune", "digestion", "stomach", "pain", "joint", "arthritis")},
	{IntentPricingInfo, keywordSet("price", "cost", "expensive", "cheap", "affordable", "budget")},
	{IntentWebsiteInfo, keywordSet("order", "shipping", "delivery", "return", "refund", "payment", "checkout", "track")},
	{IntentContactInfo, keywordSet("contact", "support", "email", "phone", "call", "help")},
	{IntentAboutInfo, keywordSet("about", "company", "who", "mediveda", "homeved", "founder", "owner", "ceo", "team")},
}

var stopWords = keywordSet(
	"a", "an", "the", "is", "it", "in", "on", "at", "to", "for",
	"of", "and", "or", "but", "with", "do", "i", "me", "my", "we",
	"you", "he", "she", "they", "this", "that", "are", "was", "be",
	"have", "has", "had", "will", "would", "can", "could", "should",
	"what", "which", "who", "how", "when", "where", "please", "tell",
	"about", "any", "some", "get", "give", "show", "want", "need",
	"just", "also", "else", "other", "another",
)

// Tokenize lowercases the text, replaces every non-word character with
// whitespace and splits into tokens. Empty input yields no tokens.
func Tokenize(text string) []string {
	mapped := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			return unicode.ToLower(r)
		}
		return ' '
	}, text)
	return strings.Fields(mapped)
}

// Keywords filters tokens down to content keywords: stop words and tokens
// of length <= 2 are dropped.
func Keywords(tokens []string) []string {
	var out []string
	for _, t := range tokens {
		if len(t) > 2 && !stopWords[t] {
			out = append(out, t)
		}
	}
	return out
}

// IsStopWord reports whether the token is in the stop-word set.
func IsStopWord(token string) bool {
	return stopWords[token]
}

// DetectIntent scores each intent bucket by the number of tokens present in
// its keyword set and returns the best bucket with a confidence of
// min(hits/3, 1.0). A zero best score yields IntentUnknown with confidence 0.
// The result is advisory; routing belongs to the pipeline stages.
func DetectIntent(tokens []string) (Intent, float64) {
	bestIntent := IntentUnknown
	bestScore := 0
	for _, bucket := range intentBuckets {
		score := 0
		for _, t := range tokens {
			if bucket.keywords[t] {
				score++
			}
		}
		if score > bestScore {
			bestIntent, bestScore = bucket.intent, score
		}
	}
	if bestScore == 0 {
		return IntentUnknown, 0
	}

	confidence := float64(bestScore) / 3
	if confidence > 1 {
		confidence = 1
	}
	return bestIntent, confidence
}

func keywordSet(words ...string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}
