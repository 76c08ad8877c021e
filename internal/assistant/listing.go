package assistant

import (
	"regexp"
	"strings"

	"github.com/mediveda/healthbot/internal/nlp"
)

// listingRequest is the outcome of the product-listing detector. A general
// request wants the whole catalog; otherwise Keyword names the product or
// category the user asked to browse.
type listingRequest struct {
	General bool
	Keyword string
}

// generalListingPatterns match catalog-wide browse requests.
var generalListingPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)show\s+(me\s+)?(all\s+)?(your\s+)?products`),
	regexp.MustCompile(`(?i)what\s+(products|items)\s+(do\s+you\s+(have|sell)|are\s+(there|available))`),
	regexp.MustCompile(`(?i)list\s+(all\s+)?(your\s+)?(products|items)`),
	regexp.MustCompile(`(?i)(available|all)\s+products`),
	regexp.MustCompile(`(?i)what\s+do\s+you\s+(have|sell|offer)`),
	regexp.MustCompile(`(?i)browse\s+(products|catalog|catalogue)`),
	regexp.MustCompile(`(?i)product\s+(list|catalog|catalogue|range)`),
}

// categoryListingPatterns capture the thing the user wants to browse, e.g.
// "show me oils" or "do you have ashwagandha products".
var categoryListingPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)show\s+(?:me\s+)?(?:some\s+)?([a-z\s]+?)\s*(?:products?)?\s*$`),
	regexp.MustCompile(`(?i)do\s+you\s+(?:have|sell)\s+(?:any\s+)?([a-z\s]+?)\s*(?:products?)?\s*\??\s*$`),
	regexp.MustCompile(`(?i)(?:looking|searching)\s+for\s+(?:some\s+)?([a-z\s]+?)\s*(?:products?)?\s*$`),
	regexp.MustCompile(`(?i)i\s+(?:want|need)\s+(?:some\s+)?([a-z\s]+?)\s*(?:products?)?\s*$`),
	regexp.MustCompile(`(?i)(?:any|got)\s+([a-z\s]+?)\s+products?`),
}

// listingSkipKeywords are filler captures that would make a meaningless
// catalog search ("show me something", "i want help").
var listingSkipKeywords = map[string]bool{
	"me": true, "all": true, "your": true, "the": true, "a": true,
	"an": true, "some": true, "any": true, "my": true, "it": true,
	"that": true, "this": true, "them": true, "these": true, "those": true,
	"something": true, "anything": true, "everything": true, "more": true,
	"help": true, "info": true, "information": true, "details": true,
	"products": true, "product": true, "items": true, "item": true,
	"stuff": true, "things": true, "thing": true, "options": true,
}

var bareWordRe = regexp.MustCompile(`^[a-z]+$`)

// detectListing classifies browse-style queries. It returns nil when the
// query does not look like a listing request at all.
func detectListing(lowerQuery string) *listingRequest {
	for _, re := range generalListingPatterns {
		if re.MatchString(lowerQuery) {
			return &listingRequest{General: true}
		}
	}
	for _, re := range categoryListingPatterns {
		m := re.FindStringSubmatch(lowerQuery)
		if m == nil {
			continue
		}
		keyword := strings.TrimSpace(m[1])
		if keyword == "" || listingSkipKeywords[keyword] {
			continue
		}
		// Strip leading fillers from multi-word captures ("some herbal oils").
		words := strings.Fields(keyword)
		for len(words) > 0 && listingSkipKeywords[words[0]] {
			words = words[1:]
		}
		if len(words) == 0 {
			continue
		}
		return &listingRequest{Keyword: strings.Join(words, " ")}
	}
	// A bare single word like "ashwagandha" is treated as a browse request
	// when the classifier does not see a clear non-product intent.
	if !strings.Contains(strings.TrimSpace(lowerQuery), " ") {
		word := strings.TrimSpace(lowerQuery)
		if len(word) > 3 && bareWordRe.MatchString(word) && !listingSkipKeywords[word] {
			switch intent, _ := nlp.DetectIntent(nlp.Tokenize(word)); intent {
			case nlp.IntentUnknown, nlp.IntentProductSearch:
				return &listingRequest{Keyword: word}
			}
		}
	}
	return nil
}
