package assistant

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/mediveda/healthbot/internal/catalog"
	"github.com/mediveda/healthbot/internal/chatlog"
	"github.com/mediveda/healthbot/internal/knowledge"
	"github.com/mediveda/healthbot/internal/nlp"
	"github.com/mediveda/healthbot/internal/session"
)

const (
	defaultMaxResults   = 5
	defaultListingLimit = 10
	defaultFuzzyCutoff  = 0.35
	defaultStoreName    = "HomeVed"
)

// Assistant orchestrates the stage pipeline over the catalog, the curated
// knowledge base, per-session memory and the background query log.
type Assistant struct {
	catalog   *catalog.Store
	knowledge *knowledge.Store
	sessions  *session.Store
	logs      *chatlog.Dispatcher

	maxResults   int
	listingLimit int
	fuzzyCutoff  float64
	storeName    string

	stages []stage
}

// stage is one step of the pipeline. A nil response means "not mine, pass
// it on"; a non-nil response terminates the pipeline.
type stage struct {
	name string
	run  func(ctx context.Context, req *request) *Response
}

// Option adjusts assistant tuning knobs.
type Option func(*Assistant)

// WithMaxResults caps how many products a search answer carries.
func WithMaxResults(n int) Option {
	return func(a *Assistant) {
		if n > 0 {
			a.maxResults = n
		}
	}
}

// WithListingLimit caps how many products a catalog-listing answer carries.
func WithListingLimit(n int) Option {
	return func(a *Assistant) {
		if n > 0 {
			a.listingLimit = n
		}
	}
}

// WithStoreName sets the store name used in greeting replies.
func WithStoreName(name string) Option {
	return func(a *Assistant) {
		if name != "" {
			a.storeName = name
		}
	}
}

// WithFuzzyCutoff sets the trigram similarity a fuzzy match must exceed.
func WithFuzzyCutoff(c float64) Option {
	return func(a *Assistant) {
		if c > 0 {
			a.fuzzyCutoff = c
		}
	}
}

func New(cat *catalog.Store, kb *knowledge.Store, sessions *session.Store, logs *chatlog.Dispatcher, opts ...Option) *Assistant {
	a := &Assistant{
		catalog:      cat,
		knowledge:    kb,
		sessions:     sessions,
		logs:         logs,
		maxResults:   defaultMaxResults,
		listingLimit: defaultListingLimit,
		fuzzyCutoff:  defaultFuzzyCutoff,
		storeName:    defaultStoreName,
	}
	for _, opt := range opts {
		opt(a)
	}
	a.stages = []stage{
		{"alternative", a.stageAlternative},
		{"greeting", a.stageGreeting},
		{"price_filter", a.stagePriceFilter},
		{"product_listing", a.stageProductListing},
		{"company_info", a.stageCompanyInfo},
		{"navigation", a.stageNavigation},
		{"knowledge_base", a.stageKnowledgeBase},
		{"direct_search", a.stageDirectSearch},
		{"keyword_search", a.stageKeywordSearch},
		{"fuzzy_search", a.stageFuzzySearch},
		{"fallback", a.stageFallback},
	}
	return a
}

// ProcessQuery runs the query through the stages and returns the first
// response produced. It never fails: store errors degrade to the next
// stage and the fallback stage always answers. An all-whitespace query is
// answered without touching the session or the logs.
func (a *Assistant) ProcessQuery(ctx context.Context, query, sessionID string) *Response {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return fallbackResponse()
	}
	if sessionID == "" {
		sessionID = session.DefaultID
	}

	req := &request{
		raw:       trimmed,
		lower:     strings.ToLower(trimmed),
		sessionID: sessionID,
	}
	req.tokens = nlp.Tokenize(trimmed)
	req.keywords = nlp.Keywords(req.tokens)

	for _, st := range a.stages {
		if resp := st.run(ctx, req); resp != nil {
			if resp.Products == nil {
				resp.Products = []catalog.Product{}
			}
			return resp
		}
	}
	return fallbackResponse()
}

// rememberShown merges newly shown products into the session so follow-up
// "show me another" requests can exclude them.
func (a *Assistant) rememberShown(req *request, products []catalog.Product, keyword, category string) {
	sess := a.sessions.Get(req.sessionID)
	sess.Remember(products)
	sess.LastQuery = req.raw
	if keyword != "" {
		sess.LastKeyword = keyword
	}
	if category != "" {
		sess.LastCategory = category
	}
	a.sessions.Put(req.sessionID, sess)
}

func (a *Assistant) stageAlternative(ctx context.Context, req *request) *Response {
	if !isAlternativeRequest(req.lower) {
		return nil
	}
	sess := a.sessions.Get(req.sessionID)
	products := a.alternativeProducts(ctx, sess)
	if len(products) == 0 {
		return &Response{
			Answer: "I've shown you everything matching your recent searches. " +
				"Try a new search, or ask to see all our products!",
			Intent:     IntentAlternative,
			Confidence: 0.9,
		}
	}
	a.rememberShown(req, products, "", "")

	answer := "Here are some other options for you:"
	if sess.LastKeyword != "" {
		answer = fmt.Sprintf("Here are some other %s options for you:", sess.LastKeyword)
	}
	return &Response{
		Answer:     answer,
		Intent:     IntentAlternative,
		Confidence: 0.9,
		Products:   products,
	}
}

func (a *Assistant) stageGreeting(ctx context.Context, req *request) *Response {
	if !exactGreetings[req.lower] {
		return nil
	}
	return &Response{
		Answer: fmt.Sprintf("Hello! Welcome to %s, your Ayurvedic wellness store.\n\n", a.storeName) +
			"I can help you:\n" +
			"- Find products for your health needs\n" +
			"- Answer questions about orders, shipping and returns\n" +
			"- Suggest Ayurvedic remedies\n\n" +
			"What are you looking for today?",
		Intent:     IntentGreeting,
		Confidence: 1.0,
	}
}

func (a *Assistant) stagePriceFilter(ctx context.Context, req *request) *Response {
	if m := priceBetweenRe.FindStringSubmatch(req.raw); m != nil {
		min, errMin := strconv.ParseFloat(m[1], 64)
		max, errMax := strconv.ParseFloat(m[2], 64)
		if errMin == nil && errMax == nil {
			if min > max {
				min, max = max, min
			}
			products, err := a.catalog.SearchByPriceRange(ctx, min, max, 50)
			if err != nil {
				return nil
			}
			label := fmt.Sprintf("between ₹%s and ₹%s",
				strconv.FormatFloat(min, 'f', -1, 64),
				strconv.FormatFloat(max, 'f', -1, 64))
			return a.priceResponse(req, products, label, IntentPriceFilter)
		}
	}
	if m := priceUnderRe.FindStringSubmatch(req.raw); m != nil {
		if max, err := strconv.ParseFloat(m[1], 64); err == nil {
			products, qerr := a.catalog.SearchByMaxPrice(ctx, max, 50)
			if qerr != nil {
				return nil
			}
			return a.priceResponse(req, products, fmt.Sprintf("under ₹%s", m[1]), IntentPriceFilter)
		}
	}
	if m := priceAboveRe.FindStringSubmatch(req.raw); m != nil {
		if min, err := strconv.ParseFloat(m[1], 64); err == nil {
			products, qerr := a.catalog.SearchByMinPrice(ctx, min, 50)
			if qerr != nil {
				return nil
			}
			return a.priceResponse(req, products, fmt.Sprintf("above ₹%s", m[1]), IntentPriceFilterAbove)
		}
	}
	return nil
}

func (a *Assistant) priceResponse(req *request, products []catalog.Product, label, intent string) *Response {
	if len(products) == 0 {
		return &Response{
			Answer:     fmt.Sprintf("Sorry, I couldn't find any products %s. Try a different price range!", label),
			Intent:     intent,
			Confidence: 0.9,
		}
	}
	shown := products
	if len(shown) > a.maxResults {
		shown = shown[:a.maxResults]
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Found %d products %s:\n", len(products), label)
	for _, p := range shown {
		fmt.Fprintf(&b, "- %s: ₹%.0f\n", p.Name, p.Price)
	}
	if extra := len(products) - len(shown); extra > 0 {
		fmt.Fprintf(&b, "...and %d more", extra)
	}
	a.rememberShown(req, shown, "", "")
	return &Response{
		Answer:     strings.TrimRight(b.String(), "\n"),
		Intent:     intent,
		Confidence: 0.95,
		Products:   shown,
	}
}

func (a *Assistant) stageProductListing(ctx context.Context, req *request) *Response {
	listing := detectListing(req.lower)
	if listing == nil {
		return nil
	}

	var (
		products []catalog.Product
		err      error
	)
	if listing.General {
		products, err = a.catalog.Top(ctx, a.listingLimit)
	} else {
		products, err = a.catalog.SearchByCategory(ctx, listing.Keyword, a.listingLimit)
		if err == nil && len(products) == 0 {
			products, err = a.catalog.Search(ctx, listing.Keyword, a.listingLimit)
		}
	}
	if err != nil {
		return nil
	}

	if len(products) == 0 {
		a.logs.LogUnanswered(req.raw, IntentProductListing)
		return &Response{
			Answer: fmt.Sprintf("Sorry, I couldn't find any %s products right now. "+
				"Try browsing our full catalog or ask me for something else!", listing.Keyword),
			Intent:     IntentProductListing,
			Confidence: 1.0,
		}
	}

	category := ""
	if len(products) > 0 {
		category = products[0].Category
	}
	a.rememberShown(req, products, listing.Keyword, category)

	answer := "Here's our product range:"
	if listing.Keyword != "" {
		answer = fmt.Sprintf("Here are our %s products:", listing.Keyword)
	}
	return &Response{
		Answer:     answer,
		Intent:     IntentProductListing,
		Confidence: 1.0,
		Products:   products,
	}
}

func (a *Assistant) stageCompanyInfo(ctx context.Context, req *request) *Response {
	for _, item := range companyInfoAnswers {
		if item.pattern.MatchString(req.raw) {
			return &Response{
				Answer:     item.answer,
				Intent:     item.intent,
				Confidence: 0.9,
			}
		}
	}
	return nil
}

func (a *Assistant) stageNavigation(ctx context.Context, req *request) *Response {
	for _, item := range navigationAnswers {
		if item.pattern.MatchString(req.raw) {
			return &Response{
				Answer:     item.answer,
				Intent:     item.intent,
				Confidence: 0.9,
			}
		}
	}
	return nil
}

func (a *Assistant) stageKnowledgeBase(ctx context.Context, req *request) *Response {
	entry, err := a.knowledge.BestMatch(ctx, req.raw)
	if err != nil || entry == nil {
		return nil
	}

	id := entry.ID
	a.logs.Run(func(ctx context.Context) error {
		return a.knowledge.IncrementUsage(ctx, id)
	})

	var products []catalog.Product
	if entry.ProductIntent() {
		keyword := entry.FirstKeyword(req.raw)
		if found, serr := a.catalog.Search(ctx, keyword, a.maxResults); serr == nil && len(found) > 0 {
			products = found
			a.rememberShown(req, products, keyword, products[0].Category)
		}
	}
	return &Response{
		Answer:     entry.Answer,
		Intent:     entry.Intent,
		Confidence: entry.Confidence,
		Products:   products,
	}
}

func (a *Assistant) stageDirectSearch(ctx context.Context, req *request) *Response {
	if isNonProductQuery(req.raw) {
		return nil
	}
	products, err := a.catalog.Search(ctx, req.raw, a.maxResults)
	if err != nil || len(products) == 0 {
		return nil
	}
	a.rememberShown(req, products, req.raw, products[0].Category)
	return &Response{
		Answer:     fmt.Sprintf("I found %d products matching %q:", len(products), req.raw),
		Intent:     IntentProductSearch,
		Confidence: 1.0,
		Products:   products,
	}
}

func (a *Assistant) stageKeywordSearch(ctx context.Context, req *request) *Response {
	if isNonProductQuery(req.raw) {
		return nil
	}
	for _, keyword := range req.keywords {
		products, err := a.catalog.Search(ctx, keyword, a.maxResults)
		if err != nil || len(products) == 0 {
			continue
		}
		a.rememberShown(req, products, keyword, products[0].Category)
		return &Response{
			Answer:     fmt.Sprintf("Here are products related to %q:", keyword),
			Intent:     IntentProductSearch,
			Confidence: 0.85,
			Products:   products,
		}
	}
	return nil
}

func (a *Assistant) stageFuzzySearch(ctx context.Context, req *request) *Response {
	if isNonProductQuery(req.raw) {
		return nil
	}
	name, score, err := a.catalog.FuzzyName(ctx, req.raw)
	if err != nil || name == "" || score <= a.fuzzyCutoff {
		return nil
	}
	products, serr := a.catalog.Search(ctx, name, a.maxResults)
	if serr != nil || len(products) == 0 {
		return nil
	}
	a.rememberShown(req, products, name, products[0].Category)
	return &Response{
		Answer:     fmt.Sprintf("Did you mean %q? Here's what I found:", name),
		Intent:     IntentProductSearchFuzzy,
		Confidence: score,
		Products:   products,
		Suggestion: name,
	}
}

func (a *Assistant) stageFallback(ctx context.Context, req *request) *Response {
	intent, _ := nlp.DetectIntent(req.tokens)
	a.logs.LogUnanswered(req.raw, string(intent))
	return fallbackResponse()
}

func fallbackResponse() *Response {
	return &Response{
		Answer: "I'm not sure I understood that. Here's what I can help with:\n" +
			"- Finding products (try \"show me oils\" or \"products for stress\")\n" +
			"- Price searches (try \"products under 500\")\n" +
			"- Orders, shipping, returns and payments\n" +
			"- General Ayurveda questions\n\n" +
			"Or contact our team at support@mediveda.com",
		Intent:     IntentFallback,
		Confidence: 0,
		Products:   []catalog.Product{},
	}
}
