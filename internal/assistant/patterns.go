package assistant

import "regexp"

// patternAnswer pairs a matcher with its canned reply. Matchers are
// declarative data so new rules can be added without touching the
// orchestrator.
type patternAnswer struct {
	pattern *regexp.Regexp
	answer  string
	intent  string
}

// exactGreetings terminate the pipeline only when the whole normalized
// query equals one of them.
var exactGreetings = map[string]bool{
	"hi": true, "hello": true, "hii": true, "helo": true,
	"hey": true, "greetings": true,
}

// alternativePatterns recognize "show me something else" follow-ups.
var alternativePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(another|other|different|else|alternative|alternatives)\b.*\bproduct`),
	regexp.MustCompile(`(?i)\bproduct\b.*\b(another|other|different|else|alternative)\b`),
	regexp.MustCompile(`(?i)show\s+me\s+(another|more|other|different|some\s+more)`),
	regexp.MustCompile(`(?i)any\s+(other|more|alternative|different)\s+(product|option|item)`),
	regexp.MustCompile(`(?i)\b(next|more)\s+(product|option|suggestion|result)`),
	regexp.MustCompile(`(?i)don'?t\s+(like|want)\s+(this|that|it)[,.]?\s*(show|give|suggest|any)`),
	regexp.MustCompile(`(?i)something\s+(else|different|other|more)`),
}

// Price-filter patterns. The "between" form is checked first since it is
// the most specific; "under"/"above" would otherwise swallow one bound.
var (
	priceBetweenRe = regexp.MustCompile(`(?i)(?:between|from)\s*(?:rs\.?|inr|₹)?\s*(\d+(?:\.\d+)?)\s*(?:to|-|and)\s*(?:rs\.?|inr|₹)?\s*(\d+(?:\.\d+)?)`)
	priceUnderRe   = regexp.MustCompile(`(?i)(?:under|below|less\s+than|affordable|budget|within)\s*(?:rs\.?|inr|₹)?\s*(\d+(?:\.\d+)?)`)
	priceAboveRe   = regexp.MustCompile(`(?i)(?:above|greater\s+than|more\s+than|higher\s+than|over)\s*(?:rs\.?|inr|₹)?\s*(\d+(?:\.\d+)?)`)
)

// nonProductPatterns is the authoritative set of "this is not a product
// query" matchers. It gates the product-search stages and also feeds the
// company-info guard, so the two can never drift apart.
var nonProductPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)who\s+(is|are|was|owns|founded|runs|leads)`),
	regexp.MustCompile(`(?i)\b(owner|founder|ceo|director|president|chairman|manager|head)\b`),
	regexp.MustCompile(`(?i)\b(company|organization|organisation|enterprise|business|startup|firm)\b.*\b(info|about|background|history|profile)\b`),
	regexp.MustCompile(`(?i)tell\s+me\s+about\s+(homeved|mediveda|the\s+company|your\s+company)`),
	regexp.MustCompile(`(?i)what\s+is\s+(homeved|mediveda)`),
	regexp.MustCompile(`(?i)\b(when\s+was|when\s+did|how\s+many\s+employees|headquarters|location|address\s+of)\b`),
}

// companyInfoAnswers handle company/people questions before any product
// search can mis-route them into a fuzzy match. Checked in order.
var companyInfoAnswers = []patternAnswer{
	{
		pattern: regexp.MustCompile(`(?i)who\s+((is|are|was)\s+(the\s+)?(owner|founder|ceo|director|head|president|co-founder)|(founded|started|created|owns|runs|leads)\b)`),
		answer: "HomeVed is a wellness company built by a passionate team dedicated to bringing authentic Ayurvedic products to every home.\n\n" +
			"For specific leadership or ownership information, please visit our official website or contact us at support@mediveda.com or +91 1800-123-4567.",
		intent: IntentAboutInfo,
	},
	{
		pattern: regexp.MustCompile(`(?i)\b(owner|founder|ceo|chairman|president|co-founder|director)\b.*\b(homeved|mediveda|company|of)\b`),
		answer: "HomeVed is founded and managed by a team passionate about Ayurvedic wellness.\n\n" +
			"For leadership details, please visit our About page or contact us at support@mediveda.com.",
		intent: IntentAboutInfo,
	},
	{
		pattern: regexp.MustCompile(`(?i)\b(homeved|mediveda)\b.*\b(owner|founder|ceo|founded|established|started|created)`),
		answer: "HomeVed is an Ayurvedic health & wellness platform committed to authentic, natural products.\n\n" +
			"For specific company or leadership information, please contact us at support@mediveda.com or +91 1800-123-4567.",
		intent: IntentAboutInfo,
	},
	{
		pattern: regexp.MustCompile(`(?i)about\s+(homeved|mediveda|us|the\s+company|our\s+company)`),
		answer: "About HomeVed:\n\n" +
			"Mission: To bring the authentic wisdom of Ayurveda to every home for holistic well-being.\n" +
			"Vision: To become the most trusted platform for natural, safe, and effective Ayurvedic healthcare products.\n" +
			"Services: We offer a curated range of high-quality Ayurvedic supplements, skincare, and wellness products, along with expert guidance on traditional health practices.\n\n" +
			"Contact us: support@mediveda.com | +91 1800-123-4567",
		intent: IntentAboutInfo,
	},
	{
		pattern: regexp.MustCompile(`(?i)what\s+(is|are)\s+(homeved|mediveda)`),
		answer: "HomeVed (Mediveda) is a trusted Ayurvedic wellness platform offering:\n" +
			"- 100% natural and authentic products\n" +
			"- Traditional Ayurvedic formulations\n" +
			"- Quality-tested supplements\n" +
			"- Expert wellness guidance\n\n" +
			"Visit our About page to learn more!",
		intent: IntentAboutInfo,
	},
}

// navigationAnswers cover policy/help topics; first match wins.
var navigationAnswers = []patternAnswer{
	{
		pattern: regexp.MustCompile(`(?i)privacy\s*policy`),
		answer: "Privacy Policy:\n\n" +
			"HomeVed is committed to protecting your privacy. We collect and use your personal information (such as name, email, and address) solely to process your orders and improve your shopping experience. We do not sell or share your data with third parties for marketing purposes. All transactions are secured with industry-standard encryption.",
		intent: IntentNavigation,
	},
	{
		pattern: regexp.MustCompile(`(?i)return\s*policy|refund\s*policy`),
		answer: "Return Policy:\n\n" +
			"We want you to be completely satisfied with your purchase. If you're not happy with a product, you can return it within 7 days of delivery. The item must be unused, in its original packaging, and with all tags intact. A full refund will be processed back to your original payment method within 5-7 business days.",
		intent: IntentNavigation,
	},
	{
		pattern: regexp.MustCompile(`(?i)login|sign\s*in|how\s*to\s*login`),
		answer: "To login to HomeVed:\n" +
			"1. Go to the HomeVed website.\n" +
			"2. Click on the 'Account' icon or 'Login' button at the top right.\n" +
			"3. Enter your registered email and password.\n" +
			"4. Click 'Submit' or 'Login' to access your account.\n" +
			"5. If you forgot your password, use the 'Forgot Password' option.",
		intent: IntentNavigation,
	},
	{
		pattern: regexp.MustCompile(`(?i)how\s*(to\s*)?order|place\s*(an?\s*)?order|ordering|how\s*to\s*buy`),
		answer: "Ordering is easy!\n" +
			"1. Browse our products\n" +
			"2. Click 'Add to Cart' on items you like\n" +
			"3. Go to Cart and click 'Checkout'\n" +
			"4. Enter your shipping details\n" +
			"5. Complete payment securely\n\n" +
			"Need help with a specific step?",
		intent: IntentNavigation,
	},
	{
		pattern: regexp.MustCompile(`(?i)shipping|delivery|how\s*long`),
		answer: "Shipping Information:\n" +
			"- FREE delivery on all orders\n" +
			"- Delivery within 5-7 business days\n" +
			"- Track your order anytime from 'My Orders'\n" +
			"- Authentic products guaranteed",
		intent: IntentNavigation,
	},
	{
		pattern: regexp.MustCompile(`(?i)contact|support|email|phone|call\s*us`),
		answer: "Contact Us:\n" +
			"Email: support@mediveda.com\n" +
			"Phone: +91 1800-123-4567\n" +
			"Hours: Mon-Sat, 9 AM - 6 PM\n\n" +
			"We typically respond within 24 hours!",
		intent: IntentContactInfo,
	},
	{
		pattern: regexp.MustCompile(`(?i)payment|pay\b|payment\s*method`),
		answer: "Payment Methods Accepted:\n" +
			"- Credit / Debit Cards\n" +
			"- UPI (Google Pay, PhonePe, etc.)\n" +
			"- Net Banking\n" +
			"- Digital Wallets\n\n" +
			"All payments are 100% secure and encrypted.",
		intent: IntentNavigation,
	},
	{
		pattern: regexp.MustCompile(`(?i)return|refund|exchange`),
		answer: "Return & Refund Policy:\n" +
			"- 7-day return window from delivery\n" +
			"- Items must be unused and in original packaging\n" +
			"- Contact support@mediveda.com to initiate a return\n" +
			"- Full refund processed within 5-7 business days",
		intent: IntentNavigation,
	},
}

// isAlternativeRequest reports whether the query asks for different
// products than previously shown.
func isAlternativeRequest(lowerQuery string) bool {
	for _, re := range alternativePatterns {
		if re.MatchString(lowerQuery) {
			return true
		}
	}
	return false
}

// isNonProductQuery is the single authority deciding that a query must not
// reach the product-search stages.
func isNonProductQuery(query string) bool {
	for _, re := range nonProductPatterns {
		if re.MatchString(query) {
			return true
		}
	}
	for _, item := range companyInfoAnswers {
		if item.pattern.MatchString(query) {
			return true
		}
	}
	return false
}
