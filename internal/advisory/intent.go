package advisory

import "strings"

// Intent is the advisory category that selects the prompt template and the
// downstream emphasis for a query.
type Intent string

const (
	IntentGeneralAdvisory    Intent = "general_advisory"
	IntentProfitMaximization Intent = "profit_maximization"
	IntentCropSelection      Intent = "crop_selection"
	IntentPestManagement     Intent = "pest_management"
	IntentIrrigation         Intent = "irrigation"
	IntentSchemeDiscovery    Intent = "scheme_discovery"
)

// intentMatcher binds a set of keywords to one intent. Matchers are evaluated
// in table order; the first matcher with any keyword present in the query
// wins. Keeping the table ordered makes classification reproducible.
type intentMatcher struct {
	keywords []string
	intent   Intent
}

// intentRules is the fixed evaluation order. Profit outranks crop so that
// "which crop earns more profit" resolves to profit maximization, matching
// the routing the advisory surface has always used.
var intentRules = []intentMatcher{
	{keywords: []string{"profit", "income", "earn", "munafa", "aay", "आय", "मुनाफा", "कमाई"}, intent: IntentProfitMaximization},
	{keywords: []string{"crop", "plant", "sow", "variety", "fasal", "फसल", "बोना", "बुवाई"}, intent: IntentCropSelection},
	{keywords: []string{"pest", "disease", "insect", "keet", "rog", "कीट", "रोग", "बीमारी"}, intent: IntentPestManagement},
	{keywords: []string{"water", "irrigation", "sinchai", "पानी", "सिंचाई"}, intent: IntentIrrigation},
	{keywords: []string{"scheme", "subsidy", "yojana", "loan", "योजना", "सब्सिडी", "कर्ज"}, intent: IntentSchemeDiscovery},
}

// Classify maps a free-text query to exactly one intent. It is a total
// function: queries matching no rule resolve to the general advisory intent,
// never to an error. Replacing this rule table with a model-based classifier
// is allowed as long as this signature is preserved.
func Classify(query string) Intent {
	q := strings.ToLower(query)
	for _, rule := range intentRules {
		for _, kw := range rule.keywords {
			if strings.Contains(q, kw) {
				return rule.intent
			}
		}
	}
	return IntentGeneralAdvisory
}
