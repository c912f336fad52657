package advisory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected Intent
	}{
		{
			name:     "english profit query",
			query:    "How can I increase my profit this season?",
			expected: IntentProfitMaximization,
		},
		{
			name:     "hindi profit query in devanagari",
			query:    "मेरी गेहूं की फसल से मुनाफा कैसे बढ़ाऊं?",
			expected: IntentProfitMaximization,
		},
		{
			name:     "romanized hindi profit query",
			query:    "munafa kaise badhaye",
			expected: IntentProfitMaximization,
		},
		{
			name:     "crop selection query",
			query:    "Which crop should I sow next season?",
			expected: IntentCropSelection,
		},
		{
			name:     "hindi crop query",
			query:    "अगले सीजन में कौन सी फसल बोऊं?",
			expected: IntentCropSelection,
		},
		{
			name:     "pest query",
			query:    "My wheat has some disease on the leaves",
			expected: IntentPestManagement,
		},
		{
			name:     "hindi pest query",
			query:    "गेहूं में कीट लग गए हैं",
			expected: IntentPestManagement,
		},
		{
			name:     "irrigation query",
			query:    "When should I give water to my field?",
			expected: IntentIrrigation,
		},
		{
			name:     "hindi irrigation query",
			query:    "सिंचाई कब करनी चाहिए",
			expected: IntentIrrigation,
		},
		{
			name:     "scheme query",
			query:    "Is there a subsidy for drip systems?",
			expected: IntentSchemeDiscovery,
		},
		{
			name:     "hindi scheme query",
			query:    "किसानों के लिए कौन सी योजना है?",
			expected: IntentSchemeDiscovery,
		},
		{
			name:     "profit outranks crop when both match",
			query:    "Which crop gives the most profit?",
			expected: IntentProfitMaximization,
		},
		{
			name:     "uppercase input is normalized",
			query:    "HOW DO I EARN MORE?",
			expected: IntentProfitMaximization,
		},
		{
			name:     "unmatched query falls back to general",
			query:    "Tell me about the weather tomorrow",
			expected: IntentGeneralAdvisory,
		},
		{
			name:     "empty query falls back to general",
			query:    "",
			expected: IntentGeneralAdvisory,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.query))
		})
	}
}
