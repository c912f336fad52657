package format

import "github.com/krishisahayak/pkg/models"

// Key is a semantic lookup key into the per-language catalog. Formatting
// logic never hardcodes display strings; every farmer-visible phrase resolves
// through the catalog.
type Key string

const (
	KeyTitle       Key = "title"
	KeyProblem     Key = "problem"
	KeySolution    Key = "solution"
	KeySteps       Key = "steps"
	KeyPrevention  Key = "prevention"
	KeyTimeline    Key = "timeline"
	KeyCost        Key = "cost"
	KeyConfidence  Key = "confidence"
	KeyExpert      Key = "expert"
	KeyMoreInfo    Key = "more_info"
	KeyNextIssue   Key = "next_issue"
	KeyGreeting    Key = "greeting"
	KeyClosing     Key = "closing"
	KeySummary     Key = "summary"
	KeyPoints      Key = "points"
	KeyOpportunity Key = "opportunity"

	KeyDocHeader     Key = "doc_header"
	KeyDocSources    Key = "doc_sources"
	KeyDocDisclaimer Key = "doc_disclaimer"
	KeyDocExpert     Key = "doc_expert"

	KeyRetryPrompt  Key = "retry_prompt"
	KeyProfileNudge Key = "profile_nudge"
)

// Catalog is the injected per-(language, key) lookup table. Lookups are
// total: a key missing for a language falls back to the English entry.
type Catalog struct {
	entries map[models.Language]map[Key]string
}

// NewCatalog builds a catalog from explicit entries. The English table must
// cover every key; that invariant is what makes the fallback total.
func NewCatalog(entries map[models.Language]map[Key]string) *Catalog {
	return &Catalog{entries: entries}
}

// Lookup resolves a display string for the language, falling back to English.
func (c *Catalog) Lookup(lang models.Language, key Key) string {
	if table, ok := c.entries[lang]; ok {
		if v, ok := table[key]; ok {
			return v
		}
	}
	return c.entries[models.LangEnglish][key]
}

// DefaultCatalog returns the built-in language tables. Languages without a
// table (tel, kan, mal, mar) serve English via the fallback until their
// translations land.
func DefaultCatalog() *Catalog {
	return NewCatalog(map[models.Language]map[Key]string{
		models.LangHindi: {
			KeyTitle:       "कृषि सलाह",
			KeyProblem:     "समस्या",
			KeySolution:    "समाधान",
			KeySteps:       "कदम",
			KeyPrevention:  "रोकथाम",
			KeyTimeline:    "समय सीमा",
			KeyCost:        "अनुमानित खर्च",
			KeyConfidence:  "विश्वसनीयता",
			KeyExpert:      "विशेषज्ञ सलाह चाहिए?",
			KeyMoreInfo:    "और जानकारी के लिए",
			KeyNextIssue:   "अगली समस्या",
			KeyGreeting:    "नमस्ते!",
			KeyClosing:     "आपकी मदद के लिए धन्यवाद।",
			KeySummary:     "मैंने आपकी खेती की स्थिति का गहन विश्लेषण किया है।",
			KeyPoints:      "मुख्य सुझाव:",
			KeyOpportunity: "आपके आय को बढ़ाने का अवसर है",

			KeyDocHeader:     "सहायक जानकारी",
			KeyDocSources:    "स्रोत: भारतीय कृषि अनुसंधान संस्थान",
			KeyDocDisclaimer: "यह सलाह सामान्य मार्गदर्शन के लिए है। स्थानीय जलवायु के अनुसार परिवर्तन संभव है।",
			KeyDocExpert:     "अधिक सहायता के लिए अपने स्थानीय कृषि विशेषज्ञ से मिलें।",

			KeyRetryPrompt:  "क्षमा करें, सलाह तैयार नहीं हो सकी। कृपया थोड़ी देर बाद फिर प्रयास करें।",
			KeyProfileNudge: "व्यक्तिगत सलाह के लिए कृपया अपनी प्रोफ़ाइल पूरी करें।",
		},
		models.LangTamil: {
			KeyTitle:      "விவசாய ஆலோசனை",
			KeyProblem:    "சிக்கல்",
			KeySolution:   "தீர்வு",
			KeySteps:      "படிகள்",
			KeyPrevention: "தடுப்பு",
			KeyTimeline:   "கால எல்லை",
			KeyCost:       "மதிப்பிடப்பட்ட செலவு",
			KeyConfidence: "நம்பகத்தன்மை",
			KeyExpert:     "நிபுணர் ஆலோசனை வேண்டுமா?",
			KeyMoreInfo:   "மேலும் தகவல் பெற",
			KeyGreeting:   "வணக்கம்!",
		},
		models.LangEnglish: {
			KeyTitle:       "Agricultural Advice",
			KeyProblem:     "Problem",
			KeySolution:    "Solution",
			KeySteps:       "Steps",
			KeyPrevention:  "Prevention",
			KeyTimeline:    "Timeline",
			KeyCost:        "Estimated Cost",
			KeyConfidence:  "Confidence",
			KeyExpert:      "Need Expert Advice?",
			KeyMoreInfo:    "More Information",
			KeyNextIssue:   "Next Issue",
			KeyGreeting:    "Hello!",
			KeyClosing:     "Thank you for using our service.",
			KeySummary:     "I have analyzed your farming situation comprehensively.",
			KeyPoints:      "Key recommendations:",
			KeyOpportunity: "There is an opportunity to increase your income",

			KeyDocHeader:     "Supporting Information",
			KeyDocSources:    "Source: Indian Council of Agricultural Research",
			KeyDocDisclaimer: "This advice is general guidance. Local variations may apply.",
			KeyDocExpert:     "For more help, contact your local agricultural expert.",

			KeyRetryPrompt:  "Sorry, the advice could not be generated. Please try again in a little while.",
			KeyProfileNudge: "Please complete your profile for personalized recommendations.",
		},
	})
}
