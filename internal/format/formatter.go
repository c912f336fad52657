package format

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/krishisahayak/internal/advisory"
	"github.com/krishisahayak/pkg/models"
)

const (
	// DefaultConfidence is reported when the upstream advisory carries no
	// confidence signal of its own.
	DefaultConfidence = 85

	// MaxVoiceScriptRunes bounds the synthesizer input. Anything longer is
	// truncated at a rune boundary.
	MaxVoiceScriptRunes = 500

	maxVoiceActions = 3
	maxDisplayRisks = 3
)

// Advisory is the parsed oracle output handed to the formatter, before any
// channel- or language-specific rendering.
type Advisory struct {
	RawText    string
	ActionPlan []models.ActionItem
	Intent     advisory.Intent
	Context    advisory.Context
	Confidence int
}

// Formatter renders a parsed advisory into the farmer-facing response for a
// given language and delivery channel. All display strings resolve through
// the catalog; the formatter itself never embeds farmer-visible text.
type Formatter struct {
	catalog *Catalog
}

func NewFormatter(catalog *Catalog) *Formatter {
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	return &Formatter{catalog: catalog}
}

// Format produces the complete response for one channel. The voice script is
// always populated so a chat response can later be replayed over voice.
func (f *Formatter) Format(adv Advisory, lang models.Language, channel models.Channel) models.AdvisoryResponse {
	confidence := adv.Confidence
	if confidence <= 0 {
		confidence = DefaultConfidence
	}

	resp := models.AdvisoryResponse{
		DisplayText:        f.displayText(adv, lang, channel),
		VoiceScript:        f.VoiceScript(adv, lang),
		ActionPlan:         adv.ActionPlan,
		Risks:              riskNames(adv.Context),
		Opportunities:      opportunityNames(adv.Context),
		SuggestedFollowUps: FollowUpsFor(adv.Intent),
		Confidence:         confidence,
		Language:           lang,
		Channel:            channel,
	}
	return resp
}

func (f *Formatter) displayText(adv Advisory, lang models.Language, channel models.Channel) string {
	switch channel {
	case models.ChannelInsight:
		// Insight digests embed the advisory into a larger card; no framing.
		return strings.TrimSpace(adv.RawText)
	case models.ChannelVoice:
		return f.VoiceScript(adv, lang)
	default:
		return f.chatText(adv, lang)
	}
}

// chatText builds the markdown-style body used by chat and WhatsApp. Section
// headers come from the catalog so Hindi farmers see Hindi framing even when
// the oracle answered in another register.
func (f *Formatter) chatText(adv Advisory, lang models.Language) string {
	var b strings.Builder

	fmt.Fprintf(&b, "*%s*\n\n", f.catalog.Lookup(lang, KeyTitle))
	b.WriteString(strings.TrimSpace(adv.RawText))

	if len(adv.ActionPlan) > 0 {
		fmt.Fprintf(&b, "\n\n*%s*\n", f.catalog.Lookup(lang, KeySteps))
		for _, item := range adv.ActionPlan {
			fmt.Fprintf(&b, "%d. %s\n", item.Step, item.Action)
		}
	}

	if adv.Context.NeedsProfileCompletion {
		fmt.Fprintf(&b, "\n%s\n", f.catalog.Lookup(lang, KeyProfileNudge))
	}

	fmt.Fprintf(&b, "\n*%s*: %d%%", f.catalog.Lookup(lang, KeyConfidence), confidenceOrDefault(adv.Confidence))
	return b.String()
}

// VoiceScript builds the spoken summary: localized opener, up to three
// action items, and the leading opportunity. The result carries no markup
// and never exceeds MaxVoiceScriptRunes.
func (f *Formatter) VoiceScript(adv Advisory, lang models.Language) string {
	var parts []string
	parts = append(parts, f.catalog.Lookup(lang, KeySummary))

	if len(adv.ActionPlan) > 0 {
		parts = append(parts, f.catalog.Lookup(lang, KeyPoints))
		limit := len(adv.ActionPlan)
		if limit > maxVoiceActions {
			limit = maxVoiceActions
		}
		for i := 0; i < limit; i++ {
			parts = append(parts, fmt.Sprintf("%d. %s.", i+1, stripMarkup(adv.ActionPlan[i].Action)))
		}
	}

	if opps := opportunityNames(adv.Context); len(opps) > 0 {
		parts = append(parts, fmt.Sprintf("%s: %s.", f.catalog.Lookup(lang, KeyOpportunity), stripMarkup(opps[0])))
	}

	return truncateRunes(strings.Join(parts, " "), MaxVoiceScriptRunes)
}

// AddDocumentation decorates a finished response with the sources and
// disclaimer block. It is a terminal step: the action plan and voice script
// are left untouched.
func (f *Formatter) AddDocumentation(resp models.AdvisoryResponse) models.AdvisoryResponse {
	lang := resp.Language
	resp.Documentation = &models.Documentation{
		Header:        f.catalog.Lookup(lang, KeyDocHeader),
		Sources:       f.catalog.Lookup(lang, KeyDocSources),
		Disclaimer:    f.catalog.Lookup(lang, KeyDocDisclaimer),
		ExpertContact: f.catalog.Lookup(lang, KeyDocExpert),
	}
	if resp.Channel != models.ChannelVoice {
		resp.DisplayText = resp.DisplayText + "\n\n_" + resp.Documentation.Disclaimer + "_"
	}
	return resp
}

// RetryMessage is the farmer-facing text returned when advisory generation
// fails outright.
func (f *Formatter) RetryMessage(lang models.Language) string {
	return f.catalog.Lookup(lang, KeyRetryPrompt)
}

// FollowUpsFor suggests the next questions a farmer is likely to ask after
// an advisory of the given intent.
func FollowUpsFor(intent advisory.Intent) []models.FollowUp {
	if ups, ok := followUpsByIntent[intent]; ok {
		return ups
	}
	return followUpsByIntent[advisory.IntentGeneralAdvisory]
}

var followUpsByIntent = map[advisory.Intent][]models.FollowUp{
	advisory.IntentGeneralAdvisory: {
		{Text: "How can I increase my profit?", Action: "profit_maximization"},
		{Text: "Which crop should I grow next season?", Action: "crop_selection"},
		{Text: "What government schemes can help me?", Action: "scheme_discovery"},
	},
	advisory.IntentProfitMaximization: {
		{Text: "Tell me more about reducing costs", Action: "profit_maximization"},
		{Text: "Where can I get the best mandi price?", Action: "profit_maximization"},
		{Text: "Which alternative crop earns more?", Action: "crop_selection"},
	},
	advisory.IntentCropSelection: {
		{Text: "How much water will this crop need?", Action: "irrigation"},
		{Text: "What is the expected profit for this crop?", Action: "profit_maximization"},
		{Text: "Which pests attack this crop?", Action: "pest_management"},
	},
	advisory.IntentPestManagement: {
		{Text: "How do I prevent this pest next season?", Action: "pest_management"},
		{Text: "Is there a subsidy for pesticides?", Action: "scheme_discovery"},
		{Text: "Will the weather make this worse?", Action: "general_advisory"},
	},
	advisory.IntentIrrigation: {
		{Text: "Is drip irrigation worth the cost?", Action: "irrigation"},
		{Text: "Is there a subsidy for drip irrigation?", Action: "scheme_discovery"},
		{Text: "When should I irrigate this week?", Action: "irrigation"},
	},
	advisory.IntentSchemeDiscovery: {
		{Text: "How do I apply for crop insurance?", Action: "scheme_discovery"},
		{Text: "What documents do I need?", Action: "scheme_discovery"},
		{Text: "How can I increase my income?", Action: "profit_maximization"},
	},
}

func riskNames(c advisory.Context) []string {
	var names []string
	for _, r := range c.Risks.Weather {
		names = append(names, r.Name)
		if len(names) == maxDisplayRisks {
			return names
		}
	}
	for _, p := range c.Risks.Pests {
		names = append(names, p.Name)
		if len(names) == maxDisplayRisks {
			return names
		}
	}
	return names
}

func opportunityNames(c advisory.Context) []string {
	var names []string
	for _, o := range c.Opportunities.CostReduction {
		names = append(names, o.Name)
	}
	for _, o := range c.Opportunities.YieldIncrease {
		names = append(names, o.Name)
	}
	return names
}

func confidenceOrDefault(v int) int {
	if v <= 0 {
		return DefaultConfidence
	}
	return v
}

// stripMarkup removes markdown characters and emoji so the synthesizer does
// not read them aloud.
func stripMarkup(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r == '*' || r == '_' || r == '#' || r == '`':
			continue
		case r > unicode.MaxLatin1 && unicode.IsSymbol(r):
			continue
		default:
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return strings.TrimSpace(string(runes[:limit]))
}
