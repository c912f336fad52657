package models

import (
	"time"
)

// Language is a supported advisory language code.
type Language string

const (
	LangHindi     Language = "hin"
	LangTamil     Language = "tam"
	LangTelugu    Language = "tel"
	LangKannada   Language = "kan"
	LangMalayalam Language = "mal"
	LangMarathi   Language = "mar"
	LangEnglish   Language = "eng"
)

// SupportedLanguages lists every language the pipeline can serve, in a fixed order.
var SupportedLanguages = []Language{
	LangHindi, LangTamil, LangTelugu, LangKannada, LangMalayalam, LangMarathi, LangEnglish,
}

// IsSupportedLanguage reports whether code names a supported language.
// Unrecognized codes must be rejected at the API boundary, never defaulted.
func IsSupportedLanguage(code Language) bool {
	for _, l := range SupportedLanguages {
		if l == code {
			return true
		}
	}
	return false
}

// Channel identifies the delivery surface an advisory is rendered for.
type Channel string

const (
	ChannelChat     Channel = "chat"
	ChannelVoice    Channel = "voice"
	ChannelWhatsApp Channel = "whatsapp"
	ChannelInsight  Channel = "insight"
)

// FarmerProfile is the only entity with a lifetime beyond a single request.
// Updates are whole-record upserts, last write wins.
type FarmerProfile struct {
	ID             string    `json:"id" db:"id"`
	Phone          string    `json:"phone,omitempty" db:"phone"`
	Name           string    `json:"name,omitempty" db:"name"`
	Language       Language  `json:"language" db:"language"`
	State          string    `json:"state" db:"state"`
	District       string    `json:"district" db:"district"`
	SoilType       string    `json:"soil_type" db:"soil_type"`
	CurrentCrop    string    `json:"current_crop" db:"current_crop"`
	LandSize       float64   `json:"land_size" db:"land_size"` // hectares
	IrrigationType string    `json:"irrigation_type,omitempty" db:"irrigation_type"`
	MarketLocation string    `json:"market_location,omitempty" db:"market_location"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}

// Priority of an action item within an action plan.
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
)

// ActionItem is one prioritized step extracted from the oracle's reply.
// Step is the item's 1-based ordinal among the numbered lines.
type ActionItem struct {
	Step     int      `json:"step"`
	Action   string   `json:"action"`
	Priority Priority `json:"priority"`
}

// FollowUp is a suggested next query the farmer can tap or speak.
type FollowUp struct {
	Text   string `json:"text"`
	Action string `json:"action"`
}

// Documentation is the terminal disclaimer/source/expert block appended to a
// formatted advisory. Appending it never alters the action plan or voice script.
type Documentation struct {
	Header        string `json:"header"`
	Sources       string `json:"sources"`
	Disclaimer    string `json:"disclaimer"`
	ExpertContact string `json:"expert_contact"`
}

// AdvisoryResponse is the externally visible result of one pipeline run.
// Built once per request and never mutated after creation.
type AdvisoryResponse struct {
	DisplayText        string         `json:"text"`
	VoiceScript        string         `json:"voice_script"`
	AudioLocator       string         `json:"audio_url,omitempty"`
	ActionPlan         []ActionItem   `json:"action_plan"`
	Risks              []string       `json:"risks"`
	Opportunities      []string       `json:"opportunities"`
	SuggestedFollowUps []FollowUp     `json:"suggested_follow_ups"`
	Confidence         int            `json:"confidence"` // 0-100
	Documentation      *Documentation `json:"documentation,omitempty"`
	Language           Language       `json:"language"`
	Channel            Channel        `json:"channel"`
}

// Direction of a conversation message relative to the platform.
type Direction string

const (
	DirectionIn  Direction = "in"
	DirectionOut Direction = "out"
)

// Message is one entry in the append-only conversation log. History reads are
// ordered by timestamp, most recent first, never by insertion order.
type Message struct {
	ID           string    `json:"id" db:"id"`
	FarmerID     string    `json:"farmer_id" db:"farmer_id"`
	Direction    Direction `json:"direction" db:"direction"`
	Content      string    `json:"content" db:"content"`
	Language     Language  `json:"language" db:"language"`
	AudioLocator string    `json:"audio_locator,omitempty" db:"audio_locator"`
	Timestamp    time.Time `json:"timestamp" db:"timestamp"`
}
