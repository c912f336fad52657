package speech

import "github.com/krishisahayak/pkg/models"

// VoiceConfig selects the synthesizer voice for one language.
type VoiceConfig struct {
	VoiceID      string `json:"voice_id"`
	LanguageCode string `json:"language_code"`
	Engine       string `json:"engine"`
}

var voiceByLanguage = map[models.Language]VoiceConfig{
	models.LangHindi:     {VoiceID: "Aditi", LanguageCode: "hi-IN", Engine: "standard"},
	models.LangTamil:     {VoiceID: "Tamizh", LanguageCode: "ta-IN", Engine: "neural"},
	models.LangTelugu:    {VoiceID: "Telugu", LanguageCode: "te-IN", Engine: "standard"},
	models.LangKannada:   {VoiceID: "Kannada", LanguageCode: "kn-IN", Engine: "standard"},
	models.LangMalayalam: {VoiceID: "Malayalam", LanguageCode: "ml-IN", Engine: "standard"},
	models.LangMarathi:   {VoiceID: "Marathi", LanguageCode: "mr-IN", Engine: "standard"},
	models.LangEnglish:   {VoiceID: "Joanna", LanguageCode: "en-US", Engine: "neural"},
}

// VoiceFor returns the voice for a language, falling back to the English
// voice for anything unrecognized.
func VoiceFor(lang models.Language) VoiceConfig {
	if v, ok := voiceByLanguage[lang]; ok {
		return v
	}
	return voiceByLanguage[models.LangEnglish]
}
