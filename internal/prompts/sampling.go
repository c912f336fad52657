package prompts

import "github.com/krishisahayak/internal/advisory"

// Sampling holds the oracle sampling parameters for one intent. The pipeline
// passes these through unchanged so that identical requests reason under
// identical conditions.
type Sampling struct {
	MaxTokens   int
	Temperature float64
}

// samplingByIntent documents the sampling parameters per template. Diagnosis
// and scheme lookups run cooler than open-ended advisories; profit and crop
// strategy get the largest budgets because they enumerate multi-year plans.
var samplingByIntent = map[advisory.Intent]Sampling{
	advisory.IntentGeneralAdvisory:    {MaxTokens: 1024, Temperature: 0.4},
	advisory.IntentProfitMaximization: {MaxTokens: 1536, Temperature: 0.3},
	advisory.IntentCropSelection:      {MaxTokens: 1536, Temperature: 0.3},
	advisory.IntentPestManagement:     {MaxTokens: 1024, Temperature: 0.2},
	advisory.IntentIrrigation:         {MaxTokens: 1024, Temperature: 0.2},
	advisory.IntentSchemeDiscovery:    {MaxTokens: 1280, Temperature: 0.2},
}

// SamplingFor returns the sampling parameters for an intent. Unknown intents
// fall back to the general advisory parameters.
func SamplingFor(intent advisory.Intent) Sampling {
	if s, ok := samplingByIntent[intent]; ok {
		return s
	}
	return samplingByIntent[advisory.IntentGeneralAdvisory]
}
