package pipeline

import (
	"context"

	"github.com/krishisahayak/internal/contextstore"
	"github.com/krishisahayak/pkg/models"
)

// Insights is the proactive digest offered without a farmer question. It is
// assembled from the aggregated context alone; no oracle call is made.
type Insights struct {
	FarmerID      string                     `json:"farmer_id"`
	Language      models.Language            `json:"language"`
	Season        string                     `json:"season"`
	Activities    []string                   `json:"activities"`
	Risks         []contextstore.Risk        `json:"risks"`
	PestAlerts    []contextstore.PestRisk    `json:"pest_alerts"`
	Opportunities []contextstore.Opportunity `json:"opportunities"`
	MandiPrices   []contextstore.MandiPrice  `json:"mandi_prices"`
	Degraded      bool                       `json:"degraded"`
}

// BuildInsights aggregates context for a farmer and distills it into the
// insight digest shown on the home screen.
func (s *Service) BuildInsights(ctx context.Context, farmerID string, lang models.Language) (*Insights, error) {
	if !models.IsSupportedLanguage(lang) {
		lang = models.LangHindi
	}

	logger := s.logger.With().Str("farmer_id", farmerID).Logger()
	farmer := s.resolveProfile(ctx, farmerID, lang, logger)
	advisoryCtx := s.aggregator.BuildContext(ctx, farmerID, farmer, lang)

	opportunities := append([]contextstore.Opportunity{},
		advisoryCtx.Opportunities.CostReduction...)
	opportunities = append(opportunities, advisoryCtx.Opportunities.YieldIncrease...)

	return &Insights{
		FarmerID:      farmerID,
		Language:      lang,
		Season:        advisoryCtx.Seasonal.CurrentSeason,
		Activities:    advisoryCtx.Seasonal.ActivitiesNow,
		Risks:         advisoryCtx.Risks.Weather,
		PestAlerts:    advisoryCtx.Risks.Pests,
		Opportunities: opportunities,
		MandiPrices:   advisoryCtx.Market.NearbyMarkets,
		Degraded:      advisoryCtx.Degraded,
	}, nil
}
