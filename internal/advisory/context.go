package advisory

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/krishisahayak/internal/contextstore"
	"github.com/krishisahayak/pkg/models"
)

// Context is the immutable nine-section situational snapshot built once per
// request. If upstream data changes a new snapshot is built, never patched.
// Degraded is the single discriminator between a full and a reduced context;
// callers must check it instead of probing sections.
type Context struct {
	Farmer        models.FarmerProfile
	Language      models.Language
	Location      contextstore.Location
	Weather       contextstore.Weather
	Soil          contextstore.Soil
	Crops         contextstore.Crops
	Market        contextstore.Market
	Profitability contextstore.Profitability
	Seasonal      contextstore.Seasonal
	Risks         contextstore.Risks
	Opportunities contextstore.Opportunities

	Degraded               bool
	NeedsProfileCompletion bool
	MissingFields          []string
}

// Aggregator merges a farmer profile with context store output into one
// snapshot per request. It holds no state across requests.
type Aggregator struct {
	store  contextstore.Store
	logger zerolog.Logger
}

// NewAggregator creates an aggregator over the given context store.
func NewAggregator(store contextstore.Store, logger zerolog.Logger) *Aggregator {
	return &Aggregator{store: store, logger: logger}
}

// BuildContext populates all nine sections for the farmer. If any underlying
// fetch fails the whole context fails closed into the degraded default rather
// than a partially filled snapshot. Adapter errors are never propagated.
func (a *Aggregator) BuildContext(ctx context.Context, farmerID string, farmer models.FarmerProfile, language models.Language) Context {
	out := Context{Farmer: farmer, Language: language}

	var err error
	if out.Location, err = a.store.FetchLocation(ctx, farmer.State, farmer.District); err != nil {
		return a.defaultContext(farmerID, farmer, language, "location", err)
	}
	if out.Weather, err = a.store.FetchWeather(ctx, farmer.State, farmer.District); err != nil {
		return a.defaultContext(farmerID, farmer, language, "weather", err)
	}
	if out.Soil, err = a.store.FetchSoil(ctx, farmer.District, farmer.SoilType); err != nil {
		return a.defaultContext(farmerID, farmer, language, "soil", err)
	}
	if out.Crops, err = a.store.FetchCrops(ctx, farmer.State, farmer.SoilType, farmer.CurrentCrop); err != nil {
		return a.defaultContext(farmerID, farmer, language, "crops", err)
	}
	if out.Market, err = a.store.FetchMarket(ctx, farmer.CurrentCrop, farmer.State); err != nil {
		return a.defaultContext(farmerID, farmer, language, "market", err)
	}
	if out.Profitability, err = a.store.FetchProfitability(ctx, farmer.CurrentCrop, farmer.LandSize, farmer.State); err != nil {
		return a.defaultContext(farmerID, farmer, language, "profitability", err)
	}
	if out.Seasonal, err = a.store.FetchSeasonal(ctx, farmer.State); err != nil {
		return a.defaultContext(farmerID, farmer, language, "seasonal", err)
	}
	if out.Risks, err = a.store.FetchRisks(ctx, farmer.State, farmer.CurrentCrop, farmer.SoilType); err != nil {
		return a.defaultContext(farmerID, farmer, language, "risks", err)
	}
	if out.Opportunities, err = a.store.FetchOpportunities(ctx, farmer.State, farmer.CurrentCrop, farmer.LandSize); err != nil {
		return a.defaultContext(farmerID, farmer, language, "opportunities", err)
	}

	return out
}

// defaultContext is the documented degraded context: the farmer profile, a
// profile-completion nudge and the list of fields worth filling in.
func (a *Aggregator) defaultContext(farmerID string, farmer models.FarmerProfile, language models.Language, failedSection string, cause error) Context {
	a.logger.Warn().
		Str("farmer_id", farmerID).
		Str("section", failedSection).
		Err(cause).
		Msg("context fetch failed, degrading to default context")

	return Context{
		Farmer:                 farmer,
		Language:               language,
		Degraded:               true,
		NeedsProfileCompletion: true,
		MissingFields:          missingProfileFields(farmer),
	}
}

func missingProfileFields(farmer models.FarmerProfile) []string {
	missing := make([]string, 0, 5)
	if farmer.State == "" {
		missing = append(missing, "state")
	}
	if farmer.District == "" {
		missing = append(missing, "district")
	}
	if farmer.SoilType == "" {
		missing = append(missing, "soilType")
	}
	if farmer.CurrentCrop == "" {
		missing = append(missing, "currentCrop")
	}
	if farmer.LandSize <= 0 {
		missing = append(missing, "landSize")
	}
	if farmer.MarketLocation == "" {
		missing = append(missing, "marketLocation")
	}
	return missing
}
