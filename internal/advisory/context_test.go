package advisory

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krishisahayak/internal/contextstore"
	"github.com/krishisahayak/pkg/models"
)

// marketDownStore serves the static data but fails the market fetch, the way
// a flaky upstream price feed would.
type marketDownStore struct {
	contextstore.Store
}

func (marketDownStore) FetchMarket(context.Context, string, string) (contextstore.Market, error) {
	return contextstore.Market{}, errors.New("price feed unavailable")
}

func testFarmer() models.FarmerProfile {
	return models.FarmerProfile{
		ID:             "farmer-1",
		Language:       models.LangHindi,
		State:          "Haryana",
		District:       "Hisar",
		SoilType:       "Loamy",
		CurrentCrop:    "Wheat",
		LandSize:       5,
		MarketLocation: "Hisar Mandi",
	}
}

func TestBuildContextPopulatesAllSections(t *testing.T) {
	agg := NewAggregator(contextstore.NewStaticStore(), zerolog.Nop())

	c := agg.BuildContext(context.Background(), "farmer-1", testFarmer(), models.LangHindi)

	assert.False(t, c.Degraded)
	assert.False(t, c.NeedsProfileCompletion)
	assert.Equal(t, "Haryana", c.Location.State)
	assert.NotZero(t, c.Weather.Current.Temperature)
	assert.NotEmpty(t, c.Soil.Type)
	assert.NotEmpty(t, c.Crops.RabiBest)
	assert.NotZero(t, c.Market.CurrentPrice)
	assert.NotZero(t, c.Profitability.ExpectedProfit)
	assert.NotEmpty(t, c.Seasonal.CurrentSeason)
	assert.NotEmpty(t, c.Risks.Weather)
	assert.NotEmpty(t, c.Opportunities.CostReduction)
}

func TestBuildContextFailsClosedOnAnyFetchError(t *testing.T) {
	store := marketDownStore{Store: contextstore.NewStaticStore()}
	agg := NewAggregator(store, zerolog.Nop())

	c := agg.BuildContext(context.Background(), "farmer-1", testFarmer(), models.LangHindi)

	assert.True(t, c.Degraded)
	assert.True(t, c.NeedsProfileCompletion)
	// The whole snapshot degrades, including sections fetched before the
	// failure.
	assert.Empty(t, c.Location.State)
	assert.Zero(t, c.Weather.Current.Temperature)
	// The profile itself is preserved.
	assert.Equal(t, "farmer-1", c.Farmer.ID)
	assert.Equal(t, models.LangHindi, c.Language)
}

func TestBuildContextReportsMissingProfileFields(t *testing.T) {
	store := marketDownStore{Store: contextstore.NewStaticStore()}
	agg := NewAggregator(store, zerolog.Nop())

	farmer := models.FarmerProfile{ID: "farmer-2", CurrentCrop: "Wheat", LandSize: 2}
	c := agg.BuildContext(context.Background(), "farmer-2", farmer, models.LangEnglish)

	require.True(t, c.Degraded)
	assert.ElementsMatch(t, []string{"state", "district", "soilType", "marketLocation"}, c.MissingFields)
}
