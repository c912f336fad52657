package prompts

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/krishisahayak/internal/advisory"
)

// Prompt is the rendered reasoning prompt for one oracle invocation.
type Prompt struct {
	System string
	User   string
}

// Synthesize renders the reasoning prompt for an intent against a context
// snapshot. Rendering is pure: identical (intent, context, query) inputs
// always produce byte-identical prompts, with no timestamps, random IDs or
// locale-dependent number formatting. Absent fields render MissingValue.
func Synthesize(intent advisory.Intent, c advisory.Context, query string) Prompt {
	switch intent {
	case advisory.IntentProfitMaximization:
		return profitPrompt(c)
	case advisory.IntentCropSelection:
		return cropSelectionPrompt(c)
	case advisory.IntentPestManagement:
		return pestPrompt(c, query)
	case advisory.IntentIrrigation:
		return irrigationPrompt(c)
	case advisory.IntentSchemeDiscovery:
		return schemePrompt(c)
	default:
		return generalPrompt(c, query)
	}
}

func generalPrompt(c advisory.Context, query string) Prompt {
	var b strings.Builder

	b.WriteString(ContextHeader + "\n\n")

	b.WriteString(LocationHeader + "\n")
	fmt.Fprintf(&b, "- State: %s\n", orMissing(c.Location.State))
	fmt.Fprintf(&b, "- District: %s\n", orMissing(c.Location.District))
	fmt.Fprintf(&b, "- Region: %s\n", orMissing(c.Location.Region))
	fmt.Fprintf(&b, "- Land Size: %s hectares\n\n", hectares(c.Farmer.LandSize))

	b.WriteString(WeatherHeader + "\n")
	fmt.Fprintf(&b, "- Temperature: %d°C\n", c.Weather.Current.Temperature)
	fmt.Fprintf(&b, "- Humidity: %d%%\n", c.Weather.Current.Humidity)
	fmt.Fprintf(&b, "- Rainfall: %dmm\n", c.Weather.Current.Rainfall)
	fmt.Fprintf(&b, "- Condition: %s\n", orMissing(c.Weather.Current.Condition))
	fmt.Fprintf(&b, "- Season: %s\n\n", orMissing(c.Weather.Season))

	b.WriteString(SoilHeader + "\n")
	fmt.Fprintf(&b, "- Type: %s\n", orMissing(c.Soil.Type))
	fmt.Fprintf(&b, "- pH: %s\n", floatOrMissing(c.Soil.PH))
	fmt.Fprintf(&b, "- Fertility Level: %s\n", orMissing(c.Soil.Fertility))
	fmt.Fprintf(&b, "- Organic Matter: %s%%\n", floatOrMissing(c.Soil.OrganicMatterPct))
	fmt.Fprintf(&b, "- Key Deficiencies: %s Zinc, %s Iron\n", orMissing(c.Soil.Micronutrients["zinc"]), orMissing(c.Soil.Micronutrients["iron"]))
	fmt.Fprintf(&b, "- Recommendations: %s\n\n", joinOrMissing(c.Soil.Recommendations, "; "))

	b.WriteString(EconomicsHeader + "\n")
	fmt.Fprintf(&b, "- Crop: %s\n", orMissing(c.Farmer.CurrentCrop))
	fmt.Fprintf(&b, "- Estimated Yield: %d quintals/hectare\n", c.Profitability.ExpectedYield)
	fmt.Fprintf(&b, "- Current Market Price: ₹%d/quintal\n", c.Market.CurrentPrice)
	fmt.Fprintf(&b, "- Expected Income: ₹%d\n", c.Profitability.ExpectedIncome)
	fmt.Fprintf(&b, "- Expected Profit: ₹%d\n", c.Profitability.ExpectedProfit)
	fmt.Fprintf(&b, "- Profit Margin: %d%%\n\n", c.Profitability.ProfitMarginPct)

	b.WriteString(AlternativesHeader + "\n")
	for _, crop := range c.Crops.RabiBest {
		fmt.Fprintf(&b, "- %s: %s, Demand: %s\n", crop.Name, crop.EstimatedIncome, crop.MarketDemand)
	}
	b.WriteString("\n" + MarketHeader + "\n")
	fmt.Fprintf(&b, "- Price Trend: %s\n", orMissing(c.Market.Trend))
	fmt.Fprintf(&b, "- Market Demand: %s\n", orMissing(c.Market.Demand))
	fmt.Fprintf(&b, "- Supply Status: %s\n", orMissing(c.Market.Supply))
	fmt.Fprintf(&b, "- Best Time to Sell: %s\n\n", orMissing(c.Market.BestTimeToSell))

	b.WriteString(RisksHeader + "\n")
	for _, r := range c.Risks.Weather {
		fmt.Fprintf(&b, "- %s (%s probability): %s\n", r.Name, r.Probability, strings.Join(r.Mitigation, ", "))
	}
	b.WriteString("\n" + OpportunitiesHeader + "\n")
	for _, o := range c.Opportunities.CostReduction {
		fmt.Fprintf(&b, "- %s: %s\n", o.Name, o.Benefit)
	}
	for _, o := range c.Opportunities.YieldIncrease {
		fmt.Fprintf(&b, "- %s: %s\n", o.Name, o.Benefit)
	}

	b.WriteString("\n" + SeasonalHeader + "\n")
	fmt.Fprintf(&b, "- Current Month: %s\n", joinOrMissing(c.Seasonal.ActivitiesNow, ", "))
	fmt.Fprintf(&b, "- Next Season: %s\n\n", orMissing(c.Seasonal.Upcoming.Name))

	b.WriteString(QuestionHeader + "\n")
	fmt.Fprintf(&b, "%q\n", query)

	return Prompt{
		System: AdvisorRole + "\n\n" + AdvisorDuties,
		User:   b.String(),
	}
}

func profitPrompt(c advisory.Context) Prompt {
	var b strings.Builder

	b.WriteString("Based on the farmer's current situation:\n\n")
	fmt.Fprintf(&b, "Current Profit: ₹%d/hectare\n", c.Profitability.ExpectedProfit)
	fmt.Fprintf(&b, "Current ROI: %d%%\n", c.Profitability.ROIPct)
	fmt.Fprintf(&b, "Current Crop: %s on %s hectares\n", orMissing(c.Farmer.CurrentCrop), hectares(c.Farmer.LandSize))
	fmt.Fprintf(&b, "Cost per Hectare: ₹%d\n\n", c.Profitability.CostPerHectare)

	b.WriteString("Known profit levers:\n")
	for _, s := range c.Profitability.Strategies {
		fmt.Fprintf(&b, "- %s\n", s)
	}
	for _, o := range c.Opportunities.CostReduction {
		fmt.Fprintf(&b, "- %s: %s (effort: %s)\n", o.Name, o.Benefit, o.Effort)
	}
	for _, o := range c.Opportunities.YieldIncrease {
		fmt.Fprintf(&b, "- %s: %s (effort: %s)\n", o.Name, o.Benefit, o.Effort)
	}
	for _, d := range c.Opportunities.Diversification {
		fmt.Fprintf(&b, "- %s: %s, %s\n", d.Activity, d.Detail, d.Income)
	}
	b.WriteString("\nAlternative crops by expected profit:\n")
	for _, alt := range c.Profitability.Alternatives {
		fmt.Fprintf(&b, "- %s: ₹%d (%s)\n", alt.Crop, alt.ExpectedProfit, alt.Reasoning)
	}

	b.WriteString("\n" + ProfitInstructions + "\n")

	return Prompt{System: AdvisorRole, User: b.String()}
}

func cropSelectionPrompt(c advisory.Context) Prompt {
	var b strings.Builder

	fmt.Fprintf(&b, "The farmer is in %s, %s with %s soil.\n\n",
		orMissing(c.Location.District), orMissing(c.Location.State), orMissing(c.Soil.Type))

	b.WriteString("Available Crops:\n")
	for i, crop := range c.Crops.RabiBest {
		fmt.Fprintf(&b, "\n%d. %s\n", i+1, crop.Name)
		fmt.Fprintf(&b, "   - Yield: %s\n", orMissing(crop.EstimatedYield))
		fmt.Fprintf(&b, "   - Income: %s\n", orMissing(crop.EstimatedIncome))
		fmt.Fprintf(&b, "   - Water Needed: %s\n", orMissing(crop.WaterRequired))
		fmt.Fprintf(&b, "   - Temperature Range: %d°C - %d°C\n", crop.MinimumTemp, crop.MaximumTemp)
		fmt.Fprintf(&b, "   - Market Demand: %s\n", orMissing(crop.MarketDemand))
	}

	b.WriteString("\nSoil Constraints:\n")
	fmt.Fprintf(&b, "- Type: %s\n", orMissing(c.Soil.Type))
	fmt.Fprintf(&b, "- pH: %s\n", floatOrMissing(c.Soil.PH))
	fmt.Fprintf(&b, "- Key deficiency: Zinc (%s)\n", orMissing(c.Soil.Micronutrients["zinc"]))
	fmt.Fprintf(&b, "- Organic matter: %s%%\n", floatOrMissing(c.Soil.OrganicMatterPct))

	b.WriteString("\nWeather Constraints:\n")
	fmt.Fprintf(&b, "- Season: %s\n", orMissing(c.Weather.Season))
	fmt.Fprintf(&b, "- Rainfall: %dmm expected over 7 days\n", forecastRainfall(c))
	fmt.Fprintf(&b, "- Temperature: %d°C\n", c.Weather.Current.Temperature)

	b.WriteString("\n" + CropSelectionInstructions + "\n")

	return Prompt{System: AdvisorRole, User: b.String()}
}

func pestPrompt(c advisory.Context, cropIssue string) Prompt {
	var b strings.Builder

	fmt.Fprintf(&b, "Farmer's Concern: %s\n", orMissing(cropIssue))
	fmt.Fprintf(&b, "Crop: %s\n", orMissing(c.Farmer.CurrentCrop))
	fmt.Fprintf(&b, "Location: %s, %s\n", orMissing(c.Location.District), orMissing(c.Location.State))
	fmt.Fprintf(&b, "Current Weather: %s, %d°C\n", orMissing(c.Weather.Current.Condition), c.Weather.Current.Temperature)

	if len(c.Risks.Pests) > 0 {
		b.WriteString("\nKnown regional pest pressure:\n")
		for _, p := range c.Risks.Pests {
			fmt.Fprintf(&b, "- %s (%s, %s): %s\n", p.Name, p.Severity, p.Season, p.Mitigation)
		}
	}

	b.WriteString("\n" + PestManagementInstructions + "\n")

	return Prompt{System: AdvisorRole, User: b.String()}
}

func irrigationPrompt(c advisory.Context) Prompt {
	var b strings.Builder

	fmt.Fprintf(&b, "Farmer Location: %s, %s\n", orMissing(c.Location.District), orMissing(c.Location.State))
	fmt.Fprintf(&b, "Current Crop: %s\n", orMissing(c.Farmer.CurrentCrop))
	fmt.Fprintf(&b, "Land Size: %s hectares\n", hectares(c.Farmer.LandSize))
	fmt.Fprintf(&b, "Soil Type: %s\n", orMissing(c.Soil.Type))
	fmt.Fprintf(&b, "Water Holding Capacity: %s\n", orMissing(c.Soil.WaterHoldingCapacity))

	b.WriteString("\nCurrent Weather & Forecast:\n")
	fmt.Fprintf(&b, "- Current rainfall: %dmm\n", c.Weather.Current.Rainfall)
	fmt.Fprintf(&b, "- 7-day forecast rainfall: %dmm\n", forecastRainfall(c))
	fmt.Fprintf(&b, "- Temperature: %d°C\n", c.Weather.Current.Temperature)
	fmt.Fprintf(&b, "- Humidity: %d%%\n", c.Weather.Current.Humidity)

	b.WriteString("\n" + IrrigationInstructions + "\n")

	return Prompt{System: AdvisorRole, User: b.String()}
}

func schemePrompt(c advisory.Context) Prompt {
	var b strings.Builder

	b.WriteString("Farmer Profile:\n")
	fmt.Fprintf(&b, "- State: %s\n", orMissing(c.Location.State))
	fmt.Fprintf(&b, "- District: %s\n", orMissing(c.Location.District))
	fmt.Fprintf(&b, "- Land Size: %s hectares\n", hectares(c.Farmer.LandSize))
	fmt.Fprintf(&b, "- Main Crop: %s\n", orMissing(c.Farmer.CurrentCrop))
	fmt.Fprintf(&b, "- Current Income: ₹%d\n", c.Profitability.ExpectedIncome)
	fmt.Fprintf(&b, "- Price Support: %s\n", orMissing(c.Market.GovernmentSupport))

	b.WriteString("\n" + SchemeInstructions + "\n")

	return Prompt{System: AdvisorRole, User: b.String()}
}

// forecastRainfall sums rainfall over the ordered forecast window.
func forecastRainfall(c advisory.Context) int {
	total := 0
	for _, d := range c.Weather.Forecast {
		total += d.Rainfall
	}
	return total
}

func orMissing(s string) string {
	if strings.TrimSpace(s) == "" {
		return MissingValue
	}
	return s
}

func floatOrMissing(f float64) string {
	if f == 0 {
		return MissingValue
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func hectares(f float64) string {
	if f <= 0 {
		return MissingValue
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func joinOrMissing(items []string, sep string) string {
	if len(items) == 0 {
		return MissingValue
	}
	return strings.Join(items, sep)
}
