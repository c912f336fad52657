package contextstore

import (
	"context"
	"strings"
)

// StaticStore serves fixed regional reference data. It stands in for the real
// weather, soil and mandi integrations behind the Store interface so the
// pipeline never depends on a particular data source.
type StaticStore struct{}

// NewStaticStore returns a Store backed by built-in reference data.
func NewStaticStore() *StaticStore {
	return &StaticStore{}
}

var staticLocations = map[string]Location{
	"haryana": {
		State:      "Haryana",
		District:   "Hisar",
		Region:     "North India - Indo-Gangetic Plain",
		Latitude:   29.1493,
		Longitude:  75.7307,
		Altitude:   215,
		Area:       "Semi-arid region",
		Irrigation: "Major canal network (Western Yamuna Canal)",
	},
	"tamil nadu": {
		State:      "Tamil Nadu",
		District:   "Coimbatore",
		Region:     "South India - Western Ghats foothills",
		Latitude:   11.0081,
		Longitude:  76.9142,
		Altitude:   410,
		Area:       "Semi-humid tropical region",
		Irrigation: "Noyyal River, wells, borewells",
	},
}

// FetchLocation resolves regional data by state, falling back to the
// Indo-Gangetic plain entry for states without reference data yet.
func (s *StaticStore) FetchLocation(ctx context.Context, state, district string) (Location, error) {
	if loc, ok := staticLocations[strings.ToLower(state)]; ok {
		if district != "" {
			loc.District = district
		}
		return loc, nil
	}
	loc := staticLocations["haryana"]
	if state != "" {
		loc.State = state
	}
	if district != "" {
		loc.District = district
	}
	return loc, nil
}

func (s *StaticStore) FetchWeather(ctx context.Context, state, district string) (Weather, error) {
	return Weather{
		Current: WeatherReading{
			Temperature: 28,
			Humidity:    65,
			Rainfall:    0,
			WindSpeed:   12,
			Condition:   "Partly Cloudy",
			Pressure:    1013,
			UVIndex:     6,
		},
		Forecast: []ForecastDay{
			{Date: "2026-01-22", High: 32, Low: 18, Condition: "Sunny", Rainfall: 0, Recommendation: "Good day for irrigation"},
			{Date: "2026-01-23", High: 30, Low: 16, Condition: "Partly Cloudy", Rainfall: 2, Recommendation: "Light irrigation, reduce water"},
			{Date: "2026-01-24", High: 29, Low: 15, Condition: "Cloudy", Rainfall: 4, Recommendation: "Skip irrigation"},
			{Date: "2026-01-25", High: 28, Low: 14, Condition: "Light Rain", Rainfall: 6, Recommendation: "No irrigation needed"},
			{Date: "2026-01-26", High: 30, Low: 15, Condition: "Sunny", Rainfall: 0, Recommendation: "Resume normal schedule"},
			{Date: "2026-01-27", High: 31, Low: 16, Condition: "Sunny", Rainfall: 0, Recommendation: "Monitor soil moisture"},
			{Date: "2026-01-28", High: 32, Low: 17, Condition: "Partly Cloudy", Rainfall: 1, Recommendation: "Normal field work"},
		},
		Season:        "Winter (Rabi season)",
		MonsoonStatus: "Post-monsoon",
		Alerts:        []string{},
	}, nil
}

func (s *StaticStore) FetchSoil(ctx context.Context, district, soilType string) (Soil, error) {
	if soilType == "" {
		soilType = "Loamy"
	}
	return Soil{
		Type:             soilType,
		SandPct:          40,
		SiltPct:          40,
		ClayPct:          20,
		PH:               7.2,
		Fertility:        "Medium",
		OrganicMatterPct: 1.5,
		Nitrogen:         "Deficient",
		Phosphorus:       "Adequate",
		Potassium:        "Adequate",
		Micronutrients: map[string]string{
			"iron":      "Low",
			"manganese": "Low",
			"zinc":      "Deficient",
			"boron":     "Adequate",
		},
		WaterHoldingCapacity: "Good",
		Drainage:             "Well-drained",
		Recommendations: []string{
			"Your " + soilType + " soil is good for rabi crops",
			"Add organic matter (FYM) before planting",
			"Apply zinc-enriched fertilizer",
			"Maintain pH around 7.0-7.5",
			"Regular soil testing recommended",
		},
		ImprovementPlan: []string{
			"Add 5 tons/hectare farmyard manure",
			"Apply micronutrient mix (Zn, B, Mo)",
			"Practice crop rotation",
			"Grow green manure crops in off-season",
		},
	}, nil
}

func (s *StaticStore) FetchCrops(ctx context.Context, state, soilType, currentCrop string) (Crops, error) {
	return Crops{
		RabiBest: []CropOption{
			{
				Name: "Wheat", Profitability: "High", MarketDemand: "Very High",
				MinimumTemp: 10, MaximumTemp: 25, WaterRequired: "Medium",
				EstimatedYield: "50 quintals/hectare", EstimatedIncome: "₹100,000-150,000",
			},
			{
				Name: "Mustard", Profitability: "High", MarketDemand: "High",
				MinimumTemp: 12, MaximumTemp: 28, WaterRequired: "Low",
				EstimatedYield: "20 quintals/hectare", EstimatedIncome: "₹80,000-120,000",
			},
			{
				Name: "Chickpea (Chana)", Profitability: "Very High", MarketDemand: "Very High",
				MinimumTemp: 15, MaximumTemp: 25, WaterRequired: "Low",
				EstimatedYield: "25 quintals/hectare", EstimatedIncome: "₹120,000-160,000",
			},
		},
		KharifBest: []CropOption{
			{Name: "Cotton", Profitability: "Medium-High", MarketDemand: "High", WaterRequired: "High"},
			{Name: "Maize", Profitability: "High", MarketDemand: "High", WaterRequired: "Medium"},
		},
		Alternatives: []string{
			"Pulses (for better income)",
			"Oil seeds (for soil improvement)",
			"Vegetables (for local market)",
		},
	}, nil
}

func (s *StaticStore) FetchMarket(ctx context.Context, crop, state string) (Market, error) {
	return Market{
		Crop:           crop,
		State:          state,
		CurrentPrice:   2500,
		Last7Days:      PriceWindow{High: 2550, Low: 2450, Average: 2500},
		Last30Days:     PriceWindow{High: 2600, Low: 2400, Average: 2500},
		LastYear:       PriceWindow{High: 3000, Low: 2200, Average: 2600},
		Trend:          "Stable with upward pressure",
		Demand:         "High - Steady demand from mills",
		Supply:         "Moderate supply in market",
		BestTimeToSell: "Now (January-February is peak)",
		NearbyMarkets: []MandiPrice{
			{Name: "Hisar Mandi", Price: 2480},
			{Name: "Sirsa Mandi", Price: 2520},
			{Name: "Rohtak Mandi", Price: 2530},
		},
		GovernmentSupport: "MSP (Minimum Support Price) available",
	}, nil
}

func (s *StaticStore) FetchProfitability(ctx context.Context, crop string, landSize float64, state string) (Profitability, error) {
	return Profitability{
		CurrentCrop: crop,
		LandSize:    landSize,
		CostBreakdown: []CostItem{
			{Head: "seeds", Amount: 1000, Percentage: 5},
			{Head: "fertilizers", Amount: 5000, Percentage: 25},
			{Head: "pesticides", Amount: 2000, Percentage: 10},
			{Head: "labor", Amount: 8000, Percentage: 40},
			{Head: "irrigation", Amount: 2000, Percentage: 10},
			{Head: "machinery", Amount: 2000, Percentage: 10},
		},
		CostPerHectare:  20000,
		ExpectedYield:   50,
		ExpectedPrice:   2500,
		ExpectedIncome:  125000,
		ExpectedProfit:  105000,
		ProfitMarginPct: 84,
		ROIPct:          525,
		Alternatives: []CropProfit{
			{Crop: "Chickpea", ExpectedProfit: 140000, Reasoning: "Better MSP and lower input costs"},
			{Crop: "Mustard", ExpectedProfit: 100000, Reasoning: "Lower production cost"},
		},
		Strategies: []string{
			"Reduce fertilizer cost by 20% using organic methods",
			"Save labor cost by using machinery",
			"Increase yield by 10% using improved seeds",
			"Sell directly to buyer (bypass middleman)",
			"Diversify crops to spread risk",
		},
	}, nil
}

func (s *StaticStore) FetchSeasonal(ctx context.Context, state string) (Seasonal, error) {
	return Seasonal{
		CurrentSeason: "Rabi (Winter crop) - January",
		ActivitiesNow: []string{
			"Monitor wheat crop for diseases",
			"Apply top dressing of nitrogen",
			"Irrigation schedule: Every 20-25 days",
			"Pest management: Check for armyworms",
			"Weed management: Manual or chemical",
		},
		NextMonthPrep: []string{
			"Plan for summer crop selection",
			"Prepare field for summer operations",
			"Check irrigation system",
		},
		Upcoming: UpcomingSeason{
			Name:        "Kharif (Monsoon crop) - June-July",
			Preparation: "Field leveling, organic matter addition",
			CropOptions: "Cotton, Maize, Bajra, Groundnut",
		},
	}, nil
}

func (s *StaticStore) FetchRisks(ctx context.Context, state, crop, soilType string) (Risks, error) {
	return Risks{
		Weather: []Risk{
			{
				Name:        "Late frost (March)",
				Probability: "Medium",
				Impact:      "Crop damage, yield loss 20-30%",
				Mitigation: []string{
					"Select frost-resistant varieties",
					"Avoid low-lying areas for planting",
					"Monitor weather forecasts",
				},
			},
			{
				Name:        "Hailstorm",
				Probability: "Low",
				Impact:      "Complete crop loss in affected area",
				Mitigation: []string{
					"Insurance coverage",
					"Plant windbreaks",
					"Diversify field",
				},
			},
		},
		Pests: []PestRisk{
			{Name: "Armyworm", Severity: "High", Season: "January-February", Mitigation: "Bt cotton, neem spray, manual removal"},
			{Name: "Leaf rust (wheat)", Severity: "Medium", Season: "February-March", Mitigation: "Resistant varieties, fungicide spray"},
		},
		Market: []Risk{
			{
				Name:        "Price crash",
				Probability: "Medium",
				Mitigation: []string{
					"Sell when prices are good",
					"Consider MSP procurement",
					"Diversify crops",
				},
			},
		},
		Insurance: []string{
			"Pradhan Mantri Fasal Bima Yojana (PMFBY)",
			"Weather Insurance",
			"Livestock Insurance",
		},
	}, nil
}

func (s *StaticStore) FetchOpportunities(ctx context.Context, state, crop string, landSize float64) (Opportunities, error) {
	return Opportunities{
		CostReduction: []Opportunity{
			{Name: "Use certified seeds", Benefit: "10-15% on pest control", Effort: "Low"},
			{Name: "Adopt drip irrigation", Benefit: "30-40% on water bill", Effort: "High (initial investment)"},
			{Name: "Use farm machinery instead of labor", Benefit: "20-25% on labor cost", Effort: "Medium"},
			{Name: "Organic farming", Benefit: "Reduce chemical cost by 50%", Effort: "High"},
		},
		YieldIncrease: []Opportunity{
			{Name: "Improved variety selection", Benefit: "10-15% yield increase", Effort: "Low"},
			{Name: "Precision nutrient management", Benefit: "8-12% yield increase", Effort: "Medium"},
			{Name: "Better crop timing", Benefit: "5-10% yield increase", Effort: "Low"},
		},
		Diversification: []Diversification{
			{Activity: "Intercropping", Detail: "Wheat + Chickpea rotation", Income: "₹50,000-70,000 additional"},
			{Activity: "Horticulture integration", Detail: "Orchards (mango, citrus)", Income: "₹100,000+ annually (long-term)"},
			{Activity: "Dairy farming", Detail: "Regular monthly income", Income: "₹20,000-30,000 monthly"},
		},
		ValueAddition: []Diversification{
			{Activity: "Processing (dal mill, oil extraction)", Detail: "20-30% margin", Income: "High investment"},
			{Activity: "Direct selling to consumer", Detail: "30-40% margin", Income: "Low investment"},
		},
	}, nil
}
