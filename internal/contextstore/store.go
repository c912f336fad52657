package contextstore

import "context"

// Store produces the nine context dimensions for a farmer's situation.
// Each fetch may fail independently; the aggregator decides how to degrade.
// Implementations must never assume any particular data source.
type Store interface {
	FetchLocation(ctx context.Context, state, district string) (Location, error)
	FetchWeather(ctx context.Context, state, district string) (Weather, error)
	FetchSoil(ctx context.Context, district, soilType string) (Soil, error)
	FetchCrops(ctx context.Context, state, soilType, currentCrop string) (Crops, error)
	FetchMarket(ctx context.Context, crop, state string) (Market, error)
	FetchProfitability(ctx context.Context, crop string, landSize float64, state string) (Profitability, error)
	FetchSeasonal(ctx context.Context, state string) (Seasonal, error)
	FetchRisks(ctx context.Context, state, crop, soilType string) (Risks, error)
	FetchOpportunities(ctx context.Context, state, crop string, landSize float64) (Opportunities, error)
}

// Location describes the farmer's administrative and agro-climatic placement.
type Location struct {
	State      string  `json:"state"`
	District   string  `json:"district"`
	Region     string  `json:"region"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	Altitude   int     `json:"altitude"`
	Area       string  `json:"area"`
	Irrigation string  `json:"irrigation"`
}

// WeatherReading is a single observation or forecast point.
type WeatherReading struct {
	Temperature int    `json:"temperature"`
	Humidity    int    `json:"humidity"`
	Rainfall    int    `json:"rainfall"`
	WindSpeed   int    `json:"wind_speed"`
	Condition   string `json:"condition"`
	Pressure    int    `json:"pressure"`
	UVIndex     int    `json:"uv_index"`
}

// ForecastDay is one entry in the ordered 7-day forecast.
type ForecastDay struct {
	Date           string `json:"date"`
	High           int    `json:"high"`
	Low            int    `json:"low"`
	Condition      string `json:"condition"`
	Rainfall       int    `json:"rainfall"`
	Recommendation string `json:"recommendation"`
}

// Weather is the current reading plus the ordered forecast and season label.
type Weather struct {
	Current       WeatherReading `json:"current"`
	Forecast      []ForecastDay  `json:"forecast"`
	Season        string         `json:"season"`
	MonsoonStatus string         `json:"monsoon_status"`
	Alerts        []string       `json:"alerts"`
}

// Soil carries composition, chemistry and management guidance.
type Soil struct {
	Type                 string            `json:"type"`
	SandPct              int               `json:"sand_pct"`
	SiltPct              int               `json:"silt_pct"`
	ClayPct              int               `json:"clay_pct"`
	PH                   float64           `json:"ph"`
	Fertility            string            `json:"fertility"`
	OrganicMatterPct     float64           `json:"organic_matter_pct"`
	Nitrogen             string            `json:"nitrogen"`
	Phosphorus           string            `json:"phosphorus"`
	Potassium            string            `json:"potassium"`
	Micronutrients       map[string]string `json:"micronutrients"`
	WaterHoldingCapacity string            `json:"water_holding_capacity"`
	Drainage             string            `json:"drainage"`
	Recommendations      []string          `json:"recommendations"`
	ImprovementPlan      []string          `json:"improvement_plan"`
}

// CropOption is one recommended crop for the region and season.
type CropOption struct {
	Name            string `json:"name"`
	Profitability   string `json:"profitability"`
	MarketDemand    string `json:"market_demand"`
	MinimumTemp     int    `json:"minimum_temp"`
	MaximumTemp     int    `json:"maximum_temp"`
	WaterRequired   string `json:"water_required"`
	EstimatedYield  string `json:"estimated_yield"`
	EstimatedIncome string `json:"estimated_income"`
}

// Crops groups seasonal recommendations for the farmer's region.
type Crops struct {
	RabiBest     []CropOption `json:"rabi_best"`
	KharifBest   []CropOption `json:"kharif_best"`
	Alternatives []string     `json:"alternatives"`
}

// MandiPrice is a nearby market quotation.
type MandiPrice struct {
	Name  string `json:"name"`
	Price int    `json:"price"` // rupees per quintal
}

// PriceWindow aggregates a trailing price window.
type PriceWindow struct {
	High    int `json:"high"`
	Low     int `json:"low"`
	Average int `json:"average"`
}

// Market is the current market analysis for the farmer's crop.
type Market struct {
	Crop              string       `json:"crop"`
	State             string       `json:"state"`
	CurrentPrice      int          `json:"current_price"` // rupees per quintal
	Last7Days         PriceWindow  `json:"last_7_days"`
	Last30Days        PriceWindow  `json:"last_30_days"`
	LastYear          PriceWindow  `json:"last_year"`
	Trend             string       `json:"trend"`
	Demand            string       `json:"demand"`
	Supply            string       `json:"supply"`
	BestTimeToSell    string       `json:"best_time_to_sell"`
	NearbyMarkets     []MandiPrice `json:"nearby_markets"`
	GovernmentSupport string       `json:"government_support"`
}

// CostItem is one line of the cultivation cost breakdown.
type CostItem struct {
	Head       string `json:"head"`
	Amount     int    `json:"amount"` // rupees per hectare
	Percentage int    `json:"percentage"`
}

// CropProfit compares an alternative crop's expected profit.
type CropProfit struct {
	Crop           string `json:"crop"`
	ExpectedProfit int    `json:"expected_profit"`
	Reasoning      string `json:"reasoning"`
}

// Profitability analyzes the economics of the current cropping.
type Profitability struct {
	CurrentCrop     string       `json:"current_crop"`
	LandSize        float64      `json:"land_size"`
	CostBreakdown   []CostItem   `json:"cost_breakdown"`
	CostPerHectare  int          `json:"cost_per_hectare"`
	ExpectedYield   int          `json:"expected_yield"` // quintals per hectare
	ExpectedPrice   int          `json:"expected_price"`
	ExpectedIncome  int          `json:"expected_income"`
	ExpectedProfit  int          `json:"expected_profit"`
	ProfitMarginPct int          `json:"profit_margin_pct"`
	ROIPct          int          `json:"roi_pct"`
	Alternatives    []CropProfit `json:"alternatives"`
	Strategies      []string     `json:"strategies"`
}

// UpcomingSeason previews the next cropping window.
type UpcomingSeason struct {
	Name        string `json:"name"`
	Preparation string `json:"preparation"`
	CropOptions string `json:"crop_options"`
}

// Seasonal lists the time-bound activities for the farmer's calendar.
type Seasonal struct {
	CurrentSeason string         `json:"current_season"`
	ActivitiesNow []string       `json:"activities_now"`
	NextMonthPrep []string       `json:"next_month_prep"`
	Upcoming      UpcomingSeason `json:"upcoming"`
}

// Risk is a single identified farming risk with mitigations.
type Risk struct {
	Name        string   `json:"name"`
	Probability string   `json:"probability"`
	Impact      string   `json:"impact"`
	Mitigation  []string `json:"mitigation"`
}

// PestRisk is a region/season specific pest or disease threat.
type PestRisk struct {
	Name       string `json:"name"`
	Severity   string `json:"severity"`
	Season     string `json:"season"`
	Mitigation string `json:"mitigation"`
}

// Risks groups weather, pest and market risks plus insurance options.
type Risks struct {
	Weather   []Risk     `json:"weather"`
	Pests     []PestRisk `json:"pests"`
	Market    []Risk     `json:"market"`
	Insurance []string   `json:"insurance"`
}

// Opportunity is a profit-improvement lever with its expected benefit.
type Opportunity struct {
	Name    string `json:"name"`
	Benefit string `json:"benefit"`
	Effort  string `json:"effort"`
}

// Diversification is an additional income activity.
type Diversification struct {
	Activity string `json:"activity"`
	Detail   string `json:"detail"`
	Income   string `json:"income"`
}

// Opportunities groups the profit maximization levers.
type Opportunities struct {
	CostReduction   []Opportunity     `json:"cost_reduction"`
	YieldIncrease   []Opportunity     `json:"yield_increase"`
	Diversification []Diversification `json:"diversification"`
	ValueAddition   []Diversification `json:"value_addition"`
}
