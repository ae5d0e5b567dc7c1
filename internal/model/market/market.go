package market

// Trend describes recent price movement for a commodity.
type Trend string

const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"
)

// Rate is a mandi price quote for a single crop.
type Rate struct {
	Crop     string `json:"crop"`
	Price    string `json:"price"`
	Trend    Trend  `json:"trend"`
	Location string `json:"location"`
}

// AlertType classifies a weather alert.
type AlertType string

const (
	AlertRain AlertType = "rain"
	AlertHeat AlertType = "heat"
	AlertWind AlertType = "wind"
)

// Severity grades a weather alert.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Alert is an actionable weather warning shown on the dashboard and fed
// into the advisor's grounding context.
type Alert struct {
	Type     AlertType `json:"type"`
	Message  string    `json:"message"`
	Severity Severity  `json:"severity"`
}

// Condition is a coarse sky condition for the forecast strip.
type Condition string

const (
	ConditionSunny        Condition = "sunny"
	ConditionCloudy       Condition = "cloudy"
	ConditionRain         Condition = "rain"
	ConditionStorm        Condition = "storm"
	ConditionPartlyCloudy Condition = "partly_cloudy"
)

// Forecast is one row of the 5-day outlook. DayOffset 0 is today.
type Forecast struct {
	DayOffset int       `json:"dayOffset"`
	TempMax   int       `json:"tempMax"`
	TempMin   int       `json:"tempMin"`
	Condition Condition `json:"condition"`
	Humidity  int       `json:"humidity"`
	WindSpeed int       `json:"windSpeed"`
}

// SeedRates returns the bundled mandi quotes. In a full deployment these
// would come from a live market feed.
func SeedRates() []Rate {
	return []Rate{
		{Crop: "Wheat (Gandum)", Price: "PKR 4,200 / 40kg", Trend: TrendUp, Location: "Lahore Mandi"},
		{Crop: "Cotton (Kapas)", Price: "PKR 8,500 / 40kg", Trend: TrendDown, Location: "Multan Mandi"},
		{Crop: "Rice (Basmati)", Price: "PKR 3,800 / 40kg", Trend: TrendStable, Location: "Gujranwala"},
		{Crop: "Sugarcane", Price: "PKR 450 / 40kg", Trend: TrendUp, Location: "Rahim Yar Khan"},
	}
}

// SeedAlerts returns the bundled weather warnings.
func SeedAlerts() []Alert {
	return []Alert{
		{Type: AlertRain, Message: "Heavy rainfall expected in Punjab region over next 48 hours.", Severity: SeverityHigh},
		{Type: AlertHeat, Message: "High temperature warning for Sindh belt. Irrigate crops at night.", Severity: SeverityMedium},
	}
}

// SeedForecast returns the bundled 5-day outlook.
func SeedForecast() []Forecast {
	return []Forecast{
		{DayOffset: 0, TempMax: 34, TempMin: 26, Condition: ConditionSunny, Humidity: 45, WindSpeed: 12},
		{DayOffset: 1, TempMax: 32, TempMin: 25, Condition: ConditionPartlyCloudy, Humidity: 50, WindSpeed: 15},
		{DayOffset: 2, TempMax: 29, TempMin: 23, Condition: ConditionRain, Humidity: 78, WindSpeed: 18},
		{DayOffset: 3, TempMax: 28, TempMin: 22, Condition: ConditionRain, Humidity: 82, WindSpeed: 14},
		{DayOffset: 4, TempMax: 31, TempMin: 24, Condition: ConditionCloudy, Humidity: 60, WindSpeed: 10},
	}
}
