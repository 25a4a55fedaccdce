package weather

import (
	"time"
)

// Season is a Northern-Hemisphere meteorological season.
type Season string

const (
	SeasonSummer Season = "summer"
	SeasonAutumn Season = "autumn"
	SeasonWinter Season = "winter"
	SeasonSpring Season = "spring"
)

// Seasons lists every season in config order.
var Seasons = []Season{SeasonSummer, SeasonAutumn, SeasonWinter, SeasonSpring}

// DefaultCondition is used when no condition can be drawn from config at all.
const DefaultCondition = "Sunny"

// ArtLines is the number of ASCII art lines on a weather card.
const ArtLines = 3

// WeightedCondition is a named condition with its selection weight.
type WeightedCondition struct {
	Name   string `validate:"required"`
	Weight int    `validate:"gt=0"`
}

// ConditionWeights keeps conditions in the order they were configured.
type ConditionWeights []WeightedCondition

// Names returns the condition names in order.
func (w ConditionWeights) Names() []string {
	names := make([]string, 0, len(w))
	for _, c := range w {
		names = append(names, c.Name)
	}
	return names
}

// IntRange is an inclusive integer range.
type IntRange struct {
	Min int `validate:"ltefield=Max"`
	Max int
}

// FloatRange is an inclusive non-negative range.
type FloatRange struct {
	Min float64 `validate:"gte=0,ltefield=Max"`
	Max float64
}

// Settings is the part of the configuration the generator needs.
// It is built once at startup and never mutated.
type Settings struct {
	HumidityRange       IntRange
	WindSpeedRange      FloatRange
	SeasonalConditions  map[Season]ConditionWeights `validate:"dive,dive"`
	MonthlyTemperatures map[time.Month]IntRange     `validate:"len=12,dive"`
	ASCIIArt            map[string]string
}

// Reading is a single fabricated weather observation.
type Reading struct {
	City          string
	TemperatureC  float64
	FeelsLikeC    float64
	HumidityPct   int
	WindSpeedKmh  float64
	Condition     string
	ASCIIArtLines []string // always ArtLines entries
	Timestamp     time.Time
}

// ForecastEntry is one day of a fabricated forecast.
type ForecastEntry struct {
	Date         time.Time
	City         string
	TemperatureC float64
	Condition    string
	ASCIIArt     string // raw, unpadded
}

// Forecast is ordered by Date ascending.
type Forecast []ForecastEntry
