package weather

import (
	"math"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"
)

// Rand is the randomness the generator draws from. *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

// Clock abstracts time for testing.
type Clock interface {
	Now() time.Time
}

// RealClock returns the wall clock.
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }

// globalRand uses the process-wide source, which is safe for concurrent use.
type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }
func (globalRand) IntN(n int) int   { return rand.IntN(n) }

// fallbackTemperature applies when a month has no configured range.
var fallbackTemperature = IntRange{Min: -10, Max: 25}

// Generator fabricates readings and forecasts from immutable settings.
type Generator struct {
	settings Settings
	rnd      Rand
}

// NewGenerator creates a Generator. A nil rnd uses the process-wide source.
func NewGenerator(settings Settings, rnd Rand) *Generator {
	if rnd == nil {
		rnd = globalRand{}
	}
	return &Generator{
		settings: settings,
		rnd:      rnd,
	}
}

// Reading generates the current weather for city at now.
func (g *Generator) Reading(city string, now time.Time) Reading {
	month := now.Month()

	temperature := g.temperature(month)
	humidity := randInt(g.rnd, g.settings.HumidityRange.Min, g.settings.HumidityRange.Max)
	wind := RoundTenth(uniform(g.rnd, g.settings.WindSpeedRange.Min, g.settings.WindSpeedRange.Max))
	wind = clamp(wind, g.settings.WindSpeedRange.Min, g.settings.WindSpeedRange.Max)

	condition := g.condition(month)

	return Reading{
		City:          city,
		TemperatureC:  temperature,
		FeelsLikeC:    FeelsLike(temperature, wind),
		HumidityPct:   humidity,
		WindSpeedKmh:  wind,
		Condition:     condition,
		ASCIIArtLines: ArtLinesFor(g.settings.ASCIIArt[condition]),
		Timestamp:     now,
	}
}

// Forecast generates days entries starting the day after now.
// Each entry draws its own temperature and condition for the month it falls in.
func (g *Generator) Forecast(city string, now time.Time, days int) Forecast {
	forecast := make(Forecast, 0, days)
	for offset := 1; offset <= days; offset++ {
		date := now.AddDate(0, 0, offset)
		condition := g.condition(date.Month())

		forecast = append(forecast, ForecastEntry{
			Date:         date,
			City:         city,
			TemperatureC: g.temperature(date.Month()),
			Condition:    condition,
			ASCIIArt:     g.settings.ASCIIArt[condition],
		})
	}
	return forecast
}

func (g *Generator) temperature(month time.Month) float64 {
	r, ok := g.settings.MonthlyTemperatures[month]
	if !ok {
		r = fallbackTemperature
	}
	lo, hi := float64(r.Min), float64(r.Max)
	return clamp(RoundTenth(uniform(g.rnd, lo, hi)), lo, hi)
}

func (g *Generator) condition(month time.Month) string {
	season := SeasonOf(month)
	return SelectCondition(g.rnd, g.settings.SeasonalConditions[season], g.settings.SeasonalConditions[SeasonSummer])
}

// SelectCondition draws a condition with probability weight/sum(weights).
// With no weights it falls back to a uniform pick among the summer
// condition names, and to DefaultCondition when those are empty too.
func SelectCondition(rnd Rand, weights, summer ConditionWeights) string {
	total := 0
	for _, c := range weights {
		if c.Weight > 0 {
			total += c.Weight
		}
	}
	if total == 0 {
		if len(summer) == 0 {
			return DefaultCondition
		}
		return summer[rnd.IntN(len(summer))].Name
	}

	pick := rnd.IntN(total)
	for _, c := range weights {
		if c.Weight <= 0 {
			continue
		}
		if pick < c.Weight {
			return c.Name
		}
		pick -= c.Weight
	}
	// unreachable: pick < total
	return weights[len(weights)-1].Name
}

// FeelsLike adjusts temperature for wind. The first matching rule wins.
func FeelsLike(tempC, windKmh float64) float64 {
	switch {
	case tempC > 25 && windKmh > 20:
		return RoundTenth(tempC + windKmh*0.05)
	case tempC < 10 && windKmh > 10:
		return RoundTenth(tempC - windKmh*0.2)
	case tempC < 0 && windKmh > 5:
		return RoundTenth(tempC - windKmh*0.3)
	default:
		return tempC
	}
}

// ArtLinesFor splits art into exactly ArtLines lines, blank-padding short
// art and dropping anything past the last line.
func ArtLinesFor(art string) []string {
	lines := make([]string, 0, ArtLines)
	if art != "" {
		lines = append(lines, strings.Split(strings.TrimSuffix(strings.ReplaceAll(art, "\r\n", "\n"), "\n"), "\n")...)
	}
	for len(lines) < ArtLines {
		lines = append(lines, "")
	}
	return lines[:ArtLines]
}

// RoundTenth rounds to one decimal place. Ties are decided on the exact
// value of v and go to even, so 0.15 (stored just below) becomes 0.1.
func RoundTenth(v float64) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 1, 64), 64)
	if err != nil {
		return v
	}
	return r
}

func uniform(rnd Rand, lo, hi float64) float64 {
	return lo + (hi-lo)*rnd.Float64()
}

func randInt(rnd Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rnd.IntN(hi-lo+1)
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
