package weather

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedRand returns the same draw every time.
type fixedRand struct {
	f float64
	i int
}

func (r fixedRand) Float64() float64 { return r.f }

func (r fixedRand) IntN(n int) int {
	if r.i >= n {
		return n - 1
	}
	return r.i
}

func testSettings() Settings {
	months := make(map[time.Month]IntRange, 12)
	for m := time.January; m <= time.December; m++ {
		months[m] = IntRange{Min: int(m) - 5, Max: int(m) + 20}
	}
	return Settings{
		HumidityRange:  IntRange{Min: 30, Max: 90},
		WindSpeedRange: FloatRange{Min: 0, Max: 40},
		SeasonalConditions: map[Season]ConditionWeights{
			SeasonSummer: {{Name: "Sunny", Weight: 6}, {Name: "Partly Cloudy", Weight: 3}, {Name: "Rainy", Weight: 1}},
			SeasonAutumn: {{Name: "Foggy", Weight: 1}},
			SeasonWinter: {{Name: "Snowy", Weight: 4}, {Name: "Cloudy", Weight: 1}},
			SeasonSpring: {{Name: "Rainy", Weight: 2}, {Name: "Sunny", Weight: 2}},
		},
		MonthlyTemperatures: months,
		ASCIIArt: map[string]string{
			"Sunny":         "\\ | /\n- O -\n/ | \\",
			"Partly Cloudy": "  \\ /\n_ /\"\".-.",
			"Rainy":         " .--.\n(    ).\n ' ' '\n' ' '",
			"Snowy":         " * * *",
		},
	}
}

func TestReadingStaysWithinConfiguredRanges(t *testing.T) {
	settings := testSettings()
	g := NewGenerator(settings, rand.New(rand.NewPCG(7, 11)))

	for m := time.January; m <= time.December; m++ {
		now := time.Date(2026, m, 15, 9, 30, 0, 0, time.UTC)
		tr := settings.MonthlyTemperatures[m]

		for i := 0; i < 500; i++ {
			r := g.Reading("Paris", now)

			assert.GreaterOrEqual(t, r.TemperatureC, float64(tr.Min))
			assert.LessOrEqual(t, r.TemperatureC, float64(tr.Max))
			assert.GreaterOrEqual(t, r.HumidityPct, settings.HumidityRange.Min)
			assert.LessOrEqual(t, r.HumidityPct, settings.HumidityRange.Max)
			assert.GreaterOrEqual(t, r.WindSpeedKmh, settings.WindSpeedRange.Min)
			assert.LessOrEqual(t, r.WindSpeedKmh, settings.WindSpeedRange.Max)
			require.Len(t, r.ASCIIArtLines, ArtLines)
			assert.Contains(t, settings.SeasonalConditions[SeasonOf(m)].Names(), r.Condition)
			assert.Equal(t, "Paris", r.City)
			assert.Equal(t, now, r.Timestamp)
		}
	}
}

func TestReadingWithFixedDraws(t *testing.T) {
	g := NewGenerator(testSettings(), fixedRand{f: 0.5, i: 0})
	now := time.Date(2026, time.July, 1, 12, 0, 0, 0, time.UTC)

	r := g.Reading("Paris", now)

	// July is 2..27, wind 0..40, humidity 30..90.
	assert.Equal(t, 14.5, r.TemperatureC)
	assert.Equal(t, 30, r.HumidityPct)
	assert.Equal(t, 20.0, r.WindSpeedKmh)
	assert.Equal(t, "Sunny", r.Condition)
	assert.Equal(t, 14.5, r.FeelsLikeC)
	assert.Equal(t, []string{"\\ | /", "- O -", "/ | \\"}, r.ASCIIArtLines)
}

func TestReadingUsesFallbackTemperatureForMissingMonth(t *testing.T) {
	settings := testSettings()
	delete(settings.MonthlyTemperatures, time.March)
	g := NewGenerator(settings, fixedRand{f: 1, i: 0})

	r := g.Reading("Paris", time.Date(2026, time.March, 3, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, 25.0, r.TemperatureC)

	g = NewGenerator(settings, fixedRand{f: 0, i: 0})
	r = g.Reading("Paris", time.Date(2026, time.March, 3, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, -10.0, r.TemperatureC)
}

func TestReadingWithUnknownArtIsBlank(t *testing.T) {
	settings := testSettings()
	settings.SeasonalConditions[SeasonAutumn] = ConditionWeights{{Name: "Hail", Weight: 1}}
	g := NewGenerator(settings, fixedRand{f: 0.2})

	r := g.Reading("Paris", time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, "Hail", r.Condition)
	assert.Equal(t, []string{"", "", ""}, r.ASCIIArtLines)
}

func TestFeelsLike(t *testing.T) {
	tests := []struct {
		name string
		temp float64
		wind float64
		want float64
	}{
		{"hot and windy", 30, 25, 31.2},
		{"cool and windy", 5, 15, 2.0},
		{"freezing with breeze", -5, 10, -8.0},
		{"freezing and still", -5, 4, -5},
		{"mild", 20, 5, 20},
		{"hot but calm", 30, 20, 30},
		{"cold rule wins over freezing rule", -2, 12, -4.4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, FeelsLike(tt.temp, tt.wind), 1e-9)
		})
	}
}

func TestRoundTenthHalvesToEven(t *testing.T) {
	assert.Equal(t, 31.2, RoundTenth(31.25))
	assert.Equal(t, 31.4, RoundTenth(31.35))
	assert.Equal(t, -8.0, RoundTenth(-8.04))
	assert.Equal(t, 12.3, RoundTenth(12.34))
}

func TestRoundTenthUsesExactDecimalValue(t *testing.T) {
	// 0.15 and 2.675 are stored just below the tie.
	assert.Equal(t, 0.1, RoundTenth(0.15))
	assert.Equal(t, 2.7, RoundTenth(2.675))
	assert.Equal(t, 0.2, RoundTenth(0.25))
	assert.Equal(t, -0.2, RoundTenth(-0.25))
	assert.Equal(t, 14.5, RoundTenth(14.5))
}

func TestSelectConditionFrequencies(t *testing.T) {
	weights := ConditionWeights{{Name: "Sunny", Weight: 5}, {Name: "Cloudy", Weight: 3}, {Name: "Rainy", Weight: 2}}
	rnd := rand.New(rand.NewPCG(1, 2))

	const trials = 200000
	counts := make(map[string]int)
	for i := 0; i < trials; i++ {
		counts[SelectCondition(rnd, weights, nil)]++
	}

	require.Len(t, counts, 3)
	assert.InDelta(t, 0.5, float64(counts["Sunny"])/trials, 0.01)
	assert.InDelta(t, 0.3, float64(counts["Cloudy"])/trials, 0.01)
	assert.InDelta(t, 0.2, float64(counts["Rainy"])/trials, 0.01)
}

func TestSelectConditionFallsBackToSummer(t *testing.T) {
	summer := ConditionWeights{{Name: "Sunny", Weight: 9}, {Name: "Humid", Weight: 1}}
	rnd := rand.New(rand.NewPCG(3, 4))

	seen := make(map[string]int)
	for i := 0; i < 2000; i++ {
		seen[SelectCondition(rnd, nil, summer)]++
	}

	// Uniform over the names, ignoring weights.
	require.Len(t, seen, 2)
	assert.InDelta(t, 0.5, float64(seen["Humid"])/2000, 0.05)

	assert.Equal(t, DefaultCondition, SelectCondition(rnd, nil, nil))
	assert.Equal(t, DefaultCondition, SelectCondition(rnd, ConditionWeights{}, ConditionWeights{}))
}

func TestArtLinesFor(t *testing.T) {
	assert.Equal(t, []string{"", "", ""}, ArtLinesFor(""))
	assert.Equal(t, []string{"a", "b", ""}, ArtLinesFor("a\nb"))
	assert.Equal(t, []string{"a", "b", ""}, ArtLinesFor("a\nb\n"))
	assert.Equal(t, []string{"1", "2", "3"}, ArtLinesFor("1\n2\n3\n4"))
	assert.Equal(t, []string{"x", "y", "z"}, ArtLinesFor("x\r\ny\r\nz"))
}

func TestForecastFollowsEachDaysSeason(t *testing.T) {
	g := NewGenerator(testSettings(), fixedRand{f: 0.5, i: 0})
	now := time.Date(2026, time.August, 30, 18, 0, 0, 0, time.UTC)

	forecast := g.Forecast("Paris", now, 3)

	require.Len(t, forecast, 3)
	wantDates := []string{"2026-08-31", "2026-09-01", "2026-09-02"}
	wantConditions := []string{"Sunny", "Foggy", "Foggy"}
	for i, e := range forecast {
		assert.Equal(t, wantDates[i], e.Date.Format("2006-01-02"))
		assert.Equal(t, wantConditions[i], e.Condition)
		assert.Equal(t, "Paris", e.City)
	}

	// Raw art, not split into lines.
	assert.Equal(t, "\\ | /\n- O -\n/ | \\", forecast[0].ASCIIArt)
	assert.Equal(t, "", forecast[1].ASCIIArt)

	// August is 3..28, September 4..29.
	assert.Equal(t, 15.5, forecast[0].TemperatureC)
	assert.Equal(t, 16.5, forecast[1].TemperatureC)
}

func TestForecastLength(t *testing.T) {
	g := NewGenerator(testSettings(), nil)
	now := time.Now()

	assert.Len(t, g.Forecast("Paris", now, 7), 7)
	assert.Empty(t, g.Forecast("Paris", now, 0))
}
