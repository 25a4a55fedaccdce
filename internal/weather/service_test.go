package weather

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

func newTestService() *Service {
	clock := fixedClock{t: time.Date(2026, time.January, 10, 8, 0, 0, 0, time.UTC)}
	g := NewGenerator(testSettings(), fixedRand{f: 0.5})
	return NewService(g, NewCities([]string{"New York", "Paris"}), clock)
}

func TestServiceCurrent(t *testing.T) {
	s := newTestService()

	r, err := s.Current("new-york")
	require.NoError(t, err)
	assert.Equal(t, "New York", r.City)
	assert.Equal(t, "Snowy", r.Condition)
	assert.Equal(t, time.Date(2026, time.January, 10, 8, 0, 0, 0, time.UTC), r.Timestamp)

	_, err = s.Current("atlantis")
	assert.True(t, errors.Is(err, ErrCityNotFound))
}

func TestServiceAllKeepsConfigOrder(t *testing.T) {
	s := newTestService()

	readings := s.All()
	require.Len(t, readings, 2)
	assert.Equal(t, "New York", readings[0].City)
	assert.Equal(t, "Paris", readings[1].City)
}

func TestServiceForecast(t *testing.T) {
	s := newTestService()

	city, forecast, err := s.Forecast("paris", DefaultForecastDays)
	require.NoError(t, err)
	assert.Equal(t, "Paris", city)
	require.Len(t, forecast, 3)
	assert.Equal(t, "2026-01-11", forecast[0].Date.Format("2006-01-02"))

	_, _, err = s.Forecast("paris", 0)
	assert.Error(t, err)

	_, _, err = s.Forecast("atlantis", 3)
	assert.True(t, errors.Is(err, ErrCityNotFound))
}

func TestServiceUsage(t *testing.T) {
	s := newTestService()
	assert.Empty(t, s.Usage())

	_, _ = s.Current("paris")
	_, _ = s.Current("paris")
	s.All()
	_, _ = s.Current("atlantis")

	assert.Equal(t, []CityUsage{
		{City: "Paris", Served: 3},
		{City: "New York", Served: 1},
	}, s.Usage())
}
