package weather

import (
	"fmt"
	"log"
	"sort"
	"sync"
)

// DefaultForecastDays is the forecast length when none is requested.
const DefaultForecastDays = 3

// Service resolves cities and hands them to the generator.
type Service struct {
	generator *Generator
	cities    Cities
	clock     Clock

	mu     sync.Mutex
	served map[string]uint64
}

// NewService creates a new Service. A nil clock uses the wall clock.
func NewService(generator *Generator, cities Cities, clock Clock) *Service {
	if clock == nil {
		clock = RealClock{}
	}
	return &Service{
		generator: generator,
		cities:    cities,
		clock:     clock,
		served:    make(map[string]uint64),
	}
}

// Cities returns the configured city set.
func (s *Service) Cities() Cities {
	return s.cities
}

// Current generates a reading for the city named by the raw URL segment.
func (s *Service) Current(raw string) (Reading, error) {
	city, err := s.cities.Lookup(raw)
	if err != nil {
		return Reading{}, fmt.Errorf("%w: %q", err, raw)
	}
	s.count(city)
	return s.generator.Reading(city, s.clock.Now()), nil
}

// All generates one reading per configured city, in config order.
func (s *Service) All() []Reading {
	now := s.clock.Now()
	readings := make([]Reading, 0, s.cities.Len())
	for _, city := range s.cities.Names() {
		s.count(city)
		readings = append(readings, s.generator.Reading(city, now))
	}
	return readings
}

// Forecast generates a days-long forecast for the city named by raw.
// It returns the resolved city name alongside the entries.
func (s *Service) Forecast(raw string, days int) (string, Forecast, error) {
	if days <= 0 {
		return "", nil, fmt.Errorf("days must be greater than zero")
	}
	city, err := s.cities.Lookup(raw)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %q", err, raw)
	}

	log.Printf("DEBUG: Forecast called for %s for %d days", city, days)
	s.count(city)
	return city, s.generator.Forecast(city, s.clock.Now(), days), nil
}

func (s *Service) count(city string) {
	s.mu.Lock()
	s.served[city]++
	s.mu.Unlock()
}

// CityUsage is the number of requests served for one city.
type CityUsage struct {
	City   string
	Served uint64
}

// Usage returns per-city request counts, busiest first.
func (s *Service) Usage() []CityUsage {
	s.mu.Lock()
	usage := make([]CityUsage, 0, len(s.served))
	for city, n := range s.served {
		usage = append(usage, CityUsage{City: city, Served: n})
	}
	s.mu.Unlock()

	sort.Slice(usage, func(i, j int) bool {
		if usage[i].Served != usage[j].Served {
			return usage[i].Served > usage[j].Served
		}
		return usage[i].City < usage[j].City
	})
	return usage
}
