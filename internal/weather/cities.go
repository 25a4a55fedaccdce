package weather

import (
	"errors"
	"strings"

	"github.com/i474232898/fake-weather/internal/common"
)

var (
	// ErrCityNotFound is returned when a requested city is not configured.
	ErrCityNotFound = errors.New("city not found")
)

// NormalizeCity turns a URL segment like "new-york" into "New York".
func NormalizeCity(raw string) string {
	return common.TitleCase(strings.ReplaceAll(raw, "-", " "))
}

// Cities is the ordered set of configured city names.
type Cities struct {
	names []string
	index map[string]string // lower-cased normalized name -> configured name
}

// NewCities deduplicates names case-insensitively, keeping the first spelling.
func NewCities(names []string) Cities {
	c := Cities{index: make(map[string]string, len(names))}
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		key := strings.ToLower(NormalizeCity(name))
		if _, dup := c.index[key]; dup {
			continue
		}
		c.index[key] = name
		c.names = append(c.names, name)
	}
	return c
}

// Names returns the configured names in order.
func (c Cities) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// Len returns the number of cities.
func (c Cities) Len() int {
	return len(c.names)
}

// Lookup resolves a raw URL segment to a configured city name.
func (c Cities) Lookup(raw string) (string, error) {
	name, ok := c.index[strings.ToLower(NormalizeCity(raw))]
	if !ok {
		return "", ErrCityNotFound
	}
	return name, nil
}

// List returns the names joined for error messages.
func (c Cities) List() string {
	return strings.Join(c.names, ", ")
}
