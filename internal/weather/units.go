package weather

// UnitSystem selects how values are displayed on the plain-text card.
type UnitSystem string

const (
	Metric   UnitSystem = "metric"
	Imperial UnitSystem = "imperial"
)

// ParseUnitSystem treats "imperial" as imperial and anything else as metric.
func ParseUnitSystem(s string) UnitSystem {
	if s == string(Imperial) {
		return Imperial
	}
	return Metric
}

// DisplayUnits holds the temperature and wind speed unit preferences.
type DisplayUnits struct {
	Temperature UnitSystem
	WindSpeed   UnitSystem
}

// TemperatureSymbol returns "F" for imperial, "C" otherwise.
func (d DisplayUnits) TemperatureSymbol() string {
	if d.Temperature == Imperial {
		return "F"
	}
	return "C"
}

// WindSpeedSymbol returns "mph" for imperial, "km/h" otherwise.
func (d DisplayUnits) WindSpeedSymbol() string {
	if d.WindSpeed == Imperial {
		return "mph"
	}
	return "km/h"
}

// ConvertTemperature converts a Celsius value to the display unit.
func (d DisplayUnits) ConvertTemperature(c float64) float64 {
	if d.Temperature == Imperial {
		return CelsiusToFahrenheit(c)
	}
	return c
}

// ConvertWindSpeed converts a km/h value to the display unit.
func (d DisplayUnits) ConvertWindSpeed(kmh float64) float64 {
	if d.WindSpeed == Imperial {
		return KmhToMph(kmh)
	}
	return kmh
}

// CelsiusToFahrenheit converts without rounding.
func CelsiusToFahrenheit(c float64) float64 {
	return c*9/5 + 32
}

// KmhToMph converts without rounding.
func KmhToMph(kmh float64) float64 {
	return kmh * 0.621371
}
