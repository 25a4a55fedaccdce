package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/ini.v1"

	"github.com/i474232898/fake-weather/internal/common"
	"github.com/i474232898/fake-weather/internal/weather"
)

const (
	sectionWeather     = "Weather"
	sectionUnits       = "Units"
	sectionConditions  = "WeatherConditions"
	sectionTemperature = "TemperatureRanges"
	sectionArt         = "ASCIIArt"
	sectionAPI         = "API"
)

var validate = validator.New()

var loadOptions = ini.LoadOptions{
	InsensitiveKeys:            true,
	AllowPythonMultilineValues: true,
	IgnoreInlineComment:        true,
	IgnoreContinuation:         true,
}

type AppConfig struct {
	// Path is the file the configuration was read from.
	Path string

	Cities  []string `validate:"required,min=1,dive,required"`
	Weather weather.Settings

	TemperatureUnit string `validate:"oneof=celsius metric imperial"`
	WindSpeedUnit   string `validate:"oneof=km/h kmh metric imperial"`

	Port int `validate:"gte=1,lte=65535"`

	// ReportInterval controls how often usage is logged (0 = disabled).
	ReportInterval time.Duration `validate:"gte=0"`
}

// Units returns the display units derived from the unit selection.
func (c *AppConfig) Units() weather.DisplayUnits {
	return weather.DisplayUnits{
		Temperature: weather.ParseUnitSystem(c.TemperatureUnit),
		WindSpeed:   weather.ParseUnitSystem(c.WindSpeedUnit),
	}
}

// CitySet returns the configured cities, deduplicated.
func (c *AppConfig) CitySet() weather.Cities {
	return weather.NewCities(c.Cities)
}

// Load reads the environment and the INI file it points at.
// Any failure is a *ConfigError; the caller is expected to exit.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}

	cfg, err := LoadFile(getenvDefault("CONFIG_PATH", "config.cfg"))
	if err != nil {
		return nil, err
	}

	if port := os.Getenv("PORT"); port != "" {
		n, err := strconv.Atoi(port)
		if err != nil {
			return nil, configErr("", "", fmt.Errorf("invalid PORT: %w", err))
		}
		cfg.Port = n
	}

	interval, err := time.ParseDuration(getenvDefault("REPORT_INTERVAL", "15m"))
	if err != nil {
		return nil, configErr("", "", fmt.Errorf("invalid REPORT_INTERVAL: %w", err))
	}
	cfg.ReportInterval = interval

	if err := check(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile reads and validates the INI file at path.
func LoadFile(path string) (*AppConfig, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, configErr("", "", fmt.Errorf("configuration file %q not found", path))
		}
		return nil, configErr("", "", fmt.Errorf("failed to stat %q: %w", path, err))
	}

	cfg, err := parse(path)
	if err != nil {
		return nil, err
	}
	cfg.Path = path
	return cfg, nil
}

// Parse reads and validates INI data held in memory.
func Parse(data []byte) (*AppConfig, error) {
	return parse(data)
}

func parse(source interface{}) (*AppConfig, error) {
	f, err := ini.LoadSources(loadOptions, source)
	if err != nil {
		return nil, configErr("", "", fmt.Errorf("failed to decode: %w", err))
	}

	cfg := &AppConfig{}
	steps := []func(*ini.File, *AppConfig) error{
		parseWeatherSection, parseUnitsSection, parseConditionsSection,
		parseTemperatureSection, parseArtSection, parseAPISection,
	}
	for _, step := range steps {
		if err := step(f, cfg); err != nil {
			return nil, err
		}
	}

	if err := check(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func parseWeatherSection(f *ini.File, cfg *AppConfig) error {
	cities, err := value(f, sectionWeather, "cities")
	if err != nil {
		return err
	}
	for _, city := range strings.Split(cities, ",") {
		cfg.Cities = append(cfg.Cities, strings.TrimSpace(city))
	}
	cfg.Cities = cfg.CitySet().Names()

	raw, err := value(f, sectionWeather, "humidity_range")
	if err != nil {
		return err
	}
	lo, hi, err := parsePair(raw, strconv.Atoi)
	if err != nil {
		return configErr(sectionWeather, "humidity_range", err)
	}
	cfg.Weather.HumidityRange = weather.IntRange{Min: lo, Max: hi}

	raw, err = value(f, sectionWeather, "wind_speed_range")
	if err != nil {
		return err
	}
	wlo, whi, err := parsePair(raw, parseFloat)
	if err != nil {
		return configErr(sectionWeather, "wind_speed_range", err)
	}
	cfg.Weather.WindSpeedRange = weather.FloatRange{Min: wlo, Max: whi}
	return nil
}

func parseUnitsSection(f *ini.File, cfg *AppConfig) error {
	temp, err := value(f, sectionUnits, "temperature_unit")
	if err != nil {
		return err
	}
	wind, err := value(f, sectionUnits, "wind_speed_unit")
	if err != nil {
		return err
	}
	cfg.TemperatureUnit = strings.ToLower(temp)
	cfg.WindSpeedUnit = strings.ToLower(wind)
	return nil
}

func parseConditionsSection(f *ini.File, cfg *AppConfig) error {
	cfg.Weather.SeasonalConditions = make(map[weather.Season]weather.ConditionWeights, len(weather.Seasons))
	for _, season := range weather.Seasons {
		key := string(season) + "_conditions"
		raw, err := value(f, sectionConditions, key)
		if err != nil {
			return err
		}
		weights, err := parseWeights(raw)
		if err != nil {
			return configErr(sectionConditions, key, err)
		}
		cfg.Weather.SeasonalConditions[season] = weights
	}
	return nil
}

func parseTemperatureSection(f *ini.File, cfg *AppConfig) error {
	cfg.Weather.MonthlyTemperatures = make(map[time.Month]weather.IntRange, 12)
	for m := time.January; m <= time.December; m++ {
		key := strings.ToLower(m.String())
		raw, err := value(f, sectionTemperature, key)
		if err != nil {
			return err
		}
		lo, hi, err := parsePair(raw, strconv.Atoi)
		if err != nil {
			return configErr(sectionTemperature, key, err)
		}
		cfg.Weather.MonthlyTemperatures[m] = weather.IntRange{Min: lo, Max: hi}
	}
	return nil
}

func parseArtSection(f *ini.File, cfg *AppConfig) error {
	sec, err := f.GetSection(sectionArt)
	if err != nil {
		return configErr(sectionArt, "", errors.New("section is missing"))
	}
	cfg.Weather.ASCIIArt = make(map[string]string, len(sec.Keys()))
	for _, k := range sec.Keys() {
		cfg.Weather.ASCIIArt[common.KeyToTitle(k.Name())] = trimLines(k.Value())
	}
	return nil
}

// trimLines strips the indentation of multi-line values line by line.
func trimLines(v string) string {
	lines := strings.Split(v, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return strings.Join(lines, "\n")
}

func parseAPISection(f *ini.File, cfg *AppConfig) error {
	raw, err := value(f, sectionAPI, "port")
	if err != nil {
		return err
	}
	port, err := strconv.Atoi(raw)
	if err != nil {
		return configErr(sectionAPI, "port", err)
	}
	cfg.Port = port
	return nil
}

// check runs struct validation plus the bounds tags cannot express.
func check(cfg *AppConfig) error {
	if err := validate.Struct(cfg); err != nil {
		return configErr("", "", fmt.Errorf("invalid configuration: %w", err))
	}
	h := cfg.Weather.HumidityRange
	if h.Min < 0 || h.Max > 100 {
		return configErr(sectionWeather, "humidity_range", fmt.Errorf("range %d,%d is outside 0..100", h.Min, h.Max))
	}
	return nil
}

// value returns a required key, failing when the section or key is absent.
func value(f *ini.File, section, key string) (string, error) {
	sec, err := f.GetSection(section)
	if err != nil {
		return "", configErr(section, "", errors.New("section is missing"))
	}
	k, err := sec.GetKey(key)
	if err != nil {
		return "", configErr(section, key, errors.New("key is missing"))
	}
	return k.Value(), nil
}

// parsePair parses "min,max".
func parsePair[T any](raw string, conv func(string) (T, error)) (T, T, error) {
	var zero T
	parts := strings.Split(raw, ",")
	if len(parts) != 2 {
		return zero, zero, fmt.Errorf("expected \"min,max\", got %q", raw)
	}
	lo, err := conv(strings.TrimSpace(parts[0]))
	if err != nil {
		return zero, zero, err
	}
	hi, err := conv(strings.TrimSpace(parts[1]))
	if err != nil {
		return zero, zero, err
	}
	return lo, hi, nil
}

// parseWeights parses "Sunny:5, Cloudy:3". An empty value yields no weights.
func parseWeights(raw string) (weather.ConditionWeights, error) {
	var weights weather.ConditionWeights
	if strings.TrimSpace(raw) == "" {
		return weights, nil
	}
	for _, item := range strings.Split(raw, ",") {
		parts := strings.Split(strings.TrimSpace(item), ":")
		if len(parts) != 2 {
			return nil, fmt.Errorf("expected \"name:weight\", got %q", item)
		}
		weight, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return nil, fmt.Errorf("weight for %q: %w", parts[0], err)
		}
		if weight <= 0 {
			return nil, fmt.Errorf("weight for %q must be positive", parts[0])
		}
		weights = append(weights, weather.WeightedCondition{
			Name:   strings.TrimSpace(parts[0]),
			Weight: weight,
		})
	}
	return weights, nil
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
