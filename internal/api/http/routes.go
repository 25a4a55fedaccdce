package httpapi

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/i474232898/fake-weather/internal/render"
	"github.com/i474232898/fake-weather/internal/weather"
)

var validate = validator.New()

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, service *weather.Service, units weather.DisplayUnits) {
	w := app.Group("/weather")

	// Static segments are registered before the :city catch-all.
	w.Get("/all", func(c *fiber.Ctx) error {
		readings := service.All()
		out := make([]readingResponse, 0, len(readings))
		for _, r := range readings {
			out = append(out, toReadingResponse(r))
		}
		return c.JSON(out)
	})

	w.Get("/forecast/:city", func(c *fiber.Ctx) error {
		raw := cityParam(c)

		var q forecastQuery
		if err := q.bind(c); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if err := validate.Struct(q); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		city, forecast, err := service.Forecast(raw, q.Days)
		if err != nil {
			if errors.Is(err, weather.ErrCityNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
					"error": notFoundMessage(raw, service.Cities()),
				})
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to generate forecast")
		}

		entries := make([]forecastEntryResponse, 0, len(forecast))
		for _, e := range forecast {
			entries = append(entries, toForecastEntryResponse(e))
		}
		return c.JSON(forecastResponse{City: city, Forecast: entries})
	})

	w.Get("/:city", func(c *fiber.Ctx) error {
		raw := cityParam(c)

		reading, err := service.Current(raw)
		if err != nil {
			if errors.Is(err, weather.ErrCityNotFound) {
				c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
				return c.Status(fiber.StatusNotFound).SendString("Error: " + notFoundMessage(raw, service.Cities()))
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to generate weather")
		}

		c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
		return c.SendString(render.Card(reading, units))
	})
}

func notFoundMessage(raw string, cities weather.Cities) string {
	return fmt.Sprintf("City '%s' not found. Available cities: %s", raw, cities.List())
}

// cityParam returns the decoded :city segment.
func cityParam(c *fiber.Ctx) string {
	raw := c.Params("city")
	if decoded, err := url.PathUnescape(raw); err == nil {
		return decoded
	}
	return raw
}

// forecastQuery holds query parameters for the forecast endpoint.
type forecastQuery struct {
	Days int `validate:"gte=1,lte=7"`
}

func (q *forecastQuery) bind(c *fiber.Ctx) error {
	daysStr := strings.TrimSpace(c.Query("days"))
	if daysStr == "" {
		q.Days = weather.DefaultForecastDays
		return nil
	}

	days, err := strconv.Atoi(daysStr)
	if err != nil {
		return errors.New("days must be an integer between 1 and 7")
	}
	q.Days = days
	return nil
}

type readingResponse struct {
	City         string    `json:"city"`
	TemperatureC float64   `json:"temperature_celsius"`
	FeelsLikeC   float64   `json:"feels_like_celsius"`
	HumidityPct  int       `json:"humidity_percent"`
	WindSpeedKmh float64   `json:"wind_speed_kmh"`
	Condition    string    `json:"condition"`
	ASCIIArt     string    `json:"ascii_art"`
	Timestamp    time.Time `json:"timestamp"`
}

func toReadingResponse(r weather.Reading) readingResponse {
	return readingResponse{
		City:         r.City,
		TemperatureC: r.TemperatureC,
		FeelsLikeC:   r.FeelsLikeC,
		HumidityPct:  r.HumidityPct,
		WindSpeedKmh: r.WindSpeedKmh,
		Condition:    r.Condition,
		ASCIIArt:     strings.Join(r.ASCIIArtLines, "\n"),
		Timestamp:    r.Timestamp,
	}
}

type forecastResponse struct {
	City     string                  `json:"city"`
	Forecast []forecastEntryResponse `json:"forecast"`
}

type forecastEntryResponse struct {
	Date         string  `json:"date"`
	City         string  `json:"city"`
	TemperatureC float64 `json:"temperature_celsius"`
	Condition    string  `json:"condition"`
	ASCIIArt     string  `json:"ascii_art"`
}

func toForecastEntryResponse(e weather.ForecastEntry) forecastEntryResponse {
	return forecastEntryResponse{
		Date:         e.Date.Format("2006-01-02"),
		City:         e.City,
		TemperatureC: e.TemperatureC,
		Condition:    e.Condition,
		ASCIIArt:     e.ASCIIArt,
	}
}
