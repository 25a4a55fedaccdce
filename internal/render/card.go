// Package render lays out weather readings as fixed-column plain text.
package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/i474232898/fake-weather/internal/weather"
)

// Column layout of a card line.
const (
	ArtWidth      = 9
	ArtGap        = 3
	LeftWidth     = 15
	LeftGap       = 2
	RightColStart = ArtWidth + ArtGap + LeftWidth + LeftGap
)

const timeLayout = "03:04 PM"

// width measures cells independently of the terminal locale.
var width = &runewidth.Condition{EastAsianWidth: false}

// BuildAlignedLine right-pads art and left to their column widths and
// appends right verbatim. Content wider than its column is not truncated,
// so it pushes the following columns out.
func BuildAlignedLine(art, left, right string) string {
	var b strings.Builder
	b.WriteString(width.FillRight(art, ArtWidth))
	b.WriteString(strings.Repeat(" ", ArtGap))
	b.WriteString(width.FillRight(left, LeftWidth))
	b.WriteString(strings.Repeat(" ", LeftGap))
	b.WriteString(right)
	return b.String()
}

// Card renders a reading as three aligned lines with a trailing newline.
// Values are converted to the display units and rounded to whole numbers.
func Card(r weather.Reading, units weather.DisplayUnits) string {
	temp := roundInt(units.ConvertTemperature(r.TemperatureC))
	feels := roundInt(units.ConvertTemperature(r.FeelsLikeC))
	wind := roundInt(units.ConvertWindSpeed(r.WindSpeedKmh))

	art := weather.ArtLinesFor(strings.Join(r.ASCIIArtLines, "\n"))

	lines := []string{
		BuildAlignedLine(art[0],
			fmt.Sprintf("%d°%s", temp, units.TemperatureSymbol()),
			fmt.Sprintf("feels like %d°%s", feels, units.TemperatureSymbol())),
		BuildAlignedLine(art[1],
			r.Condition,
			fmt.Sprintf("wind speed %d %s", wind, units.WindSpeedSymbol())),
		BuildAlignedLine(art[2],
			r.Timestamp.Format(timeLayout),
			fmt.Sprintf("Humidity %d%%", r.HumidityPct)),
	}
	return strings.Join(lines, "\n") + "\n"
}

func roundInt(v float64) int {
	return int(math.RoundToEven(v))
}
