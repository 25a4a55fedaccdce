package weather

import "time"

// SeasonOf maps a month to its Northern-Hemisphere season.
func SeasonOf(month time.Month) Season {
	switch month {
	case time.June, time.July, time.August:
		return SeasonSummer
	case time.September, time.October, time.November:
		return SeasonAutumn
	case time.December, time.January, time.February:
		return SeasonWinter
	default:
		return SeasonSpring
	}
}
