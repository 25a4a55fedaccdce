package common

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// TitleCase upper-cases the first letter of every word and lower-cases the rest.
// A Caser is stateful, so one is created per call.
func TitleCase(s string) string {
	return cases.Title(language.English).String(s)
}

// KeyToTitle turns a config key like "partly_cloudy" into "Partly Cloudy".
func KeyToTitle(key string) string {
	return TitleCase(strings.ReplaceAll(key, "_", " "))
}
