// Package extract parses free-text duration strings into typed numeric fields.
package extract

import (
	"regexp"
	"strconv"
	"strings"
)

// numberPattern matches the first integer-or-decimal token.
var numberPattern = regexp.MustCompile(`\d+\.?\d*`)

// Unit identifies what a duration magnitude measures.
type Unit int

const (
	UnitNone Unit = iota
	UnitMinutes
	UnitSeasons
)

// unitMarkers is checked in order against the lowercased text; the first
// marker found classifies the duration.
var unitMarkers = []struct {
	marker string
	unit   Unit
}{
	{"min", UnitMinutes},
	{"season", UnitSeasons},
}

// DurationFields holds the typed fields derived from a raw duration. At most
// one of MovieMinutes and SeasonCount is non-nil.
type DurationFields struct {
	MovieMinutes *float64
	SeasonCount  *float64
}

// Magnitude returns the first numeric token of raw, or nil if there is none.
func Magnitude(raw string) *float64 {
	match := numberPattern.FindString(raw)
	if match == "" {
		return nil
	}
	value, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return nil
	}
	return &value
}

// Classify returns the unit implied by the markers in raw.
func Classify(raw string) Unit {
	text := strings.ToLower(raw)
	for _, m := range unitMarkers {
		if strings.Contains(text, m.marker) {
			return m.unit
		}
	}
	return UnitNone
}

// Duration derives the movie minutes or season count from raw. A nil or
// unmarked input yields empty fields.
func Duration(raw *string) DurationFields {
	if raw == nil {
		return DurationFields{}
	}
	unit := Classify(*raw)
	if unit == UnitNone {
		return DurationFields{}
	}
	magnitude := Magnitude(*raw)
	if magnitude == nil {
		return DurationFields{}
	}
	switch unit {
	case UnitMinutes:
		return DurationFields{MovieMinutes: magnitude}
	case UnitSeasons:
		return DurationFields{SeasonCount: magnitude}
	}
	return DurationFields{}
}
