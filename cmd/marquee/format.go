package main

import (
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"marquee/internal/catalog"
)

const placeholder = "-"

func formatCount(n int) string {
	return humanize.Comma(int64(n))
}

func formatOptionalInt(v *int) string {
	if v == nil {
		return placeholder
	}
	return strconv.Itoa(*v)
}

func formatOptionalFloat(v *float64, decimals int) string {
	if v == nil {
		return placeholder
	}
	return humanize.FormatFloat("#,###."+strings.Repeat("#", decimals), *v)
}

func formatPercent(v *float64) string {
	if v == nil {
		return placeholder
	}
	return strconv.FormatFloat(*v, 'f', 1, 64) + "%"
}

func formatChange(v *float64) string {
	if v == nil {
		return placeholder
	}
	sign := "+"
	if *v < 0 {
		sign = ""
	}
	return sign + strconv.FormatFloat(*v, 'f', 1, 64) + "%"
}

func formatOptionalString(v *string) string {
	if v == nil || *v == "" {
		return placeholder
	}
	return *v
}

// formatDuration prefers the parsed duration, falling back to the raw text.
func formatDuration(t catalog.Title) string {
	switch {
	case t.MovieMinutes != nil:
		return strconv.FormatFloat(*t.MovieMinutes, 'f', -1, 64) + " min"
	case t.SeasonCount != nil:
		n := strconv.FormatFloat(*t.SeasonCount, 'f', -1, 64)
		if *t.SeasonCount == 1 {
			return n + " season"
		}
		return n + " seasons"
	default:
		return formatOptionalString(t.DurationRaw)
	}
}

func joinOrPlaceholder(values []string) string {
	if len(values) == 0 {
		return placeholder
	}
	return strings.Join(values, ", ")
}
