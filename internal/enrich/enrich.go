// Package enrich derives calendar fields from a title's date added and
// release year.
//
// Parsing is tolerant: anything that does not match a known layout yields nil
// fields rather than an error. The current year used for content age comes
// from an injectable clock so results are reproducible in tests.
package enrich

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// dateLayouts are tried in order. Month-first layouts precede day-first ones
// for ambiguous numeric dates.
var dateLayouts = []string{
	"January 2, 2006",
	"Jan 2, 2006",
	"January 2 2006",
	"2 January 2006",
	"2 Jan 2006",
	"2006-01-02",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02 15:04:05",
	"2006/01/02",
	"01/02/2006",
	"1/2/2006",
	"01-02-2006",
	"2006-01",
	"January 2006",
	"2006",
}

var monthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// UnknownMonth is the month name for missing or out-of-range months.
const UnknownMonth = "Unknown"

// Temporal holds every field derived by the enricher. Pointer fields are nil
// when their inputs were missing or unparseable.
type Temporal struct {
	DateAdded    *time.Time
	YearAdded    *int
	MonthAdded   *int
	QuarterAdded *int
	MonthName    string
	ReleaseYear  *int
	ContentAge   *int
	Decade       *int
}

// Enricher computes temporal fields relative to a clock.
type Enricher struct {
	now func() time.Time
}

// New creates an Enricher. A nil clock uses time.Now.
func New(now func() time.Time) *Enricher {
	if now == nil {
		now = time.Now
	}
	return &Enricher{now: now}
}

// Enrich derives all temporal fields.
func (e *Enricher) Enrich(dateAdded, releaseYear *string) Temporal {
	out := Temporal{MonthName: UnknownMonth}

	if date := ParseDate(dateAdded); date != nil {
		year := date.Year()
		month := int(date.Month())
		quarter := (month-1)/3 + 1
		out.DateAdded = date
		out.YearAdded = &year
		out.MonthAdded = &month
		out.QuarterAdded = &quarter
		out.MonthName = MonthName(&month)
	}

	if year := ParseYear(releaseYear); year != nil {
		age := e.now().Year() - *year
		decade := Decade(*year)
		out.ReleaseYear = year
		out.ContentAge = &age
		out.Decade = &decade
	}
	return out
}

// ParseDate parses raw with the first matching layout and returns the calendar
// date at midnight UTC. Any time of day is dropped; the date is the one in the
// input's own offset. Nil or unparseable input returns nil.
func ParseDate(raw *string) *time.Time {
	if raw == nil {
		return nil
	}
	text := strings.Join(strings.Fields(*raw), " ")
	if text == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, text); err == nil {
			y, m, d := parsed.Date()
			date := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
			return &date
		}
	}
	return nil
}

// maxYearMagnitude bounds accepted years so age and decade arithmetic cannot
// overflow.
const maxYearMagnitude = math.MaxInt32

// ParseYear coerces a textual number to a year. Decimal text such as "2019.0"
// is accepted when it has no fractional part. Years beyond ±maxYearMagnitude
// are rejected.
func ParseYear(raw *string) *int {
	if raw == nil {
		return nil
	}
	text := strings.TrimSpace(*raw)
	if text == "" {
		return nil
	}
	if year, err := strconv.Atoi(text); err == nil {
		if year > maxYearMagnitude || year < -maxYearMagnitude {
			return nil
		}
		return &year
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(f) || f != math.Trunc(f) || math.Abs(f) > maxYearMagnitude {
		return nil
	}
	year := int(f)
	return &year
}

// Decade floors year to its decade.
func Decade(year int) int {
	return int(math.Floor(float64(year)/10)) * 10
}

// MonthName returns the calendar name for month, or UnknownMonth when month is
// nil or outside 1-12.
func MonthName(month *int) string {
	if month == nil || *month < 1 || *month > 12 {
		return UnknownMonth
	}
	return monthNames[*month-1]
}
