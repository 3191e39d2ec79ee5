package pipeline

import (
	"strconv"
	"strings"
	"time"

	"marquee/internal/catalog"
	"marquee/internal/normalize"
)

// Canonical column names written by Records. Each one is the first alias of
// its field so that feeding the rows back through Build resolves them again.
const (
	ColumnKind        = "type"
	ColumnTitle       = "title"
	ColumnReleaseYear = "release_year"
	ColumnRating      = "rating"
	ColumnDuration    = "duration"
	ColumnCountry     = "country"
	ColumnGenre       = "listed_in"
	ColumnDateAdded   = "date_added"
	ColumnDirector    = "director"
)

// Columns lists the Records header in display order.
var Columns = []string{
	ColumnKind, ColumnTitle, ColumnDirector, ColumnCountry, ColumnDateAdded,
	ColumnReleaseYear, ColumnRating, ColumnDuration, ColumnGenre,
}

// Records converts a catalog back into source rows. Building a catalog from
// these rows reproduces the same titles.
func (b *Builder) Records(cat *catalog.Catalog) []normalize.Row {
	rows := make([]normalize.Row, 0, cat.Len())
	for _, t := range cat.Titles() {
		rows = append(rows, b.Row(t))
	}
	return rows
}

// Row converts one title back into a source row. Nil fields are omitted.
func (b *Builder) Row(t catalog.Title) normalize.Row {
	row := normalize.Row{
		ColumnKind:  t.KindLabel,
		ColumnTitle: t.Title,
	}
	if t.KindLabel == "" {
		row[ColumnKind] = string(t.Kind)
	}
	setString(row, ColumnRating, t.Rating)
	setString(row, ColumnDirector, t.Director)
	setString(row, ColumnDuration, t.DurationRaw)
	if t.ReleaseYear != nil {
		row[ColumnReleaseYear] = strconv.Itoa(*t.ReleaseYear)
	}
	if len(t.Countries) > 0 {
		row[ColumnCountry] = strings.Join(t.Countries, b.separator+" ")
	}
	if len(t.Genres) > 0 {
		row[ColumnGenre] = strings.Join(t.Genres, b.separator+" ")
	}
	if t.DateAdded != nil {
		row[ColumnDateAdded] = formatDate(*t.DateAdded)
	}
	return row
}

func setString(row normalize.Row, column string, value *string) {
	if value != nil {
		row[column] = *value
	}
}

func formatDate(d time.Time) string {
	if d.Hour() == 0 && d.Minute() == 0 && d.Second() == 0 && d.Location() == time.UTC {
		return d.Format("2006-01-02")
	}
	return d.Format(time.RFC3339)
}
