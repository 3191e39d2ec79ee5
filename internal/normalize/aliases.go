package normalize

// Field names a canonical catalog column.
type Field string

const (
	FieldKind        Field = "kind"
	FieldTitle       Field = "title"
	FieldReleaseYear Field = "release_year"
	FieldRating      Field = "rating"
	FieldDuration    Field = "duration_raw"
	FieldCountry     Field = "country"
	FieldGenre       Field = "genre"
	FieldDateAdded   Field = "date_added"
	FieldDirector    Field = "director"
)

// Alias lists the source column names accepted for a canonical field, in
// priority order.
type Alias struct {
	Field   Field
	Columns []string
}

// DefaultAliases is the column resolution table. Column names are compared
// after CanonicalColumn has been applied to the source header.
var DefaultAliases = []Alias{
	{FieldKind, []string{"type", "content_type", "show_type"}},
	{FieldTitle, []string{"title", "name", "show_title"}},
	{FieldReleaseYear, []string{"release_year", "year", "release_date"}},
	{FieldRating, []string{"rating", "content_rating", "age_rating"}},
	{FieldDuration, []string{"duration", "run_time", "length"}},
	{FieldCountry, []string{"country", "countries", "country_of_origin"}},
	{FieldGenre, []string{"listed_in", "genres", "genre", "category"}},
	{FieldDateAdded, []string{"date_added", "added_date", "netflix_added_date"}},
	{FieldDirector, []string{"director", "directors"}},
}
