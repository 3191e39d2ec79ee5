package catalog

import "time"

// Kind is the canonical content type of a title.
type Kind string

const (
	KindMovie   Kind = "Movie"
	KindTVShow  Kind = "TV Show"
	KindUnknown Kind = "Unknown"
)

// Kinds lists the canonical kinds in display order.
var Kinds = []Kind{KindMovie, KindTVShow, KindUnknown}

// Valid reports whether k is one of the canonical kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindMovie, KindTVShow, KindUnknown:
		return true
	}
	return false
}

// Tier is the coarse quality bucket derived from a content score.
type Tier string

const (
	TierBasic        Tier = "Basic"
	TierStandard     Tier = "Standard"
	TierPremium      Tier = "Premium"
	TierUltra        Tier = "Ultra"
	TierUnclassified Tier = "Unclassified"
)

// Title is one normalized catalog entry. Optional fields are nil when the
// source value was absent or could not be parsed.
type Title struct {
	Title     string `json:"title"`
	Kind      Kind   `json:"kind"`
	KindLabel string `json:"kind_label"`

	ReleaseYear *int    `json:"release_year,omitempty"`
	Rating      *string `json:"rating,omitempty"`
	Director    *string `json:"director,omitempty"`

	DurationRaw  *string  `json:"duration_raw,omitempty"`
	MovieMinutes *float64 `json:"movie_minutes,omitempty"`
	SeasonCount  *float64 `json:"season_count,omitempty"`

	Countries []string `json:"countries"`
	Genres    []string `json:"genres"`

	DateAdded    *time.Time `json:"date_added,omitempty"`
	YearAdded    *int       `json:"year_added,omitempty"`
	MonthAdded   *int       `json:"month_added,omitempty"`
	QuarterAdded *int       `json:"quarter_added,omitempty"`
	MonthName    string     `json:"month_name"`

	ContentAge *int `json:"content_age,omitempty"`
	Decade     *int `json:"decade,omitempty"`

	ContentScore int  `json:"content_score"`
	QualityTier  Tier `json:"quality_tier"`
}

// HasGenre reports whether the title lists any of the given genres.
func (t Title) HasGenre(genres map[string]struct{}) bool {
	return containsAny(t.Genres, genres)
}

// HasCountry reports whether the title lists any of the given countries.
func (t Title) HasCountry(countries map[string]struct{}) bool {
	return containsAny(t.Countries, countries)
}

func containsAny(values []string, set map[string]struct{}) bool {
	for _, v := range values {
		if _, ok := set[v]; ok {
			return true
		}
	}
	return false
}

// RatingValue returns the rating or an empty string when unknown.
func (t Title) RatingValue() string {
	if t.Rating == nil {
		return ""
	}
	return *t.Rating
}
