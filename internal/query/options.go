package query

import (
	"slices"

	"marquee/internal/aggregate"
	"marquee/internal/catalog"
	"marquee/internal/scoring"
)

// DefaultCountryOptions is how many countries Discover offers.
const DefaultCountryOptions = 20

// Choices lists the values a caller can select from for each dimension.
type Choices struct {
	Kinds     []catalog.Kind `json:"kinds"`
	Ratings   []string       `json:"ratings"`
	Genres    []string       `json:"genres"`
	Countries []string       `json:"countries"`
	Tiers     []catalog.Tier `json:"tiers"`
	YearMin   *int           `json:"year_min,omitempty"`
	YearMax   *int           `json:"year_max,omitempty"`
}

// Discover collects the selectable values of cat. Ratings and genres are
// sorted; countries are the topCountries most frequent.
func Discover(cat *catalog.Catalog, topCountries int) Choices {
	if topCountries <= 0 {
		topCountries = DefaultCountryOptions
	}
	summary := aggregate.Summarize(cat.All())

	choices := Choices{
		Kinds:     make([]catalog.Kind, 0, len(summary.Kinds)),
		Ratings:   keys(summary.Ratings),
		Genres:    keys(summary.Genres),
		Countries: keys(aggregate.Top(summary.Countries, topCountries)),
		Tiers:     scoring.Tiers(),
	}
	for _, kind := range catalog.Kinds {
		for _, c := range summary.Kinds {
			if c.Key == kind {
				choices.Kinds = append(choices.Kinds, kind)
			}
		}
	}
	slices.Sort(choices.Ratings)
	slices.Sort(choices.Genres)

	var lo, hi int
	found := false
	for _, t := range cat.All().All() {
		if t.ReleaseYear == nil {
			continue
		}
		y := *t.ReleaseYear
		if !found || y < lo {
			lo = y
		}
		if !found || y > hi {
			hi = y
		}
		found = true
	}
	if found {
		choices.YearMin, choices.YearMax = &lo, &hi
	}
	return choices
}

func keys[K comparable](counts []aggregate.Count[K]) []K {
	out := make([]K, 0, len(counts))
	for _, c := range counts {
		out = append(out, c.Key)
	}
	return out
}
