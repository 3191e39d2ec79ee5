package aggregate

import (
	"slices"

	"marquee/internal/catalog"
	"marquee/internal/scoring"
)

// ScoreStats summarizes content scores. Fields are nil for an empty view.
type ScoreStats struct {
	Mean *float64 `json:"mean"`
	Min  *int     `json:"min"`
	Max  *int     `json:"max"`
}

// NumberStats summarizes an optional numeric field over the titles that have
// it.
type NumberStats struct {
	Count int      `json:"count"`
	Mean  *float64 `json:"mean"`
	Min   *float64 `json:"min"`
	Max   *float64 `json:"max"`
}

// YearKind counts titles of one kind added in one year.
type YearKind struct {
	Year  int          `json:"year"`
	Kind  catalog.Kind `json:"kind"`
	Count int          `json:"count"`
}

// CountryBreakdown describes the titles listing one country.
type CountryBreakdown struct {
	Country   string                `json:"country"`
	Titles    int                   `json:"titles"`
	Kinds     []Count[catalog.Kind] `json:"kinds"`
	MeanScore float64               `json:"mean_score"`
}

// Summary is the full set of statistics for a view.
type Summary struct {
	Titles int `json:"titles"`

	Kinds     []Count[catalog.Kind] `json:"kinds"`
	Ratings   []Count[string]       `json:"ratings"`
	Genres    []Count[string]       `json:"genres"`
	Countries []Count[string]       `json:"countries"`

	Decades       []Count[int] `json:"decades"`
	YearsAdded    []Count[int] `json:"years_added"`
	MonthsAdded   []Count[int] `json:"months_added"`
	QuartersAdded []Count[int] `json:"quarters_added"`

	Score ScoreStats            `json:"score"`
	Tiers []Count[catalog.Tier] `json:"tiers"`

	UniqueCountries int                `json:"unique_countries"`
	KindByYear      []YearKind         `json:"kind_by_year"`
	CountryDetail   []CountryBreakdown `json:"country_detail"`

	MovieMinutes NumberStats      `json:"movie_minutes"`
	Seasons      NumberStats      `json:"seasons"`
	SeasonCounts []Count[float64] `json:"season_counts"`
}

type countryAccumulator struct {
	kinds *counter[catalog.Kind]
	total int
}

// Summarize computes every statistic for view in a single pass.
func Summarize(view catalog.View) Summary {
	kinds := newCounter[catalog.Kind]()
	ratings := newCounter[string]()
	genres := newCounter[string]()
	countries := newCounter[string]()
	decades := newCounter[int]()
	years := newCounter[int]()
	months := newCounter[int]()
	quarters := newCounter[int]()
	tiers := newCounter[catalog.Tier]()
	seasonCounts := newCounter[float64]()
	kindYears := newCounter[yearKindKey]()
	perCountry := map[string]*countryAccumulator{}

	var scores scoreAccumulator
	var minutes, seasons numberAccumulator

	for _, t := range view.All() {
		kinds.add(t.Kind)
		if t.Rating != nil {
			ratings.add(*t.Rating)
		}
		for _, g := range t.Genres {
			genres.add(g)
		}
		for _, c := range t.Countries {
			countries.add(c)
			acc := perCountry[c]
			if acc == nil {
				acc = &countryAccumulator{kinds: newCounter[catalog.Kind]()}
				perCountry[c] = acc
			}
			acc.kinds.add(t.Kind)
			acc.total += t.ContentScore
		}
		addOptional(decades, t.Decade)
		addOptional(years, t.YearAdded)
		addOptional(months, t.MonthAdded)
		addOptional(quarters, t.QuarterAdded)
		if t.YearAdded != nil {
			kindYears.add(yearKindKey{year: *t.YearAdded, kind: t.Kind})
		}
		tiers.add(t.QualityTier)
		scores.add(t.ContentScore)

		switch t.Kind {
		case catalog.KindMovie:
			if t.MovieMinutes != nil {
				minutes.add(*t.MovieMinutes)
			}
		case catalog.KindTVShow:
			if t.SeasonCount != nil {
				seasons.add(*t.SeasonCount)
				seasonCounts.add(*t.SeasonCount)
			}
		}
	}

	countryRanking := countries.byFrequency()
	return Summary{
		Titles:          view.Len(),
		Kinds:           kinds.byFrequency(),
		Ratings:         ratings.byFrequency(),
		Genres:          genres.byFrequency(),
		Countries:       countryRanking,
		Decades:         byKey(decades),
		YearsAdded:      byKey(years),
		MonthsAdded:     byKey(months),
		QuartersAdded:   byKey(quarters),
		Score:           scores.stats(),
		Tiers:           tierCounts(tiers),
		UniqueCountries: countries.len(),
		KindByYear:      kindByYear(kindYears),
		CountryDetail:   countryDetail(countryRanking, perCountry),
		MovieMinutes:    minutes.stats(),
		Seasons:         seasons.stats(),
		SeasonCounts:    byKey(seasonCounts),
	}
}

func addOptional(c *counter[int], v *int) {
	if v != nil {
		c.add(*v)
	}
}

// tierCounts lists every assignable tier in ascending order, including empty
// ones, followed by Unclassified when any title carries it.
func tierCounts(c *counter[catalog.Tier]) []Count[catalog.Tier] {
	out := make([]Count[catalog.Tier], 0, len(scoring.Tiers())+1)
	for _, tier := range scoring.Tiers() {
		n := 0
		if i, ok := c.index[tier]; ok {
			n = c.items[i].Count
		}
		out = append(out, Count[catalog.Tier]{Key: tier, Count: n})
	}
	if i, ok := c.index[catalog.TierUnclassified]; ok {
		out = append(out, c.items[i])
	}
	return out
}

type yearKindKey struct {
	year int
	kind catalog.Kind
}

func kindByYear(c *counter[yearKindKey]) []YearKind {
	out := make([]YearKind, 0, c.len())
	for _, item := range c.items {
		out = append(out, YearKind{Year: item.Key.year, Kind: item.Key.kind, Count: item.Count})
	}
	slices.SortStableFunc(out, func(a, b YearKind) int {
		if a.Year != b.Year {
			return a.Year - b.Year
		}
		return kindOrder(a.Kind) - kindOrder(b.Kind)
	})
	return out
}

func kindOrder(k catalog.Kind) int {
	if i := slices.Index(catalog.Kinds, k); i >= 0 {
		return i
	}
	return len(catalog.Kinds)
}

func countryDetail(ranking []Count[string], per map[string]*countryAccumulator) []CountryBreakdown {
	out := make([]CountryBreakdown, 0, len(ranking))
	for _, entry := range ranking {
		acc := per[entry.Key]
		out = append(out, CountryBreakdown{
			Country:   entry.Key,
			Titles:    entry.Count,
			Kinds:     acc.kinds.byFrequency(),
			MeanScore: float64(acc.total) / float64(entry.Count),
		})
	}
	return out
}

type scoreAccumulator struct {
	n, sum, min, max int
}

func (a *scoreAccumulator) add(score int) {
	if a.n == 0 || score < a.min {
		a.min = score
	}
	if a.n == 0 || score > a.max {
		a.max = score
	}
	a.n++
	a.sum += score
}

func (a *scoreAccumulator) stats() ScoreStats {
	if a.n == 0 {
		return ScoreStats{}
	}
	mean := float64(a.sum) / float64(a.n)
	lo, hi := a.min, a.max
	return ScoreStats{Mean: &mean, Min: &lo, Max: &hi}
}

type numberAccumulator struct {
	n             int
	sum, min, max float64
}

func (a *numberAccumulator) add(v float64) {
	if a.n == 0 || v < a.min {
		a.min = v
	}
	if a.n == 0 || v > a.max {
		a.max = v
	}
	a.n++
	a.sum += v
}

func (a *numberAccumulator) stats() NumberStats {
	if a.n == 0 {
		return NumberStats{}
	}
	mean := a.sum / float64(a.n)
	lo, hi := a.min, a.max
	return NumberStats{Count: a.n, Mean: &mean, Min: &lo, Max: &hi}
}
