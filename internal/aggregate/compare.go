package aggregate

import "marquee/internal/catalog"

// KPI compares a view against a baseline, usually the whole catalog.
// Percentages are nil when their denominator is zero.
type KPI struct {
	Titles         int      `json:"titles"`
	BaselineTitles int      `json:"baseline_titles"`
	ShareOfTotal   *float64 `json:"share_of_total"`

	Movies     int      `json:"movies"`
	MovieShare *float64 `json:"movie_share"`
	TVShows    int      `json:"tv_shows"`
	TVShare    *float64 `json:"tv_share"`

	AvgScore         *float64 `json:"avg_score"`
	BaselineAvgScore *float64 `json:"baseline_avg_score"`
	AvgScoreChange   *float64 `json:"avg_score_change"`

	Countries         int      `json:"countries"`
	BaselineCountries int      `json:"baseline_countries"`
	CountriesChange   *float64 `json:"countries_change"`
}

// Compare computes the headline indicators of view relative to baseline.
func Compare(view, baseline catalog.View) KPI {
	v := Summarize(view)
	b := Summarize(baseline)

	kpi := KPI{
		Titles:            v.Titles,
		BaselineTitles:    b.Titles,
		ShareOfTotal:      percent(float64(v.Titles), float64(b.Titles)),
		Movies:            kindCount(v.Kinds, catalog.KindMovie),
		TVShows:           kindCount(v.Kinds, catalog.KindTVShow),
		AvgScore:          v.Score.Mean,
		BaselineAvgScore:  b.Score.Mean,
		Countries:         v.UniqueCountries,
		BaselineCountries: b.UniqueCountries,
	}
	kpi.MovieShare = percent(float64(kpi.Movies), float64(v.Titles))
	kpi.TVShare = percent(float64(kpi.TVShows), float64(v.Titles))
	if v.Score.Mean != nil && b.Score.Mean != nil {
		kpi.AvgScoreChange = change(*v.Score.Mean, *b.Score.Mean)
	}
	kpi.CountriesChange = change(float64(v.UniqueCountries), float64(b.UniqueCountries))
	return kpi
}

func kindCount(counts []Count[catalog.Kind], kind catalog.Kind) int {
	for _, c := range counts {
		if c.Key == kind {
			return c.Count
		}
	}
	return 0
}

func percent(part, whole float64) *float64 {
	if whole <= 0 {
		return nil
	}
	p := part / whole * 100
	return &p
}

func change(value, base float64) *float64 {
	if base <= 0 {
		return nil
	}
	c := (value - base) / base * 100
	return &c
}
