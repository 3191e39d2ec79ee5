package aggregate_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marquee/internal/aggregate"
	"marquee/internal/catalog"
)

func intPtr(i int) *int           { return &i }
func floatPtr(f float64) *float64 { return &f }
func strPtr(s string) *string     { return &s }

func sampleTitles() []catalog.Title {
	return []catalog.Title{
		{
			Title: "Alpha", Kind: catalog.KindMovie, Rating: strPtr("TV-MA"),
			Genres: []string{"Dramas", "Comedies"}, Countries: []string{"India"},
			Decade: intPtr(2010), YearAdded: intPtr(2020), MonthAdded: intPtr(1), QuarterAdded: intPtr(1),
			MovieMinutes: floatPtr(100), ContentScore: 80, QualityTier: catalog.TierPremium,
		},
		{
			Title: "Beta", Kind: catalog.KindTVShow, Rating: strPtr("TV-14"),
			Genres: []string{"Comedies"}, Countries: []string{"United States", "India"},
			Decade: intPtr(2000), YearAdded: intPtr(2019), MonthAdded: intPtr(7), QuarterAdded: intPtr(3),
			SeasonCount: floatPtr(3), ContentScore: 60, QualityTier: catalog.TierStandard,
		},
		{
			Title: "Gamma", Kind: catalog.KindTVShow, Rating: strPtr("TV-MA"),
			Genres: []string{"Dramas"}, Countries: []string{"United States"},
			Decade: intPtr(2010), YearAdded: intPtr(2020), MonthAdded: intPtr(7), QuarterAdded: intPtr(3),
			SeasonCount: floatPtr(1), ContentScore: 40, QualityTier: catalog.TierBasic,
		},
		{
			Title: "Delta", Kind: catalog.KindUnknown,
			Genres: []string{}, Countries: []string{},
			ContentScore: 15, QualityTier: catalog.TierBasic,
		},
	}
}

func TestSummarizeCounts(t *testing.T) {
	s := aggregate.Summarize(catalog.NewView(sampleTitles()))

	assert.Equal(t, 4, s.Titles)
	assert.Equal(t, []aggregate.Count[catalog.Kind]{
		{Key: catalog.KindTVShow, Count: 2},
		{Key: catalog.KindMovie, Count: 1},
		{Key: catalog.KindUnknown, Count: 1},
	}, s.Kinds)
	assert.Equal(t, []aggregate.Count[string]{
		{Key: "TV-MA", Count: 2},
		{Key: "TV-14", Count: 1},
	}, s.Ratings)
	assert.Equal(t, []aggregate.Count[int]{{Key: 2000, Count: 1}, {Key: 2010, Count: 2}}, s.Decades)
	assert.Equal(t, []aggregate.Count[int]{{Key: 2019, Count: 1}, {Key: 2020, Count: 2}}, s.YearsAdded)
	assert.Equal(t, []aggregate.Count[int]{{Key: 1, Count: 1}, {Key: 7, Count: 2}}, s.MonthsAdded)
	assert.Equal(t, []aggregate.Count[int]{{Key: 1, Count: 1}, {Key: 3, Count: 2}}, s.QuartersAdded)
	assert.Equal(t, 2, s.UniqueCountries)
}

func TestSummarizeTiesKeepFirstSeenOrder(t *testing.T) {
	s := aggregate.Summarize(catalog.NewView(sampleTitles()))

	// Dramas and Comedies both appear twice; Dramas was seen first.
	assert.Equal(t, []aggregate.Count[string]{
		{Key: "Dramas", Count: 2},
		{Key: "Comedies", Count: 2},
	}, s.Genres)
	assert.Equal(t, []aggregate.Count[string]{
		{Key: "India", Count: 2},
		{Key: "United States", Count: 2},
	}, s.Countries)
}

func TestSummarizeScoreStats(t *testing.T) {
	s := aggregate.Summarize(catalog.NewView(sampleTitles()))
	require.NotNil(t, s.Score.Mean)
	assert.InDelta(t, 48.75, *s.Score.Mean, 1e-9)
	assert.Equal(t, 15, *s.Score.Min)
	assert.Equal(t, 80, *s.Score.Max)

	assert.Equal(t, []aggregate.Count[catalog.Tier]{
		{Key: catalog.TierBasic, Count: 2},
		{Key: catalog.TierStandard, Count: 1},
		{Key: catalog.TierPremium, Count: 1},
		{Key: catalog.TierUltra, Count: 0},
	}, s.Tiers)
}

func TestSummarizeDurations(t *testing.T) {
	s := aggregate.Summarize(catalog.NewView(sampleTitles()))

	assert.Equal(t, 1, s.MovieMinutes.Count)
	assert.Equal(t, 100.0, *s.MovieMinutes.Mean)
	assert.Equal(t, 2, s.Seasons.Count)
	assert.Equal(t, 2.0, *s.Seasons.Mean)
	assert.Equal(t, 3.0, *s.Seasons.Max)
	assert.Equal(t, []aggregate.Count[float64]{{Key: 1, Count: 1}, {Key: 3, Count: 1}}, s.SeasonCounts)
}

func TestSummarizeGrowthAndCountryDetail(t *testing.T) {
	s := aggregate.Summarize(catalog.NewView(sampleTitles()))

	assert.Equal(t, []aggregate.YearKind{
		{Year: 2019, Kind: catalog.KindTVShow, Count: 1},
		{Year: 2020, Kind: catalog.KindMovie, Count: 1},
		{Year: 2020, Kind: catalog.KindTVShow, Count: 1},
	}, s.KindByYear)

	require.Len(t, s.CountryDetail, 2)
	india := s.CountryDetail[0]
	assert.Equal(t, "India", india.Country)
	assert.Equal(t, 2, india.Titles)
	assert.InDelta(t, 70.0, india.MeanScore, 1e-9)
	assert.Equal(t, []aggregate.Count[catalog.Kind]{
		{Key: catalog.KindMovie, Count: 1},
		{Key: catalog.KindTVShow, Count: 1},
	}, india.Kinds)
}

func TestSummarizeEmptyView(t *testing.T) {
	s := aggregate.Summarize(catalog.View{})

	assert.Equal(t, 0, s.Titles)
	assert.Nil(t, s.Score.Mean)
	assert.Nil(t, s.Score.Min)
	assert.Nil(t, s.Score.Max)
	assert.Nil(t, s.MovieMinutes.Mean)
	assert.Empty(t, s.Genres)
	assert.NotNil(t, s.Genres)
	assert.Len(t, s.Tiers, 4)
}

func TestTop(t *testing.T) {
	counts := []aggregate.Count[string]{{Key: "a", Count: 3}, {Key: "b", Count: 2}, {Key: "c", Count: 1}}
	assert.Equal(t, counts[:2], aggregate.Top(counts, 2))
	assert.Equal(t, counts, aggregate.Top(counts, 0))
	assert.Equal(t, counts, aggregate.Top(counts, 10))
}

func TestCompare(t *testing.T) {
	titles := sampleTitles()
	all := catalog.New(titles, "test", time.Time{})
	shows := all.Select(func(t catalog.Title) bool { return t.Kind == catalog.KindTVShow })

	kpi := aggregate.Compare(shows, all.All())
	assert.Equal(t, 2, kpi.Titles)
	assert.Equal(t, 4, kpi.BaselineTitles)
	assert.InDelta(t, 50.0, *kpi.ShareOfTotal, 1e-9)
	assert.Equal(t, 0, kpi.Movies)
	assert.InDelta(t, 100.0, *kpi.TVShare, 1e-9)
	// view mean 50 vs baseline 48.75
	assert.InDelta(t, (50-48.75)/48.75*100, *kpi.AvgScoreChange, 1e-9)
	assert.Equal(t, 2, kpi.Countries)
	assert.InDelta(t, 0.0, *kpi.CountriesChange, 1e-9)
}

func TestCompareEmptyBaseline(t *testing.T) {
	kpi := aggregate.Compare(catalog.View{}, catalog.View{})
	assert.Nil(t, kpi.ShareOfTotal)
	assert.Nil(t, kpi.MovieShare)
	assert.Nil(t, kpi.AvgScoreChange)
	assert.Nil(t, kpi.CountriesChange)
}
