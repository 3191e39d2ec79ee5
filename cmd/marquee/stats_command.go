package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"marquee/internal/aggregate"
	"marquee/internal/catalog"
	"marquee/internal/enrich"
	"marquee/internal/query"
)

type statsResult struct {
	Filter  query.FilterSpec  `json:"filter"`
	KPI     aggregate.KPI     `json:"kpi"`
	Summary aggregate.Summary `json:"summary"`
}

func newStatsCommand(ctx *commandContext) *cobra.Command {
	var filters filterFlags
	var top int
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Summarize titles matching a filter",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			spec, err := filters.spec(cmd, cfg)
			if err != nil {
				return err
			}
			if top <= 0 {
				top = cfg.Query.TopN
			}
			entry, err := ctx.loadCatalog(cmd.Context())
			if err != nil {
				return err
			}

			view := query.Filter(entry.Catalog, spec)
			summary := aggregate.Summarize(view)
			if jsonOutput {
				return writeJSON(cmd, statsResult{
					Filter:  spec,
					KPI:     aggregate.Compare(view, entry.Catalog.All()),
					Summary: summary,
				})
			}

			out := cmd.OutOrStdout()
			printViewKPIs(out, view, entry)
			if view.Len() == 0 {
				return nil
			}
			printSummary(out, summary, top)
			return nil
		},
	}

	filters.register(cmd)
	cmd.Flags().IntVarP(&top, "top", "t", 0, "Entries per ranking (defaults to query.top_n)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

func printSummary(out io.Writer, s aggregate.Summary, top int) {
	countAligns := []columnAlignment{alignLeft, alignRight}

	section(out, "Content types")
	fmt.Fprintln(out, renderTable(out, []string{"Kind", "Titles"}, countRows(s.Kinds, kindLabel), countAligns))

	section(out, "Quality")
	scoreRows := [][]string{
		{"Mean", formatOptionalFloat(s.Score.Mean, 1)},
		{"Min", formatOptionalInt(s.Score.Min)},
		{"Max", formatOptionalInt(s.Score.Max)},
	}
	fmt.Fprintln(out, renderTable(out, []string{"Score", "Value"}, scoreRows, countAligns))
	fmt.Fprintln(out, renderTable(out, []string{"Tier", "Titles"}, countRows(s.Tiers, tierLabel), countAligns))

	section(out, "Ratings (top 10)")
	fmt.Fprintln(out, renderTable(out, []string{"Rating", "Titles"}, countRows(aggregate.Top(s.Ratings, 10), identity), countAligns))

	section(out, fmt.Sprintf("Genres (top %d)", top))
	fmt.Fprintln(out, renderTable(out, []string{"Genre", "Titles"}, countRows(aggregate.Top(s.Genres, top), identity), countAligns))

	section(out, fmt.Sprintf("Countries (top %d of %s)", top, formatCount(s.UniqueCountries)))
	countryRows := make([][]string, 0, top)
	for _, c := range firstN(s.CountryDetail, top) {
		countryRows = append(countryRows, []string{
			c.Country,
			formatCount(c.Titles),
			formatCount(kindCount(c.Kinds, catalog.KindMovie)),
			formatCount(kindCount(c.Kinds, catalog.KindTVShow)),
			strconv.FormatFloat(c.MeanScore, 'f', 1, 64),
		})
	}
	fmt.Fprintln(out, renderTable(out,
		[]string{"Country", "Titles", "Movies", "TV shows", "Avg score"},
		countryRows,
		[]columnAlignment{alignLeft, alignRight, alignRight, alignRight, alignRight}))

	section(out, "Release decades")
	fmt.Fprintln(out, renderTable(out, []string{"Decade", "Titles"}, countRows(s.Decades, decadeLabel), countAligns))

	section(out, "Additions")
	fmt.Fprintln(out, renderTable(out, []string{"Year", "Titles"}, countRows(s.YearsAdded, strconv.Itoa), countAligns))
	fmt.Fprintln(out, renderTable(out, []string{"Month", "Titles"}, countRows(s.MonthsAdded, monthLabel), countAligns))
	fmt.Fprintln(out, renderTable(out, []string{"Quarter", "Titles"}, countRows(s.QuartersAdded, quarterLabel), countAligns))

	if len(s.KindByYear) > 0 {
		growth := make([][]string, 0, len(s.KindByYear))
		for _, yk := range s.KindByYear {
			growth = append(growth, []string{strconv.Itoa(yk.Year), string(yk.Kind), formatCount(yk.Count)})
		}
		fmt.Fprintln(out, renderTable(out, []string{"Year", "Kind", "Added"}, growth,
			[]columnAlignment{alignLeft, alignLeft, alignRight}))
	}

	section(out, "Durations")
	durationRows := [][]string{
		{"Movies with runtime", formatCount(s.MovieMinutes.Count)},
		{"Avg runtime (min)", formatOptionalFloat(s.MovieMinutes.Mean, 1)},
		{"Shortest (min)", formatOptionalFloat(s.MovieMinutes.Min, 0)},
		{"Longest (min)", formatOptionalFloat(s.MovieMinutes.Max, 0)},
		{"TV shows with seasons", formatCount(s.Seasons.Count)},
		{"Avg seasons", formatOptionalFloat(s.Seasons.Mean, 1)},
		{"Most seasons", formatOptionalFloat(s.Seasons.Max, 0)},
	}
	fmt.Fprintln(out, renderTable(out, []string{"Measure", "Value"}, durationRows, countAligns))
	if len(s.SeasonCounts) > 0 {
		fmt.Fprintln(out, renderTable(out, []string{"Seasons", "TV shows"}, countRows(s.SeasonCounts, seasonLabel), countAligns))
	}
}

func section(out io.Writer, title string) {
	fmt.Fprintf(out, "\n%s\n", title)
}

func countRows[K comparable](counts []aggregate.Count[K], label func(K) string) [][]string {
	rows := make([][]string, 0, len(counts))
	for _, c := range counts {
		rows = append(rows, []string{label(c.Key), formatCount(c.Count)})
	}
	return rows
}

func kindCount(counts []aggregate.Count[catalog.Kind], kind catalog.Kind) int {
	for _, c := range counts {
		if c.Key == kind {
			return c.Count
		}
	}
	return 0
}

func identity(s string) string        { return s }
func kindLabel(k catalog.Kind) string { return string(k) }
func tierLabel(t catalog.Tier) string { return string(t) }
func decadeLabel(d int) string        { return strconv.Itoa(d) + "s" }
func quarterLabel(q int) string       { return "Q" + strconv.Itoa(q) }
func seasonLabel(s float64) string    { return strconv.FormatFloat(s, 'f', -1, 64) }
func monthLabel(m int) string         { return enrich.MonthName(&m) }

func firstN[T any](items []T, n int) []T {
	if n <= 0 || n >= len(items) {
		return items
	}
	return items[:n]
}
