package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"marquee/internal/aggregate"
	"marquee/internal/catalog"
	"marquee/internal/catalogcache"
)

type loadReport struct {
	Source      string        `json:"source"`
	Fingerprint string        `json:"fingerprint"`
	Generation  string        `json:"generation"`
	ElapsedMs   int64         `json:"elapsed_ms"`
	KPI         aggregate.KPI `json:"kpi"`
}

func newLoadCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "load",
		Short: "Build the catalog and print its headline figures",
		RunE: func(cmd *cobra.Command, args []string) error {
			entry, err := ctx.loadCatalog(cmd.Context())
			if err != nil {
				return err
			}
			all := entry.Catalog.All()
			report := loadReport{
				Source:      entry.Source,
				Fingerprint: entry.Fingerprint,
				Generation:  entry.Generation,
				ElapsedMs:   entry.Elapsed.Milliseconds(),
				KPI:         aggregate.Compare(all, all),
			}
			if jsonOutput {
				return writeJSON(cmd, report)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Loaded %s titles from %s in %dms\n",
				formatCount(report.KPI.Titles), report.Source, report.ElapsedMs)
			fmt.Fprintf(out, "Fingerprint %s, generation %s\n", report.Fingerprint, report.Generation)
			printCatalogBadges(out, report.KPI)
			return nil
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

// printCatalogBadges prints the whole-catalog figures in one line.
func printCatalogBadges(out io.Writer, kpi aggregate.KPI) {
	fmt.Fprintf(out, "%s titles | %s movies | %s TV shows | %s countries | %s/100 avg score\n",
		formatCount(kpi.Titles),
		formatCount(kpi.Movies),
		formatCount(kpi.TVShows),
		formatCount(kpi.Countries),
		formatOptionalFloat(kpi.AvgScore, 0))
}

// printViewKPIs prints a filtered view's figures relative to the catalog.
func printViewKPIs(out io.Writer, view catalog.View, entry *catalogcache.Entry) {
	kpi := aggregate.Compare(view, entry.Catalog.All())
	rows := [][]string{
		{"Titles in view", formatCount(kpi.Titles), formatPercent(kpi.ShareOfTotal) + " of catalog"},
		{"Movies", formatCount(kpi.Movies), formatPercent(kpi.MovieShare) + " of view"},
		{"TV shows", formatCount(kpi.TVShows), formatPercent(kpi.TVShare) + " of view"},
		{"Avg quality score", formatOptionalFloat(kpi.AvgScore, 0) + "/100", formatChange(kpi.AvgScoreChange) + " vs catalog"},
		{"Countries", formatCount(kpi.Countries), formatChange(kpi.CountriesChange) + " vs catalog"},
	}
	fmt.Fprintln(out, renderTable(out, []string{"Metric", "Value", "Change"}, rows, []columnAlignment{alignLeft, alignRight, alignRight}))
}
