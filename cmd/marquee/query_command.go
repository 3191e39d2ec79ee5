package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"marquee/internal/catalog"
	"marquee/internal/query"
)

type queryResult struct {
	Filter  query.FilterSpec `json:"filter"`
	Matched int              `json:"matched"`
	Titles  []catalog.Title  `json:"titles"`
}

func newQueryCommand(ctx *commandContext) *cobra.Command {
	var filters filterFlags
	var limit int
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "query",
		Short: "List titles matching a filter",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			spec, err := filters.spec(cmd, cfg)
			if err != nil {
				return err
			}
			entry, err := ctx.loadCatalog(cmd.Context())
			if err != nil {
				return err
			}

			view := query.Filter(entry.Catalog, spec)
			titles := view.Titles()
			if limit > 0 && len(titles) > limit {
				titles = titles[:limit]
			}

			if jsonOutput {
				return writeJSON(cmd, queryResult{Filter: spec, Matched: view.Len(), Titles: titles})
			}

			out := cmd.OutOrStdout()
			if view.Len() == 0 {
				fmt.Fprintln(out, "No titles match the filter")
				return nil
			}
			rows := make([][]string, 0, len(titles))
			for _, t := range titles {
				rows = append(rows, []string{
					t.Title,
					string(t.Kind),
					formatOptionalInt(t.ReleaseYear),
					formatOptionalString(t.Rating),
					formatDuration(t),
					fmt.Sprintf("%d", t.ContentScore),
					string(t.QualityTier),
				})
			}
			fmt.Fprintln(out, renderTable(out,
				[]string{"Title", "Kind", "Year", "Rating", "Duration", "Score", "Tier"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignRight, alignLeft, alignRight, alignRight, alignLeft}))
			if len(titles) < view.Len() {
				fmt.Fprintf(out, "Showing %s of %s matching titles\n", formatCount(len(titles)), formatCount(view.Len()))
			}
			printViewKPIs(out, view, entry)
			return nil
		},
	}

	filters.register(cmd)
	cmd.Flags().IntVarP(&limit, "limit", "n", 50, "Maximum titles to list (0 for all)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}
