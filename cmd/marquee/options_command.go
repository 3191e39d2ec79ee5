package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"marquee/internal/catalog"
	"marquee/internal/query"
)

func newOptionsCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "options",
		Short: "List the values each filter flag accepts",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			entry, err := ctx.loadCatalog(cmd.Context())
			if err != nil {
				return err
			}
			choices := query.Discover(entry.Catalog, cfg.Query.CountryOptions)
			if jsonOutput {
				return writeJSON(cmd, choices)
			}

			years := placeholder
			if choices.YearMin != nil {
				years = fmt.Sprintf("%d - %d", *choices.YearMin, *choices.YearMax)
			}
			rows := [][]string{
				{"--kind", joinKinds(choices.Kinds)},
				{"--year-min / --year-max", years},
				{"--tier", joinTiers(choices.Tiers)},
				{"--rating", joinOrPlaceholder(choices.Ratings)},
				{"--genre", fmt.Sprintf("%s genres (max %d per query)", formatCount(len(choices.Genres)), cfg.Query.MaxGenres)},
				{"--country", joinOrPlaceholder(choices.Countries)},
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(out, []string{"Flag", "Values"}, rows, nil))
			if len(choices.Genres) > 0 {
				fmt.Fprintf(out, "Genres: %s\n", strings.Join(choices.Genres, ", "))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

func joinKinds(kinds []catalog.Kind) string {
	parts := make([]string, 0, len(kinds))
	for _, k := range kinds {
		parts = append(parts, string(k))
	}
	return joinOrPlaceholder(parts)
}

func joinTiers(tiers []catalog.Tier) string {
	parts := make([]string, 0, len(tiers))
	for _, t := range tiers {
		parts = append(parts, string(t))
	}
	return joinOrPlaceholder(parts)
}
