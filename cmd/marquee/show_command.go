package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"marquee/internal/catalog"
	"marquee/internal/scoring"
	"marquee/internal/titlematch"
)

type showResult struct {
	Title     catalog.Title     `json:"title"`
	Breakdown scoring.Breakdown `json:"score_breakdown"`
}

const maxSuggestions = 5

func newShowCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "show <title>",
		Short: "Show one title with its score breakdown",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.TrimSpace(strings.Join(args, " "))
			entry, err := ctx.loadCatalog(cmd.Context())
			if err != nil {
				return err
			}

			exact := entry.Catalog.Select(func(t catalog.Title) bool {
				return strings.EqualFold(strings.TrimSpace(t.Title), name)
			})
			if exact.Len() == 0 {
				return notFoundError(entry.Catalog, name)
			}

			results := make([]showResult, 0, exact.Len())
			for _, t := range exact.All() {
				results = append(results, showResult{Title: t, Breakdown: scoring.Components(t)})
			}
			if jsonOutput {
				return writeJSON(cmd, results)
			}

			out := cmd.OutOrStdout()
			for i, r := range results {
				if i > 0 {
					fmt.Fprintln(out)
				}
				printTitle(out, r)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

func notFoundError(cat *catalog.Catalog, name string) error {
	names := make([]string, 0, cat.Len())
	for _, t := range cat.Titles() {
		names = append(names, t.Title)
	}
	matches := titlematch.New(names).Suggest(name, maxSuggestions)
	if len(matches) == 0 {
		return fmt.Errorf("title %q not found", name)
	}
	suggestions := make([]string, 0, len(matches))
	for _, m := range matches {
		suggestions = append(suggestions, strconv.Quote(m.Title))
	}
	return fmt.Errorf("title %q not found; did you mean %s?", name, strings.Join(suggestions, ", "))
}

func printTitle(out io.Writer, r showResult) {
	t := r.Title
	kind := string(t.Kind)
	if t.KindLabel != "" && t.KindLabel != kind {
		kind = fmt.Sprintf("%s (%s)", kind, t.KindLabel)
	}
	added := placeholder
	if t.DateAdded != nil {
		added = t.DateAdded.Format("January 2, 2006")
		if t.QuarterAdded != nil {
			added += fmt.Sprintf(" (Q%d)", *t.QuarterAdded)
		}
	}

	details := [][]string{
		{"Title", t.Title},
		{"Kind", kind},
		{"Director", formatOptionalString(t.Director)},
		{"Released", formatOptionalInt(t.ReleaseYear)},
		{"Decade", formatOptionalInt(t.Decade)},
		{"Content age", formatOptionalInt(t.ContentAge)},
		{"Rating", formatOptionalString(t.Rating)},
		{"Duration", formatDuration(t)},
		{"Countries", joinOrPlaceholder(t.Countries)},
		{"Genres", joinOrPlaceholder(t.Genres)},
		{"Added", added},
		{"Score", fmt.Sprintf("%d/100 (%s)", t.ContentScore, t.QualityTier)},
	}
	fmt.Fprintln(out, renderTable(out, []string{"Field", "Value"}, details, nil))

	b := r.Breakdown
	breakdown := [][]string{
		{"Age", formatPoints(b.Age)},
		{"Format fit", formatPoints(b.Format)},
		{"Rating", formatPoints(b.Rating)},
		{"Total", formatPoints(b.Total)},
		{"Score", strconv.Itoa(b.Score)},
	}
	fmt.Fprintln(out, renderTable(out, []string{"Component", "Points"}, breakdown, []columnAlignment{alignLeft, alignRight}))
}

func formatPoints(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}
