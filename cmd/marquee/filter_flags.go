package main

import (
	"github.com/spf13/cobra"

	"marquee/internal/config"
	"marquee/internal/query"
)

// filterFlags collects FilterSpec dimensions from the command line.
type filterFlags struct {
	file      string
	kinds     []string
	yearMin   int
	yearMax   int
	tier      string
	ratings   []string
	genres    []string
	countries []string
}

func (f *filterFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVarP(&f.file, "file", "f", "", "YAML file holding the filter (flags refine it)")
	flags.StringSliceVar(&f.kinds, "kind", nil, "Content kind (movie, tv show, unknown); repeatable")
	flags.IntVar(&f.yearMin, "year-min", 0, "Earliest release year")
	flags.IntVar(&f.yearMax, "year-max", 0, "Latest release year")
	flags.StringVar(&f.tier, "tier", "", "Quality tier (basic, standard, premium, ultra)")
	flags.StringSliceVar(&f.ratings, "rating", nil, "Maturity rating; repeatable")
	flags.StringSliceVar(&f.genres, "genre", nil, "Genre, matches any; repeatable")
	flags.StringSliceVar(&f.countries, "country", nil, "Country, matches any; repeatable")
}

// spec builds the filter and checks it against the configured limits. Flag
// values replace the matching dimensions of a --file spec.
func (f *filterFlags) spec(cmd *cobra.Command, cfg *config.Config) (query.FilterSpec, error) {
	var spec query.FilterSpec
	if f.file != "" {
		loaded, err := query.LoadFile(f.file)
		if err != nil {
			return query.FilterSpec{}, err
		}
		spec = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("kind") {
		spec.Kinds = f.kinds
	}
	if flags.Changed("year-min") || flags.Changed("year-max") {
		r := query.YearRange{Min: f.yearMin, Max: f.yearMax}
		if spec.YearRange != nil {
			if !flags.Changed("year-min") {
				r.Min = spec.YearRange.Min
			}
			if !flags.Changed("year-max") {
				r.Max = spec.YearRange.Max
			}
		}
		if !flags.Changed("year-max") && spec.YearRange == nil {
			r.Max = maxYear
		}
		spec.YearRange = &r
	}
	if flags.Changed("tier") {
		spec.QualityTier = f.tier
	}
	if flags.Changed("rating") {
		spec.Ratings = f.ratings
	}
	if flags.Changed("genre") {
		spec.Genres = f.genres
	}
	if flags.Changed("country") {
		spec.Countries = f.countries
	}

	if err := query.Validate(spec, cfg.Query.MaxGenres); err != nil {
		return query.FilterSpec{}, err
	}
	return spec, nil
}

// maxYear bounds an open-ended --year-min.
const maxYear = 9999
