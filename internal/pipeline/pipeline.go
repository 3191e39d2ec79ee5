// Package pipeline turns raw source rows into an immutable catalog.
//
// Stages run in a fixed order: column normalization, list splitting,
// duration extraction, temporal enrichment and scoring. No stage fails on
// malformed values; each degrades the affected field to nil.
package pipeline

import (
	"log/slog"
	"strings"
	"time"

	"marquee/internal/catalog"
	"marquee/internal/enrich"
	"marquee/internal/extract"
	"marquee/internal/logging"
	"marquee/internal/normalize"
	"marquee/internal/scoring"
)

// DefaultListSeparator splits the raw country and genre fields.
const DefaultListSeparator = ","

// Options configures a Builder.
type Options struct {
	Aliases       []normalize.Alias
	ListSeparator string
	Now           func() time.Time
	Logger        *slog.Logger
}

// Builder runs the pipeline.
type Builder struct {
	normalizer *normalize.Normalizer
	enricher   *enrich.Enricher
	separator  string
	now        func() time.Time
	logger     *slog.Logger
}

// New creates a Builder.
func New(opts Options) *Builder {
	sep := opts.ListSeparator
	if sep == "" {
		sep = DefaultListSeparator
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Builder{
		normalizer: normalize.New(opts.Aliases, opts.Logger),
		enricher:   enrich.New(now),
		separator:  sep,
		now:        now,
		logger:     logging.NewComponentLogger(opts.Logger, "pipeline"),
	}
}

// Build processes rows into a catalog labelled with source.
func (b *Builder) Build(rows []normalize.Row, source string) *catalog.Catalog {
	start := b.now()
	records := b.normalizer.Normalize(rows)
	titles := make([]catalog.Title, 0, len(records))
	for _, rec := range records {
		titles = append(titles, b.Title(rec))
	}
	cat := catalog.New(titles, source, start)
	b.logger.Debug("catalog built",
		logging.String(logging.FieldSource, source),
		logging.Int("titles", cat.Len()),
		logging.Duration("elapsed", time.Since(start)))
	return cat
}

// Title runs the post-normalization stages for one record.
func (b *Builder) Title(rec normalize.Record) catalog.Title {
	t := catalog.Title{
		Title:       rec.Title,
		Kind:        rec.Kind,
		KindLabel:   rec.KindLabel,
		Rating:      rec.Rating,
		Director:    rec.Director,
		DurationRaw: rec.Duration,
		Countries:   SplitList(rec.Country, b.separator),
		Genres:      SplitList(rec.Genre, b.separator),
	}

	duration := extract.Duration(rec.Duration)
	t.MovieMinutes = duration.MovieMinutes
	t.SeasonCount = duration.SeasonCount

	temporal := b.enricher.Enrich(rec.DateAdded, rec.ReleaseYear)
	t.DateAdded = temporal.DateAdded
	t.YearAdded = temporal.YearAdded
	t.MonthAdded = temporal.MonthAdded
	t.QuarterAdded = temporal.QuarterAdded
	t.MonthName = temporal.MonthName
	t.ReleaseYear = temporal.ReleaseYear
	t.ContentAge = temporal.ContentAge
	t.Decade = temporal.Decade

	return scoring.Apply(t)
}

// SplitList splits raw on sep, trimming items and dropping empty ones. Order
// and duplicates are preserved. A nil input yields an empty, non-nil slice.
func SplitList(raw *string, sep string) []string {
	out := []string{}
	if raw == nil {
		return out
	}
	for _, item := range strings.Split(*raw, sep) {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
