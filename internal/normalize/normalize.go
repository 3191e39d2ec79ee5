package normalize

import (
	"log/slog"
	"sort"
	"strings"

	"marquee/internal/catalog"
	"marquee/internal/logging"
)

// Row is one raw source record keyed by source column name. Missing keys and
// blank values are both treated as null.
type Row map[string]string

// Record is a row mapped onto the canonical schema. String fields other than
// Kind and Title are nil when the source did not provide a value.
type Record struct {
	Kind        catalog.Kind
	KindLabel   string
	Title       string
	ReleaseYear *string
	Rating      *string
	Duration    *string
	Country     *string
	Genre       *string
	DateAdded   *string
	Director    *string
}

// Normalizer resolves source columns through an alias table.
type Normalizer struct {
	aliases []Alias
	logger  *slog.Logger
}

// New creates a Normalizer. A nil aliases slice selects DefaultAliases.
func New(aliases []Alias, logger *slog.Logger) *Normalizer {
	if aliases == nil {
		aliases = DefaultAliases
	}
	return &Normalizer{
		aliases: aliases,
		logger:  logging.NewComponentLogger(logger, "normalize"),
	}
}

// CanonicalColumn trims, lowercases and replaces spaces with underscores.
func CanonicalColumn(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "_")
}

// Normalize maps every row onto the canonical schema. It never fails; values
// that cannot be resolved become nil.
func (n *Normalizer) Normalize(rows []Row) []Record {
	out := make([]Record, 0, len(rows))
	unmapped := map[string]int{}
	for _, row := range rows {
		rec := n.Record(row)
		if rec.Kind == catalog.KindUnknown && rec.KindLabel != string(catalog.KindUnknown) {
			unmapped[rec.KindLabel]++
		}
		out = append(out, rec)
	}
	if len(unmapped) > 0 {
		labels := make([]string, 0, len(unmapped))
		for label := range unmapped {
			labels = append(labels, label)
		}
		sort.Strings(labels)
		n.logger.Debug("unrecognized content types folded to Unknown",
			logging.Int("label_count", len(labels)),
			logging.String("labels", strings.Join(labels, ", ")))
	}
	return out
}

// Record maps a single row.
func (n *Normalizer) Record(row Row) Record {
	values := canonicalRow(row)
	resolved := make(map[Field]*string, len(n.aliases))
	for _, alias := range n.aliases {
		for _, column := range alias.Columns {
			if v, ok := values[column]; ok {
				resolved[alias.Field] = v
				break
			}
		}
	}

	rec := Record{
		ReleaseYear: resolved[FieldReleaseYear],
		Rating:      resolved[FieldRating],
		Duration:    resolved[FieldDuration],
		Country:     resolved[FieldCountry],
		Genre:       resolved[FieldGenre],
		DateAdded:   resolved[FieldDateAdded],
		Director:    resolved[FieldDirector],
	}
	if title := resolved[FieldTitle]; title != nil {
		rec.Title = *title
	}
	rec.KindLabel = string(catalog.KindUnknown)
	if label := resolved[FieldKind]; label != nil {
		rec.KindLabel = *label
	}
	rec.Kind, _ = FoldKind(rec.KindLabel)
	return rec
}

// canonicalRow canonicalizes column names. When two source columns collapse to
// the same canonical name, the lexically first source column wins.
func canonicalRow(row Row) map[string]*string {
	keys := make([]string, 0, len(row))
	for k := range row {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make(map[string]*string, len(row))
	for _, k := range keys {
		name := CanonicalColumn(k)
		if _, seen := out[name]; seen {
			continue
		}
		out[name] = nullable(row[k])
	}
	return out
}

func nullable(value string) *string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
