package normalize

import (
	"strings"

	"golang.org/x/text/cases"

	"marquee/internal/catalog"
)

// kindSynonyms maps case-folded, whitespace-collapsed labels to canonical kinds.
var kindSynonyms = map[string]catalog.Kind{
	"movie":     catalog.KindMovie,
	"movies":    catalog.KindMovie,
	"film":      catalog.KindMovie,
	"tv show":   catalog.KindTVShow,
	"tv shows":  catalog.KindTVShow,
	"tvshow":    catalog.KindTVShow,
	"tv series": catalog.KindTVShow,
	"series":    catalog.KindTVShow,
	"tv":        catalog.KindTVShow,
	"unknown":   catalog.KindUnknown,
}

var folder = cases.Fold()

// FoldKind resolves a raw content type label to a canonical kind. Labels
// missing from the synonym table resolve to KindUnknown; ok reports whether
// the label was recognized.
func FoldKind(label string) (kind catalog.Kind, ok bool) {
	key := strings.Join(strings.Fields(folder.String(label)), " ")
	if key == "" {
		return catalog.KindUnknown, false
	}
	kind, ok = kindSynonyms[key]
	if !ok {
		return catalog.KindUnknown, false
	}
	return kind, true
}
