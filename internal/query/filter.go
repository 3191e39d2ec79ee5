package query

import (
	"strings"

	"marquee/internal/catalog"
	"marquee/internal/normalize"
	"marquee/internal/scoring"
)

// Predicate tests one title.
type Predicate func(catalog.Title) bool

// Filter returns the titles of cat matching spec, in catalog order.
func Filter(cat *catalog.Catalog, spec FilterSpec) catalog.View {
	return cat.Select(Compile(spec))
}

// FilterView narrows an existing view by spec.
func FilterView(view catalog.View, spec FilterSpec) catalog.View {
	return view.Narrow(Compile(spec))
}

// Compile turns spec into a single predicate that ANDs every active
// dimension.
func Compile(spec FilterSpec) Predicate {
	preds := Predicates(spec)
	return func(t catalog.Title) bool {
		for _, p := range preds {
			if !p(t) {
				return false
			}
		}
		return true
	}
}

// Predicates returns one predicate per active dimension.
func Predicates(spec FilterSpec) []Predicate {
	var preds []Predicate
	if p := kindPredicate(spec.Kinds); p != nil {
		preds = append(preds, p)
	}
	if spec.YearRange != nil {
		preds = append(preds, yearPredicate(*spec.YearRange))
	}
	if p := tierPredicate(spec.QualityTier); p != nil {
		preds = append(preds, p)
	}
	if set := selection(spec.Ratings); set != nil {
		preds = append(preds, func(t catalog.Title) bool {
			if t.Rating == nil {
				return false
			}
			_, ok := set[*t.Rating]
			return ok
		})
	}
	if set := selection(spec.Genres); set != nil {
		preds = append(preds, func(t catalog.Title) bool { return t.HasGenre(set) })
	}
	if set := selection(spec.Countries); set != nil {
		preds = append(preds, func(t catalog.Title) bool { return t.HasCountry(set) })
	}
	return preds
}

// kindPredicate folds each selected label to its canonical kind. Labels that
// do not fold select nothing.
func kindPredicate(kinds []string) Predicate {
	set := map[catalog.Kind]struct{}{}
	active := false
	for _, label := range kinds {
		if strings.TrimSpace(label) == "" {
			continue
		}
		active = true
		if kind, ok := normalize.FoldKind(label); ok {
			set[kind] = struct{}{}
		}
	}
	if !active {
		return nil
	}
	return func(t catalog.Title) bool {
		_, ok := set[t.Kind]
		return ok
	}
}

func yearPredicate(r YearRange) Predicate {
	return func(t catalog.Title) bool {
		return t.ReleaseYear != nil && r.Contains(*t.ReleaseYear)
	}
}

// tierPredicate selects titles whose score lies in the tier's interval. An
// unknown tier name matches nothing.
func tierPredicate(name string) Predicate {
	if strings.TrimSpace(name) == "" {
		return nil
	}
	tier, ok := scoring.ParseTier(name)
	if !ok {
		return func(catalog.Title) bool { return false }
	}
	r, ok := scoring.TierRange(tier)
	if !ok {
		return func(catalog.Title) bool { return false }
	}
	return func(t catalog.Title) bool { return r.Contains(t.ContentScore) }
}

// selection builds a lookup set from values, ignoring blanks. It returns nil
// when nothing remains.
func selection(values []string) map[string]struct{} {
	var set map[string]struct{}
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if set == nil {
			set = make(map[string]struct{}, len(values))
		}
		set[v] = struct{}{}
	}
	return set
}
