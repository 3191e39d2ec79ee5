package titlematch

import (
	"math"
	"slices"
	"strings"
)

// MinSimilarity is the lowest cosine similarity reported as a suggestion.
const MinSimilarity = 0.3

// Match is one suggested title.
type Match struct {
	Title      string
	Similarity float64
	Substring  bool
}

type entry struct {
	title  string
	folded string
	vec    *vector
}

// Index holds trigram vectors for a fixed set of titles.
type Index struct {
	entries []entry
	idf     map[string]float64
}

// New indexes titles. Blank titles and case-insensitive duplicates are
// skipped; the first spelling seen is kept.
func New(titles []string) *Index {
	seen := make(map[string]struct{}, len(titles))
	raw := make([]entry, 0, len(titles))
	docFreq := make(map[string]int)
	for _, title := range titles {
		folded := strings.ToLower(strings.TrimSpace(title))
		if folded == "" {
			continue
		}
		if _, dup := seen[folded]; dup {
			continue
		}
		seen[folded] = struct{}{}
		vec := newVector(title)
		if vec != nil {
			for term := range vec.terms {
				docFreq[term]++
			}
		}
		raw = append(raw, entry{title: strings.TrimSpace(title), folded: folded, vec: vec})
	}

	idx := &Index{idf: make(map[string]float64, len(docFreq))}
	n := float64(len(raw))
	for term, df := range docFreq {
		idx.idf[term] = math.Log((n+1)/(1+float64(df))) + 1
	}
	for _, e := range raw {
		e.vec = e.vec.weighted(idx.idf)
		idx.entries = append(idx.entries, e)
	}
	return idx
}

// Len reports the number of distinct titles indexed.
func (ix *Index) Len() int {
	return len(ix.entries)
}

// Suggest returns up to limit titles resembling query. Titles containing the
// query as a substring come first in index order, followed by the remaining
// titles at or above MinSimilarity, most similar first.
func (ix *Index) Suggest(query string, limit int) []Match {
	needle := strings.ToLower(strings.TrimSpace(query))
	if ix == nil || needle == "" || limit <= 0 {
		return nil
	}
	qvec := newVector(query).weighted(ix.idf)

	var substring, similar []Match
	for _, e := range ix.entries {
		sim := cosine(qvec, e.vec)
		switch {
		case strings.Contains(e.folded, needle):
			substring = append(substring, Match{Title: e.title, Similarity: sim, Substring: true})
		case sim >= MinSimilarity:
			similar = append(similar, Match{Title: e.title, Similarity: sim})
		}
	}
	slices.SortStableFunc(similar, func(a, b Match) int {
		switch {
		case a.Similarity > b.Similarity:
			return -1
		case a.Similarity < b.Similarity:
			return 1
		}
		return 0
	})

	out := append(substring, similar...)
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
