package titlematch

import (
	"math"
	"strings"
	"unicode"
)

type vector struct {
	terms map[string]float64
	norm  float64
}

func newVector(text string) *vector {
	grams := trigrams(text)
	if len(grams) == 0 {
		return nil
	}
	counts := make(map[string]float64, len(grams))
	for _, g := range grams {
		counts[g]++
	}
	return finish(counts)
}

func finish(terms map[string]float64) *vector {
	var norm float64
	for _, w := range terms {
		norm += w * w
	}
	if norm == 0 {
		return nil
	}
	return &vector{terms: terms, norm: math.Sqrt(norm)}
}

// weighted applies idf weights. Terms missing from idf keep their count.
func (v *vector) weighted(idf map[string]float64) *vector {
	if v == nil || len(idf) == 0 {
		return v
	}
	out := make(map[string]float64, len(v.terms))
	for term, count := range v.terms {
		w := count
		if f, ok := idf[term]; ok {
			w *= f
		}
		if w != 0 {
			out[term] = w
		}
	}
	return finish(out)
}

func cosine(a, b *vector) float64 {
	if a == nil || b == nil {
		return 0
	}
	if len(b.terms) < len(a.terms) {
		a, b = b, a
	}
	var dot float64
	for term, w := range a.terms {
		dot += w * b.terms[term]
	}
	return dot / (a.norm * b.norm)
}

// words lowercases text and splits it on anything that is not a letter or digit.
func words(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// trigrams pads each word with spaces so short words still produce terms.
func trigrams(text string) []string {
	var out []string
	for _, w := range words(text) {
		runes := []rune(" " + w + " ")
		for i := 0; i+3 <= len(runes); i++ {
			out = append(out, string(runes[i:i+3]))
		}
	}
	return out
}
