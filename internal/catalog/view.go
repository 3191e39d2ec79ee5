package catalog

import (
	"iter"
	"time"
)

// View is an ordered subset of a Catalog. The zero value is an empty view.
type View struct {
	catalog *Catalog
	index   []int
}

// NewView builds a standalone view over titles, mainly for tests and callers
// that assemble subsets by hand.
func NewView(titles []Title) View {
	return New(titles, "", time.Time{}).All()
}

// Len returns the number of titles in the view.
func (v View) Len() int {
	return len(v.index)
}

// At returns the i-th title of the view.
func (v View) At(i int) Title {
	return v.catalog.titles[v.index[i]]
}

// Titles returns a copy of the view's titles in order.
func (v View) Titles() []Title {
	out := make([]Title, 0, len(v.index))
	for _, i := range v.index {
		out = append(out, v.catalog.titles[i])
	}
	return out
}

// All iterates the view in order.
func (v View) All() iter.Seq2[int, Title] {
	return func(yield func(int, Title) bool) {
		for n, i := range v.index {
			if !yield(n, v.catalog.titles[i]) {
				return
			}
		}
	}
}

// Catalog returns the catalog the view was selected from.
func (v View) Catalog() *Catalog {
	return v.catalog
}

// Narrow returns the subset of v for which keep returns true.
func (v View) Narrow(keep func(Title) bool) View {
	idx := make([]int, 0, len(v.index))
	for _, i := range v.index {
		if keep(v.catalog.titles[i]) {
			idx = append(idx, i)
		}
	}
	return View{catalog: v.catalog, index: idx}
}
