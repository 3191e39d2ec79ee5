package catalog

import "time"

// Catalog is the immutable, ordered collection of titles built from a source.
type Catalog struct {
	titles  []Title
	source  string
	builtAt time.Time
}

// New wraps titles into a Catalog. The slice is copied so later changes by the
// caller are not observed.
func New(titles []Title, source string, builtAt time.Time) *Catalog {
	cp := make([]Title, len(titles))
	copy(cp, titles)
	return &Catalog{titles: cp, source: source, builtAt: builtAt}
}

// Len returns the number of titles.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.titles)
}

// At returns the title at index i.
func (c *Catalog) At(i int) Title {
	return c.titles[i]
}

// Titles returns a copy of every title in catalog order.
func (c *Catalog) Titles() []Title {
	if c == nil {
		return nil
	}
	out := make([]Title, len(c.titles))
	copy(out, c.titles)
	return out
}

// Source describes where the catalog was loaded from.
func (c *Catalog) Source() string {
	if c == nil {
		return ""
	}
	return c.source
}

// BuiltAt returns when the catalog was built.
func (c *Catalog) BuiltAt() time.Time {
	if c == nil {
		return time.Time{}
	}
	return c.builtAt
}

// All returns a View holding the entire catalog in its original order.
func (c *Catalog) All() View {
	if c == nil {
		return View{}
	}
	idx := make([]int, len(c.titles))
	for i := range idx {
		idx[i] = i
	}
	return View{catalog: c, index: idx}
}

// Select returns a View of the titles for which keep returns true, preserving
// catalog order.
func (c *Catalog) Select(keep func(Title) bool) View {
	if c == nil {
		return View{}
	}
	idx := make([]int, 0, len(c.titles))
	for i := range c.titles {
		if keep(c.titles[i]) {
			idx = append(idx, i)
		}
	}
	return View{catalog: c, index: idx}
}
