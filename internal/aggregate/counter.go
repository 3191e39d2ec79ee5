package aggregate

import (
	"cmp"
	"slices"
)

// Count is one key and how often it occurred.
type Count[K comparable] struct {
	Key   K   `json:"key"`
	Count int `json:"count"`
}

// counter tallies keys in first-seen order.
type counter[K comparable] struct {
	index map[K]int
	items []Count[K]
}

func newCounter[K comparable]() *counter[K] {
	return &counter[K]{index: make(map[K]int)}
}

func (c *counter[K]) add(key K) {
	if i, ok := c.index[key]; ok {
		c.items[i].Count++
		return
	}
	c.index[key] = len(c.items)
	c.items = append(c.items, Count[K]{Key: key, Count: 1})
}

func (c *counter[K]) len() int { return len(c.items) }

// byFrequency returns the counts by descending frequency, first-seen order on
// ties.
func (c *counter[K]) byFrequency() []Count[K] {
	out := slices.Clone(c.items)
	slices.SortStableFunc(out, func(a, b Count[K]) int {
		return cmp.Compare(b.Count, a.Count)
	})
	if out == nil {
		out = []Count[K]{}
	}
	return out
}

// byKey returns the counts ordered by key.
func byKey[K cmp.Ordered](c *counter[K]) []Count[K] {
	out := slices.Clone(c.items)
	slices.SortFunc(out, func(a, b Count[K]) int {
		return cmp.Compare(a.Key, b.Key)
	})
	if out == nil {
		out = []Count[K]{}
	}
	return out
}

// Top returns the first n entries of a frequency ranking. A non-positive n
// returns every entry.
func Top[K comparable](counts []Count[K], n int) []Count[K] {
	if n <= 0 || n >= len(counts) {
		return counts
	}
	return counts[:n]
}
