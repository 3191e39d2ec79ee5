package titlematch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marquee/internal/titlematch"
)

var titles = []string{"Stranger Things", "The Crown", "Narcos", "Strange Days", "the crown", "  ", "Crown Jewels"}

func TestNewSkipsBlankAndDuplicateTitles(t *testing.T) {
	idx := titlematch.New(titles)
	assert.Equal(t, 5, idx.Len())
}

func TestSuggestRanksTypoMatchFirst(t *testing.T) {
	idx := titlematch.New(titles)

	got := idx.Suggest("Stranger Thngs", 3)
	require.NotEmpty(t, got)
	assert.Equal(t, "Stranger Things", got[0].Title)
	assert.False(t, got[0].Substring)
	assert.GreaterOrEqual(t, got[0].Similarity, titlematch.MinSimilarity)
}

func TestSuggestPutsSubstringHitsFirst(t *testing.T) {
	idx := titlematch.New(titles)

	got := idx.Suggest("CROWN", 5)
	require.GreaterOrEqual(t, len(got), 2)
	assert.Equal(t, "The Crown", got[0].Title)
	assert.Equal(t, "Crown Jewels", got[1].Title)
	assert.True(t, got[0].Substring)
	assert.True(t, got[1].Substring)
}

func TestSuggestLimitAndNoMatch(t *testing.T) {
	idx := titlematch.New(titles)

	assert.Len(t, idx.Suggest("crown", 1), 1)
	assert.Empty(t, idx.Suggest("zzzz", 5))
	assert.Empty(t, idx.Suggest("", 5))
	assert.Empty(t, idx.Suggest("crown", 0))
}
