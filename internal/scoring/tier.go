package scoring

import (
	"strings"

	"marquee/internal/catalog"
)

// Range is a score interval. The lower bound is exclusive unless LowInclusive
// is set; the upper bound is always inclusive.
type Range struct {
	Low          int
	High         int
	LowInclusive bool
}

// Contains reports whether score falls in r.
func (r Range) Contains(score int) bool {
	if score > r.High {
		return false
	}
	if r.LowInclusive {
		return score >= r.Low
	}
	return score > r.Low
}

// tierTable lists tiers in ascending order. The lowest interval is closed so a
// score of exactly 0 is Basic rather than Unclassified.
var tierTable = []struct {
	tier  catalog.Tier
	score Range
}{
	{catalog.TierBasic, Range{Low: 0, High: 40, LowInclusive: true}},
	{catalog.TierStandard, Range{Low: 40, High: 70}},
	{catalog.TierPremium, Range{Low: 70, High: 85}},
	{catalog.TierUltra, Range{Low: 85, High: 100}},
}

// Tiers lists the assignable tiers in ascending order.
func Tiers() []catalog.Tier {
	out := make([]catalog.Tier, 0, len(tierTable))
	for _, row := range tierTable {
		out = append(out, row.tier)
	}
	return out
}

// TierFor maps a score to its tier. Scores outside [0,100] are Unclassified.
func TierFor(score int) catalog.Tier {
	for _, row := range tierTable {
		if row.score.Contains(score) {
			return row.tier
		}
	}
	return catalog.TierUnclassified
}

// TierRange returns the score interval of tier.
func TierRange(tier catalog.Tier) (Range, bool) {
	for _, row := range tierTable {
		if row.tier == tier {
			return row.score, true
		}
	}
	return Range{}, false
}

// ParseTier resolves a tier name case-insensitively.
func ParseTier(name string) (catalog.Tier, bool) {
	name = strings.TrimSpace(name)
	for _, row := range tierTable {
		if strings.EqualFold(string(row.tier), name) {
			return row.tier, true
		}
	}
	return "", false
}
