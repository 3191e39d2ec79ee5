package scoring

import (
	"math"

	"marquee/internal/catalog"
)

const (
	ageWeight      = 0.35
	agePenalty     = 1.5
	ageBase        = 100.0
	defaultRating  = 15
	MinScore       = 0
	MaxScore       = 100
	fitIdeal       = 40
	fitAcceptable  = 30
	fitOutOfBounds = 20
)

// ratingPoints is the rating component lookup, matched exactly.
var ratingPoints = map[string]float64{
	"TV-MA": 35,
	"TV-14": 30,
	"R":     30,
	"TV-PG": 25,
	"PG-13": 25,
	"PG":    20,
}

// Breakdown exposes each score component for display and debugging.
type Breakdown struct {
	Age    float64 `json:"age"`
	Format float64 `json:"format"`
	Rating float64 `json:"rating"`
	Total  float64 `json:"total"`
	Score  int     `json:"score"`
}

// Components computes the individual score components of t.
func Components(t catalog.Title) Breakdown {
	b := Breakdown{
		Age:    ageComponent(t.ContentAge),
		Format: formatComponent(t),
		Rating: ratingComponent(t.Rating),
	}
	b.Total = b.Age + b.Format + b.Rating
	b.Score = clamp(int(math.Trunc(b.Total)))
	return b
}

// Score returns the content score of t.
func Score(t catalog.Title) int {
	return Components(t).Score
}

// Apply returns t with ContentScore and QualityTier populated.
func Apply(t catalog.Title) catalog.Title {
	t.ContentScore = Score(t)
	t.QualityTier = TierFor(t.ContentScore)
	return t
}

func ageComponent(age *int) float64 {
	if age == nil {
		return 0
	}
	return math.Max(0, ageBase-float64(*age)*agePenalty) * ageWeight
}

func formatComponent(t catalog.Title) float64 {
	switch t.Kind {
	case catalog.KindMovie:
		if t.MovieMinutes == nil {
			return 0
		}
		return movieFit(*t.MovieMinutes)
	case catalog.KindTVShow:
		if t.SeasonCount == nil {
			return 0
		}
		return seasonFit(*t.SeasonCount)
	}
	return 0
}

func movieFit(m float64) float64 {
	switch {
	case m >= 90 && m <= 120:
		return fitIdeal
	case (m >= 75 && m < 90) || (m > 120 && m <= 150):
		return fitAcceptable
	default:
		return fitOutOfBounds
	}
}

func seasonFit(s float64) float64 {
	switch {
	case s >= 2 && s <= 4:
		return fitIdeal
	case s == 1 || (s >= 5 && s <= 6):
		return fitAcceptable
	default:
		return fitOutOfBounds
	}
}

func ratingComponent(rating *string) float64 {
	if rating == nil {
		return defaultRating
	}
	if points, ok := ratingPoints[*rating]; ok {
		return points
	}
	return defaultRating
}

func clamp(score int) int {
	if score < MinScore {
		return MinScore
	}
	if score > MaxScore {
		return MaxScore
	}
	return score
}
