// Package competency turns raw per-skill scores into the normalized
// view shared by the results dashboard and the improvement advisor.
package competency

import "github.com/procureiq/procureiq/internal/content"

// Point is one competency's position on the results dashboard.
type Point struct {
	Key   string
	Label string
	Score float64
	// Percent is the score normalized to 0-100 against the strongest
	// competency in the run.
	Percent float64
}

// Points builds dashboard points in catalog order. Scores are normalized
// against the maximum skill score so the strongest competency reads 100;
// with no positive scores everything reads 0.
func Points(scores map[string]float64, catalog []content.Skill) []Point {
	maxScore := 0.0
	for _, v := range scores {
		if v > maxScore {
			maxScore = v
		}
	}

	points := make([]Point, 0, len(catalog))
	for _, s := range catalog {
		score := scores[s.Key]
		percent := 0.0
		if maxScore > 0 {
			percent = score / maxScore * 100
		}
		points = append(points, Point{
			Key:     s.Key,
			Label:   s.Label,
			Score:   score,
			Percent: percent,
		})
	}
	return points
}

// WeakestFirst returns a copy of points ordered weakest to strongest,
// used to focus improvement suggestions.
func WeakestFirst(points []Point) []Point {
	out := make([]Point, len(points))
	copy(out, points)
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].Percent < out[j-1].Percent; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}
