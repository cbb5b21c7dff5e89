package session

import (
	"time"

	"github.com/procureiq/procureiq/internal/competency"
	"github.com/procureiq/procureiq/internal/content"
	"github.com/procureiq/procureiq/internal/engine"
)

// Result is the outcome of a finished run, ready for the results screen.
type Result struct {
	RunID    string
	Quiz     *content.Quiz
	Total    int
	Correct  int
	Scores   map[string]float64
	Points   []competency.Point
	Missed   []engine.Missed
	Duration time.Duration
}

// Percent returns the overall score as a 0-100 percentage.
func (r *Result) Percent() float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.Correct) / float64(r.Total) * 100
}
