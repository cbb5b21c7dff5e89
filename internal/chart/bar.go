package chart

import (
	"fmt"
	"strings"

	"github.com/procureiq/procureiq/internal/competency"
)

// DefaultBarWidth is the bar track length in cells.
const DefaultBarWidth = 30

// Bars renders one row per competency: padded label, filled track and
// the percentage. Rows follow the order of points.
func Bars(points []competency.Point, width int) string {
	if len(points) == 0 {
		return ""
	}
	if width < 4 {
		width = DefaultBarWidth
	}

	labelWidth := 0
	for _, p := range points {
		if len(p.Label) > labelWidth {
			labelWidth = len(p.Label)
		}
	}

	var b strings.Builder
	for _, p := range points {
		filled := int(p.Percent / 100 * float64(width))
		if filled > width {
			filled = width
		}
		if filled < 0 {
			filled = 0
		}
		fmt.Fprintf(&b, "%-*s  %s%s  %3.0f%%\n",
			labelWidth, p.Label,
			strings.Repeat("█", filled),
			strings.Repeat("░", width-filled),
			p.Percent)
	}
	return b.String()
}
