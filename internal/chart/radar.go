// Package chart renders the results dashboard charts as terminal text:
// a radar chart of competency percentages and a horizontal bar chart.
// Output is plain runes so screens can style it as a block.
package chart

import (
	"fmt"
	"math"
	"strings"

	"github.com/procureiq/procureiq/internal/competency"
)

// DefaultRadius is the radar axis length in grid rows.
const DefaultRadius = 8

// Radar renders points as a character-grid radar chart with the default
// radius. Each competency gets an axis from the center; its marker sits
// at Percent/100 of the axis length.
func Radar(points []competency.Point) string {
	return RadarWithRadius(points, DefaultRadius)
}

// RadarWithRadius renders a radar chart with the given axis length.
func RadarWithRadius(points []competency.Point, radius int) string {
	n := len(points)
	if n == 0 {
		return ""
	}
	if radius < 3 {
		radius = 3
	}

	labels := make([]string, n)
	margin := 0
	for i, p := range points {
		labels[i] = fmt.Sprintf("%s %.0f%%", p.Label, p.Percent)
		if len(labels[i]) > margin {
			margin = len(labels[i])
		}
	}
	margin += 2

	// Terminal cells are about twice as tall as wide, so the x axis is
	// stretched by a factor of two to keep the chart roughly circular.
	w := radius*4 + 1 + 2*margin
	h := radius*2 + 3
	cx, cy := w/2, h/2

	grid := make([][]rune, h)
	for y := range grid {
		grid[y] = make([]rune, w)
		for x := range grid[y] {
			grid[y][x] = ' '
		}
	}
	set := func(x, y int, r rune) {
		if x >= 0 && x < w && y >= 0 && y < h {
			grid[y][x] = r
		}
	}

	type pos struct{ x, y float64 }
	markers := make([]pos, n)

	for i, p := range points {
		// First axis points straight up, the rest go clockwise.
		angle := -math.Pi/2 + 2*math.Pi*float64(i)/float64(n)
		dx, dy := math.Cos(angle), math.Sin(angle)

		for r := 1; r <= radius; r++ {
			set(cx+round(dx*float64(r)*2), cy+round(dy*float64(r)), '·')
		}

		dist := p.Percent / 100 * float64(radius)
		markers[i] = pos{float64(cx) + dx*dist*2, float64(cy) + dy*dist}

		drawLabel(grid, labels[i], cx, cy, dx, dy, radius)
	}

	// Outline connecting adjacent markers, drawn under the markers.
	if n > 2 {
		for i := range markers {
			a, b := markers[i], markers[(i+1)%n]
			steps := int(math.Max(math.Abs(b.x-a.x), math.Abs(b.y-a.y))) * 2
			for s := 1; s < steps; s++ {
				t := float64(s) / float64(steps)
				set(round(a.x+(b.x-a.x)*t), round(a.y+(b.y-a.y)*t), '•')
			}
		}
	}

	for i, p := range points {
		if p.Percent/100*float64(radius) > 0 {
			set(round(markers[i].x), round(markers[i].y), '●')
		}
	}
	set(cx, cy, '+')

	var b strings.Builder
	for _, row := range grid {
		line := strings.TrimRight(string(row), " ")
		if line == "" {
			continue
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

// drawLabel writes a label just past the end of an axis, aligned away
// from the chart so it doesn't overlap the grid.
func drawLabel(grid [][]rune, label string, cx, cy int, dx, dy float64, radius int) {
	x := cx + round(dx*float64(radius+1)*2)
	y := cy + round(dy*float64(radius))
	switch {
	case dy < -0.3:
		y--
	case dy > 0.3:
		y++
	}

	runes := []rune(label)
	if dx < -0.1 {
		x -= len(runes) - 1
	} else if dx >= -0.1 && dx <= 0.1 {
		x -= len(runes) / 2
	}
	for i, r := range runes {
		xi := x + i
		if y >= 0 && y < len(grid) && xi >= 0 && xi < len(grid[y]) {
			grid[y][xi] = r
		}
	}
}

func round(f float64) int {
	return int(math.Round(f))
}
