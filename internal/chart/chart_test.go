package chart

import (
	"strings"
	"testing"

	"github.com/procureiq/procureiq/internal/competency"
)

func testPoints() []competency.Point {
	return []competency.Point{
		{Key: "negotiation", Label: "Negotiation", Score: 3, Percent: 100},
		{Key: "cost_breakdown", Label: "Cost Breakdown", Score: 1.5, Percent: 50},
		{Key: "check_facts", Label: "Fact Checking", Score: 0, Percent: 0},
	}
}

func TestRadarEmpty(t *testing.T) {
	if got := Radar(nil); got != "" {
		t.Errorf("radar of no points = %q, want empty", got)
	}
}

func TestRadarContainsLabelsAndMarkers(t *testing.T) {
	got := Radar(testPoints())

	for _, want := range []string{"Negotiation 100%", "Cost Breakdown 50%", "Fact Checking 0%"} {
		if !strings.Contains(got, want) {
			t.Errorf("radar missing label %q:\n%s", want, got)
		}
	}
	if !strings.Contains(got, "+") {
		t.Error("radar missing center marker")
	}
	if !strings.Contains(got, "●") {
		t.Error("radar missing competency markers")
	}
	// Axis guides.
	if !strings.Contains(got, "·") {
		t.Error("radar missing axis guides")
	}
}

func TestRadarOutlineConnectsMarkers(t *testing.T) {
	got := Radar(testPoints())
	if !strings.Contains(got, "•") {
		t.Errorf("radar missing outline between markers:\n%s", got)
	}
}

func TestRadarZeroPercentHasNoMarkerOnAxis(t *testing.T) {
	points := []competency.Point{
		{Key: "a", Label: "A", Percent: 0},
		{Key: "b", Label: "B", Percent: 0},
		{Key: "c", Label: "C", Percent: 0},
	}
	got := Radar(points)
	if strings.Contains(got, "●") {
		t.Errorf("all-zero radar should have no markers:\n%s", got)
	}
}

func TestRadarTinyRadiusClamped(t *testing.T) {
	got := RadarWithRadius(testPoints(), 1)
	if got == "" {
		t.Fatal("expected non-empty chart")
	}
	if len(strings.Split(strings.TrimRight(got, "\n"), "\n")) < 3 {
		t.Errorf("clamped radius produced too small a chart:\n%s", got)
	}
}

func TestBars(t *testing.T) {
	got := Bars(testPoints(), 10)
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("lines = %d, want 3", len(lines))
	}

	if !strings.Contains(lines[0], strings.Repeat("█", 10)) {
		t.Errorf("100%% bar not fully filled: %q", lines[0])
	}
	if !strings.Contains(lines[0], "100%") {
		t.Errorf("missing percent: %q", lines[0])
	}
	if !strings.Contains(lines[1], "█████░░░░░") {
		t.Errorf("50%% bar wrong: %q", lines[1])
	}
	if !strings.Contains(lines[2], strings.Repeat("░", 10)) {
		t.Errorf("0%% bar should be empty track: %q", lines[2])
	}
	// Labels aligned to the widest.
	if !strings.HasPrefix(lines[0], "Negotiation ") {
		t.Errorf("label padding wrong: %q", lines[0])
	}
}

func TestBarsEmpty(t *testing.T) {
	if got := Bars(nil, 10); got != "" {
		t.Errorf("bars of no points = %q, want empty", got)
	}
}
