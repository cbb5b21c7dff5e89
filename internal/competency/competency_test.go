package competency

import (
	"testing"

	"github.com/procureiq/procureiq/internal/content"
)

var catalog = []content.Skill{
	{Key: "a", Label: "Alpha"},
	{Key: "b", Label: "Beta"},
	{Key: "c", Label: "Gamma"},
}

func TestPointsNormalizesAgainstMax(t *testing.T) {
	scores := map[string]float64{"a": 4, "b": 2, "c": 0}
	points := Points(scores, catalog)

	if len(points) != 3 {
		t.Fatalf("got %d points, want 3", len(points))
	}
	if points[0].Percent != 100 {
		t.Errorf("a = %v%%, want 100", points[0].Percent)
	}
	if points[1].Percent != 50 {
		t.Errorf("b = %v%%, want 50", points[1].Percent)
	}
	if points[2].Percent != 0 {
		t.Errorf("c = %v%%, want 0", points[2].Percent)
	}
}

func TestPointsAllZero(t *testing.T) {
	points := Points(map[string]float64{"a": 0, "b": 0, "c": 0}, catalog)
	for _, p := range points {
		if p.Percent != 0 {
			t.Errorf("%s = %v%%, want 0", p.Key, p.Percent)
		}
	}
}

func TestPointsKeepCatalogOrder(t *testing.T) {
	points := Points(map[string]float64{"c": 9}, catalog)
	want := []string{"Alpha", "Beta", "Gamma"}
	for i, p := range points {
		if p.Label != want[i] {
			t.Errorf("position %d = %s, want %s", i, p.Label, want[i])
		}
	}
}

func TestWeakestFirst(t *testing.T) {
	points := Points(map[string]float64{"a": 4, "b": 1, "c": 3}, catalog)
	ordered := WeakestFirst(points)

	if ordered[0].Key != "b" || ordered[2].Key != "a" {
		t.Errorf("order = [%s %s %s], want [b c a]", ordered[0].Key, ordered[1].Key, ordered[2].Key)
	}
	// Input slice untouched.
	if points[0].Key != "a" {
		t.Error("WeakestFirst mutated its input")
	}
}
