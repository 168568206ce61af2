package chart

import (
	"math"
	"testing"
)

var testViewport = Viewport{Width: 600, Height: 300, Padding: 50}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestMapSeriesPowerExample(t *testing.T) {
	series := []SeriesPoint{
		{Value: 2},
		{Value: -1},
		{Value: 3},
	}

	geo := MapSeries(series, -5, 5, testViewport, WithTickStep(1))

	if len(geo.Points) != 3 {
		t.Fatalf("got %d points, want 3", len(geo.Points))
	}
	if !geo.HasLine {
		t.Error("a three-point series should have a connecting line")
	}

	wantX := []float64{50, 300, 550}
	for i, p := range geo.Points {
		if !almostEqual(p.X, wantX[i]) {
			t.Errorf("point %d: X = %v, want %v", i, p.X, wantX[i])
		}
	}

	// pixelX strictly increasing
	for i := 1; i < len(geo.Points); i++ {
		if geo.Points[i].X <= geo.Points[i-1].X {
			t.Errorf("pixelX not monotonically increasing at %d", i)
		}
	}

	// Higher score must land at a smaller pixelY: 3 < 2 < -1 in pixel
	// space.
	wantY := []float64{110, 170, 90}
	for i, p := range geo.Points {
		if !almostEqual(p.Y, wantY[i]) {
			t.Errorf("point %d: Y = %v, want %v", i, p.Y, wantY[i])
		}
	}
	if !(geo.Points[2].Y < geo.Points[0].Y && geo.Points[0].Y < geo.Points[1].Y) {
		t.Error("pixelY ordering does not invert score ordering")
	}
}

func TestMapSeriesSinglePoint(t *testing.T) {
	geo := MapSeries([]SeriesPoint{{Value: 0}}, -5, 5, testViewport)

	if len(geo.Points) != 1 {
		t.Fatalf("got %d points, want 1", len(geo.Points))
	}
	if geo.HasLine {
		t.Error("single-point series must not draw a line")
	}
	p := geo.Points[0]
	if math.IsNaN(p.X) || math.IsInf(p.X, 0) {
		t.Fatalf("division by zero leaked into X: %v", p.X)
	}
	if !almostEqual(p.X, 50) {
		t.Errorf("single point X = %v, want padding (50)", p.X)
	}
	if !almostEqual(p.Y, 150) {
		t.Errorf("score 0 on [-5,5]: Y = %v, want midline 150", p.Y)
	}
}

func TestMapSeriesEmpty(t *testing.T) {
	geo := MapSeries(nil, -5, 5, testViewport)
	if len(geo.Points) != 0 {
		t.Errorf("got %d points for empty series", len(geo.Points))
	}
	if geo.HasLine {
		t.Error("empty series must not draw a line")
	}
}

func TestMapSeriesClampsOutOfDomainValues(t *testing.T) {
	geo := MapSeries([]SeriesPoint{{Value: 40}, {Value: -40}}, -5, 5, testViewport)

	if !almostEqual(geo.Points[0].Y, 50) {
		t.Errorf("over-domain value: Y = %v, want top of plot area (50)", geo.Points[0].Y)
	}
	if !almostEqual(geo.Points[1].Y, 250) {
		t.Errorf("under-domain value: Y = %v, want bottom of plot area (250)", geo.Points[1].Y)
	}
}

func TestMapSeriesTicksPerUnit(t *testing.T) {
	geo := MapSeries([]SeriesPoint{{Value: 0}}, -5, 5, testViewport, WithTickStep(1))

	if len(geo.Ticks) != 11 {
		t.Fatalf("got %d ticks for [-5,5] at unit step, want 11", len(geo.Ticks))
	}

	baselines := 0
	for _, tick := range geo.Ticks {
		if tick.Baseline {
			baselines++
			if tick.Value != 0 {
				t.Errorf("baseline at value %v, want 0", tick.Value)
			}
			if !almostEqual(tick.Y, 150) {
				t.Errorf("baseline Y = %v, want 150", tick.Y)
			}
		}
	}
	if baselines != 1 {
		t.Errorf("got %d baseline ticks, want exactly 1", baselines)
	}

	if geo.Ticks[0].Label != "-5" || geo.Ticks[10].Label != "5" {
		t.Errorf("tick labels = %q..%q, want -5..5", geo.Ticks[0].Label, geo.Ticks[10].Label)
	}
}

func TestMapSeriesTickCount(t *testing.T) {
	geo := MapSeries([]SeriesPoint{{Value: 50}}, 0, 100, testViewport, WithTickCount(5))

	if len(geo.Ticks) != 5 {
		t.Fatalf("got %d ticks, want 5", len(geo.Ticks))
	}
	if geo.Ticks[0].Value != 0 || geo.Ticks[4].Value != 100 {
		t.Errorf("tick range %v..%v, want 0..100", geo.Ticks[0].Value, geo.Ticks[4].Value)
	}
}

func TestMapSeriesBaselineOutsideDomain(t *testing.T) {
	// Zero is outside [10,20]; the midpoint takes over as baseline.
	geo := MapSeries([]SeriesPoint{{Value: 15}}, 10, 20, testViewport, WithTickStep(5))

	found := false
	for _, tick := range geo.Ticks {
		if tick.Baseline {
			found = true
			if tick.Value != 15 {
				t.Errorf("baseline at %v, want domain midpoint 15", tick.Value)
			}
		}
	}
	if !found {
		t.Error("no baseline tick marked")
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name        string
		v, min, max float64
		want        float64
	}{
		{"inside", 3, -5, 5, 3},
		{"above", 9, -5, 5, 5},
		{"below", -9, -5, 5, -5},
		{"at bound", 5, -5, 5, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp(tt.v, tt.min, tt.max); got != tt.want {
				t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.v, tt.min, tt.max, got, tt.want)
			}
		})
	}
}
