// Package chart maps bounded numeric series into pixel-space geometry
// for rendering, and tracks transient hover state against that
// geometry. Everything here is a pure function of its inputs.
package chart

import (
	"fmt"
	"math"
)

// Viewport is the fixed drawing configuration a series is mapped into.
type Viewport struct {
	Width   float64
	Height  float64
	Padding float64
}

// SeriesPoint pairs one plottable value with the source record it came
// from, so interaction layers can get back to the original datum.
type SeriesPoint struct {
	Value float64
	Datum any
}

// Point is one mapped coordinate. Datum carries the source record
// through unchanged.
type Point struct {
	X     float64
	Y     float64
	Datum any
}

// Tick is one axis guide line. Baseline marks the visually
// distinguished neutral tick (value zero, or the domain midpoint when
// zero falls outside the domain).
type Tick struct {
	Y        float64
	Value    float64
	Label    string
	Baseline bool
}

// Geometry is the renderable output for one series: mapped points,
// axis ticks, and whether a connecting line should be drawn. A
// single-point series renders the point with no line.
type Geometry struct {
	Points  []Point
	Ticks   []Tick
	HasLine bool
}

type mapConfig struct {
	tickStep  float64
	tickCount int
}

// MapOption adjusts tick generation.
type MapOption func(*mapConfig)

// WithTickStep emits one tick per step across the full domain
// (11 ticks for a [-5,5] domain at step 1).
func WithTickStep(step float64) MapOption {
	return func(c *mapConfig) {
		if step > 0 {
			c.tickStep = step
			c.tickCount = 0
		}
	}
}

// WithTickCount emits a fixed number of evenly spaced ticks, for charts
// that want a coarser axis than per-unit steps.
func WithTickCount(count int) MapOption {
	return func(c *mapConfig) {
		if count > 1 {
			c.tickCount = count
			c.tickStep = 0
		}
	}
}

// MapSeries translates a bounded series into plot geometry. Index
// position is the x ordinal; values outside [domainMin, domainMax] are
// clamped before mapping. Pixel-space y grows downward, so the value
// scale is inverted.
func MapSeries(series []SeriesPoint, domainMin, domainMax float64, vp Viewport, opts ...MapOption) Geometry {
	cfg := mapConfig{tickStep: 1}
	for _, opt := range opts {
		opt(&cfg)
	}

	geo := Geometry{
		Points:  make([]Point, 0, len(series)),
		Ticks:   ticks(domainMin, domainMax, vp, cfg),
		HasLine: len(series) > 1,
	}

	// A single-point series has no horizontal extent; treating the
	// denominator as 1 parks the point at the left edge of the plot
	// area instead of dividing by zero.
	span := float64(len(series) - 1)
	if span < 1 {
		span = 1
	}

	for i, sp := range series {
		geo.Points = append(geo.Points, Point{
			X:     vp.Padding + (float64(i)/span)*(vp.Width-2*vp.Padding),
			Y:     mapValue(sp.Value, domainMin, domainMax, vp),
			Datum: sp.Datum,
		})
	}

	return geo
}

// mapValue maps one clamped value onto the inverted pixel y axis.
func mapValue(value, domainMin, domainMax float64, vp Viewport) float64 {
	v := Clamp(value, domainMin, domainMax)
	spread := domainMax - domainMin
	if spread == 0 {
		spread = 1
	}
	return vp.Height - vp.Padding - ((v-domainMin)/spread)*(vp.Height-2*vp.Padding)
}

// ticks generates axis guides across the full domain range.
func ticks(domainMin, domainMax float64, vp Viewport, cfg mapConfig) []Tick {
	if domainMax <= domainMin {
		return nil
	}

	baseline := 0.0
	if baseline < domainMin || baseline > domainMax {
		baseline = (domainMin + domainMax) / 2
	}

	var values []float64
	if cfg.tickCount > 1 {
		step := (domainMax - domainMin) / float64(cfg.tickCount-1)
		for i := 0; i < cfg.tickCount; i++ {
			values = append(values, domainMin+float64(i)*step)
		}
	} else {
		step := cfg.tickStep
		if step <= 0 {
			step = 1
		}
		for v := domainMin; v <= domainMax+step/1e9; v += step {
			values = append(values, v)
		}
	}

	out := make([]Tick, 0, len(values))
	for _, v := range values {
		out = append(out, Tick{
			Y:        mapValue(v, domainMin, domainMax, vp),
			Value:    v,
			Label:    formatTick(v),
			Baseline: math.Abs(v-baseline) < 1e-9,
		})
	}
	return out
}

func formatTick(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.1f", v)
}

// Clamp bounds v to [min, max].
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
