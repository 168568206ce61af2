// Package report renders an aggregated analysis snapshot as terminal
// text. It is a read-only consumer of the coordinator's snapshots and
// of chart geometry; it never mutates source state.
package report

import (
	"fmt"
	"math"
	"strings"

	"github.com/vampirenirmal/textprism/internal/analysis"
	"github.com/vampirenirmal/textprism/internal/chart"
)

// panelOrder fixes the rendering order of provider panels.
var panelOrder = []analysis.ProviderID{
	analysis.ProviderColorPalette,
	analysis.ProviderLiteraryDevices,
	analysis.ProviderReadability,
	analysis.ProviderPowerBalance,
}

var panelTitles = map[analysis.ProviderID]string{
	analysis.ProviderColorPalette:    "Color Palette",
	analysis.ProviderLiteraryDevices: "Literary Devices",
	analysis.ProviderReadability:     "Readability Trajectory",
	analysis.ProviderPowerBalance:    "Dialogue Power Balance",
}

// Renderer turns snapshots into a plain-text report.
type Renderer struct {
	viewport         chart.Viewport
	readabilityTicks int
}

// New creates a renderer with the chart viewport shared by every
// chart-style panel.
func New(viewport chart.Viewport, readabilityTicks int) *Renderer {
	if readabilityTicks < 2 {
		readabilityTicks = 5
	}
	return &Renderer{
		viewport:         viewport,
		readabilityTicks: readabilityTicks,
	}
}

// Render produces the full report for one snapshot.
func (r *Renderer) Render(snap analysis.Snapshot) string {
	var b strings.Builder

	for _, id := range panelOrder {
		src, ok := snap[id]
		if !ok {
			continue
		}

		fmt.Fprintf(&b, "== %s ==\n", panelTitles[id])
		b.WriteString(r.renderPanel(src))
		b.WriteString("\n")
	}

	return b.String()
}

// renderPanel renders one source according to its state. An empty
// successful payload gets an explicit insufficient-text notice, which
// is a different outcome than an error.
func (r *Renderer) renderPanel(src analysis.SourceState) string {
	switch src.Status {
	case analysis.StatusIdle:
		return "not yet requested\n"
	case analysis.StatusLoading:
		return "analyzing...\n"
	case analysis.StatusError:
		return fmt.Sprintf("analysis failed: %s\n", src.Err)
	}

	if src.Payload == nil || src.Payload.Len() == 0 {
		return "not enough text to analyze\n"
	}

	switch payload := src.Payload.(type) {
	case analysis.Palette:
		return renderPalette(payload)
	case analysis.Devices:
		return renderDevices(payload)
	case analysis.ReadabilityCurve:
		return r.renderReadability(payload)
	case analysis.Dialogue:
		return r.renderPower(payload)
	default:
		return fmt.Sprintf("%d items\n", src.Payload.Len())
	}
}

func renderPalette(palette analysis.Palette) string {
	var b strings.Builder
	for _, s := range palette {
		bar := strings.Repeat("█", barWidth(s.Prominence, 24))
		fmt.Fprintf(&b, "%-8s %-20s %5.1f%% %s\n", s.Hex, s.Name, s.Prominence*100, bar)
	}
	return b.String()
}

func barWidth(prominence float64, max int) int {
	w := int(math.Round(prominence * float64(max)))
	if w < 1 {
		w = 1
	}
	if w > max {
		w = max
	}
	return w
}

func renderDevices(devices analysis.Devices) string {
	var b strings.Builder
	for _, d := range devices {
		fmt.Fprintf(&b, "[%s] %q\n    %s (paragraph %d)\n",
			chart.HumanizeTag(string(d.Type)), d.Snippet, d.Explanation, d.Position)
	}
	return b.String()
}

// renderReadability draws the curve as a sparkline with one rune per
// segment, plus the mean score.
func (r *Renderer) renderReadability(curve analysis.ReadabilityCurve) string {
	series := make([]chart.SeriesPoint, len(curve))
	total := 0.0
	for i, p := range curve {
		series[i] = chart.SeriesPoint{Value: p.Score, Datum: p}
		total += p.Score
	}

	geo := chart.MapSeries(series, 0, 100, r.viewport, chart.WithTickCount(r.readabilityTicks))

	var spark strings.Builder
	for _, p := range geo.Points {
		datum := p.Datum.(analysis.ReadabilityPoint)
		spark.WriteRune(scoreRune(datum.Score))
	}

	return fmt.Sprintf("%s\nsegments: %d  mean ease: %.1f\n",
		spark.String(), len(curve), total/float64(len(curve)))
}

// scoreRune scales a [0,100] reading-ease score to a block rune.
func scoreRune(score float64) rune {
	switch {
	case score < 12.5:
		return '▁'
	case score < 25:
		return '▂'
	case score < 37.5:
		return '▃'
	case score < 50:
		return '▄'
	case score < 62.5:
		return '▅'
	case score < 75:
		return '▆'
	case score < 87.5:
		return '▇'
	default:
		return '█'
	}
}

const (
	powerGridWidth  = 49
	powerGridHeight = 11
)

// renderPower rasterizes the mapped power-balance geometry onto a rune
// grid. The neutral baseline row is drawn solid; other tick rows are
// dotted.
func (r *Renderer) renderPower(dialogue analysis.Dialogue) string {
	series := make([]chart.SeriesPoint, len(dialogue))
	for i, turn := range dialogue {
		series[i] = chart.SeriesPoint{Value: float64(turn.PowerScore), Datum: turn}
	}

	geo := chart.MapSeries(series, -5, 5, r.viewport, chart.WithTickStep(1))

	grid := make([][]rune, powerGridHeight)
	for i := range grid {
		grid[i] = make([]rune, powerGridWidth)
		for j := range grid[i] {
			grid[i][j] = ' '
		}
	}

	labels := make([]string, powerGridHeight)
	for _, tick := range geo.Ticks {
		row := r.gridRow(tick.Y)
		fill := '·'
		if tick.Baseline {
			fill = '─'
		}
		for col := 0; col < powerGridWidth; col++ {
			grid[row][col] = fill
		}
		labels[row] = fmt.Sprintf("%3s", tick.Label)
	}

	cols := make([]int, len(geo.Points))
	rows := make([]int, len(geo.Points))
	for i, p := range geo.Points {
		cols[i] = r.gridCol(p.X)
		rows[i] = r.gridRow(p.Y)
	}

	// Connect consecutive points before placing markers so the
	// markers stay visible on top. No line for a single point.
	if geo.HasLine {
		for i := 1; i < len(cols); i++ {
			drawSegment(grid, cols[i-1], rows[i-1], cols[i], rows[i])
		}
	}
	for i := range cols {
		grid[rows[i]][cols[i]] = '●'
	}

	var b strings.Builder
	for row := 0; row < powerGridHeight; row++ {
		label := labels[row]
		if label == "" {
			label = "   "
		}
		fmt.Fprintf(&b, "%s %s\n", label, string(grid[row]))
	}

	for i, turn := range dialogue {
		tactic := ""
		if turn.Tactic != analysis.TacticNone {
			tactic = "  [" + chart.HumanizeTag(string(turn.Tactic)) + "]"
		}
		fmt.Fprintf(&b, "%2d. %-12s %+d%s\n", i+1, turn.Speaker, turn.PowerScore, tactic)
	}

	return b.String()
}

// gridCol maps a pixel x back onto the raster grid.
func (r *Renderer) gridCol(x float64) int {
	span := r.viewport.Width - 2*r.viewport.Padding
	if span <= 0 {
		return 0
	}
	col := int(math.Round((x - r.viewport.Padding) / span * float64(powerGridWidth-1)))
	return clampInt(col, 0, powerGridWidth-1)
}

// gridRow maps a pixel y back onto the raster grid.
func (r *Renderer) gridRow(y float64) int {
	span := r.viewport.Height - 2*r.viewport.Padding
	if span <= 0 {
		return 0
	}
	row := int(math.Round((y - r.viewport.Padding) / span * float64(powerGridHeight-1)))
	return clampInt(row, 0, powerGridHeight-1)
}

// drawSegment draws a coarse line between two grid cells, leaving
// existing markers alone.
func drawSegment(grid [][]rune, c0, r0, c1, r1 int) {
	steps := maxInt(absInt(c1-c0), absInt(r1-r0))
	if steps == 0 {
		return
	}
	for s := 1; s < steps; s++ {
		col := c0 + (c1-c0)*s/steps
		row := r0 + (r1-r0)*s/steps
		if grid[row][col] != '●' {
			grid[row][col] = '•'
		}
	}
}

func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
