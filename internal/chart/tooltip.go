package chart

import (
	"fmt"
	"strings"
	"sync"
	"unicode"

	"github.com/vampirenirmal/textprism/internal/analysis"
)

// Tooltip is the detail card for one hovered point. Fields are derived
// from the point's original datum, never recomputed from the series.
type Tooltip struct {
	Index   int
	Label   string
	Score   float64
	Details []string
	Tactic  string
}

// TooltipModel holds the transient hover state for one chart. Exactly
// one tooltip is active at a time: hovering a new point replaces the
// prior one, and leaving clears it. There is no timed dismissal.
type TooltipModel struct {
	mu     sync.Mutex
	active *Tooltip
}

// NewTooltipModel creates an empty hover model.
func NewTooltipModel() *TooltipModel {
	return &TooltipModel{}
}

// OnHover activates the tooltip for the point at index within the
// geometry, replacing any prior tooltip.
func (m *TooltipModel) OnHover(geo Geometry, index int) error {
	if index < 0 || index >= len(geo.Points) {
		return fmt.Errorf("hover index %d out of range [0,%d)", index, len(geo.Points))
	}

	tip := describe(index, geo.Points[index].Datum)

	m.mu.Lock()
	m.active = &tip
	m.mu.Unlock()
	return nil
}

// OnLeave clears the active tooltip.
func (m *TooltipModel) OnLeave() {
	m.mu.Lock()
	m.active = nil
	m.mu.Unlock()
}

// Active returns a copy of the current tooltip, if any.
func (m *TooltipModel) Active() (Tooltip, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.active == nil {
		return Tooltip{}, false
	}
	return *m.active, true
}

// describe builds tooltip content from the hovered point's source
// record.
func describe(index int, datum any) Tooltip {
	switch d := datum.(type) {
	case analysis.DialogueTurn:
		tip := Tooltip{
			Index: index,
			Label: d.Speaker,
			Score: float64(d.PowerScore),
			Details: []string{
				fmt.Sprintf("words: %d", d.Metrics.WordCount),
				fmt.Sprintf("interruptions: %d", d.Metrics.Interruptions),
				fmt.Sprintf("hedge/intensifier: %.2f", d.Metrics.HedgeIntensifierRatio),
			},
		}
		if d.Metrics.IsQuestion {
			tip.Details = append(tip.Details, "question")
		}
		if d.Metrics.TopicChanged {
			tip.Details = append(tip.Details, "topic changed")
		}
		if d.Tactic != analysis.TacticNone {
			tip.Tactic = HumanizeTag(string(d.Tactic))
		}
		return tip

	case analysis.ReadabilityPoint:
		return Tooltip{
			Index: index,
			Label: fmt.Sprintf("segment %d", d.Segment),
			Score: d.Score,
		}

	default:
		return Tooltip{
			Index: index,
			Label: fmt.Sprintf("point %d", index),
		}
	}
}

// HumanizeTag renders an internal camelCase identifier as a readable
// label: split on case boundaries, each word capitalized.
// "weaponizedPoliteness" becomes "Weaponized Politeness".
func HumanizeTag(tag string) string {
	if tag == "" {
		return ""
	}

	var words []string
	var current []rune
	for _, r := range tag {
		if unicode.IsUpper(r) && len(current) > 0 {
			words = append(words, string(current))
			current = current[:0]
		}
		current = append(current, r)
	}
	if len(current) > 0 {
		words = append(words, string(current))
	}

	for i, w := range words {
		runes := []rune(w)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
