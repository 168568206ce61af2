package chart

import (
	"testing"

	"github.com/vampirenirmal/textprism/internal/analysis"
)

func dialogueGeometry() Geometry {
	turns := analysis.Dialogue{
		{
			Speaker:    "Marta",
			PowerScore: 2,
			Metrics:    analysis.TurnMetrics{WordCount: 24, IsQuestion: true},
		},
		{
			Speaker:    "Elias",
			PowerScore: -1,
			Metrics:    analysis.TurnMetrics{WordCount: 9, HedgeIntensifierRatio: 0.4},
		},
		{
			Speaker:    "Marta",
			PowerScore: 3,
			Metrics:    analysis.TurnMetrics{WordCount: 31, TopicChanged: true},
			Tactic:     analysis.TacticExchangeTermination,
		},
	}

	series := make([]SeriesPoint, len(turns))
	for i, turn := range turns {
		series[i] = SeriesPoint{Value: float64(turn.PowerScore), Datum: turn}
	}
	return MapSeries(series, -5, 5, testViewport, WithTickStep(1))
}

func TestTooltipDerivesFromDatum(t *testing.T) {
	geo := dialogueGeometry()
	model := NewTooltipModel()

	if err := model.OnHover(geo, 2); err != nil {
		t.Fatalf("hover: %v", err)
	}

	tip, ok := model.Active()
	if !ok {
		t.Fatal("no active tooltip after hover")
	}
	if tip.Index != 2 {
		t.Errorf("index = %d, want 2", tip.Index)
	}
	if tip.Label != "Marta" {
		t.Errorf("label = %q, want speaker name", tip.Label)
	}
	if tip.Score != 3 {
		t.Errorf("score = %v, want 3", tip.Score)
	}
	if tip.Tactic != "Exchange Termination" {
		t.Errorf("tactic = %q, want humanized tag", tip.Tactic)
	}
	if len(tip.Details) == 0 {
		t.Error("tooltip carries no detail lines")
	}
}

func TestTooltipReplacesPriorOnHover(t *testing.T) {
	geo := dialogueGeometry()
	model := NewTooltipModel()

	if err := model.OnHover(geo, 1); err != nil {
		t.Fatalf("first hover: %v", err)
	}
	if err := model.OnHover(geo, 0); err != nil {
		t.Fatalf("second hover: %v", err)
	}

	tip, ok := model.Active()
	if !ok {
		t.Fatal("no active tooltip")
	}
	if tip.Index != 0 || tip.Label != "Marta" {
		t.Errorf("got tooltip for index %d (%q), want the newer hover", tip.Index, tip.Label)
	}
}

func TestTooltipClearsOnLeave(t *testing.T) {
	geo := dialogueGeometry()
	model := NewTooltipModel()

	if err := model.OnHover(geo, 0); err != nil {
		t.Fatalf("hover: %v", err)
	}
	model.OnLeave()

	if _, ok := model.Active(); ok {
		t.Error("tooltip still active after leave")
	}
}

func TestTooltipRejectsOutOfRangeIndex(t *testing.T) {
	geo := dialogueGeometry()
	model := NewTooltipModel()

	if err := model.OnHover(geo, 3); err == nil {
		t.Error("index past the series should fail")
	}
	if err := model.OnHover(geo, -1); err == nil {
		t.Error("negative index should fail")
	}
	if _, ok := model.Active(); ok {
		t.Error("failed hover must not activate a tooltip")
	}
}

func TestTooltipReadabilityDatum(t *testing.T) {
	series := []SeriesPoint{
		{Value: 72.5, Datum: analysis.ReadabilityPoint{Segment: 0, Score: 72.5}},
	}
	geo := MapSeries(series, 0, 100, testViewport)
	model := NewTooltipModel()

	if err := model.OnHover(geo, 0); err != nil {
		t.Fatalf("hover: %v", err)
	}
	tip, _ := model.Active()
	if tip.Label != "segment 0" {
		t.Errorf("label = %q, want segment ordinal", tip.Label)
	}
	if tip.Score != 72.5 {
		t.Errorf("score = %v, want 72.5", tip.Score)
	}
}

func TestHumanizeTag(t *testing.T) {
	tests := []struct {
		tag  string
		want string
	}{
		{"weaponizedPoliteness", "Weaponized Politeness"},
		{"exchangeTermination", "Exchange Termination"},
		{"interruption", "Interruption"},
		{"topicControl", "Topic Control"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			if got := HumanizeTag(tt.tag); got != tt.want {
				t.Errorf("HumanizeTag(%q) = %q, want %q", tt.tag, got, tt.want)
			}
		})
	}
}
