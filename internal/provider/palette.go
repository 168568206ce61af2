package provider

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"

	"github.com/vampirenirmal/textprism/internal/agent"
	"github.com/vampirenirmal/textprism/internal/analysis"
)

const palettePrompt = `Analyze the following text and extract the color palette it evokes: the dominant colors suggested by its imagery, settings, and mood.

Respond with a JSON object of this exact shape:
{"swatches": [{"hex": "#RRGGBB", "name": "evocative color name", "prominence": 0.0}]}

Order swatches from most to least prominent. Prominence values are fractions of the whole palette and should sum to roughly 1. Return at most 8 swatches. If the text evokes no colors at all, return an empty swatches array.

TEXT:
`

var hexPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// PaletteProvider extracts an evoked color palette via the AI client.
type PaletteProvider struct {
	client agent.AIClient
	logger *slog.Logger
}

// NewPalette creates the color palette provider.
func NewPalette(client agent.AIClient) *PaletteProvider {
	return &PaletteProvider{
		client: client,
		logger: slog.Default().With("component", "palette_provider"),
	}
}

func (p *PaletteProvider) ID() analysis.ProviderID {
	return analysis.ProviderColorPalette
}

// Analyze requests a palette for the text and validates the response.
func (p *PaletteProvider) Analyze(ctx context.Context, text string) (analysis.Payload, error) {
	response, err := p.client.CompleteJSON(ctx, palettePrompt+text)
	if err != nil {
		return nil, fmt.Errorf("palette request: %w", err)
	}

	var parsed struct {
		Swatches []analysis.ColorSwatch `json:"swatches"`
	}
	if err := parseJSONResponse(response, &parsed); err != nil {
		return nil, fmt.Errorf("parsing palette response: %w", err)
	}

	swatches := make(analysis.Palette, 0, len(parsed.Swatches))
	for _, s := range parsed.Swatches {
		if !hexPattern.MatchString(s.Hex) {
			p.logger.Warn("dropping swatch with malformed hex", "hex", s.Hex, "name", s.Name)
			continue
		}
		if s.Prominence < 0 {
			s.Prominence = 0
		}
		swatches = append(swatches, s)
	}

	return swatches, nil
}
