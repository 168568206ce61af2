package provider

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/vampirenirmal/textprism/internal/agent"
	"github.com/vampirenirmal/textprism/internal/analysis"
)

const devicesPrompt = `Identify the literary devices used in the following text.

Respond with a JSON object of this exact shape:
{"devices": [{"type": "deviceTag", "snippet": "exact quote from the text", "explanation": "one sentence on how the device works here", "position": 0}]}

The "type" field must be one of these tags exactly: alliteration, allusion, anaphora, anthropomorphism, antithesis, aphorism, apostrophe, assonance, asyndeton, chiasmus, colloquialism, consonance, epistrophe, euphemism, flashback, foreshadowing, hyperbole, idiom, imagery, dramaticIrony, situationalIrony, verbalIrony, juxtaposition, litotes, metaphor, metonymy, motif, onomatopoeia, oxymoron, paradox, parallelism, patheticFallacy, personification, polysyndeton, repetition, rhetoricalQuestion, simile, symbolism, synecdoche, understatement, zeugma.

"position" is the zero-based paragraph index where the snippet appears. Return an empty devices array if none are found.

TEXT:
`

// DeviceProvider detects literary devices via the AI client.
type DeviceProvider struct {
	client agent.AIClient
	logger *slog.Logger
}

// NewDevices creates the literary device provider.
func NewDevices(client agent.AIClient) *DeviceProvider {
	return &DeviceProvider{
		client: client,
		logger: slog.Default().With("component", "device_provider"),
	}
}

func (p *DeviceProvider) ID() analysis.ProviderID {
	return analysis.ProviderLiteraryDevices
}

// Analyze requests device detection and filters the response down to
// the closed device vocabulary, ordered by text position.
func (p *DeviceProvider) Analyze(ctx context.Context, text string) (analysis.Payload, error) {
	response, err := p.client.CompleteJSON(ctx, devicesPrompt+text)
	if err != nil {
		return nil, fmt.Errorf("device detection request: %w", err)
	}

	var parsed struct {
		Devices []analysis.DeviceInstance `json:"devices"`
	}
	if err := parseJSONResponse(response, &parsed); err != nil {
		return nil, fmt.Errorf("parsing device response: %w", err)
	}

	devices := make(analysis.Devices, 0, len(parsed.Devices))
	for _, d := range parsed.Devices {
		if !d.Type.Valid() {
			p.logger.Warn("dropping device with unknown tag", "type", d.Type)
			continue
		}
		if d.Position < 0 {
			d.Position = 0
		}
		devices = append(devices, d)
	}

	sort.SliceStable(devices, func(i, j int) bool {
		return devices[i].Position < devices[j].Position
	})

	return devices, nil
}
