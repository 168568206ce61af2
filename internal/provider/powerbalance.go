package provider

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/vampirenirmal/textprism/internal/agent"
	"github.com/vampirenirmal/textprism/internal/analysis"
)

const powerPrompt = `Analyze the power dynamics of the dialogue in the following text, turn by turn in chronological order.

Respond with a JSON object of this exact shape:
{"turns": [{"speaker": "name", "power_score": 0, "metrics": {"is_question": false, "interruptions": 0, "word_count": 0, "hedge_intensifier_ratio": 0.0, "topic_changed": false}, "tactic": ""}]}

"power_score" is an integer from -5 (completely deferential) to 5 (completely dominant). "hedge_intensifier_ratio" is the ratio of hedging words to intensifiers in the turn, 0 or greater. "tactic" is optional; when a conversational power move is detected, use one of: weaponizedPoliteness, exchangeTermination, topicControl, interruption, condescension, deflection, stonewalling, reframing. Omit it otherwise. If the text contains no dialogue, return an empty turns array.

TEXT:
`

// PowerBalanceProvider scores dialogue power dynamics via the AI client.
type PowerBalanceProvider struct {
	client agent.AIClient
	logger *slog.Logger
}

// NewPowerBalance creates the dialogue power balance provider.
func NewPowerBalance(client agent.AIClient) *PowerBalanceProvider {
	return &PowerBalanceProvider{
		client: client,
		logger: slog.Default().With("component", "power_provider"),
	}
}

func (p *PowerBalanceProvider) ID() analysis.ProviderID {
	return analysis.ProviderPowerBalance
}

// Analyze requests per-turn power scoring. Scores are clamped to the
// [-5, 5] domain here at the provider boundary; unknown tactic tags are
// cleared rather than passed through.
func (p *PowerBalanceProvider) Analyze(ctx context.Context, text string) (analysis.Payload, error) {
	response, err := p.client.CompleteJSON(ctx, powerPrompt+text)
	if err != nil {
		return nil, fmt.Errorf("power balance request: %w", err)
	}

	var parsed struct {
		Turns []analysis.DialogueTurn `json:"turns"`
	}
	if err := parseJSONResponse(response, &parsed); err != nil {
		return nil, fmt.Errorf("parsing power balance response: %w", err)
	}

	turns := make(analysis.Dialogue, 0, len(parsed.Turns))
	for _, turn := range parsed.Turns {
		if turn.PowerScore > 5 {
			turn.PowerScore = 5
		}
		if turn.PowerScore < -5 {
			turn.PowerScore = -5
		}
		if turn.Metrics.Interruptions < 0 {
			turn.Metrics.Interruptions = 0
		}
		if turn.Metrics.WordCount < 0 {
			turn.Metrics.WordCount = 0
		}
		if turn.Metrics.HedgeIntensifierRatio < 0 {
			turn.Metrics.HedgeIntensifierRatio = 0
		}
		if !turn.Tactic.Valid() {
			p.logger.Warn("clearing unknown tactic tag", "tactic", turn.Tactic, "speaker", turn.Speaker)
			turn.Tactic = analysis.TacticNone
		}
		turns = append(turns, turn)
	}

	return turns, nil
}
