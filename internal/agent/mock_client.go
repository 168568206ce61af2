package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// MockClient provides canned analysis responses for tests and offline
// runs.
type MockClient struct {
	responses map[string]string
}

// NewMockClient creates a mock AI client with plausible fixtures for
// each analysis category.
func NewMockClient() *MockClient {
	return &MockClient{
		responses: map[string]string{
			"palette": `{
				"swatches": [
					{"hex": "#2F4F4F", "name": "storm slate", "prominence": 0.34},
					{"hex": "#C0C8D0", "name": "fog silver", "prominence": 0.27},
					{"hex": "#7B3F00", "name": "lamplight amber", "prominence": 0.18},
					{"hex": "#4A6B4A", "name": "moss green", "prominence": 0.12},
					{"hex": "#8B0000", "name": "dried blood", "prominence": 0.09}
				]
			}`,
			"devices": `{
				"devices": [
					{
						"type": "simile",
						"snippet": "the fog came in like a debt collector",
						"explanation": "Compares the fog's arrival to an unwelcome visitor using 'like'.",
						"position": 0
					},
					{
						"type": "personification",
						"snippet": "the house held its breath",
						"explanation": "Assigns a human action to the house.",
						"position": 2
					},
					{
						"type": "foreshadowing",
						"snippet": "she left the letter unopened",
						"explanation": "Hints at a revelation deferred to a later scene.",
						"position": 5
					}
				]
			}`,
			"power": `{
				"turns": [
					{
						"speaker": "Marta",
						"power_score": 2,
						"metrics": {"is_question": false, "interruptions": 0, "word_count": 24, "hedge_intensifier_ratio": 0.5, "topic_changed": false}
					},
					{
						"speaker": "Elias",
						"power_score": -1,
						"metrics": {"is_question": true, "interruptions": 0, "word_count": 9, "hedge_intensifier_ratio": 2.0, "topic_changed": false}
					},
					{
						"speaker": "Marta",
						"power_score": 3,
						"metrics": {"is_question": false, "interruptions": 1, "word_count": 31, "hedge_intensifier_ratio": 0.2, "topic_changed": true},
						"tactic": "exchangeTermination"
					}
				]
			}`,
		},
	}
}

// Complete returns the fixture matching the prompt's analysis category.
func (m *MockClient) Complete(ctx context.Context, prompt string) (string, error) {
	promptLower := strings.ToLower(prompt)

	if strings.Contains(promptLower, "color palette") || strings.Contains(promptLower, "swatch") {
		return m.responses["palette"], nil
	}
	if strings.Contains(promptLower, "literary device") {
		return m.responses["devices"], nil
	}
	if strings.Contains(promptLower, "power") || strings.Contains(promptLower, "dialogue") {
		return m.responses["power"], nil
	}

	return `{"message": "mock response"}`, nil
}

// CompleteJSON returns a fixture and verifies it parses as JSON.
func (m *MockClient) CompleteJSON(ctx context.Context, prompt string) (string, error) {
	response, err := m.Complete(ctx, prompt)
	if err != nil {
		return "", err
	}

	var test interface{}
	if err := json.Unmarshal([]byte(response), &test); err != nil {
		return "", fmt.Errorf("mock response is not valid JSON: %w", err)
	}

	return response, nil
}
