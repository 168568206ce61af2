package agent

import "context"

// AIClient is the completion transport used by the LLM-backed analysis
// providers.
type AIClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
	// CompleteJSON forces the model into JSON-only output mode.
	CompleteJSON(ctx context.Context, prompt string) (string, error)
}
