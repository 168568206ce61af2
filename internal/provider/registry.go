package provider

import (
	"fmt"

	"github.com/vampirenirmal/textprism/internal/agent"
	"github.com/vampirenirmal/textprism/internal/analysis"
)

// DefaultRegistry wires the full provider set over one AI client.
func DefaultRegistry(client agent.AIClient) (*analysis.Registry, error) {
	registry := analysis.NewRegistry()

	providers := []analysis.Provider{
		NewPalette(client),
		NewDevices(client),
		NewReadability(),
		NewPowerBalance(client),
	}

	for _, p := range providers {
		if err := registry.Register(p); err != nil {
			return nil, fmt.Errorf("registering %s: %w", p.ID(), err)
		}
	}

	return registry, nil
}
