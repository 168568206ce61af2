package analysis

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// Provider is one external analysis function: it turns input text into
// a single tagged payload. Implementations are expected to be slow and
// fallible; the coordinator isolates each one's outcome.
type Provider interface {
	ID() ProviderID
	Analyze(ctx context.Context, text string) (Payload, error)
}

// Registry is the tagged mapping from provider identifier to provider.
// Adding an analysis category is a registration, not a structural change
// to the coordinator.
type Registry struct {
	mu        sync.RWMutex
	providers map[ProviderID]Provider
}

// NewRegistry creates an empty provider registry.
func NewRegistry() *Registry {
	return &Registry{
		providers: make(map[ProviderID]Provider),
	}
}

// Register adds a provider under its own ID. Registering a duplicate ID
// is an error rather than a silent replacement.
func (r *Registry) Register(p Provider) error {
	if p == nil {
		return fmt.Errorf("provider cannot be nil")
	}
	if p.ID() == "" {
		return fmt.Errorf("provider ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.providers[p.ID()]; exists {
		return fmt.Errorf("provider %q already registered", p.ID())
	}
	r.providers[p.ID()] = p
	return nil
}

// Get returns the provider registered under id.
func (r *Registry) Get(id ProviderID) (Provider, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.providers[id]
	return p, ok
}

// IDs returns all registered provider IDs in stable sorted order.
func (r *Registry) IDs() []ProviderID {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]ProviderID, 0, len(r.providers))
	for id := range r.providers {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
