package analysis

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"
)

// Subscriber receives the full updated snapshot on every source
// transition. Callbacks run synchronously in settlement order and must
// not call Start or SetText from inside the notification.
type Subscriber func(Snapshot)

// CoordinatorConfig consolidates tuning knobs for the coordinator.
type CoordinatorConfig struct {
	// MaxConcurrency caps how many provider calls run at once.
	// Zero or negative means one slot per registered provider.
	MaxConcurrency int

	// CallTimeout bounds a single provider call. A call that outlives
	// it settles as an error instead of leaving the source loading
	// forever. Zero disables the bound.
	CallTimeout time.Duration
}

// DefaultCoordinatorConfig returns sensible defaults.
func DefaultCoordinatorConfig() CoordinatorConfig {
	return CoordinatorConfig{
		MaxConcurrency: 0,
		CallTimeout:    2 * time.Minute,
	}
}

// Coordinator fans a single input text out to every registered provider,
// tracks each source independently, deduplicates in-flight calls, and
// discards results that settle after their input text was superseded.
//
// The coordinator is the only writer of source state. Consumers observe
// it through Subscribe and Snapshot; both hand out value copies.
type Coordinator struct {
	registry    *Registry
	logger      *slog.Logger
	sem         *semaphore.Weighted
	callTimeout time.Duration

	// notifyMu serializes transition+delivery so subscribers see
	// snapshots in settlement order.
	notifyMu sync.Mutex

	mu         sync.Mutex
	text       string
	generation string
	sources    map[ProviderID]*SourceState
	subs       map[string]Subscriber
	settledCh  chan struct{}
}

// CoordinatorOption customizes a coordinator at construction.
type CoordinatorOption func(*Coordinator)

// WithLogger sets the coordinator's logger.
func WithLogger(logger *slog.Logger) CoordinatorOption {
	return func(c *Coordinator) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithConfig applies a CoordinatorConfig.
func WithConfig(config CoordinatorConfig) CoordinatorOption {
	return func(c *Coordinator) {
		if config.MaxConcurrency > 0 {
			c.sem = semaphore.NewWeighted(int64(config.MaxConcurrency))
		}
		c.callTimeout = config.CallTimeout
	}
}

// NewCoordinator creates a coordinator over the given registry with all
// sources idle and no input text set.
func NewCoordinator(registry *Registry, opts ...CoordinatorOption) *Coordinator {
	c := &Coordinator{
		registry:    registry,
		logger:      slog.Default().With("component", "coordinator"),
		callTimeout: DefaultCoordinatorConfig().CallTimeout,
		generation:  uuid.New().String(),
		sources:     make(map[ProviderID]*SourceState),
		subs:        make(map[string]Subscriber),
		settledCh:   make(chan struct{}),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.sem == nil {
		slots := len(registry.IDs())
		if slots < 1 {
			slots = 1
		}
		c.sem = semaphore.NewWeighted(int64(slots))
	}

	for _, id := range registry.IDs() {
		c.sources[id] = &SourceState{Provider: id, Status: StatusIdle}
	}

	return c
}

// SetText replaces the input text. The whole source set is discarded and
// rebuilt idle; any in-flight call keeps running but its result will be
// recognized as stale and dropped on settlement.
func (c *Coordinator) SetText(text string) {
	c.notifyMu.Lock()
	defer c.notifyMu.Unlock()

	c.mu.Lock()
	c.text = text
	c.generation = uuid.New().String()
	for id := range c.sources {
		c.sources[id] = &SourceState{Provider: id, Status: StatusIdle, UpdatedAt: time.Now()}
	}
	c.signalLocked()
	snapshot, subs := c.deliveryLocked()
	c.mu.Unlock()

	c.logger.Debug("input text replaced",
		"generation", c.generation,
		"text_len", len(text))

	for _, sub := range subs {
		sub(snapshot)
	}
}

// Text returns the current input text.
func (c *Coordinator) Text() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.text
}

// Start issues one independent asynchronous call per named provider, or
// fans out to every registered provider when no IDs are given. Calls do
// not wait on each other, and one provider's failure never touches a
// sibling's state. Starting a provider that is already loading is a
// no-op: the in-flight call is observed to completion instead of being
// duplicated.
func (c *Coordinator) Start(ctx context.Context, ids ...ProviderID) error {
	if len(ids) == 0 {
		ids = c.registry.IDs()
	}

	for _, id := range ids {
		if _, ok := c.registry.Get(id); !ok {
			return fmt.Errorf("%w: %s", ErrUnknownProvider, id)
		}
	}

	c.mu.Lock()
	if strings.TrimSpace(c.text) == "" {
		c.mu.Unlock()
		return ErrNoText
	}
	c.mu.Unlock()

	for _, id := range ids {
		c.startOne(ctx, id)
	}
	return nil
}

// startOne transitions a single source to loading and launches its call.
func (c *Coordinator) startOne(ctx context.Context, id ProviderID) {
	provider, _ := c.registry.Get(id)

	c.notifyMu.Lock()

	c.mu.Lock()
	src := c.sources[id]
	if src.Status == StatusLoading {
		c.mu.Unlock()
		c.notifyMu.Unlock()
		c.logger.Debug("start deduplicated, call already in flight", "provider", id)
		return
	}
	generation := c.generation
	text := c.text
	src.Status = StatusLoading
	src.Payload = nil
	src.Err = ""
	src.UpdatedAt = time.Now()
	snapshot, subs := c.deliveryLocked()
	c.mu.Unlock()

	for _, sub := range subs {
		sub(snapshot)
	}
	c.notifyMu.Unlock()

	c.logger.Info("provider call started",
		"provider", id,
		"generation", generation)

	go c.run(ctx, provider, generation, text)
}

// run executes one provider call and settles its outcome.
func (c *Coordinator) run(ctx context.Context, provider Provider, generation, text string) {
	if err := c.sem.Acquire(ctx, 1); err != nil {
		c.settle(provider.ID(), generation, nil, NewProviderError(provider.ID(), err, true))
		return
	}
	defer c.sem.Release(1)

	callCtx := ctx
	if c.callTimeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, c.callTimeout)
		defer cancel()
	}

	start := time.Now()
	payload, err := safeAnalyze(callCtx, provider, text)
	duration := time.Since(start)

	switch {
	case err != nil:
		c.logger.Warn("provider call failed",
			"provider", provider.ID(),
			"duration", duration,
			"error", err)
	case payload == nil:
		err = NewProviderError(provider.ID(), ErrEmptyPayload, true)
	default:
		c.logger.Info("provider call completed",
			"provider", provider.ID(),
			"duration", duration,
			"items", payload.Len())
	}

	c.settle(provider.ID(), generation, payload, err)
}

// safeAnalyze invokes the provider with panic recovery so an exploding
// call is normalized into the same error shape as an explicit failure.
func safeAnalyze(ctx context.Context, provider Provider, text string) (payload Payload, err error) {
	defer func() {
		if r := recover(); r != nil {
			payload = nil
			err = NewProviderError(provider.ID(), fmt.Errorf("provider panicked: %v", r), true)
		}
	}()

	return provider.Analyze(ctx, text)
}

// settle records one call's outcome. A result tagged with a superseded
// generation reflects normal supersession, not a fault, and is dropped
// without touching state.
func (c *Coordinator) settle(id ProviderID, generation string, payload Payload, err error) {
	c.notifyMu.Lock()
	defer c.notifyMu.Unlock()

	c.mu.Lock()
	if generation != c.generation {
		c.mu.Unlock()
		c.logger.Debug("stale result discarded",
			"provider", id,
			"generation", generation)
		return
	}

	src := c.sources[id]
	if err != nil {
		src.Status = StatusError
		src.Payload = nil
		src.Err = err.Error()
	} else {
		src.Status = StatusSuccess
		src.Payload = payload
		src.Err = ""
	}
	src.UpdatedAt = time.Now()
	c.signalLocked()
	snapshot, subs := c.deliveryLocked()
	c.mu.Unlock()

	for _, sub := range subs {
		sub(snapshot)
	}
}

// signalLocked wakes waiters after a settlement or reset.
// Callers must hold c.mu.
func (c *Coordinator) signalLocked() {
	close(c.settledCh)
	c.settledCh = make(chan struct{})
}

// deliveryLocked copies the snapshot and subscriber list for delivery
// outside c.mu. Callers must hold c.mu.
func (c *Coordinator) deliveryLocked() (Snapshot, []Subscriber) {
	snapshot := c.snapshotLocked()
	subs := make([]Subscriber, 0, len(c.subs))
	for _, sub := range c.subs {
		subs = append(subs, sub)
	}
	return snapshot, subs
}

func (c *Coordinator) snapshotLocked() Snapshot {
	snapshot := make(Snapshot, len(c.sources))
	for id, src := range c.sources {
		snapshot[id] = *src
	}
	return snapshot
}

// Snapshot returns a read-only value copy of all source states.
func (c *Coordinator) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// StatusOf returns the current status of one source.
func (c *Coordinator) StatusOf(id ProviderID) Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	if src, ok := c.sources[id]; ok {
		return src.Status
	}
	return StatusIdle
}

// Subscribe registers a callback for every source transition and
// returns its subscription ID.
func (c *Coordinator) Subscribe(sub Subscriber) (string, error) {
	if sub == nil {
		return "", fmt.Errorf("subscriber cannot be nil")
	}

	id := uuid.New().String()
	c.mu.Lock()
	c.subs[id] = sub
	c.mu.Unlock()

	c.logger.Debug("subscriber added", "subscription_id", id)
	return id, nil
}

// Unsubscribe removes a subscription.
func (c *Coordinator) Unsubscribe(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.subs[id]; !exists {
		return fmt.Errorf("subscription %q not found", id)
	}
	delete(c.subs, id)
	return nil
}

// Wait blocks until no source is loading, or the context ends.
func (c *Coordinator) Wait(ctx context.Context) error {
	for {
		c.mu.Lock()
		loading := false
		for _, src := range c.sources {
			if src.Status == StatusLoading {
				loading = true
				break
			}
		}
		ch := c.settledCh
		c.mu.Unlock()

		if !loading {
			return nil
		}

		select {
		case <-ch:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
