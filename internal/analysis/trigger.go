package analysis

import (
	"context"
	"log/slog"
)

// TabTrigger lazily kicks off a provider when its result view gains
// focus. Only an idle source is started: loading and success sources
// are left alone, and an errored source is not auto-retried on refocus.
// Recovery from an error takes an explicit Start call, matching the
// eager fan-out which retries nothing.
//
// This keeps initial load from paying for providers whose results are
// not visible yet, while an overview consumer can still fan out
// everything eagerly through Coordinator.Start.
type TabTrigger struct {
	coordinator *Coordinator
	logger      *slog.Logger
}

// NewTabTrigger creates a trigger bound to one coordinator.
func NewTabTrigger(coordinator *Coordinator, logger *slog.Logger) *TabTrigger {
	if logger == nil {
		logger = slog.Default().With("component", "tab_trigger")
	}
	return &TabTrigger{
		coordinator: coordinator,
		logger:      logger,
	}
}

// OnFocusChange is called whenever the active result view changes.
// It starts the backing provider only when that source is idle.
func (t *TabTrigger) OnFocusChange(ctx context.Context, tab ProviderID) error {
	status := t.coordinator.StatusOf(tab)
	if status != StatusIdle {
		t.logger.Debug("focus change ignored",
			"tab", tab,
			"status", status.String())
		return nil
	}

	t.logger.Info("lazy start on focus", "tab", tab)
	return t.coordinator.Start(ctx, tab)
}
