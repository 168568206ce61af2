package analysis

import (
	"context"
	"errors"
	"testing"
)

func TestTabTriggerStartsIdleSource(t *testing.T) {
	p := newFakeProvider(ProviderReadability, ReadabilityCurve{{Segment: 0, Score: 60}}, nil)
	c := NewCoordinator(newTestRegistry(t, p))
	c.SetText("some text")

	trigger := NewTabTrigger(c, nil)
	if err := trigger.OnFocusChange(context.Background(), ProviderReadability); err != nil {
		t.Fatalf("focus change: %v", err)
	}
	waitSettled(t, c)

	if got := c.StatusOf(ProviderReadability); got != StatusSuccess {
		t.Errorf("got status %s, want success after lazy start", got)
	}
	if got := p.callCount(); got != 1 {
		t.Errorf("got %d calls, want 1", got)
	}
}

func TestTabTriggerIgnoresLoadingSource(t *testing.T) {
	p := newFakeProvider(ProviderReadability, ReadabilityCurve{}, nil)
	p.block = make(chan struct{})
	c := NewCoordinator(newTestRegistry(t, p))
	c.SetText("some text")

	if err := c.Start(context.Background(), ProviderReadability); err != nil {
		t.Fatalf("start: %v", err)
	}

	trigger := NewTabTrigger(c, nil)
	if err := trigger.OnFocusChange(context.Background(), ProviderReadability); err != nil {
		t.Fatalf("focus change: %v", err)
	}

	close(p.block)
	waitSettled(t, c)

	if got := p.callCount(); got != 1 {
		t.Errorf("got %d calls, want 1", got)
	}
}

func TestTabTriggerDoesNotRetryErroredSource(t *testing.T) {
	p := newFakeProvider(ProviderLiteraryDevices, nil, errors.New("boom"))
	c := NewCoordinator(newTestRegistry(t, p))
	c.SetText("some text")

	if err := c.Start(context.Background(), ProviderLiteraryDevices); err != nil {
		t.Fatalf("start: %v", err)
	}
	waitSettled(t, c)

	trigger := NewTabTrigger(c, nil)
	if err := trigger.OnFocusChange(context.Background(), ProviderLiteraryDevices); err != nil {
		t.Fatalf("focus change: %v", err)
	}

	if got := p.callCount(); got != 1 {
		t.Errorf("errored source was retried on refocus: %d calls", got)
	}
	if got := c.StatusOf(ProviderLiteraryDevices); got != StatusError {
		t.Errorf("got status %s, want error preserved", got)
	}

	// An explicit restart is what recovers an errored source.
	if err := c.Start(context.Background(), ProviderLiteraryDevices); err != nil {
		t.Fatalf("explicit restart: %v", err)
	}
	waitSettled(t, c)
	if got := p.callCount(); got != 2 {
		t.Errorf("explicit restart issued %d calls total, want 2", got)
	}
}

func TestTabTriggerIgnoresSuccessfulSource(t *testing.T) {
	p := newFakeProvider(ProviderColorPalette, Palette{{Hex: "#112233", Name: "ink"}}, nil)
	c := NewCoordinator(newTestRegistry(t, p))
	c.SetText("some text")

	if err := c.Start(context.Background(), ProviderColorPalette); err != nil {
		t.Fatalf("start: %v", err)
	}
	waitSettled(t, c)

	trigger := NewTabTrigger(c, nil)
	if err := trigger.OnFocusChange(context.Background(), ProviderColorPalette); err != nil {
		t.Fatalf("focus change: %v", err)
	}

	if got := p.callCount(); got != 1 {
		t.Errorf("successful source was refetched on refocus: %d calls", got)
	}
}
