package analysis

import (
	"errors"
	"fmt"
)

// Common error values for the analysis core
var (
	// ErrNoText indicates the coordinator was started before any input
	// text was set
	ErrNoText = errors.New("no input text set")

	// ErrUnknownProvider indicates a start or focus request named an
	// unregistered provider
	ErrUnknownProvider = errors.New("unknown provider")

	// ErrEmptyPayload indicates a provider settled successfully but
	// returned a nil payload
	ErrEmptyPayload = errors.New("provider returned no payload")
)

// ProviderError wraps a failure from a single provider call. Exception
// marks calls that blew up (panic, transport fault) rather than
// returning an explicit failure; both surface to consumers through the
// same error-message shape on the source state.
type ProviderError struct {
	Provider  ProviderID
	Err       error
	Exception bool
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s failed: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// NewProviderError creates a provider failure error.
func NewProviderError(id ProviderID, err error, exception bool) *ProviderError {
	return &ProviderError{
		Provider:  id,
		Err:       err,
		Exception: exception,
	}
}
