// Package geo models best-effort coordinate acquisition. Position fixes
// come from the caller's device when the request carries them; otherwise
// an injected Provider is consulted with a bounded wait and the operation
// proceeds without coordinates on timeout or denial.
package geo

import (
	"context"
	"time"
)

type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Provider yields the current position, or ok=false when no fix is
// available within the context deadline. Implementations must not block
// past the deadline.
type Provider interface {
	Coordinates(ctx context.Context) (Coordinates, bool)
}

// NoopProvider never has a position fix. It is the default wiring; the
// service only ever sees coordinates officers submit themselves.
type NoopProvider struct{}

func (NoopProvider) Coordinates(ctx context.Context) (Coordinates, bool) {
	return Coordinates{}, false
}

// Resolve prefers explicitly supplied coordinates and falls back to the
// provider with the given timeout. Returns nil when neither yields a fix.
func Resolve(ctx context.Context, supplied *Coordinates, p Provider, timeout time.Duration) *Coordinates {
	if supplied != nil {
		return supplied
	}
	if p == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if c, ok := p.Coordinates(ctx); ok {
		return &c
	}
	return nil
}
