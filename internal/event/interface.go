// Package event defines the sink through which translated domain events
// leave this service for the internal bus.
package event

import (
	"context"

	"github-task-bridge/internal/model"
)

// Sink is the single side-effecting dependency of the translator.
// Emit is fire-and-forget from the caller's perspective: it returns once the
// event is handed to the bus, not once subscribers have processed it.
type Sink interface {
	Emit(ctx context.Context, ev model.Event) error
}
