package translator

import (
	"context"

	"github-task-bridge/internal/model"
)

// UseCase is the webhook event translator: it turns one provider delivery
// into zero or more internal domain events.
type UseCase interface {
	// Translate dispatches the delivery by event family and emits the
	// resulting domain events through the sink. Unrecognized, malformed or
	// unmatched deliveries are a silent no-op (Handled=false, nil error);
	// only adapter and bus faults return a non-nil error.
	Translate(ctx context.Context, sc model.Scope, input TranslateInput) (TranslateOutput, error)
}
