package translator

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"github-task-bridge/internal/event"
	"github-task-bridge/internal/identity"
	"github-task-bridge/internal/model"
	"github-task-bridge/internal/workitem"
	pkgLog "github-task-bridge/pkg/log"
)

// handlerFunc translates one delivery of a single event family and returns
// how many domain events it emitted.
type handlerFunc func(ctx context.Context, projectID int64, payload json.RawMessage) (int, error)

type usecase struct {
	workitems  workitem.Finder
	identities identity.Resolver
	sink       event.Sink
	handlers   map[string]handlerFunc

	provider   string // display name for comment footers
	source     string // lowercase provider tag on emitted events
	withNumber bool

	l pkgLog.Logger
}

// Translate is stateless and deterministic: the same delivery against the
// same external state always produces the same events.
func (uc *usecase) Translate(ctx context.Context, sc model.Scope, input TranslateInput) (TranslateOutput, error) {
	handler, ok := uc.handlers[input.Event]
	if !ok {
		uc.l.Debugf(ctx, "translator: unrecognized event family %q", input.Event)
		return TranslateOutput{}, nil
	}

	emitted, err := handler(ctx, input.ProjectID, input.Payload)
	if err != nil {
		return TranslateOutput{}, err
	}

	return TranslateOutput{
		Handled: emitted > 0,
		Emitted: emitted,
	}, nil
}

// newEvent seeds an event with the per-delivery fields every kind carries.
func (uc *usecase) newEvent(kind model.EventKind, projectID int64) model.Event {
	return model.Event{
		ID:        uuid.NewString(),
		Kind:      kind,
		Provider:  uc.source,
		ProjectID: projectID,
	}
}

// findByIssueNumber looks up the work item tracking the given provider issue.
func (uc *usecase) findByIssueNumber(ctx context.Context, projectID int64, number int) (*model.WorkItem, error) {
	ref := model.Reference{Source: model.ReferenceExternal, Number: number}
	return uc.workitems.FindByReference(ctx, projectID, ref)
}
