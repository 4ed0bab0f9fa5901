package workitem

import (
	"context"

	"github-task-bridge/internal/model"
)

// Finder resolves a parsed reference to a work item within a project.
type Finder interface {
	// FindByReference returns nil (not an error) when no work item matches:
	// unmatched references are a frequent, expected outcome.
	FindByReference(ctx context.Context, projectID int64, ref model.Reference) (*model.WorkItem, error)
}
