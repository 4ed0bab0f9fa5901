package repository

import (
	"context"

	"github-task-bridge/internal/model"
)

// WorkItemRepository is the read-only interface to the tracker's task store.
type WorkItemRepository interface {
	// GetByReference returns the work item with the given reference string
	// inside the project, or nil when none exists.
	GetByReference(ctx context.Context, projectID int64, reference string) (*model.WorkItem, error)
}
