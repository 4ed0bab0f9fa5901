package workitem

import (
	"context"
	"fmt"

	"github-task-bridge/internal/model"
	"github-task-bridge/internal/workitem/repository"
	pkgLog "github-task-bridge/pkg/log"
)

type service struct {
	repo repository.WorkItemRepository
	l    pkgLog.Logger
}

// FindByReference maps the reference to its store key and looks it up
// within the project. Pure read, nil result when nothing matches.
func (s *service) FindByReference(ctx context.Context, projectID int64, ref model.Reference) (*model.WorkItem, error) {
	key := ref.LookupKey()

	item, err := s.repo.GetByReference(ctx, projectID, key)
	if err != nil {
		return nil, fmt.Errorf("workitem lookup %q in project %d: %w", key, projectID, err)
	}
	if item == nil {
		s.l.Debugf(ctx, "workitem: no match for reference %q in project %d", key, projectID)
		return nil, nil
	}
	return item, nil
}
