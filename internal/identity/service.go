package identity

import (
	"context"
	"fmt"

	"github-task-bridge/internal/identity/repository"
	pkgLog "github-task-bridge/pkg/log"
)

type service struct {
	users repository.UserRepository
	roles repository.ProjectRoleRepository
	l     pkgLog.Logger
}

func (s *service) ResolveAssignable(ctx context.Context, projectID int64, username string) (int64, error) {
	if username == "" {
		return 0, nil
	}

	user, err := s.users.GetByExternalUsername(ctx, username)
	if err != nil {
		return 0, fmt.Errorf("identity lookup %q: %w", username, err)
	}
	if user == nil {
		s.l.Debugf(ctx, "identity: no account mapped to %q", username)
		return 0, nil
	}

	assignable, err := s.roles.IsAssignable(ctx, projectID, user.ID)
	if err != nil {
		return 0, fmt.Errorf("assignability check for user %d in project %d: %w", user.ID, projectID, err)
	}
	if !assignable {
		s.l.Debugf(ctx, "identity: user %d not assignable in project %d", user.ID, projectID)
		return 0, nil
	}

	return user.ID, nil
}
