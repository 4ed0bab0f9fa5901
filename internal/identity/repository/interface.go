package repository

import (
	"context"

	"github-task-bridge/internal/model"
)

// UserRepository is the read-only interface to the user directory.
type UserRepository interface {
	// GetByExternalUsername returns nil when no account maps to the username.
	GetByExternalUsername(ctx context.Context, username string) (*model.User, error)
}

// ProjectRoleRepository answers project membership questions.
type ProjectRoleRepository interface {
	// IsAssignable reports whether the user holds a role in the project
	// that permits being set as a work item owner.
	IsAssignable(ctx context.Context, projectID, userID int64) (bool, error)
}
