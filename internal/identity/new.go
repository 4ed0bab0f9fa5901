package identity

import (
	"github-task-bridge/internal/identity/repository"
	pkgLog "github-task-bridge/pkg/log"
)

func New(users repository.UserRepository, roles repository.ProjectRoleRepository, l pkgLog.Logger) Resolver {
	return &service{
		users: users,
		roles: roles,
		l:     l,
	}
}
