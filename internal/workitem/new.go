package workitem

import (
	"github-task-bridge/internal/workitem/repository"
	pkgLog "github-task-bridge/pkg/log"
)

func New(repo repository.WorkItemRepository, l pkgLog.Logger) Finder {
	return &service{
		repo: repo,
		l:    l,
	}
}
