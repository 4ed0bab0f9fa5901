package translator

import (
	"strings"

	"github-task-bridge/internal/event"
	"github-task-bridge/internal/identity"
	"github-task-bridge/internal/workitem"
	pkgLog "github-task-bridge/pkg/log"
)

func New(
	workitems workitem.Finder,
	identities identity.Resolver,
	sink event.Sink,
	cfg Config,
	l pkgLog.Logger,
) UseCase {
	if cfg.ProviderName == "" {
		cfg.ProviderName = DefaultProviderName
	}

	uc := &usecase{
		workitems:  workitems,
		identities: identities,
		sink:       sink,
		provider:   cfg.ProviderName,
		source:     strings.ToLower(cfg.ProviderName),
		withNumber: cfg.IssueTitleWithNumber,
		l:          l,
	}

	uc.handlers = map[string]handlerFunc{
		FamilyPush:         uc.translatePush,
		FamilyIssues:       uc.translateIssue,
		FamilyIssueComment: uc.translateComment,
		FamilyPullRequest:  uc.translatePullRequest,
	}

	return uc
}
