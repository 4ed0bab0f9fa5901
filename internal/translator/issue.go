package translator

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github-task-bridge/internal/model"
)

func (uc *usecase) translateIssue(ctx context.Context, projectID int64, raw json.RawMessage) (int, error) {
	var payload issueEnvelope
	if err := json.Unmarshal(raw, &payload); err != nil {
		uc.l.Warnf(ctx, "translator: malformed issue payload: %v", err)
		return 0, nil
	}
	if payload.Action == "" || payload.Issue.Number == 0 {
		return 0, nil
	}

	switch payload.Action {
	case "opened":
		return uc.issueOpened(ctx, projectID, payload.Issue)
	case "closed":
		return uc.issueStateChange(ctx, projectID, payload.Issue, model.KindIssueClosed)
	case "reopened":
		return uc.issueStateChange(ctx, projectID, payload.Issue, model.KindIssueReopened)
	case "assigned":
		return uc.issueAssigned(ctx, projectID, payload.Issue)
	case "unassigned":
		return uc.issueUnassigned(ctx, projectID, payload.Issue)
	case "labeled":
		return uc.issueLabeled(ctx, projectID, payload.Issue, payload.Label)
	case "unlabeled":
		return uc.issueUnlabeled(ctx, projectID, payload.Issue, payload.Label)
	}

	return 0, nil
}

// issueOpened is a creation event: no lookup, it always emits.
func (uc *usecase) issueOpened(ctx context.Context, projectID int64, issue issuePayload) (int, error) {
	title := issue.Title
	if uc.withNumber {
		title = fmt.Sprintf("(#%d) %s", issue.Number, issue.Title)
	}

	ev := uc.newEvent(model.KindIssueOpened, projectID)
	ev.Reference = strconv.Itoa(issue.Number)
	ev.Title = title
	ev.Description = fmt.Sprintf("%s\n\n[%s Issue](%s)", issue.Body, uc.provider, issue.HTMLURL)

	if err := uc.sink.Emit(ctx, ev); err != nil {
		return 0, err
	}
	return 1, nil
}

func (uc *usecase) issueStateChange(ctx context.Context, projectID int64, issue issuePayload, kind model.EventKind) (int, error) {
	item, err := uc.findByIssueNumber(ctx, projectID, issue.Number)
	if err != nil {
		return 0, err
	}
	if item == nil {
		return 0, nil
	}

	ev := uc.newEvent(kind, projectID)
	ev.TaskID = item.ID
	ev.Reference = strconv.Itoa(issue.Number)

	if err := uc.sink.Emit(ctx, ev); err != nil {
		return 0, err
	}
	return 1, nil
}

// issueAssigned emits only when the assignee maps to an assignable account
// AND the issue is tracked; anything less cancels the whole event.
func (uc *usecase) issueAssigned(ctx context.Context, projectID int64, issue issuePayload) (int, error) {
	ownerID, err := uc.identities.ResolveAssignable(ctx, projectID, issue.Assignee.Login)
	if err != nil {
		return 0, err
	}
	if ownerID == 0 {
		return 0, nil
	}

	item, err := uc.findByIssueNumber(ctx, projectID, issue.Number)
	if err != nil {
		return 0, err
	}
	if item == nil {
		return 0, nil
	}

	ev := uc.newEvent(model.KindIssueAssigneeChange, projectID)
	ev.TaskID = item.ID
	ev.OwnerID = ownerID
	ev.Reference = strconv.Itoa(issue.Number)

	if err := uc.sink.Emit(ctx, ev); err != nil {
		return 0, err
	}
	return 1, nil
}

func (uc *usecase) issueUnassigned(ctx context.Context, projectID int64, issue issuePayload) (int, error) {
	item, err := uc.findByIssueNumber(ctx, projectID, issue.Number)
	if err != nil {
		return 0, err
	}
	if item == nil {
		return 0, nil
	}

	ev := uc.newEvent(model.KindIssueAssigneeChange, projectID)
	ev.TaskID = item.ID
	ev.OwnerID = 0
	ev.Reference = strconv.Itoa(issue.Number)

	if err := uc.sink.Emit(ctx, ev); err != nil {
		return 0, err
	}
	return 1, nil
}

func (uc *usecase) issueLabeled(ctx context.Context, projectID int64, issue issuePayload, label labelPayload) (int, error) {
	if label.Name == "" {
		return 0, nil
	}

	item, err := uc.findByIssueNumber(ctx, projectID, issue.Number)
	if err != nil {
		return 0, err
	}
	if item == nil {
		return 0, nil
	}

	ev := uc.newEvent(model.KindIssueLabelChange, projectID)
	ev.TaskID = item.ID
	ev.Reference = strconv.Itoa(issue.Number)
	ev.Label = label.Name

	if err := uc.sink.Emit(ctx, ev); err != nil {
		return 0, err
	}
	return 1, nil
}

// issueUnlabeled carries the work item's current category so subscribers can
// decide whether the removed label maps to it. The category is passed
// through, not cleared.
func (uc *usecase) issueUnlabeled(ctx context.Context, projectID int64, issue issuePayload, label labelPayload) (int, error) {
	if label.Name == "" {
		return 0, nil
	}

	item, err := uc.findByIssueNumber(ctx, projectID, issue.Number)
	if err != nil {
		return 0, err
	}
	if item == nil {
		return 0, nil
	}

	ev := uc.newEvent(model.KindIssueLabelRemoved, projectID)
	ev.TaskID = item.ID
	ev.Reference = strconv.Itoa(issue.Number)
	ev.Label = label.Name
	ev.CategoryID = item.CategoryID

	if err := uc.sink.Emit(ctx, ev); err != nil {
		return 0, err
	}
	return 1, nil
}
