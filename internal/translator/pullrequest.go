package translator

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github-task-bridge/internal/model"
	"github-task-bridge/internal/reference"
)

func (uc *usecase) translatePullRequest(ctx context.Context, projectID int64, raw json.RawMessage) (int, error) {
	var payload pullRequestEnvelope
	if err := json.Unmarshal(raw, &payload); err != nil {
		uc.l.Warnf(ctx, "translator: malformed pull_request payload: %v", err)
		return 0, nil
	}

	number := payload.Number
	if number == 0 {
		number = payload.PullRequest.Number
	}
	if number == 0 {
		return 0, nil
	}

	switch payload.Action {
	case "opened":
		return uc.pullRequestOpened(ctx, projectID, number, payload.PullRequest)
	case "closed":
		return uc.pullRequestClosed(ctx, projectID, number, payload.PullRequest)
	}

	// reopened, review_requested, review_request_removed: reserved, ignored.
	return 0, nil
}

// pullRequestOpened links the PR to the work item named in its title: the
// task moves to review and gets a comment announcing the PR. With no
// resolvable link, the PR becomes a new task instead. Never both.
func (uc *usecase) pullRequestOpened(ctx context.Context, projectID int64, number int, pr pullRequestPayload) (int, error) {
	if ref, ok := reference.Resolve(pr.Title); ok {
		item, err := uc.workitems.FindByReference(ctx, projectID, ref)
		if err != nil {
			return 0, err
		}
		if item != nil {
			return uc.pullRequestLinked(ctx, projectID, number, pr, item)
		}
	}

	ev := uc.newEvent(model.KindPullRequestNewTask, projectID)
	ev.Reference = strconv.Itoa(number)
	ev.Title = pr.Title
	ev.Description = fmt.Sprintf("%s\n\n[%s Pull Request](%s)", pr.Body, uc.provider, pr.HTMLURL)

	if err := uc.sink.Emit(ctx, ev); err != nil {
		return 0, err
	}
	return 1, nil
}

// pullRequestLinked is the one case that emits two events per delivery:
// the task move and its companion comment.
func (uc *usecase) pullRequestLinked(ctx context.Context, projectID int64, number int, pr pullRequestPayload, item *model.WorkItem) (int, error) {
	move := uc.newEvent(model.KindPullRequestMoveTask, projectID)
	move.TaskID = item.ID
	move.Reference = item.Reference
	move.Label = labelReview

	if err := uc.sink.Emit(ctx, move); err != nil {
		return 0, err
	}

	userID, err := uc.identities.ResolveAssignable(ctx, projectID, pr.User.Login)
	if err != nil {
		return 1, err
	}

	comment := uc.newEvent(model.KindIssueComment, projectID)
	comment.TaskID = item.ID
	comment.UserID = userID
	comment.Comment = fmt.Sprintf("%s\n\n[Pull request #%d opened by @%s on %s](%s)",
		pr.Title, number, pr.User.Login, uc.provider, pr.HTMLURL)

	if err := uc.sink.Emit(ctx, comment); err != nil {
		return 1, err
	}
	return 2, nil
}

// pullRequestClosed falls back to the PR's own number as an external
// reference when the title names none. That fallback can collide with an
// unrelated work item sharing the number; the behavior is pinned by tests.
func (uc *usecase) pullRequestClosed(ctx context.Context, projectID int64, number int, pr pullRequestPayload) (int, error) {
	ref, ok := reference.Resolve(pr.Title)
	if !ok {
		ref = model.Reference{Source: model.ReferenceExternal, Number: number}
	}

	item, err := uc.workitems.FindByReference(ctx, projectID, ref)
	if err != nil {
		return 0, err
	}
	if item == nil {
		// PR pre-dates tracking, nothing to update.
		return 0, nil
	}

	if pr.Merged {
		ev := uc.newEvent(model.KindPullRequestMoveTask, projectID)
		ev.TaskID = item.ID
		ev.Reference = item.Reference
		ev.Label = labelDone

		if err := uc.sink.Emit(ctx, ev); err != nil {
			return 0, err
		}
		return 1, nil
	}

	userID, err := uc.identities.ResolveAssignable(ctx, projectID, pr.User.Login)
	if err != nil {
		return 0, err
	}

	ev := uc.newEvent(model.KindPullRequestComment, projectID)
	ev.TaskID = item.ID
	ev.UserID = userID
	ev.Comment = fmt.Sprintf("Pull request #%d was closed without being merged\n\n[By @%s on %s](%s)",
		number, pr.User.Login, uc.provider, pr.HTMLURL)

	if err := uc.sink.Emit(ctx, ev); err != nil {
		return 0, err
	}
	return 1, nil
}
