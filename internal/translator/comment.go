package translator

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github-task-bridge/internal/model"
)

// translateComment handles issue_comment deliveries. Comments on untracked
// issues are dropped; comments by unmapped or unauthorized users are kept
// and attributed to the anonymous user (0).
func (uc *usecase) translateComment(ctx context.Context, projectID int64, raw json.RawMessage) (int, error) {
	var payload commentEnvelope
	if err := json.Unmarshal(raw, &payload); err != nil {
		uc.l.Warnf(ctx, "translator: malformed issue_comment payload: %v", err)
		return 0, nil
	}
	if payload.Issue.Number == 0 || payload.Comment.ID == 0 {
		return 0, nil
	}

	item, err := uc.findByIssueNumber(ctx, projectID, payload.Issue.Number)
	if err != nil {
		return 0, err
	}
	if item == nil {
		return 0, nil
	}

	userID, err := uc.identities.ResolveAssignable(ctx, projectID, payload.Comment.User.Login)
	if err != nil {
		return 0, err
	}

	ev := uc.newEvent(model.KindIssueComment, projectID)
	ev.TaskID = item.ID
	ev.UserID = userID
	ev.Reference = strconv.FormatInt(payload.Comment.ID, 10)
	ev.Comment = fmt.Sprintf("%s\n\n[By @%s on %s](%s)",
		payload.Comment.Body, payload.Comment.User.Login, uc.provider, payload.Comment.HTMLURL)

	if err := uc.sink.Emit(ctx, ev); err != nil {
		return 0, err
	}
	return 1, nil
}
