package translator

import (
	"context"
	"encoding/json"
	"fmt"

	"github-task-bridge/internal/model"
	"github-task-bridge/internal/reference"
)

// translatePush emits one commit-received event per commit whose message
// references a known work item. Commits without a reference, or whose
// reference matches nothing in the project, are skipped rather than failed.
func (uc *usecase) translatePush(ctx context.Context, projectID int64, raw json.RawMessage) (int, error) {
	var payload pushPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		uc.l.Warnf(ctx, "translator: malformed push payload: %v", err)
		return 0, nil
	}

	emitted := 0
	for _, commit := range payload.Commits {
		ref, ok := reference.Resolve(commit.Message)
		if !ok {
			continue
		}

		item, err := uc.workitems.FindByReference(ctx, projectID, ref)
		if err != nil {
			return emitted, err
		}
		if item == nil {
			continue
		}

		ev := uc.newEvent(model.KindCommit, projectID)
		ev.TaskID = item.ID
		ev.Reference = item.Reference
		ev.CommitMessage = commit.Message
		ev.CommitURL = commit.URL
		ev.Comment = fmt.Sprintf("%s\n\n[Commit made by @%s on %s](%s)",
			commit.Message, commit.Author.Username, uc.provider, commit.URL)

		if err := uc.sink.Emit(ctx, ev); err != nil {
			return emitted, err
		}
		emitted++
	}

	return emitted, nil
}
