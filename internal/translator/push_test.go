package translator_test

import (
	"strings"
	"testing"

	"github-task-bridge/internal/model"
)

func TestPushCommitReferencingWorkItem(t *testing.T) {
	f := newFixture()
	f.finder.items["1/1"] = &model.WorkItem{ID: 10, ProjectID: 1, Reference: "1"}

	out := f.translate(t, 1, "push", `{
		"commits": [
			{
				"message": "Update README to fix #1",
				"url": "https://github.com/acme/repo/commit/abc123",
				"author": {"username": "fguillot"}
			}
		]
	}`)

	if !out.Handled || out.Emitted != 1 {
		t.Fatalf("expected one event, got %+v", out)
	}

	ev := f.sink.events[0]
	if ev.Kind != model.KindCommit {
		t.Errorf("kind = %s, want %s", ev.Kind, model.KindCommit)
	}
	if ev.TaskID != 10 {
		t.Errorf("task_id = %d, want 10", ev.TaskID)
	}
	if ev.CommitMessage != "Update README to fix #1" {
		t.Errorf("commit_message = %q", ev.CommitMessage)
	}
	if ev.CommitURL != "https://github.com/acme/repo/commit/abc123" {
		t.Errorf("commit_url = %q", ev.CommitURL)
	}
	if !strings.Contains(ev.Comment, "Update README to fix #1") ||
		!strings.Contains(ev.Comment, "[Commit made by @fguillot on Github](https://github.com/acme/repo/commit/abc123)") {
		t.Errorf("comment = %q", ev.Comment)
	}
}

func TestPushSkipsUnmatchedCommits(t *testing.T) {
	f := newFixture()
	f.finder.items["1/2"] = &model.WorkItem{ID: 20, ProjectID: 1, Reference: "2"}

	out := f.translate(t, 1, "push", `{
		"commits": [
			{"message": "no reference here", "url": "u1", "author": {"username": "a"}},
			{"message": "fix #99 unknown item", "url": "u2", "author": {"username": "b"}},
			{"message": "close #2", "url": "u3", "author": {"username": "c"}}
		]
	}`)

	if out.Emitted != 1 {
		t.Fatalf("expected exactly one event, got %d", out.Emitted)
	}
	if f.sink.events[0].TaskID != 20 {
		t.Errorf("task_id = %d, want 20", f.sink.events[0].TaskID)
	}
}

func TestPushInternalTicketReference(t *testing.T) {
	f := newFixture()
	f.finder.items["1/K-7"] = &model.WorkItem{ID: 30, ProjectID: 1, Reference: "K-7"}

	out := f.translate(t, 1, "push", `{
		"commits": [
			{"message": "implement #K-7", "url": "u", "author": {"username": "a"}}
		]
	}`)

	if out.Emitted != 1 {
		t.Fatalf("expected one event, got %d", out.Emitted)
	}
	if f.sink.events[0].Reference != "K-7" {
		t.Errorf("reference = %q, want K-7", f.sink.events[0].Reference)
	}
}

func TestPushEmptyCommitList(t *testing.T) {
	f := newFixture()

	out := f.translate(t, 1, "push", `{"commits": []}`)
	if out.Handled {
		t.Errorf("expected ignored, got %+v", out)
	}
}
