package translator_test

import (
	"strings"
	"testing"

	"github-task-bridge/internal/model"
	"github-task-bridge/internal/translator"
)

func TestIssueOpened(t *testing.T) {
	f := newFixture()

	out := f.translate(t, 1, "issues", `{
		"action": "opened",
		"issue": {
			"number": 3,
			"title": "Test issue",
			"body": "Something does not work",
			"html_url": "https://github.com/acme/repo/issues/3"
		}
	}`)

	if !out.Handled || out.Emitted != 1 {
		t.Fatalf("expected one event, got %+v", out)
	}

	ev := f.sink.events[0]
	if ev.Kind != model.KindIssueOpened {
		t.Errorf("kind = %s", ev.Kind)
	}
	if ev.Reference != "3" {
		t.Errorf("reference = %q, want 3", ev.Reference)
	}
	if ev.Title != "Test issue" {
		t.Errorf("title = %q", ev.Title)
	}
	if !strings.HasSuffix(ev.Description, "[Github Issue](https://github.com/acme/repo/issues/3)") {
		t.Errorf("description = %q", ev.Description)
	}
}

func TestIssueOpenedWithNumberedTitle(t *testing.T) {
	f := newFixture()
	uc := translator.New(f.finder, f.resolver, f.sink, translator.Config{IssueTitleWithNumber: true}, &mockLogger{})
	f.uc = uc

	f.translate(t, 1, "issues", `{
		"action": "opened",
		"issue": {"number": 12, "title": "Fix login", "body": "", "html_url": "u"}
	}`)

	if got := f.sink.events[0].Title; got != "(#12) Fix login" {
		t.Errorf("title = %q, want (#12) Fix login", got)
	}
}

func TestIssueClosedAndReopened(t *testing.T) {
	tests := []struct {
		action string
		kind   model.EventKind
	}{
		{"closed", model.KindIssueClosed},
		{"reopened", model.KindIssueReopened},
	}

	for _, tt := range tests {
		t.Run(tt.action, func(t *testing.T) {
			f := newFixture()
			f.finder.items["1/3"] = &model.WorkItem{ID: 42, ProjectID: 1, Reference: "3"}

			out := f.translate(t, 1, "issues", `{"action":"`+tt.action+`","issue":{"number":3}}`)
			if out.Emitted != 1 {
				t.Fatalf("expected one event, got %+v", out)
			}

			ev := f.sink.events[0]
			if ev.Kind != tt.kind || ev.TaskID != 42 || ev.Reference != "3" {
				t.Errorf("event = %+v", ev)
			}
		})
	}
}

func TestIssueClosedUntracked(t *testing.T) {
	f := newFixture()

	out := f.translate(t, 1, "issues", `{"action":"closed","issue":{"number":3}}`)
	if out.Handled {
		t.Errorf("expected ignored, got %+v", out)
	}
}

func TestIssueAssigned(t *testing.T) {
	tests := []struct {
		name        string
		users       map[string]int64
		items       map[string]*model.WorkItem
		wantEmitted int
		wantOwner   int64
	}{
		{
			name:        "assignable member with tracked issue",
			users:       map[string]int64{"fguillot": 2},
			items:       map[string]*model.WorkItem{"1/3": {ID: 42, ProjectID: 1, Reference: "3"}},
			wantEmitted: 1,
			wantOwner:   2,
		},
		{
			name:        "user not a project member",
			users:       map[string]int64{},
			items:       map[string]*model.WorkItem{"1/3": {ID: 42, ProjectID: 1, Reference: "3"}},
			wantEmitted: 0,
		},
		{
			name:        "no tracked issue",
			users:       map[string]int64{"fguillot": 2},
			items:       map[string]*model.WorkItem{},
			wantEmitted: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			f.resolver.users = tt.users
			f.finder.items = tt.items

			out := f.translate(t, 1, "issues", `{
				"action": "assigned",
				"issue": {"number": 3, "assignee": {"login": "fguillot"}}
			}`)

			if out.Emitted != tt.wantEmitted {
				t.Fatalf("emitted = %d, want %d", out.Emitted, tt.wantEmitted)
			}
			if tt.wantEmitted == 0 {
				return
			}

			ev := f.sink.events[0]
			if ev.Kind != model.KindIssueAssigneeChange || ev.OwnerID != tt.wantOwner {
				t.Errorf("event = %+v", ev)
			}
		})
	}
}

func TestIssueUnassigned(t *testing.T) {
	f := newFixture()
	f.finder.items["1/3"] = &model.WorkItem{ID: 42, ProjectID: 1, Reference: "3", OwnerID: 2}

	out := f.translate(t, 1, "issues", `{"action":"unassigned","issue":{"number":3}}`)
	if out.Emitted != 1 {
		t.Fatalf("expected one event, got %+v", out)
	}

	ev := f.sink.events[0]
	if ev.Kind != model.KindIssueAssigneeChange || ev.OwnerID != 0 || ev.TaskID != 42 {
		t.Errorf("event = %+v", ev)
	}
}

func TestIssueLabeled(t *testing.T) {
	f := newFixture()
	f.finder.items["1/3"] = &model.WorkItem{ID: 42, ProjectID: 1, Reference: "3"}

	out := f.translate(t, 1, "issues", `{
		"action": "labeled",
		"issue": {"number": 3},
		"label": {"name": "bug"}
	}`)
	if out.Emitted != 1 {
		t.Fatalf("expected one event, got %+v", out)
	}

	ev := f.sink.events[0]
	if ev.Kind != model.KindIssueLabelChange || ev.Label != "bug" {
		t.Errorf("event = %+v", ev)
	}
}

func TestIssueUnlabeledKeepsCategory(t *testing.T) {
	f := newFixture()
	f.finder.items["1/3"] = &model.WorkItem{ID: 42, ProjectID: 1, Reference: "3", CategoryID: 7}

	out := f.translate(t, 1, "issues", `{
		"action": "unlabeled",
		"issue": {"number": 3},
		"label": {"name": "bug"}
	}`)
	if out.Emitted != 1 {
		t.Fatalf("expected one event, got %+v", out)
	}

	ev := f.sink.events[0]
	if ev.Kind != model.KindIssueLabelRemoved {
		t.Errorf("kind = %s", ev.Kind)
	}
	if ev.Label != "bug" || ev.CategoryID != 7 {
		t.Errorf("event = %+v", ev)
	}
}

func TestIssueUnhandledAction(t *testing.T) {
	f := newFixture()

	out := f.translate(t, 1, "issues", `{"action":"pinned","issue":{"number":3}}`)
	if out.Handled {
		t.Errorf("expected ignored, got %+v", out)
	}
}

func TestIssueMissingAction(t *testing.T) {
	f := newFixture()

	out := f.translate(t, 1, "issues", `{"issue":{"number":3}}`)
	if out.Handled {
		t.Errorf("expected ignored, got %+v", out)
	}
}
