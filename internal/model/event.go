package model

// EventKind identifies a domain event on the internal bus. The set is closed:
// these strings are the protocol between this bridge and automation subscribers.
type EventKind string

const (
	KindIssueOpened         EventKind = "issue-opened"
	KindIssueClosed         EventKind = "issue-closed"
	KindIssueReopened       EventKind = "issue-reopened"
	KindIssueAssigneeChange EventKind = "issue-assignee-changed"
	KindIssueLabelChange    EventKind = "issue-label-changed"
	KindIssueLabelRemoved   EventKind = "issue-label-removed"
	KindIssueComment        EventKind = "issue-commented"
	KindCommit              EventKind = "commit-received"
	KindPullRequestNewTask  EventKind = "pullrequest-new-task"
	KindPullRequestMoveTask EventKind = "pullrequest-move-task"
	KindPullRequestComment  EventKind = "pullrequest-comment"
)

// Event is a normalized domain event handed to the Event Sink. The bridge
// builds it, emits it once, and never retains a copy.
type Event struct {
	ID        string    `json:"id"` // delivery UUID, for tracing/dedupe by subscribers
	Kind      EventKind `json:"kind"`
	Provider  string    `json:"provider"`
	ProjectID int64     `json:"project_id"`

	TaskID      int64  `json:"task_id,omitempty"`
	Reference   string `json:"reference,omitempty"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Comment     string `json:"comment,omitempty"`
	UserID      int64  `json:"user_id"`  // 0 means anonymous/unmapped
	OwnerID     int64  `json:"owner_id"` // 0 means no owner
	Label       string `json:"label,omitempty"`
	CategoryID  int64  `json:"category_id,omitempty"`

	CommitMessage string `json:"commit_message,omitempty"`
	CommitURL     string `json:"commit_url,omitempty"`
}
