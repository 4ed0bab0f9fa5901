package model

// WorkItem is the tracker's view of a task. Owned by the work-item store;
// this service only ever reads it, addressed by (project, reference).
type WorkItem struct {
	ID         int64
	ProjectID  int64
	Reference  string // external ticket number, optionally K- prefixed
	Title      string
	CategoryID int64
	OwnerID    int64
}

// User is an account in the user directory, keyed by the username
// on the external provider.
type User struct {
	ID               int64
	ExternalUsername string
	Name             string
}
