package identity

import "context"

// Resolver maps an external provider username to an internal user id,
// gated on project assignability.
type Resolver interface {
	// ResolveAssignable returns the internal user id for the username, or 0
	// when the user is unknown or holds no assignable role in the project.
	// Fail-closed: any ambiguity collapses to 0, never an error and never a guess.
	ResolveAssignable(ctx context.Context, projectID int64, username string) (int64, error)
}
