package translator

// Event families sent by the provider in the event header.
const (
	FamilyPush         = "push"
	FamilyIssues       = "issues"
	FamilyIssueComment = "issue_comment"
	FamilyPullRequest  = "pull_request"
)

// Column labels for pull request task moves.
const (
	labelReview = "Review"
	labelDone   = "Done"
)

// DefaultProviderName is used when no display name is configured.
const DefaultProviderName = "Github"
