package translator

// Provider payload shapes, decoded once per dispatch. Only the fields the
// handlers read are declared; everything else in the delivery is ignored.

type userRef struct {
	Login string `json:"login"`
}

type pushPayload struct {
	Commits []commitPayload `json:"commits"`
}

type commitPayload struct {
	Message string `json:"message"`
	URL     string `json:"url"`
	Author  struct {
		Username string `json:"username"`
	} `json:"author"`
}

type issueEnvelope struct {
	Action string       `json:"action"`
	Issue  issuePayload `json:"issue"`
	Label  labelPayload `json:"label"`
}

type issuePayload struct {
	Number   int     `json:"number"`
	Title    string  `json:"title"`
	Body     string  `json:"body"`
	HTMLURL  string  `json:"html_url"`
	Assignee userRef `json:"assignee"`
}

type labelPayload struct {
	Name string `json:"name"`
}

type commentEnvelope struct {
	Issue   issuePayload   `json:"issue"`
	Comment commentPayload `json:"comment"`
}

type commentPayload struct {
	ID      int64   `json:"id"`
	Body    string  `json:"body"`
	HTMLURL string  `json:"html_url"`
	User    userRef `json:"user"`
}

type pullRequestEnvelope struct {
	Action      string             `json:"action"`
	Number      int                `json:"number"`
	PullRequest pullRequestPayload `json:"pull_request"`
}

type pullRequestPayload struct {
	Number  int     `json:"number"`
	Title   string  `json:"title"`
	Body    string  `json:"body"`
	HTMLURL string  `json:"html_url"`
	Merged  bool    `json:"merged"`
	User    userRef `json:"user"`
}
