// Package reference extracts work-item correlation references from free text
// such as commit messages and pull request titles.
package reference

import (
	"regexp"
	"strconv"

	"github-task-bridge/internal/model"
)

// The internal ticket pattern is a more specific prefix of the plain issue
// pattern, so it must be tried first: "#K7" is ticket K-7, not issue 7.
var (
	internalPattern = regexp.MustCompile(`(?i)#K-?(\d+)`)
	externalPattern = regexp.MustCompile(`#(\d+)`)
)

// Resolve parses the first reference found in text.
// Returns false when the text contains no reference.
func Resolve(text string) (model.Reference, bool) {
	if m := internalPattern.FindStringSubmatch(text); m != nil {
		return newReference(model.ReferenceInternal, m[1])
	}
	if m := externalPattern.FindStringSubmatch(text); m != nil {
		return newReference(model.ReferenceExternal, m[1])
	}
	return model.Reference{}, false
}

func newReference(source model.ReferenceSource, digits string) (model.Reference, bool) {
	n, err := strconv.Atoi(digits)
	if err != nil || n <= 0 {
		return model.Reference{}, false
	}
	return model.Reference{Source: source, Number: n}, true
}
