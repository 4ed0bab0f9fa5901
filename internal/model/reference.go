package model

import "strconv"

// ReferenceSource says where a parsed reference number points to.
type ReferenceSource string

const (
	// ReferenceExternal is a GitHub issue/PR number.
	ReferenceExternal ReferenceSource = "external"
	// ReferenceInternal is a ticket number embedded with the K- convention.
	ReferenceInternal ReferenceSource = "internal"
)

// Reference is a correlation key parsed from free text (commit message, PR title).
// It is computed per call and never stored.
type Reference struct {
	Source ReferenceSource
	Number int
}

// LookupKey returns the work-item store key for this reference.
// External numbers are stored as-is, internal tickets with the K- prefix.
func (r Reference) LookupKey() string {
	if r.Source == ReferenceInternal {
		return "K-" + strconv.Itoa(r.Number)
	}
	return strconv.Itoa(r.Number)
}
