package core

import "fmt"

// IssueKind classifies a per-link problem. Issues accumulate in the report and
// never abort sibling files; only configuration errors are fatal.
type IssueKind string

const (
	// IssueMalformedLink is link syntax that cannot be parsed into a usable
	// target path (empty target, target escaping the content root).
	IssueMalformedLink IssueKind = "malformed-link"
	// IssueUnresolvableTarget is a link whose old target is neither in the
	// move table nor present unmoved in the tree.
	IssueUnresolvableTarget IssueKind = "unresolvable-target"
	// IssueWriteConflict is an edit whose original substring no longer matched
	// the file content at write time.
	IssueWriteConflict IssueKind = "write-conflict"
)

// Issue is one accumulated per-link problem.
type Issue struct {
	Kind   IssueKind `json:"kind"`
	File   string    `json:"file"`
	Line   int       `json:"line,omitempty"`
	Target string    `json:"target,omitempty"`
	Detail string    `json:"detail,omitempty"`
}

func (i Issue) String() string {
	s := fmt.Sprintf("%s: %s", i.Kind, i.File)
	if i.Line > 0 {
		s = fmt.Sprintf("%s:%d", s, i.Line)
	}
	if i.Target != "" {
		s += fmt.Sprintf(" (%s)", i.Target)
	}
	if i.Detail != "" {
		s += ": " + i.Detail
	}
	return s
}
