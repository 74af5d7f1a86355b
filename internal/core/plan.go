package core

import (
	"sort"
	"strings"
)

// Edit is one planned text substitution, anchored to the exact byte offset the
// scanner discovered the link target at. Never a bare string match over the
// whole file, so prose or code that happens to contain a matching filename is
// left alone.
type Edit struct {
	File   string `json:"file"`
	Line   int    `json:"line"`
	Offset int    `json:"offset"`
	Old    string `json:"old"`
	New    string `json:"new"`
}

// Plan decides, for every scanned link, whether and how it must change so it
// still resolves after the restructuring described by the move table. exists
// reports whether a root-relative path is present in the tree.
//
// A link is interpreted against the source file's current directory first;
// if it already resolves to a stationary file it is left untouched, which is
// what makes a second run over a corrected tree a no-op. Only then is the
// stale interpretation tried: the target as resolved from the source file's
// pre-move directory, looked up in the move table or the tree.
func Plan(refs []LinkRef, table *MoveTable, exists func(string) bool) ([]Edit, []Issue) {
	var edits []Edit
	var issues []Issue

	for _, ref := range refs {
		sourceOld, sourceNew := sourceLocations(ref.Source, table)

		newAbs, ok := resolveRef(ref, sourceOld, table, exists)
		if !ok {
			issues = append(issues, Issue{
				Kind:   IssueUnresolvableTarget,
				File:   ref.Source,
				Line:   ref.Line,
				Target: ref.RawTarget,
				Detail: "target not in move table and not present in tree",
			})
			continue
		}

		newTarget := RelativeTo(parentDir(sourceNew), newAbs) + ref.Fragment
		if newTarget == ref.RawTarget {
			continue // already correct, skip the no-op
		}
		edits = append(edits, Edit{
			File:   ref.Source,
			Line:   ref.Line,
			Offset: ref.Offset,
			Old:    ref.RawTarget,
			New:    newTarget,
		})
	}

	// Per file, descending offset, so applying earlier edits never invalidates
	// later offsets.
	sort.SliceStable(edits, func(i, j int) bool {
		if edits[i].File != edits[j].File {
			return edits[i].File < edits[j].File
		}
		return edits[i].Offset > edits[j].Offset
	})
	return edits, issues
}

// resolveRef determines the root-relative path a link should point at after
// the migration. Returns false when the target is demonstrably dangling.
func resolveRef(ref LinkRef, sourceOld string, table *MoveTable, exists func(string) bool) (string, bool) {
	// Current interpretation: the target as resolved from where the file is
	// named now (scanner already did this against the on-disk location).
	cur := ref.Target
	if moved, ok := table.NewPath(cur); ok {
		// Points at a pre-move path; send it to the new location.
		return moved, true
	}
	if exists(cur) {
		// Already resolves to a real, unmoved file.
		return cur, true
	}

	// Stale interpretation: the target as the file's old location saw it.
	if sourceOld != ref.Source {
		oldAbs, err := ResolveTarget(ref.RawTargetPath(), parentDir(sourceOld))
		if err == nil {
			if moved, ok := table.NewPath(oldAbs); ok {
				return moved, true
			}
			if exists(oldAbs) {
				return oldAbs, true
			}
		}
	}
	return "", false
}

// sourceLocations returns the old and new root-relative paths of a scanned
// file. A file scanned at a move destination carries its origin as the old
// path; a file scanned at a move source (links rewritten before the physical
// move) carries the destination as the new path.
func sourceLocations(scanned string, table *MoveTable) (oldPath, newPath string) {
	if from, ok := table.OldPath(scanned); ok {
		return from, scanned
	}
	if to, ok := table.NewPath(scanned); ok {
		return scanned, to
	}
	return scanned, scanned
}

// RawTargetPath returns the raw target with any fragment stripped.
func (r LinkRef) RawTargetPath() string {
	p, _ := SplitFragment(strings.TrimSpace(r.RawTarget))
	return p
}
