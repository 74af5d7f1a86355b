package core

// MigrateOptions controls the migration pipeline.
type MigrateOptions struct {
	DryRun bool // plan only, write nothing
}

// Report summarizes one migration run.
type Report struct {
	FilesScanned  int     `json:"files_scanned"`
	LinksScanned  int     `json:"links_scanned"`
	EditsPlanned  int     `json:"edits_planned"`
	EditsApplied  int     `json:"edits_applied"`
	FilesModified int     `json:"files_modified"`
	Edits         []Edit  `json:"edits,omitempty"`
	Issues        []Issue `json:"issues,omitempty"`
}

// HasProblems reports whether any link could not be handled cleanly. A
// non-empty issue list means the caller (CI) should block rather than proceed
// with a partially broken tree.
func (r *Report) HasProblems() bool {
	return len(r.Issues) > 0
}

// Migrate runs the full Scanner → Planner → Executor pipeline: load the move
// table, scan the tree, plan offset-anchored edits, and apply them in place.
// Running it twice over the same tree plans zero edits the second time.
//
// Per-link problems accumulate in the report; only a missing root or a
// malformed move table aborts the run.
func Migrate(root, tablePath string, opts MigrateOptions) (*Report, error) {
	table, err := LoadMoveTable(tablePath)
	if err != nil {
		return nil, err
	}
	return MigrateWithTable(root, table, opts)
}

// MigrateWithTable is Migrate with an already-constructed move table.
func MigrateWithTable(root string, table *MoveTable, opts MigrateOptions) (*Report, error) {
	scan, err := Scan(root)
	if err != nil {
		return nil, err
	}

	files := scan.fileSet()
	edits, issues := Plan(scan.Refs, table, func(p string) bool { return files[p] })

	report := &Report{
		FilesScanned: len(scan.Files),
		LinksScanned: len(scan.Refs),
		EditsPlanned: len(edits),
		Edits:        edits,
		Issues:       append(scan.Issues, issues...),
	}
	if opts.DryRun {
		return report, nil
	}

	applied, err := Apply(root, edits)
	if err != nil {
		return nil, err
	}
	report.EditsApplied = applied.EditsApplied
	report.FilesModified = applied.FilesModified
	report.Issues = append(report.Issues, applied.Conflicts...)
	return report, nil
}
