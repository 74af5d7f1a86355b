package core

import (
	"os"
	"path/filepath"
	"sort"
)

// ApplyResult reports what the executor did.
type ApplyResult struct {
	EditsApplied  int
	FilesModified int
	Conflicts     []Issue
}

// Apply patches the planned edits into the files under root, whole-file
// rewrites, highest offset first. Each edit's original substring is verified
// at its offset immediately before patching; a mismatch (the file changed
// between scan and write) is recorded as a conflict and skipped while the
// file's other edits still go through.
func Apply(root string, edits []Edit) (*ApplyResult, error) {
	result := &ApplyResult{}

	groups := make(map[string][]Edit)
	for _, e := range edits {
		groups[e.File] = append(groups[e.File], e)
	}
	files := make([]string, 0, len(groups))
	for f := range groups {
		files = append(files, f)
	}
	sort.Strings(files)

	for _, file := range files {
		group := groups[file]
		sort.Slice(group, func(i, j int) bool { return group[i].Offset > group[j].Offset })

		fullPath := filepath.Join(root, filepath.FromSlash(file))
		info, err := os.Stat(fullPath)
		if err != nil {
			return nil, err
		}
		content, err := os.ReadFile(fullPath)
		if err != nil {
			return nil, err
		}

		applied := 0
		for _, e := range group {
			end := e.Offset + len(e.Old)
			if e.Offset < 0 || end > len(content) || string(content[e.Offset:end]) != e.Old {
				result.Conflicts = append(result.Conflicts, Issue{
					Kind:   IssueWriteConflict,
					File:   e.File,
					Line:   e.Line,
					Target: e.Old,
					Detail: "file changed since scan, edit skipped",
				})
				continue
			}
			patched := make([]byte, 0, len(content)-len(e.Old)+len(e.New))
			patched = append(patched, content[:e.Offset]...)
			patched = append(patched, e.New...)
			patched = append(patched, content[end:]...)
			content = patched
			applied++
		}
		if applied == 0 {
			continue
		}
		if err := writeFilePreservePerm(fullPath, content, info.Mode().Perm()); err != nil {
			return nil, err
		}
		result.EditsApplied += applied
		result.FilesModified++
	}
	return result, nil
}

// writeFilePreservePerm writes data to path with the given permission bits.
// os.WriteFile applies umask on file creation, so os.Chmod is called to
// ensure the exact permission bits are set.
func writeFilePreservePerm(path string, data []byte, perm os.FileMode) error {
	if err := os.WriteFile(path, data, perm); err != nil {
		return err
	}
	return os.Chmod(path, perm)
}
