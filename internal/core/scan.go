package core

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LinkRef is one relative Markdown cross-reference discovered by the scanner.
// Refs are recomputed on every scan and never persisted.
type LinkRef struct {
	Source    string // root-relative path of the file containing the link
	Line      int    // 1-based line number
	Offset    int    // byte offset of RawTarget within the file
	RawTarget string // target text exactly as written, fragment included
	Target    string // root-relative path the link currently resolves to
	Fragment  string // "#section" or ""
}

// ScanResult holds everything one pass over the content tree produced.
type ScanResult struct {
	Files  []string // all .md files under the root, root-relative, sorted by walk order
	Refs   []LinkRef
	Issues []Issue
}

// HasFile reports whether the given root-relative path exists in the scanned tree.
func (s *ScanResult) HasFile(path string) bool {
	for _, f := range s.Files {
		if f == path {
			return true
		}
	}
	return false
}

// fileSet returns the scanned files as a set for O(1) existence checks.
func (s *ScanResult) fileSet() map[string]bool {
	set := make(map[string]bool, len(s.Files))
	for _, f := range s.Files {
		set[f] = true
	}
	return set
}

// Scan walks the content tree and extracts every relative Markdown link whose
// target ends in .md (optionally with a fragment). Fenced code blocks and
// inline code spans are skipped. Absolute URLs, root-relative links, and
// anchor-only links are out of scope.
func Scan(root string) (*ScanResult, error) {
	if info, err := os.Stat(root); err != nil || !info.IsDir() {
		return nil, fmt.Errorf("content root not found: %s", root)
	}
	result := &ScanResult{}
	err := filepath.Walk(root, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		name := info.Name()
		if strings.HasPrefix(name, ".") && p != root {
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if info.IsDir() {
			return nil
		}
		if !strings.HasSuffix(strings.ToLower(name), ".md") {
			return nil
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		result.Files = append(result.Files, rel)

		content, err := os.ReadFile(p)
		if err != nil {
			return err
		}
		refs, issues := scanContent(rel, string(content))
		result.Refs = append(result.Refs, refs...)
		result.Issues = append(result.Issues, issues...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// scanContent extracts link refs from a single file's content.
func scanContent(source, content string) ([]LinkRef, []Issue) {
	var refs []LinkRef
	var issues []Issue

	sourceDir := parentDir(source)
	offset := 0
	inFence := false
	for lineNum, line := range strings.Split(content, "\n") {
		trim := strings.TrimSpace(line)
		if strings.HasPrefix(trim, "```") {
			inFence = !inFence
		} else if !inFence {
			r, iss := scanLine(source, sourceDir, line, lineNum+1, offset)
			refs = append(refs, r...)
			issues = append(issues, iss...)
		}
		offset += len(line) + 1 // +1 for the newline split off
	}
	return refs, issues
}

// scanLine finds inline [text](target) links in one line, outside inline code
// spans. lineOffset is the byte offset of the line start within the file.
func scanLine(source, sourceDir, line string, lineNum, lineOffset int) ([]LinkRef, []Issue) {
	var refs []LinkRef
	var issues []Issue

	for i := 0; i < len(line); i++ {
		switch line[i] {
		case '`':
			// Skip the inline code span verbatim.
			end := strings.IndexByte(line[i+1:], '`')
			if end < 0 {
				return refs, issues // rest of line is code
			}
			i += end + 1
		case '[':
			if i+1 < len(line) && line[i+1] == '[' {
				i++ // wikilink, not ours
				continue
			}
			// Known limitation: for nested image links like
			// [![badge](img.png)](doc.md) the inner "](" pair wins and the
			// outer .md target is not seen.
			mid := strings.Index(line[i:], "](")
			if mid < 0 {
				return refs, issues
			}
			mid += i
			close := strings.IndexByte(line[mid+2:], ')')
			if close < 0 {
				return refs, issues
			}
			close += mid + 2

			raw := line[mid+2 : close]
			if strings.TrimSpace(raw) == "" {
				issues = append(issues, Issue{
					Kind:   IssueMalformedLink,
					File:   source,
					Line:   lineNum,
					Target: raw,
					Detail: "empty link target",
				})
			} else if isRelevantTarget(raw) {
				target, fragment := SplitFragment(strings.TrimSpace(raw))
				resolved, err := ResolveTarget(target, sourceDir)
				if err != nil {
					issues = append(issues, Issue{
						Kind:   IssueMalformedLink,
						File:   source,
						Line:   lineNum,
						Target: raw,
						Detail: err.Error(),
					})
				} else {
					refs = append(refs, LinkRef{
						Source:    source,
						Line:      lineNum,
						Offset:    lineOffset + mid + 2,
						RawTarget: raw,
						Target:    resolved,
						Fragment:  fragment,
					})
				}
			}
			i = close
		}
	}
	return refs, issues
}

// isRelevantTarget reports whether a raw link target is a relative .md
// reference this tool is responsible for.
func isRelevantTarget(raw string) bool {
	target, _ := SplitFragment(strings.TrimSpace(raw))
	if target == "" {
		return false // anchor-only or empty
	}
	if strings.HasPrefix(target, "/") {
		return false // site-root relative, out of scope
	}
	if strings.Contains(target, "://") || strings.HasPrefix(target, "mailto:") {
		return false
	}
	return strings.HasSuffix(strings.ToLower(target), ".md")
}

// parentDir returns the directory component of a root-relative path, or ""
// for a root-level file.
func parentDir(p string) string {
	if idx := strings.LastIndex(p, "/"); idx >= 0 {
		return p[:idx]
	}
	return ""
}
