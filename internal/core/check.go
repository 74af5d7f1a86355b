package core

import "sort"

// CheckResult lists everything the pre-validation pass found. It is a fast
// approximation; the site generator's strict build remains the authoritative
// oracle for broken links.
type CheckResult struct {
	FilesScanned int     `json:"files_scanned"`
	LinksScanned int     `json:"links_scanned"`
	Broken       []Issue `json:"broken,omitempty"`
	// NotInNav are documents on disk that the nav config never mentions.
	NotInNav []string `json:"not_in_nav,omitempty"`
	// NavDangling are nav entries with no file behind them.
	NavDangling []string `json:"nav_dangling,omitempty"`
}

// OK reports whether the tree passed the pre-check.
func (c *CheckResult) OK() bool {
	return len(c.Broken) == 0 && len(c.NavDangling) == 0
}

// Check scans the tree and reports relative links that do not resolve to an
// existing file. When navPath is non-empty, the nav config is read (never
// written) to cross-check the known document set against the tree.
func Check(root, navPath string) (*CheckResult, error) {
	scan, err := Scan(root)
	if err != nil {
		return nil, err
	}
	files := scan.fileSet()

	result := &CheckResult{
		FilesScanned: len(scan.Files),
		LinksScanned: len(scan.Refs),
		Broken:       scan.Issues,
	}
	for _, ref := range scan.Refs {
		if !files[ref.Target] {
			result.Broken = append(result.Broken, Issue{
				Kind:   IssueUnresolvableTarget,
				File:   ref.Source,
				Line:   ref.Line,
				Target: ref.RawTarget,
				Detail: "resolves to " + ref.Target + ", which does not exist",
			})
		}
	}

	if navPath != "" {
		navDocs, err := LoadNav(navPath)
		if err != nil {
			return nil, err
		}
		inNav := make(map[string]bool, len(navDocs))
		for _, d := range navDocs {
			inNav[d] = true
			if !files[d] {
				result.NavDangling = append(result.NavDangling, d)
			}
		}
		for _, f := range scan.Files {
			if !inNav[f] {
				result.NotInNav = append(result.NotInNav, f)
			}
		}
		sort.Strings(result.NavDangling)
		sort.Strings(result.NotInNav)
	}
	return result, nil
}
