package core

import (
	"os"
	"path/filepath"
	"strings"
)

// TitlesOptions controls the title repair pass.
type TitlesOptions struct {
	DryRun bool
}

// TitleFix records one repaired file.
type TitleFix struct {
	File   string `json:"file"`
	Title  string `json:"title"`
	Action string `json:"action"` // "added" or "quoted"
}

// FixTitles ensures every document carries a usable front-matter title:
// a missing title: field is added (derived from the first H1, else from the
// file path), and an unquoted title containing a colon is quoted so the
// front matter stays valid YAML. tags.md and anything under includes/ are
// left alone.
func FixTitles(root string, opts TitlesOptions) ([]TitleFix, error) {
	scan, err := Scan(root)
	if err != nil {
		return nil, err
	}

	var fixes []TitleFix
	for _, file := range scan.Files {
		if file == "tags.md" || strings.HasPrefix(file, "includes/") {
			continue
		}
		full := filepath.Join(root, filepath.FromSlash(file))
		info, err := os.Stat(full)
		if err != nil {
			return nil, err
		}
		content, err := os.ReadFile(full)
		if err != nil {
			return nil, err
		}

		fixed, fix := fixTitle(string(content), file)
		if fix == nil {
			continue
		}
		fixes = append(fixes, *fix)
		if opts.DryRun {
			continue
		}
		if err := writeFilePreservePerm(full, []byte(fixed), info.Mode().Perm()); err != nil {
			return nil, err
		}
	}
	return fixes, nil
}

// fixTitle returns the repaired content and a description of the repair, or
// (content, nil) when nothing needed fixing.
func fixTitle(content, file string) (string, *TitleFix) {
	fm, body, hasFM := splitFrontmatter(content)

	if hasFM && hasTitleField(fm) {
		quoted, title, changed := quoteTitleColon(fm)
		if !changed {
			return content, nil
		}
		return "---\n" + quoted + "\n---\n" + body, &TitleFix{File: file, Title: title, Action: "quoted"}
	}

	title := firstH1(content)
	if title == "" {
		title = titleFromPath(file)
	}
	line := "title: " + title
	if strings.Contains(title, ":") {
		line = `title: "` + title + `"`
	}

	if hasFM {
		fm = line + "\n" + fm
	} else {
		fm = line
		body = content
	}
	return "---\n" + fm + "\n---\n" + strings.TrimLeft(body, "\n"), &TitleFix{File: file, Title: title, Action: "added"}
}

// hasTitleField reports whether a front-matter block defines title:.
func hasTitleField(fm string) bool {
	for _, line := range strings.Split(fm, "\n") {
		if strings.HasPrefix(line, "title:") {
			return true
		}
	}
	return false
}

// quoteTitleColon quotes an unquoted title value that contains a colon.
// Returns the (possibly unchanged) front matter, the title value, and whether
// a change was made.
func quoteTitleColon(fm string) (string, string, bool) {
	lines := strings.Split(fm, "\n")
	for i, line := range lines {
		if !strings.HasPrefix(line, "title:") {
			continue
		}
		v := strings.TrimSpace(strings.TrimPrefix(line, "title:"))
		if v == "" || !strings.Contains(v, ":") {
			return fm, v, false
		}
		if strings.HasPrefix(v, `"`) || strings.HasPrefix(v, "'") {
			return fm, v, false
		}
		lines[i] = `title: "` + v + `"`
		return strings.Join(lines, "\n"), v, true
	}
	return fm, "", false
}

// titleFromPath derives a Title Case title from a file path. Index files take
// the parent directory's name.
func titleFromPath(file string) string {
	base := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
	if base == "index" {
		if dir := parentDir(file); dir != "" {
			base = filepath.Base(dir)
		}
	}
	words := strings.FieldsFunc(base, func(r rune) bool { return r == '-' || r == '_' })
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
