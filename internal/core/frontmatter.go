package core

import "strings"

// splitFrontmatter splits content into the YAML front-matter body (without the
// "---" markers) and the remaining document. ok is false when the file has no
// front-matter block.
func splitFrontmatter(content string) (frontmatter, body string, ok bool) {
	if !strings.HasPrefix(content, "---\n") && content != "---" {
		return "", content, false
	}
	lines := strings.Split(content, "\n")
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			return strings.Join(lines[1:i], "\n"), strings.Join(lines[i+1:], "\n"), true
		}
	}
	return "", content, false
}

// frontmatterTitle returns the value of the title: field in a front-matter
// block, unquoted, or "" if absent.
func frontmatterTitle(frontmatter string) string {
	for _, line := range strings.Split(frontmatter, "\n") {
		if !strings.HasPrefix(line, "title:") {
			continue
		}
		v := strings.TrimSpace(strings.TrimPrefix(line, "title:"))
		if len(v) >= 2 {
			if (v[0] == '"' && v[len(v)-1] == '"') || (v[0] == '\'' && v[len(v)-1] == '\'') {
				v = v[1 : len(v)-1]
			}
		}
		return v
	}
	return ""
}

// firstH1 returns the text of the first H1 heading in content, or "".
func firstH1(content string) string {
	inFence := false
	for _, line := range strings.Split(content, "\n") {
		trim := strings.TrimSpace(line)
		if strings.HasPrefix(trim, "```") {
			inFence = !inFence
			continue
		}
		if inFence {
			continue
		}
		if strings.HasPrefix(line, "# ") {
			return strings.TrimSpace(line[2:])
		}
	}
	return ""
}
