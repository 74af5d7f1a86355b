package core

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeTree creates files under a temp root from a path→content map and
// returns the root.
func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for p, content := range files {
		full := filepath.Join(root, filepath.FromSlash(p))
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func TestScanContent_Basic(t *testing.T) {
	content := "# Doc\n\nSee [guide](guide.md) and [deep](sub/deep.md#install).\n"
	refs, issues := scanContent("start.md", content)
	if len(issues) != 0 {
		t.Fatalf("unexpected issues: %v", issues)
	}
	if len(refs) != 2 {
		t.Fatalf("got %d refs, want 2", len(refs))
	}

	first := refs[0]
	if first.RawTarget != "guide.md" || first.Target != "guide.md" || first.Fragment != "" {
		t.Errorf("first ref = %+v", first)
	}
	if first.Line != 3 {
		t.Errorf("first ref line = %d, want 3", first.Line)
	}
	if got := content[first.Offset : first.Offset+len(first.RawTarget)]; got != "guide.md" {
		t.Errorf("offset %d points at %q", first.Offset, got)
	}

	second := refs[1]
	if second.RawTarget != "sub/deep.md#install" || second.Target != "sub/deep.md" || second.Fragment != "#install" {
		t.Errorf("second ref = %+v", second)
	}
	if got := content[second.Offset : second.Offset+len(second.RawTarget)]; got != "sub/deep.md#install" {
		t.Errorf("offset %d points at %q", second.Offset, got)
	}
}

func TestScanContent_ResolvesAgainstSourceDir(t *testing.T) {
	refs, _ := scanContent("topic/a.md", "[up](../shared.md) [side](b.md)\n")
	if len(refs) != 2 {
		t.Fatalf("got %d refs, want 2", len(refs))
	}
	if refs[0].Target != "shared.md" {
		t.Errorf("refs[0].Target = %q, want shared.md", refs[0].Target)
	}
	if refs[1].Target != "topic/b.md" {
		t.Errorf("refs[1].Target = %q, want topic/b.md", refs[1].Target)
	}
}

func TestScanContent_Exclusions(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"absolute url", "[x](https://example.com/a.md)\n"},
		{"plain http url", "[x](http://example.com/a.md)\n"},
		{"site-root link", "[x](/docs/a.md)\n"},
		{"anchor only", "[x](#section)\n"},
		{"non-md target", "[x](image.png)\n"},
		{"mailto", "[x](mailto:a@example.md)\n"},
		{"wikilink", "[[a.md]]\n"},
		{"no links at all", "plain prose with a.md mentioned\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			refs, issues := scanContent("doc.md", tt.content)
			if len(refs) != 0 {
				t.Errorf("got refs %v, want none", refs)
			}
			if len(issues) != 0 {
				t.Errorf("got issues %v, want none", issues)
			}
		})
	}
}

func TestScanContent_SkipsCode(t *testing.T) {
	content := strings.Join([]string{
		"[real](a.md)",
		"```",
		"[fenced](a.md)",
		"```",
		"here `[inline](a.md)` but [after](b.md)",
		"",
	}, "\n")
	refs, _ := scanContent("doc.md", content)
	if len(refs) != 2 {
		t.Fatalf("got %d refs, want 2: %+v", len(refs), refs)
	}
	if refs[0].Target != "a.md" || refs[0].Line != 1 {
		t.Errorf("refs[0] = %+v", refs[0])
	}
	if refs[1].Target != "b.md" || refs[1].Line != 5 {
		t.Errorf("refs[1] = %+v", refs[1])
	}
}

func TestScanContent_NestedImageLink(t *testing.T) {
	// The inner "](" pair wins, so the outer .md target of a badge link is
	// not extracted. Links after it on the same line are still found.
	content := "[![badge](img.png)](doc.md) and [a](a.md)\n"
	refs, issues := scanContent("readme.md", content)
	if len(issues) != 0 {
		t.Fatalf("unexpected issues: %v", issues)
	}
	if len(refs) != 1 {
		t.Fatalf("got %d refs, want 1: %+v", len(refs), refs)
	}
	if refs[0].Target != "a.md" {
		t.Errorf("refs[0].Target = %q, want a.md", refs[0].Target)
	}
}

func TestScanContent_Issues(t *testing.T) {
	refs, issues := scanContent("doc.md", "[empty]() and [out](../esc.md)\n")
	if len(refs) != 0 {
		t.Errorf("got refs %v, want none", refs)
	}
	if len(issues) != 2 {
		t.Fatalf("got %d issues, want 2: %v", len(issues), issues)
	}
	for _, iss := range issues {
		if iss.Kind != IssueMalformedLink {
			t.Errorf("issue kind = %s, want %s", iss.Kind, IssueMalformedLink)
		}
	}
}

func TestScanContent_TwoLinksSameTarget(t *testing.T) {
	content := "[one](a.md) then [two](a.md)\n"
	refs, _ := scanContent("doc.md", content)
	if len(refs) != 2 {
		t.Fatalf("got %d refs, want 2", len(refs))
	}
	if refs[0].Offset == refs[1].Offset {
		t.Error("identical targets must keep independent offsets")
	}
}

func TestScan(t *testing.T) {
	root := writeTree(t, map[string]string{
		"a.md":          "[b](topic/b.md)\n",
		"topic/b.md":    "[a](../a.md)\n",
		"notes.txt":     "[ignored](a.md)\n",
		".hidden/c.md":  "[ignored](../a.md)\n",
		"topic/img.png": "binary\n",
	})
	result, err := Scan(root)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(result.Files) != 2 {
		t.Fatalf("Files = %v, want 2 markdown files", result.Files)
	}
	if !result.HasFile("a.md") || !result.HasFile("topic/b.md") {
		t.Errorf("Files = %v", result.Files)
	}
	if len(result.Refs) != 2 {
		t.Errorf("Refs = %+v, want 2", result.Refs)
	}
}

func TestScan_MissingRoot(t *testing.T) {
	_, err := Scan(filepath.Join(t.TempDir(), "nope"))
	if err == nil || !strings.Contains(err.Error(), "content root not found") {
		t.Errorf("expected content root error, got %v", err)
	}
}
