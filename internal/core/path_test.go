package core

import "testing"

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"a.md", "a.md"},
		{"./a.md", "a.md"},
		{"topic/a.md", "topic/a.md"},
		{"topic//a.md", "topic/a.md"},
		{"topic/./a.md", "topic/a.md"},
		{"topic/../a.md", "a.md"},
		{".", ""},
		{"", ""},
		{"../a.md", "../a.md"},
	}
	for _, tt := range tests {
		if got := NormalizePath(tt.in); got != tt.want {
			t.Errorf("NormalizePath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSplitFragment(t *testing.T) {
	tests := []struct {
		in       string
		path     string
		fragment string
	}{
		{"a.md", "a.md", ""},
		{"a.md#section", "a.md", "#section"},
		{"topic/a.md#a#b", "topic/a.md", "#a#b"},
		{"#only", "", "#only"},
	}
	for _, tt := range tests {
		p, f := SplitFragment(tt.in)
		if p != tt.path || f != tt.fragment {
			t.Errorf("SplitFragment(%q) = (%q, %q), want (%q, %q)", tt.in, p, f, tt.path, tt.fragment)
		}
	}
}

func TestResolveTarget(t *testing.T) {
	tests := []struct {
		target    string
		sourceDir string
		want      string
		wantErr   bool
	}{
		{"a.md", "", "a.md", false},
		{"a.md", "topic", "topic/a.md", false},
		{"../a.md", "topic", "a.md", false},
		{"../other/b.md", "topic", "other/b.md", false},
		{"./a.md", "topic", "topic/a.md", false},
		{"sub/a.md", "topic", "topic/sub/a.md", false},
		{"../a.md", "", "", true},  // escapes root
		{"../../a.md", "x", "", true},
		{"", "topic", "", true}, // empty target
	}
	for _, tt := range tests {
		got, err := ResolveTarget(tt.target, tt.sourceDir)
		if (err != nil) != tt.wantErr {
			t.Errorf("ResolveTarget(%q, %q) error = %v, wantErr %v", tt.target, tt.sourceDir, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ResolveTarget(%q, %q) = %q, want %q", tt.target, tt.sourceDir, got, tt.want)
		}
	}
}

func TestRelativeTo(t *testing.T) {
	tests := []struct {
		sourceDir string
		target    string
		want      string
	}{
		{"", "a.md", "a.md"},
		{"", "topic/a.md", "topic/a.md"},
		{"topic", "shared.md", "../shared.md"},
		{"topic", "topic/a.md", "a.md"},
		{"topic", "topic/sub/a.md", "sub/a.md"},
		{"topic1", "topic2/b.md", "../topic2/b.md"},
		{"a/b", "a/c/d.md", "../c/d.md"},
		{"a/b", "x.md", "../../x.md"},
	}
	for _, tt := range tests {
		if got := RelativeTo(tt.sourceDir, tt.target); got != tt.want {
			t.Errorf("RelativeTo(%q, %q) = %q, want %q", tt.sourceDir, tt.target, got, tt.want)
		}
	}
}

func TestResolve(t *testing.T) {
	table, err := NewMoveTable([]MovePair{
		{From: "a.md", To: "topic/a.md"},
		{From: "b.md", To: "topic2/b.md"},
	})
	if err != nil {
		t.Fatalf("move table: %v", err)
	}

	tests := []struct {
		name         string
		oldTarget    string
		sourceOldDir string
		sourceNewDir string
		want         string
	}{
		{
			name:         "sibling link to moved file, source unmoved",
			oldTarget:    "a.md",
			sourceOldDir: "",
			sourceNewDir: "",
			want:         "topic/a.md",
		},
		{
			name:         "moved source links stationary file",
			oldTarget:    "shared.md",
			sourceOldDir: "",
			sourceNewDir: "topic",
			want:         "../shared.md",
		},
		{
			name:         "moved source links co-moved old sibling",
			oldTarget:    "b.md",
			sourceOldDir: "",
			sourceNewDir: "topic1",
			want:         "../topic2/b.md",
		},
		{
			name:         "source and target land in the same directory",
			oldTarget:    "b.md",
			sourceOldDir: "",
			sourceNewDir: "topic2",
			want:         "b.md",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.oldTarget, tt.sourceOldDir, tt.sourceNewDir, table)
			if err != nil {
				t.Fatalf("Resolve: %v", err)
			}
			if got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.oldTarget, got, tt.want)
			}
		})
	}

	if _, err := Resolve("../escape.md", "", "topic", table); err == nil {
		t.Error("expected error for target escaping the content root")
	}
	if _, err := Resolve("", "", "topic", table); err == nil {
		t.Error("expected error for empty target")
	}
}
