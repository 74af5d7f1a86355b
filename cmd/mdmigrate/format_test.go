package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/adaptive-enforcement-lab/mdmigrate/internal/core"
)

func TestParseFields(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"", nil},
		{"  ", nil},
		{"documents", []string{"documents"}},
		{"documents,links", []string{"documents", "links"}},
		{" documents , links ", []string{"documents", "links"}},
		{",,,", nil},
	}
	for _, tt := range tests {
		got := parseFields(tt.input)
		if len(got) != len(tt.want) {
			t.Errorf("parseFields(%q) = %v, want %v", tt.input, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("parseFields(%q)[%d] = %q, want %q", tt.input, i, got[i], tt.want[i])
			}
		}
	}
}

func TestValidateFormat(t *testing.T) {
	if err := validateFormat("text"); err != nil {
		t.Errorf("text: %v", err)
	}
	if err := validateFormat("json"); err != nil {
		t.Errorf("json: %v", err)
	}
	if err := validateFormat("yaml"); err == nil {
		t.Error("expected error for yaml")
	}
}

func TestValidateFields(t *testing.T) {
	valid := map[string]bool{"documents": true, "links": true}
	if err := validateFields([]string{"documents"}, valid, "stats"); err != nil {
		t.Errorf("documents: %v", err)
	}
	err := validateFields([]string{"bogus"}, valid, "stats")
	if err == nil || !strings.Contains(err.Error(), "unknown stats field") {
		t.Errorf("expected unknown field error, got %v", err)
	}
}

func TestPrintMigrateText(t *testing.T) {
	report := &core.Report{
		FilesScanned: 3,
		LinksScanned: 5,
		EditsPlanned: 2,
		Edits: []core.Edit{
			{File: "b.md", Line: 1, Old: "a.md", New: "topic/a.md"},
		},
		Issues: []core.Issue{
			{Kind: core.IssueUnresolvableTarget, File: "c.md", Line: 4, Target: "gone.md"},
		},
	}

	var buf bytes.Buffer
	printMigrateText(&buf, report, true)
	out := buf.String()
	if !strings.Contains(out, "b.md:1: a.md -> topic/a.md") {
		t.Errorf("missing proposed edit in output:\n%s", out)
	}
	if !strings.Contains(out, "unresolvable-target: c.md:4 (gone.md)") {
		t.Errorf("missing issue in output:\n%s", out)
	}
	if !strings.Contains(out, "edits planned:  2") {
		t.Errorf("missing summary in output:\n%s", out)
	}

	buf.Reset()
	printMigrateText(&buf, report, false)
	if strings.Contains(buf.String(), "->") {
		t.Error("non-dry-run output should not list proposed edits")
	}
}
