package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/adaptive-enforcement-lab/mdmigrate/internal/core"
)

// parseFields splits a comma-separated field string into a slice.
// Returns nil for empty input.
func parseFields(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// validateFormat checks that format is "json" or "text".
func validateFormat(format string) error {
	if format != "json" && format != "text" {
		return fmt.Errorf("invalid format: %q (must be json or text)", format)
	}
	return nil
}

// validateFields checks that all fields are in the valid set.
func validateFields(fields []string, valid map[string]bool, name string) error {
	for _, f := range fields {
		if !valid[f] {
			return fmt.Errorf("unknown %s field: %s", name, f)
		}
	}
	return nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printMigrateText(w io.Writer, r *core.Report, dryRun bool) {
	if dryRun {
		for _, e := range r.Edits {
			fmt.Fprintf(w, "%s:%d: %s -> %s\n", e.File, e.Line, e.Old, e.New)
		}
	}
	for _, iss := range r.Issues {
		fmt.Fprintf(w, "%s\n", iss)
	}
	fmt.Fprintf(w, "files scanned:  %d\n", r.FilesScanned)
	fmt.Fprintf(w, "links scanned:  %d\n", r.LinksScanned)
	fmt.Fprintf(w, "edits planned:  %d\n", r.EditsPlanned)
	if !dryRun {
		fmt.Fprintf(w, "edits applied:  %d\n", r.EditsApplied)
		fmt.Fprintf(w, "files modified: %d\n", r.FilesModified)
	}
	fmt.Fprintf(w, "problems:       %d\n", len(r.Issues))
}

func printCheckText(w io.Writer, c *core.CheckResult) {
	for _, iss := range c.Broken {
		fmt.Fprintf(w, "%s\n", iss)
	}
	for _, d := range c.NavDangling {
		fmt.Fprintf(w, "nav entry has no file: %s\n", d)
	}
	for _, d := range c.NotInNav {
		fmt.Fprintf(w, "not in nav: %s\n", d)
	}
	fmt.Fprintf(w, "files scanned: %d\n", c.FilesScanned)
	fmt.Fprintf(w, "links scanned: %d\n", c.LinksScanned)
	fmt.Fprintf(w, "broken links:  %d\n", len(c.Broken))
}

func printStatsText(w io.Writer, s *core.StatsResult, fields []string) {
	show := func(f string) bool {
		if len(fields) == 0 {
			return true
		}
		for _, v := range fields {
			if v == f {
				return true
			}
		}
		return false
	}
	if show(core.StatsFieldDocuments) {
		fmt.Fprintf(w, "documents:    %d\n", s.Documents)
	}
	if show(core.StatsFieldLinks) {
		fmt.Fprintf(w, "links:        %d\n", s.Links)
	}
	if show(core.StatsFieldBroken) {
		fmt.Fprintf(w, "broken links: %d\n", s.BrokenLinks)
	}
	if show(core.StatsFieldMostReferenced) && len(s.MostReferenced) > 0 {
		fmt.Fprintf(w, "most referenced:\n")
		for _, tc := range s.MostReferenced {
			fmt.Fprintf(w, "  %4d  %s\n", tc.Count, tc.Path)
		}
	}
}

func printAnalyzeText(w io.Writer, results []*core.FileMetrics) {
	for _, r := range results {
		fmt.Fprintf(w, "%-4s %-50s grade=%5.1f ease=%5.1f fog=%5.1f lines=%d words=%d\n",
			r.Status, r.File,
			r.Readability.FleschKincaidGrade,
			r.Readability.FleschReadingEase,
			r.Readability.GunningFog,
			r.Structural.Lines, r.Structural.Words)
	}
}
