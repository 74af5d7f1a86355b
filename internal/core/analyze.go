package core

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/darkliquid/textstats"
)

// Thresholds are the pass/fail limits for analyze --check.
type Thresholds struct {
	MaxGrade float64 // Flesch-Kincaid grade level
	MaxARI   float64
	MaxFog   float64
	MinEase  float64 // Flesch reading ease
	MaxLines int     // 0 disables the line limit
}

// DefaultThresholds returns limits tuned for technical documentation.
func DefaultThresholds() Thresholds {
	return Thresholds{
		MaxGrade: 14.0,
		MaxARI:   14.0,
		MaxFog:   16.0,
		MinEase:  30.0,
		MaxLines: 375,
	}
}

// Structural holds raw size metrics.
type Structural struct {
	Lines              int `json:"lines"`
	Words              int `json:"words"`
	Sentences          int `json:"sentences"`
	Characters         int `json:"characters"`
	ReadingTimeMinutes int `json:"reading_time_minutes"`
}

// Headings counts headings by level.
type Headings struct {
	H1 int `json:"h1"`
	H2 int `json:"h2"`
	H3 int `json:"h3"`
	H4 int `json:"h4"`
	H5 int `json:"h5"`
	H6 int `json:"h6"`
}

// Readability holds the computed readability indices.
type Readability struct {
	FleschKincaidGrade float64 `json:"flesch_kincaid_grade"`
	FleschReadingEase  float64 `json:"flesch_reading_ease"`
	ARI                float64 `json:"ari"`
	ColemanLiau        float64 `json:"coleman_liau"`
	GunningFog         float64 `json:"gunning_fog"`
	SMOG               float64 `json:"smog"`
}

// Composition breaks a file down into prose, code, and empty lines.
type Composition struct {
	TotalLines     int     `json:"total_lines"`
	ProseLines     int     `json:"prose_lines"`
	CodeLines      int     `json:"code_lines"`
	EmptyLines     int     `json:"empty_lines"`
	CodeBlockRatio float64 `json:"code_block_ratio"`
}

// FileMetrics is the full analysis of one document.
type FileMetrics struct {
	File        string      `json:"file"`
	Structural  Structural  `json:"structural"`
	Headings    Headings    `json:"headings"`
	Readability Readability `json:"readability"`
	Composition Composition `json:"composition"`
	Status      string      `json:"status"` // "pass" or "fail"
}

// Analyzer computes readability and structure metrics for markdown files.
type Analyzer struct {
	Thresholds Thresholds
}

// NewAnalyzer creates an Analyzer with default thresholds.
func NewAnalyzer() *Analyzer {
	return &Analyzer{Thresholds: DefaultThresholds()}
}

// AnalyzeTree processes every markdown file under root. CHANGELOG.md and
// CONTRIBUTING.md are skipped.
func (a *Analyzer) AnalyzeTree(root string) ([]*FileMetrics, error) {
	scan, err := Scan(root)
	if err != nil {
		return nil, err
	}
	var results []*FileMetrics
	for _, file := range scan.Files {
		base := filepath.Base(file)
		if base == "CHANGELOG.md" || base == "CONTRIBUTING.md" {
			continue
		}
		content, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(file)))
		if err != nil {
			return nil, err
		}
		results = append(results, a.Analyze(file, string(content)))
	}
	return results, nil
}

// Analyze computes metrics for a single document.
func (a *Analyzer) Analyze(file, content string) *FileMetrics {
	comp, headings := composition(content)

	_, body, ok := splitFrontmatter(content)
	if !ok {
		body = content
	}
	prose := proseText(body)

	wordCount := len(strings.Fields(prose))
	sentences := countSentences(prose)

	m := &FileMetrics{
		File: file,
		Structural: Structural{
			Lines:              comp.TotalLines,
			Words:              wordCount,
			Sentences:          sentences,
			Characters:         len(prose),
			ReadingTimeMinutes: readingTime(wordCount),
		},
		Headings:    headings,
		Readability: readability(prose),
		Composition: comp,
	}
	m.Status = a.status(m)
	return m
}

func (a *Analyzer) status(m *FileMetrics) string {
	t := a.Thresholds
	switch {
	case m.Readability.FleschKincaidGrade > t.MaxGrade,
		m.Readability.ARI > t.MaxARI,
		m.Readability.GunningFog > t.MaxFog,
		m.Readability.FleschReadingEase < t.MinEase:
		return "fail"
	case t.MaxLines > 0 && m.Structural.Lines > t.MaxLines:
		return "fail"
	}
	return "pass"
}

// composition tallies line categories and headings in one pass.
func composition(content string) (Composition, Headings) {
	var c Composition
	var h Headings
	inFence := false
	for _, line := range strings.Split(content, "\n") {
		c.TotalLines++
		trim := strings.TrimSpace(line)
		if strings.HasPrefix(trim, "```") {
			inFence = !inFence
			c.CodeLines++
			continue
		}
		if inFence {
			c.CodeLines++
			continue
		}
		if trim == "" {
			c.EmptyLines++
			continue
		}
		level := 0
		for level < len(trim) && trim[level] == '#' {
			level++
		}
		if level > 0 && level <= 6 && level < len(trim) && trim[level] == ' ' {
			switch level {
			case 1:
				h.H1++
			case 2:
				h.H2++
			case 3:
				h.H3++
			case 4:
				h.H4++
			case 5:
				h.H5++
			case 6:
				h.H6++
			}
		}
	}
	c.ProseLines = c.TotalLines - c.CodeLines - c.EmptyLines
	if c.TotalLines > 0 {
		c.CodeBlockRatio = float64(c.CodeLines) / float64(c.TotalLines)
	}
	return c, h
}

// proseText strips fenced code blocks and markdown syntax noise, keeping the
// running text the readability formulas should see.
func proseText(body string) string {
	var b strings.Builder
	inFence := false
	for _, line := range strings.Split(body, "\n") {
		trim := strings.TrimSpace(line)
		if strings.HasPrefix(trim, "```") {
			inFence = !inFence
			continue
		}
		if inFence {
			continue
		}
		// Keep heading text, drop the markers.
		if level := strings.IndexFunc(trim, func(r rune) bool { return r != '#' }); level > 0 {
			if level < len(trim) && trim[level] == ' ' {
				line = trim[level+1:]
			}
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return strings.TrimSpace(b.String())
}

// countSentences estimates sentence count from terminal punctuation.
func countSentences(text string) int {
	count := 0
	for _, r := range text {
		if r == '.' || r == '!' || r == '?' {
			count++
		}
	}
	if count == 0 && len(text) > 0 {
		return 1
	}
	return count
}

// readingTime estimates minutes at 200 WPM for technical content.
func readingTime(words int) int {
	minutes := words / 200
	if minutes == 0 && words > 0 {
		return 1
	}
	return minutes
}

// readability computes the standard indices over prose text. Empty prose
// (an all-code file) yields the zero value rather than divide-by-zero noise.
func readability(prose string) Readability {
	if strings.TrimSpace(prose) == "" {
		return Readability{}
	}
	return Readability{
		FleschKincaidGrade: textstats.FleschKincaidGradeLevel(prose),
		FleschReadingEase:  textstats.FleschKincaidReadingEase(prose),
		ARI:                textstats.AutomatedReadabilityIndex(prose),
		ColemanLiau:        textstats.ColemanLiauIndex(prose),
		GunningFog:         textstats.GunningFogScore(prose),
		SMOG:               textstats.SMOGIndex(prose),
	}
}
