package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/adaptive-enforcement-lab/mdmigrate/internal/core"
)

func runAnalyze(args []string) error {
	fs := flag.NewFlagSet("analyze", flag.ContinueOnError)
	root := fs.String("root", ".", "content root directory")
	format := fs.String("format", "text", "output format (json or text)")
	check := fs.Bool("check", false, "fail when any file exceeds the thresholds")
	maxGrade := fs.Float64("max-grade", 14.0, "maximum Flesch-Kincaid grade level")
	maxARI := fs.Float64("max-ari", 14.0, "maximum ARI score")
	maxFog := fs.Float64("max-fog", 16.0, "maximum Gunning fog score")
	minEase := fs.Float64("min-ease", 30.0, "minimum Flesch reading ease")
	maxLines := fs.Int("max-lines", 375, "maximum lines per file (0 to disable)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := validateFormat(*format); err != nil {
		return err
	}

	a := core.NewAnalyzer()
	a.Thresholds.MaxGrade = *maxGrade
	a.Thresholds.MaxARI = *maxARI
	a.Thresholds.MaxFog = *maxFog
	a.Thresholds.MinEase = *minEase
	a.Thresholds.MaxLines = *maxLines

	results, err := a.AnalyzeTree(*root)
	if err != nil {
		return err
	}

	switch *format {
	case "json":
		if err := printJSON(os.Stdout, results); err != nil {
			return err
		}
	default:
		printAnalyzeText(os.Stdout, results)
	}

	if *check {
		failed := 0
		for _, r := range results {
			if r.Status == "fail" {
				failed++
			}
		}
		if failed > 0 {
			return fmt.Errorf("%d files exceed the thresholds", failed)
		}
	}
	return nil
}
