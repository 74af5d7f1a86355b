package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/adaptive-enforcement-lab/mdmigrate/internal/core"
)

func runMigrate(args []string) error {
	fs := flag.NewFlagSet("migrate", flag.ContinueOnError)
	root := fs.String("root", ".", "content root directory")
	moves := fs.String("moves", "", "migration descriptor file (YAML)")
	dryRun := fs.Bool("dry-run", false, "print proposed edits without writing")
	format := fs.String("format", "text", "output format (json or text)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := validateFormat(*format); err != nil {
		return err
	}
	if *moves == "" {
		return fmt.Errorf("--moves is required")
	}

	report, err := core.Migrate(*root, *moves, core.MigrateOptions{DryRun: *dryRun})
	if err != nil {
		return err
	}

	switch *format {
	case "json":
		if err := printJSON(os.Stdout, report); err != nil {
			return err
		}
	default:
		printMigrateText(os.Stdout, report, *dryRun)
	}

	if report.HasProblems() {
		return fmt.Errorf("%d links could not be migrated cleanly", len(report.Issues))
	}
	return nil
}
