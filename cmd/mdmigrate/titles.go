package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/adaptive-enforcement-lab/mdmigrate/internal/core"
)

func runTitles(args []string) error {
	fs := flag.NewFlagSet("titles", flag.ContinueOnError)
	root := fs.String("root", ".", "content root directory")
	dryRun := fs.Bool("dry-run", false, "print repairs without writing")
	if err := fs.Parse(args); err != nil {
		return err
	}

	fixes, err := core.FixTitles(*root, core.TitlesOptions{DryRun: *dryRun})
	if err != nil {
		return err
	}
	for _, f := range fixes {
		fmt.Fprintf(os.Stdout, "%s %s: %s\n", f.Action, f.File, f.Title)
	}
	verb := "repaired"
	if *dryRun {
		verb = "would repair"
	}
	fmt.Fprintf(os.Stdout, "%s %d files\n", verb, len(fixes))
	return nil
}
