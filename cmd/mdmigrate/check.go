package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/adaptive-enforcement-lab/mdmigrate/internal/core"
)

func runCheck(args []string) error {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	root := fs.String("root", ".", "content root directory")
	nav := fs.String("nav", "", "site nav config to cross-check (read-only)")
	format := fs.String("format", "text", "output format (json or text)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := validateFormat(*format); err != nil {
		return err
	}

	result, err := core.Check(*root, *nav)
	if err != nil {
		return err
	}

	switch *format {
	case "json":
		if err := printJSON(os.Stdout, result); err != nil {
			return err
		}
	default:
		printCheckText(os.Stdout, result)
	}

	if !result.OK() {
		return fmt.Errorf("%d broken links, %d dangling nav entries",
			len(result.Broken), len(result.NavDangling))
	}
	return nil
}
