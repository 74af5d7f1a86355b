package main

import (
	"flag"
	"os"

	"github.com/adaptive-enforcement-lab/mdmigrate/internal/core"
)

var validStatsFieldsCLI = map[string]bool{
	core.StatsFieldDocuments:      true,
	core.StatsFieldLinks:          true,
	core.StatsFieldBroken:         true,
	core.StatsFieldMostReferenced: true,
}

func runStats(args []string) error {
	fs := flag.NewFlagSet("stats", flag.ContinueOnError)
	root := fs.String("root", ".", "content root directory")
	format := fs.String("format", "text", "output format (json or text)")
	fields := fs.String("fields", "", "comma-separated fields to output")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := validateFormat(*format); err != nil {
		return err
	}
	fieldList := parseFields(*fields)
	if err := validateFields(fieldList, validStatsFieldsCLI, "stats"); err != nil {
		return err
	}

	result, err := core.Stats(*root, core.StatsOptions{Fields: fieldList})
	if err != nil {
		return err
	}

	switch *format {
	case "json":
		return printJSON(os.Stdout, result)
	default:
		printStatsText(os.Stdout, result, fieldList)
		return nil
	}
}
