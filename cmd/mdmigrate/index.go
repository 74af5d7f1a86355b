package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/adaptive-enforcement-lab/mdmigrate/internal/core"
)

func runIndex(args []string) error {
	fs := flag.NewFlagSet("index", flag.ContinueOnError)
	root := fs.String("root", ".", "content root directory")
	if err := fs.Parse(args); err != nil {
		return err
	}
	result, err := core.BuildIndex(*root)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "indexed %d documents, %d links\n", result.Documents, result.Links)
	return nil
}
