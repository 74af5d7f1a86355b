package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime/debug"
)

var version = "dev"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "migrate":
		err = runMigrate(os.Args[2:])
	case "check":
		err = runCheck(os.Args[2:])
	case "index":
		err = runIndex(os.Args[2:])
	case "stats":
		err = runStats(os.Args[2:])
	case "analyze":
		err = runAnalyze(os.Args[2:])
	case "titles":
		err = runTitles(os.Args[2:])
	case "--version":
		printVersion(os.Stdout)
		return
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func printVersion(w io.Writer) {
	v := version
	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
			v = info.Main.Version
		}
	}
	fmt.Fprintf(w, "mdmigrate version %s\n", v)
}

func printUsage() {
	fmt.Fprint(os.Stderr, `Usage: mdmigrate <command> [options]

Migration Commands:
  migrate    Rewrite relative links after a tree restructuring
  check      Report broken relative links (fast pre-validation)
  titles     Repair front-matter titles

Inspection Commands:
  index      Build the document/link index
  stats      Show index statistics
  analyze    Show readability and structure metrics

Run 'mdmigrate <command> --help' for command-specific help.
Use 'mdmigrate --version' for version information.
`)
}
