// Command upliftctl is the unified CLI for Uplift debugging and
// maintenance.
//
// Usage:
//
//	upliftctl                       Show help
//	upliftctl recommend [mood]      Print recommendations for a mood
//	upliftctl detect <text>         Debug the free-text mood detector
//	upliftctl import                Load catalog CSVs into the sqlite snapshot
//	upliftctl stats                 Catalog statistics
package main

import (
	"fmt"
	"os"
)

const usage = `upliftctl — Uplift debug & maintenance CLI

Usage:
  upliftctl <command> [flags]

Commands:
  recommend   Print ranked recommendations for a mood (reads stdin if no mood given)
  detect      Map free text to a canonical mood label
  import      Load catalog CSVs into the local sqlite snapshot
  stats       Catalog statistics per content type

Environment:
  UPLIFT_CATALOG_DIR   Directory holding the catalog CSV files
  UPLIFT_DB            Path to the sqlite snapshot
  UPLIFT_TOP_N         Recommendations per query (default 3)

Run 'upliftctl <command> -h' for command-specific help.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(0)
	}

	cmd := os.Args[1]
	// Strip the program name + subcommand so flag sets see only their flags
	os.Args = os.Args[1:]

	switch cmd {
	case "recommend":
		runRecommend()
	case "detect":
		runDetect()
	case "import":
		runImport()
	case "stats":
		runStats()
	case "-h", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "upliftctl: unknown command %q\n\n", cmd)
		fmt.Print(usage)
		os.Exit(1)
	}
}
