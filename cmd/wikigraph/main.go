// Command wikigraph turns MediaWiki XML dumps into structured article
// records and bulk-loads them into Neo4j. The phases mirror the data flow:
// extract → parse → create-csv → import, plus a preview server.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var logger *slog.Logger

var rootCmd = &cobra.Command{
	Use:   "wikigraph",
	Short: "wikigraph — structure wiki dumps into graph-ready records",
	Long: `wikigraph processes MediaWiki dump files in four phases:

  extract     split a dump into one file per article, fanned out into buckets
  parse       structure each article: sections, links, categories, redirects
  create-csv  flatten parsed records into row-oriented CSV interchange
  import      bulk-load the CSV interchange into Neo4j

Each phase reads the previous phase's output directory, so phases can be
re-run independently. A preview server (serve) exposes parsed records for
inspection.`,
}

func main() {
	_ = godotenv.Load()
	logger = slog.New(slog.NewJSONHandler(os.Stdout, nil))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
