package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jlindsey/wikigraph/internal/config"
	"github.com/jlindsey/wikigraph/internal/pipeline"
	"github.com/jlindsey/wikigraph/internal/store"
	"github.com/jlindsey/wikigraph/internal/wikitext"
)

var (
	flagParseForce  bool
	flagMaxArticles int
	flagWorkers     int
)

var parseCmd = &cobra.Command{
	Use:   "parse <input-dir> <output-dir>",
	Short: "Parse extracted articles into structured JSON records",
	Long: `Parse structures every extracted article: redirect detection, section
decomposition, link classification, and category extraction. Output mirrors
the input bucket layout with one JSON record per article. Articles are
processed by a worker pool; a failing article is logged and skipped, never
aborting the batch.`,
	Args: cobra.ExactArgs(2),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().BoolVar(&flagParseForce, "force", false, "Overwrite existing files")
	parseCmd.Flags().IntVar(&flagMaxArticles, "max-articles", 0, "Maximum number of articles to process (0 = all)")
	parseCmd.Flags().IntVar(&flagWorkers, "workers", 0, "Number of parallel workers (0 = WORKER_COUNT)")
}

func runParse(cmd *cobra.Command, args []string) error {
	inDir, outDir := args[0], args[1]
	cfg := config.Load()

	workers := flagWorkers
	if workers < 1 {
		workers = cfg.WorkerCount
	}

	st := store.New(inDir)
	paths, err := st.List()
	if err != nil {
		return err
	}
	if flagMaxArticles > 0 && len(paths) > flagMaxArticles {
		paths = paths[:flagMaxArticles]
	}

	parser := wikitext.New(logger, wikitext.Options{CategoryKeyword: cfg.CategoryKeyword})

	tasks := make(chan pipeline.Task)
	go func() {
		defer close(tasks)
		for _, path := range paths {
			tasks <- pipeline.Task{
				Name: path,
				Run:  parseTask(parser, st, path, outDir),
			}
		}
	}()

	progress := pipeline.NewProgress(logger, "parsing articles", int64(len(paths)))
	stats := pipeline.NewRunner(workers, logger).Run(cmd.Context(), tasks, progress)

	logger.Info("parse complete",
		"done", stats.Done, "failed", stats.Failed, "skipped", stats.Skipped)
	return nil
}

// parseTask structures one article file into a JSON record next to its
// bucket under outDir.
func parseTask(parser *wikitext.Parser, st *store.Store, path, outDir string) func(context.Context) error {
	return func(ctx context.Context) error {
		rel, err := st.Rel(path)
		if err != nil {
			return err
		}
		target := filepath.Join(outDir, strings.TrimSuffix(rel, store.Ext)+".json")

		if !flagParseForce {
			if _, err := os.Stat(target); err == nil {
				return pipeline.ErrSkipped
			}
		}

		env, text, err := store.Load(path)
		if err != nil {
			return err
		}
		rec := parser.Parse(env, text)

		data, err := json.MarshalIndent(rec, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal record: %w", err)
		}
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return fmt.Errorf("creating output dir: %w", err)
		}
		return os.WriteFile(target, data, 0o644)
	}
}
