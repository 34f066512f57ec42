package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jlindsey/wikigraph/internal/article"
	"github.com/jlindsey/wikigraph/internal/config"
	"github.com/jlindsey/wikigraph/internal/flatten"
	"github.com/jlindsey/wikigraph/internal/pipeline"
)

var createCSVCmd = &cobra.Command{
	Use:   "create-csv <parsed-dir> <csv-dir>",
	Short: "Flatten parsed records into CSV interchange for the bulk loader",
	Long: `Create-csv reads the parsed JSON records bucket by bucket and writes one
CSV set per bucket: node files (articles, persons, categories, sections) and
edge files (authored, links_to, redirects_to, in_category, links_to_section,
part_of).`,
	Args: cobra.ExactArgs(2),
	RunE: runCreateCSV,
}

func init() {
	rootCmd.AddCommand(createCSVCmd)
}

func runCreateCSV(cmd *cobra.Command, args []string) error {
	parsedDir, csvDir := args[0], args[1]
	cfg := config.Load()

	entries, err := os.ReadDir(parsedDir)
	if err != nil {
		return fmt.Errorf("reading parsed dir: %w", err)
	}

	var buckets []string
	for _, e := range entries {
		if e.IsDir() {
			buckets = append(buckets, e.Name())
		}
	}

	tasks := make(chan pipeline.Task)
	go func() {
		defer close(tasks)
		for _, bucket := range buckets {
			tasks <- pipeline.Task{
				Name: bucket,
				Run:  flattenBucket(filepath.Join(parsedDir, bucket), filepath.Join(csvDir, bucket)),
			}
		}
	}()

	progress := pipeline.NewProgress(logger, "flattening buckets", int64(len(buckets)))
	stats := pipeline.NewRunner(cfg.WorkerCount, logger).Run(cmd.Context(), tasks, progress)

	logger.Info("create-csv complete", "buckets", stats.Done, "failed", stats.Failed)
	return nil
}

// flattenBucket folds every record in one bucket into a Batch and writes its
// CSV set. A record that fails to decode is logged and dropped; the rest of
// the bucket still flattens.
func flattenBucket(bucketDir, outDir string) func(context.Context) error {
	return func(ctx context.Context) error {
		batch := flatten.NewBatch()

		err := filepath.WalkDir(bucketDir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || !strings.HasSuffix(d.Name(), ".json") {
				return nil
			}
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			var rec article.Record
			if err := json.Unmarshal(data, &rec); err != nil {
				logger.Error("skipping undecodable record", "path", path, "error", err)
				return nil
			}
			batch.Add(&rec)
			return nil
		})
		if err != nil {
			return err
		}

		return batch.WriteCSV(outDir)
	}
}
