package main

import (
	"errors"
	"io"

	"github.com/spf13/cobra"

	"github.com/jlindsey/wikigraph/internal/dump"
	"github.com/jlindsey/wikigraph/internal/pipeline"
	"github.com/jlindsey/wikigraph/internal/store"
)

var (
	flagExtractForce bool
	flagMaxPages     int
)

var extractCmd = &cobra.Command{
	Use:   "extract <dump-file> <output-dir>",
	Short: "Extract articles from a wiki XML dump into the bucket store",
	Long: `Extract streams the dump (plain XML or .bz2) and writes one file per
article: a JSON metadata line followed by the raw markup, bucketed by a hash
of the title so no directory grows unbounded.`,
	Args: cobra.ExactArgs(2),
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)
	extractCmd.Flags().BoolVar(&flagExtractForce, "force", false, "Overwrite existing files")
	extractCmd.Flags().IntVar(&flagMaxPages, "max-pages", 0, "Maximum number of pages to extract (0 = all)")
}

func runExtract(cmd *cobra.Command, args []string) error {
	dumpPath, outDir := args[0], args[1]

	r, err := dump.Open(dumpPath)
	if err != nil {
		return err
	}
	defer r.Close()

	st := store.New(outDir)
	reader := dump.NewReader(r)
	progress := pipeline.NewProgress(logger, "extracting pages", int64(flagMaxPages))

	var pages, saved, skipped int
	for {
		if flagMaxPages > 0 && pages >= flagMaxPages {
			break
		}
		page, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			logger.Error("skipping undecodable page", "error", err)
			continue
		}
		pages++
		progress.Tick()

		env, text, ok := page.Envelope()
		if !ok {
			logger.Warn("page has no revisions, skipping", "title", page.Title)
			continue
		}
		switch _, err := st.Save(env, text, flagExtractForce); {
		case errors.Is(err, store.ErrExists):
			skipped++
		case err != nil:
			logger.Error("saving article failed", "title", page.Title, "error", err)
		default:
			saved++
		}
	}

	logger.Info("extract complete", "pages", pages, "saved", saved, "skipped", skipped)
	return nil
}
