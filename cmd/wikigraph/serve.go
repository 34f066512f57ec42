package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/jlindsey/wikigraph/internal/api"
	"github.com/jlindsey/wikigraph/internal/config"
	"github.com/jlindsey/wikigraph/internal/wikitext"
)

var serveCmd = &cobra.Command{
	Use:   "serve <parsed-dir>",
	Short: "Serve parsed records over HTTP for inspection",
	Long: `Serve exposes a read-only preview API over a directory of parsed
records: fetch a record, view a section's best-effort HTML rendering, or
parse an ad-hoc article payload. Intended for local inspection, not as a
production surface.`,
	Args: cobra.ExactArgs(1),
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	parser := wikitext.New(logger, wikitext.Options{CategoryKeyword: cfg.CategoryKeyword})
	srv := api.NewServer(args[0], parser, logger, cfg)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		httpServer.Shutdown(shutdownCtx)
	}()

	logger.Info("starting preview server", "port", cfg.Port, "parsed_dir", args[0])
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
