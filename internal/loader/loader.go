// Package loader bulk-loads the CSV interchange into Neo4j with templated
// LOAD CSV upserts.
package loader

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/jlindsey/wikigraph/internal/pipeline"
)

// Loader wraps a Neo4j driver for the import steps.
type Loader struct {
	driver neo4j.DriverWithContext
	log    *slog.Logger
}

func New(ctx context.Context, uri, username, password string, log *slog.Logger) (*Loader, error) {
	driver, err := neo4j.NewDriverWithContext(uri, neo4j.BasicAuth(username, password, ""))
	if err != nil {
		return nil, fmt.Errorf("creating neo4j driver: %w", err)
	}
	if err := driver.VerifyConnectivity(ctx); err != nil {
		driver.Close(ctx)
		return nil, fmt.Errorf("connecting to neo4j: %w", err)
	}
	return &Loader{driver: driver, log: log}, nil
}

func (l *Loader) Close(ctx context.Context) error {
	return l.driver.Close(ctx)
}

func (l *Loader) run(ctx context.Context, query string) error {
	session := l.driver.NewSession(ctx, neo4j.SessionConfig{})
	defer session.Close(ctx)
	_, err := session.Run(ctx, query, nil)
	return err
}

// Clear deletes every node and relationship. Large graphs may exhaust
// server memory here; it exists for rebuilding local instances.
func (l *Loader) Clear(ctx context.Context) error {
	return l.run(ctx, `MATCH (n) DETACH DELETE n`)
}

// CreateIndexes ensures the natural-key indexes the upserts depend on.
func (l *Loader) CreateIndexes(ctx context.Context) error {
	for _, q := range indexQueries {
		if err := l.run(ctx, q); err != nil {
			return fmt.Errorf("creating index: %w", err)
		}
	}
	return nil
}

// ImportDir runs every import step over the CSV tree under csvDir. Node
// files load before edge files. A file that still fails after retries is
// logged and skipped; the import continues.
func (l *Loader) ImportDir(ctx context.Context, csvDir string) error {
	for _, s := range steps {
		files, err := findFiles(csvDir, s.file)
		if err != nil {
			return err
		}
		if len(files) == 0 {
			l.log.Warn("no interchange files found", "pattern", s.file)
			continue
		}

		progress := pipeline.NewProgress(l.log, "importing "+s.file, int64(len(files)))
		for _, file := range files {
			query := fmt.Sprintf(s.template, fileURL(file))
			if err := l.runWithRetry(ctx, query); err != nil {
				l.log.Error("import failed", "file", file, "error", err)
			}
			progress.Tick()
		}
	}
	return nil
}

func (l *Loader) runWithRetry(ctx context.Context, query string) error {
	var err error
	for attempt := range maxRetries {
		err = l.run(ctx, query)
		if err == nil || !neo4j.IsRetryable(err) {
			return err
		}
		l.log.Warn("retryable import error", "attempt", attempt, "error", err)
		if werr := wait(ctx, backoff(attempt)); werr != nil {
			return werr
		}
	}
	return err
}

func findFiles(root, name string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && d.Name() == name {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning csv dir: %w", err)
	}
	return files, nil
}

// fileURL converts a local path into the file:/// form LOAD CSV expects.
// The path must be visible from the Neo4j server's import root.
func fileURL(path string) string {
	return "file:///" + strings.TrimPrefix(filepath.ToSlash(path), "/")
}
