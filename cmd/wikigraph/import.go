package main

import (
	"github.com/spf13/cobra"

	"github.com/jlindsey/wikigraph/internal/config"
	"github.com/jlindsey/wikigraph/internal/loader"
)

var (
	flagNeo4jURI      string
	flagNeo4jUsername string
	flagNeo4jPassword string
)

var importCmd = &cobra.Command{
	Use:   "import <csv-dir>",
	Short: "Bulk-load the CSV interchange into Neo4j",
	Long: `Import creates the natural-key indexes and then runs every import step
over the CSV tree with templated LOAD CSV upserts. The CSV directory must be
visible from the Neo4j server's import root. Re-running an import converges;
upserts never duplicate nodes or edges.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every node and relationship from the Neo4j database",
	Args:  cobra.NoArgs,
	RunE:  runClear,
}

func init() {
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(clearCmd)
	for _, c := range []*cobra.Command{importCmd, clearCmd} {
		c.Flags().StringVar(&flagNeo4jURI, "uri", "", "Neo4j URI (default NEO4J_URI)")
		c.Flags().StringVar(&flagNeo4jUsername, "username", "", "Neo4j username (default NEO4J_USERNAME)")
		c.Flags().StringVar(&flagNeo4jPassword, "password", "", "Neo4j password (default NEO4J_PASSWORD)")
	}
}

func neo4jSettings() (uri, username, password string) {
	cfg := config.Load()
	uri, username, password = cfg.Neo4jURI, cfg.Neo4jUsername, cfg.Neo4jPassword
	if flagNeo4jURI != "" {
		uri = flagNeo4jURI
	}
	if flagNeo4jUsername != "" {
		username = flagNeo4jUsername
	}
	if flagNeo4jPassword != "" {
		password = flagNeo4jPassword
	}
	return uri, username, password
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	uri, username, password := neo4jSettings()
	l, err := loader.New(ctx, uri, username, password, logger)
	if err != nil {
		return err
	}
	defer l.Close(ctx)

	logger.Info("creating indexes")
	if err := l.CreateIndexes(ctx); err != nil {
		return err
	}

	logger.Info("starting import", "csv_dir", args[0])
	if err := l.ImportDir(ctx, args[0]); err != nil {
		return err
	}
	logger.Info("import complete")
	return nil
}

func runClear(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	uri, username, password := neo4jSettings()
	l, err := loader.New(ctx, uri, username, password, logger)
	if err != nil {
		return err
	}
	defer l.Close(ctx)

	logger.Warn("clearing the database")
	if err := l.Clear(ctx); err != nil {
		return err
	}
	logger.Info("database cleared")
	return nil
}
