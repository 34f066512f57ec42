package config

import (
	"os"
	"runtime"
	"strconv"
)

type Config struct {
	// Preview server
	Port   string
	APIKey string

	// Worker pool
	WorkerCount int

	// Neo4j connection
	Neo4jURI      string
	Neo4jUsername string
	Neo4jPassword string

	// Parser language constants
	CategoryKeyword string
}

func Load() Config {
	cfg := Config{
		Port:   envOr("PORT", "8091"),
		APIKey: os.Getenv("WIKIGRAPH_API_KEY"),

		WorkerCount: envInt("WORKER_COUNT", 3),

		Neo4jURI:      envOr("NEO4J_URI", "bolt://localhost:7687"),
		Neo4jUsername: envOr("NEO4J_USERNAME", "neo4j"),
		Neo4jPassword: envOr("NEO4J_PASSWORD", "password"),

		CategoryKeyword: envOr("CATEGORY_KEYWORD", "kategorie"),
	}

	if cfg.WorkerCount < 1 {
		cfg.WorkerCount = runtime.NumCPU()
	}

	return cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
