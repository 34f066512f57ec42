// Package api is a small read-only preview service over a directory of
// parsed article records. It exists for human inspection of parser output:
// fetch a record, eyeball a section's best-effort HTML, or parse an ad-hoc
// payload without touching the batch pipeline.
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/jlindsey/wikigraph/internal/config"
	"github.com/jlindsey/wikigraph/internal/wikitext"
)

// Server serves parsed records from parsedDir.
type Server struct {
	router    chi.Router
	parsedDir string
	parser    *wikitext.Parser
	log       *slog.Logger
}

// NewServer configures the preview server. Auth is enabled only when the
// config carries an API key.
func NewServer(parsedDir string, parser *wikitext.Parser, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		parsedDir: parsedDir,
		parser:    parser,
		log:       log,
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(log))

	r.Get("/health", s.handleHealth)

	r.Group(func(r chi.Router) {
		r.Use(BearerAuth(cfg.APIKey))

		r.Get("/api/articles", s.handleListArticles)
		r.Get("/api/articles/{bucket}/{name}", s.handleGetArticle)
		r.Get("/api/articles/{bucket}/{name}/sections/{idx}/html", s.handleSectionHTML)
		r.Post("/api/parse", s.handleParse)
	})

	s.router = r
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
