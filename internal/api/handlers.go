package api

import (
	"encoding/json"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/jlindsey/wikigraph/internal/article"
)

const maxParseBody = 10 << 20 // uploads are single articles; the largest run a few MB

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

// safeSegment rejects path parameters that could escape the parsed dir.
func safeSegment(s string) bool {
	return s != "" && s != "." && s != ".." &&
		!strings.ContainsAny(s, `/\`)
}

// handleListArticles lists parsed record paths, relative to the parsed dir.
func (s *Server) handleListArticles(w http.ResponseWriter, r *http.Request) {
	limit := 200
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	var paths []string
	err := filepath.WalkDir(s.parsedDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if len(paths) >= limit {
			return filepath.SkipAll
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), ".json") {
			rel, relErr := filepath.Rel(s.parsedDir, path)
			if relErr != nil {
				return relErr
			}
			paths = append(paths, filepath.ToSlash(rel))
		}
		return nil
	})
	if err != nil {
		jsonError(w, "listing articles: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"articles": paths})
}

func (s *Server) recordPath(w http.ResponseWriter, r *http.Request) (string, bool) {
	bucket := chi.URLParam(r, "bucket")
	name := chi.URLParam(r, "name")
	if !safeSegment(bucket) || !safeSegment(name) {
		jsonError(w, "invalid article path", http.StatusBadRequest)
		return "", false
	}
	return filepath.Join(s.parsedDir, bucket, name+".json"), true
}

// handleGetArticle serves one parsed record verbatim.
func (s *Server) handleGetArticle(w http.ResponseWriter, r *http.Request) {
	path, ok := s.recordPath(w, r)
	if !ok {
		return
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			jsonError(w, "article not found", http.StatusNotFound)
			return
		}
		jsonError(w, "reading article: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

// handleSectionHTML serves the best-effort rendering of one section. An
// empty body with 200 means the section exists but failed to render.
func (s *Server) handleSectionHTML(w http.ResponseWriter, r *http.Request) {
	path, ok := s.recordPath(w, r)
	if !ok {
		return
	}
	idx, err := strconv.Atoi(chi.URLParam(r, "idx"))
	if err != nil || idx < 0 {
		jsonError(w, "invalid section index", http.StatusBadRequest)
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		jsonError(w, "article not found", http.StatusNotFound)
		return
	}
	var rec article.Record
	if err := json.Unmarshal(data, &rec); err != nil {
		jsonError(w, "decode record: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if idx >= len(rec.Sections) {
		jsonError(w, "section index out of range", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(rec.Sections[idx].HTML))
}

// handleParse parses an ad-hoc payload using the same framing as stored
// article files: first line JSON envelope, remainder raw markup.
func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxParseBody))
	if err != nil {
		jsonError(w, "reading body: "+err.Error(), http.StatusBadRequest)
		return
	}
	meta, text, _ := strings.Cut(string(body), "\n")

	var env article.Envelope
	if err := json.Unmarshal([]byte(meta), &env); err != nil {
		jsonError(w, "decode envelope: "+err.Error(), http.StatusBadRequest)
		return
	}

	rec := s.parser.Parse(&env, text)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(rec)
}
