// Package store is the on-disk article store: one file per article, fanned
// out into hash buckets so no directory collects millions of entries. Each
// file is a JSON envelope on the first line followed by the raw markup.
package store

import (
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/goliatone/go-slug"

	"github.com/jlindsey/wikigraph/internal/article"
)

// Ext is the suffix of stored article files.
const Ext = ".wiki"

// ErrExists is returned by Save when the target file is already present and
// force is off. Callers treat it as a skip, not a failure.
var ErrExists = fmt.Errorf("article file already exists")

// Store reads and writes per-article files under a root directory.
type Store struct {
	root string
}

func New(root string) *Store {
	return &Store{root: root}
}

// Locate computes the stable storage location for a title: the filename is
// the slugified title, the bucket the first 3 hex chars of its md5. The
// fan-out depends only on the title, so re-extraction lands on the same
// path.
func Locate(title string) (bucket, fileName string) {
	name, err := slug.Normalize(title)
	if err != nil || name == "" {
		raw := md5.Sum([]byte(title))
		name = hex.EncodeToString(raw[:])[:12]
	}
	sum := md5.Sum([]byte(name))
	return hex.EncodeToString(sum[:])[:3], name + Ext
}

// Save writes one article under its bucket, filling the envelope's Bucket
// and FileName. Existing files are left alone unless force is set.
func (s *Store) Save(env *article.Envelope, text string, force bool) (string, error) {
	env.Bucket, env.FileName = Locate(env.Title)
	path := filepath.Join(s.root, env.Bucket, env.FileName)

	if !force {
		if _, err := os.Stat(path); err == nil {
			return path, ErrExists
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("creating bucket dir: %w", err)
	}

	meta, err := json.Marshal(env)
	if err != nil {
		return "", fmt.Errorf("marshal envelope: %w", err)
	}
	data := make([]byte, 0, len(meta)+1+len(text))
	data = append(data, meta...)
	data = append(data, '\n')
	data = append(data, text...)

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing article file: %w", err)
	}
	return path, nil
}

// Load reads one article file back into its envelope and markup halves.
func Load(path string) (*article.Envelope, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("reading article file: %w", err)
	}
	meta, text, _ := strings.Cut(string(data), "\n")

	var env article.Envelope
	if err := json.Unmarshal([]byte(meta), &env); err != nil {
		return nil, "", fmt.Errorf("decode envelope %s: %w", path, err)
	}
	return &env, text, nil
}

// List walks the store and returns the paths of all article files, in
// directory-walk order.
func (s *Store) List() ([]string, error) {
	var paths []string
	err := filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), Ext) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking store: %w", err)
	}
	return paths, nil
}

// Rel returns the store-relative form of a path produced by List.
func (s *Store) Rel(path string) (string, error) {
	return filepath.Rel(s.root, path)
}
