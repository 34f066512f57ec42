package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jlindsey/wikigraph/internal/flatten"
)

func TestSteps_NodesLoadBeforeEdges(t *testing.T) {
	pos := make(map[string]int, len(steps))
	for i, s := range steps {
		pos[s.file] = i
	}

	nodes := []string{flatten.FileArticles, flatten.FilePersons, flatten.FileCategories, flatten.FileSections}
	edges := []string{
		flatten.FileAuthorLinks, flatten.FileArticleLinks, flatten.FileRedirects,
		flatten.FileCategoryLnk, flatten.FileSectionLinks, flatten.FilePartOf,
	}
	require.Len(t, steps, len(nodes)+len(edges))
	for _, n := range nodes {
		for _, e := range edges {
			assert.Less(t, pos[n], pos[e], "%s must load before %s", n, e)
		}
	}
}

func TestSteps_TemplatesTakeOneFileURL(t *testing.T) {
	for _, s := range steps {
		assert.Equal(t, 1, strings.Count(s.template, "%s"), "template for %s", s.file)
		query := fmt.Sprintf(s.template, "file:///csv/"+s.file)
		assert.Contains(t, query, "LOAD CSV WITH HEADERS FROM 'file:///csv/"+s.file+"'")
		assert.Contains(t, query, "MERGE", "step for %s must upsert", s.file)
	}
}

func TestIndexQueries_Idempotent(t *testing.T) {
	require.Len(t, indexQueries, 4)
	for _, q := range indexQueries {
		assert.Contains(t, q, "IF NOT EXISTS")
	}
}

func TestFileURL(t *testing.T) {
	assert.Equal(t, "file:///var/lib/neo4j/import/a1b/articles.csv",
		fileURL("/var/lib/neo4j/import/a1b/articles.csv"))
	assert.Equal(t, "file:///csv/articles.csv", fileURL("csv/articles.csv"))
}

func TestFindFiles(t *testing.T) {
	root := t.TempDir()
	for _, bucket := range []string{"a1b", "c2d"} {
		require.NoError(t, os.MkdirAll(filepath.Join(root, bucket), 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(root, bucket, flatten.FileArticles), []byte("id\n"), 0o644))
	}
	require.NoError(t, os.WriteFile(filepath.Join(root, "a1b", "unrelated.txt"), nil, 0o644))

	files, err := findFiles(root, flatten.FileArticles)
	require.NoError(t, err)
	assert.Len(t, files, 2)
	for _, f := range files {
		assert.Equal(t, flatten.FileArticles, filepath.Base(f))
	}

	none, err := findFiles(root, flatten.FileRedirects)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestBackoff_GrowsAndCaps(t *testing.T) {
	for attempt := 0; attempt < 10; attempt++ {
		d := backoff(attempt)
		base := time.Duration(1<<uint(attempt)) * time.Second
		if base > 30*time.Second {
			base = 30 * time.Second
		}
		assert.GreaterOrEqual(t, d, base, "attempt %d", attempt)
		assert.Less(t, d, base+base/2, "attempt %d", attempt)
	}
}
