package flatten

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
)

// WriteCSV writes the batch as one CSV set under dir, creating it as needed.
// Every file is written even when empty so the loader sees a complete set.
func (b *Batch) WriteCSV(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating csv dir: %w", err)
	}

	files := []struct {
		name   string
		header []string
		rows   [][]string
	}{
		{FileArticles, []string{"id", "title", "type", "namespace_id", "namespace_name", "namespace_type", "parent_id", "timestamp", "sha1", "path"}, b.articles},
		{FilePersons, []string{"id", "name"}, b.persons},
		{FileCategories, []string{"title"}, b.categories},
		{FileSections, []string{"id", "article", "idx", "title", "level"}, b.sections},
		{FileAuthorLinks, []string{"article", "person"}, b.authored},
		{FileArticleLinks, []string{"from", "to"}, b.linksTo},
		{FileRedirects, []string{"from", "to"}, b.redirectsTo},
		{FileCategoryLnk, []string{"article", "category"}, b.inCategory},
		{FileSectionLinks, []string{"from", "to"}, b.linksSection},
		{FilePartOf, []string{"section", "article"}, b.partOf},
	}

	for _, f := range files {
		if err := writeFile(filepath.Join(dir, f.name), f.header, f.rows); err != nil {
			return err
		}
	}
	return nil
}

func writeFile(path string, header []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing %s: %w", path, err)
	}
	return f.Close()
}
