// Package flatten converts parsed article records into the row-oriented CSV
// interchange the bulk loader consumes: one file per node type (article,
// person, category, section) and one per edge kind.
package flatten

import (
	"strconv"

	"github.com/jlindsey/wikigraph/internal/article"
)

// Interchange file names, shared with the loader's import patterns.
const (
	FileArticles     = "articles.csv"
	FilePersons      = "persons.csv"
	FileCategories   = "categories.csv"
	FileSections     = "sections.csv"
	FileAuthorLinks  = "author_links.csv"
	FileArticleLinks = "article_links.csv"
	FileRedirects    = "redirect_links.csv"
	FileCategoryLnk  = "category_links.csv"
	FileSectionLinks = "section_links.csv"
	FilePartOf       = "section_article_links.csv"
)

// Batch accumulates the rows for one group of records (one storage bucket).
// Node rows are deduplicated on their natural key; edge rows keep their
// order of appearance and rely on the loader's upserts for idempotence.
type Batch struct {
	articles [][]string
	sections [][]string

	persons      [][]string
	seenPersons  map[string]struct{}
	categories   [][]string
	seenCategory map[string]struct{}

	authored     [][]string
	linksTo      [][]string
	redirectsTo  [][]string
	inCategory   [][]string
	linksSection [][]string
	partOf       [][]string
}

func NewBatch() *Batch {
	return &Batch{
		seenPersons:  make(map[string]struct{}),
		seenCategory: make(map[string]struct{}),
	}
}

// Add flattens one record into the batch. Redirect records contribute only
// their redirects-to edge; the loader's MERGE creates both endpoints.
func (b *Batch) Add(rec *article.Record) {
	if rec.Type == article.KindRedirect {
		b.redirectsTo = append(b.redirectsTo, []string{rec.Title, rec.Target})
		return
	}

	env := rec.Info
	ns := env.Namespace
	if ns == nil {
		resolved := article.ResolveNamespace(env.Page.Namespace)
		ns = &resolved
	}
	b.articles = append(b.articles, []string{
		strconv.FormatInt(env.Page.ID, 10),
		env.Title,
		string(rec.Type),
		strconv.Itoa(env.Page.Namespace),
		ns.Name,
		string(ns.Kind),
		strconv.FormatInt(env.ParentID, 10),
		env.Timestamp,
		env.SHA1,
		env.Path(),
	})

	for _, a := range env.Authors {
		id, name := authorKey(a)
		if id == "" {
			continue
		}
		if _, ok := b.seenPersons[id]; !ok {
			b.seenPersons[id] = struct{}{}
			b.persons = append(b.persons, []string{id, name})
		}
		b.authored = append(b.authored, []string{env.Title, id})
	}

	for _, l := range rec.Links {
		if page, anchor, ok := l.SplitFragment(); ok {
			b.linksTo = append(b.linksTo, []string{env.Title, page})
			b.linksSection = append(b.linksSection, []string{env.Title, article.SectionID(page, anchor)})
			continue
		}
		// A bare "#anchor" target points back into the same page and
		// resolves to no external article.
		if l.Target == "" || l.Target[0] == '#' {
			continue
		}
		b.linksTo = append(b.linksTo, []string{env.Title, l.Target})
	}

	for _, cat := range rec.Categories {
		if _, ok := b.seenCategory[cat]; !ok {
			b.seenCategory[cat] = struct{}{}
			b.categories = append(b.categories, []string{cat})
		}
		b.inCategory = append(b.inCategory, []string{env.Title, cat})
	}

	for _, sec := range rec.Sections {
		b.sections = append(b.sections, []string{
			sec.Info.ID,
			env.Title,
			strconv.Itoa(sec.Info.Index),
			sec.Info.Title,
			strconv.Itoa(sec.Info.Level),
		})
		b.partOf = append(b.partOf, []string{sec.Info.ID, env.Title})
	}
}

// authorKey picks the natural identifier of an author: the numeric id when
// present, the name otherwise. Authors with neither are dropped.
func authorKey(a article.Author) (id, name string) {
	switch {
	case a.ID != nil:
		id = strconv.FormatInt(*a.ID, 10)
	case a.Name != "":
		id = a.Name
	default:
		return "", ""
	}
	name = a.Name
	if name == "" {
		name = id
	}
	return id, name
}
