package wikitext

import (
	"log/slog"
	"strings"

	"github.com/jlindsey/wikigraph/internal/article"
)

// Options tune the language-specific constants of the parser.
type Options struct {
	// RedirectMarkers are the lowercase prefixes that mark a redirect stub.
	RedirectMarkers []string
	// CategoryKeyword is the namespace prefix (lowercase) that turns a
	// colon-qualified link into a category membership.
	CategoryKeyword string
}

// DefaultOptions returns the constants for a German-language dump, the
// corpus this pipeline was built for. The English redirect marker is always
// recognized as the alternate form on other dumps too.
func DefaultOptions() Options {
	return Options{
		RedirectMarkers: []string{"#redirect", "#weiterleitung"},
		CategoryKeyword: "kategorie",
	}
}

// Parser turns one (envelope, markup) pair into an article record. It is a
// pure, synchronous transformation with no state across calls; one instance
// is safe for concurrent use by any number of workers.
type Parser struct {
	opts Options
	log  *slog.Logger
}

// New creates a parser. A nil logger disables render-failure diagnostics.
func New(log *slog.Logger, opts Options) *Parser {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	if len(opts.RedirectMarkers) == 0 {
		opts.RedirectMarkers = DefaultOptions().RedirectMarkers
	}
	if opts.CategoryKeyword == "" {
		opts.CategoryKeyword = DefaultOptions().CategoryKeyword
	}
	return &Parser{opts: opts, log: log}
}

// Parse builds the structured record for one article. It never fails for
// decodable input: every lower-level failure is absorbed into a default
// (renderer, lead title, namespace) before reaching this level.
func (p *Parser) Parse(env *article.Envelope, text string) *article.Record {
	ns := article.ResolveNamespace(env.Page.Namespace)
	env.Namespace = &ns

	if target, ok := DetectRedirect(text, p.opts.RedirectMarkers); ok {
		return &article.Record{
			Info:   env,
			Type:   article.KindRedirect,
			Title:  env.Title,
			Target: target,
		}
	}

	toks := Tokenize(text)
	raws := SplitSections(text, toks)

	rec := &article.Record{
		Info:  env,
		Type:  article.KindArticle,
		Title: env.Title,
	}

	seen := article.NewLinkSet()
	for idx, raw := range raws {
		title, level := "Introduction", 1
		if raw.Heading != nil {
			title, level = raw.Heading.Title, raw.Heading.Level
		}

		links := raw.Links()
		for _, l := range links {
			seen.Add(l)
		}

		wiki := raw.Wiki(text)
		rendered, err := Render(wiki)
		if err != nil {
			p.log.Debug("section render failed",
				"article", env.Title, "section", title, "idx", idx, "error", err)
			rendered = ""
		}

		rec.Sections = append(rec.Sections, article.Section{
			Info: article.SectionInfo{
				Index: idx,
				Title: title,
				Level: level,
				ID:    article.SectionID(env.Title, title),
			},
			HTML:  rendered,
			Wiki:  wiki,
			Links: links,
		})
	}

	var docLinks []article.Link
	for _, t := range toks {
		if t.Kind == TokenWikiLink {
			docLinks = append(docLinks, t.Link())
		}
	}
	rec.Links = docLinks

	// Residual links: visible at whole-document scope but found in no
	// section. Set difference on structural equality, sorted for
	// determinism.
	residual := article.NewLinkSet()
	for _, l := range docLinks {
		if seen.Contains(l) || residual.Contains(l) {
			continue
		}
		residual.Add(l)
		rec.NonSectionLinks = append(rec.NonSectionLinks, l)
	}
	article.SortLinks(rec.NonSectionLinks)

	for _, l := range docLinks {
		prefix, rest, found := strings.Cut(l.Target, ":")
		if !found {
			continue
		}
		if strings.EqualFold(prefix, p.opts.CategoryKeyword) {
			rec.Categories = append(rec.Categories, rest)
		}
	}

	return rec
}
