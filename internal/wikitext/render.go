package wikitext

import (
	"bytes"
	"errors"
	"strings"

	"golang.org/x/net/html"
)

// Rendering errors. Templates and tables have no expansion environment here,
// so sections containing them fail rendering; the caller stores an empty
// rendering and keeps the section's title, level, links, and raw markup.
var (
	errTemplate    = errors.New("template expansion is not supported")
	errTable       = errors.New("table markup is not supported")
	errUnclosed    = errors.New("unclosed quote markup")
	errInterleaved = errors.New("interleaved quote markup")
)

// Render converts one section's markup span into an HTML fragment for human
// inspection. It is best-effort: any error means the whole section renders
// empty, never that the article parse fails.
func Render(src string) (string, error) {
	if strings.Contains(src, "{{") {
		return "", errTemplate
	}
	if strings.Contains(src, "{|") {
		return "", errTable
	}

	b := &htmlBuilder{}
	for _, tok := range Tokenize(src) {
		switch tok.Kind {
		case TokenHeading:
			if err := b.heading(tok.Level, tok.Title); err != nil {
				return "", err
			}
		case TokenWikiLink:
			text := tok.Target
			if tok.HasText {
				text = tok.Text
			}
			b.link(tok.Target, text)
		case TokenComment:
			// Comments never render.
		case TokenText:
			if err := b.text(src[tok.Start:tok.End]); err != nil {
				return "", err
			}
		}
	}
	return b.finish()
}

// htmlBuilder accumulates a flat sequence of block nodes (paragraphs and
// headings) with a stack of open inline b/i elements.
type htmlBuilder struct {
	nodes  []*html.Node
	para   *html.Node
	inline []*html.Node
}

func elem(tag string) *html.Node {
	return &html.Node{Type: html.ElementNode, Data: tag}
}

func appendText(parent *html.Node, s string) {
	parent.AppendChild(&html.Node{Type: html.TextNode, Data: s})
}

func (b *htmlBuilder) parent() *html.Node {
	if n := len(b.inline); n > 0 {
		return b.inline[n-1]
	}
	if b.para == nil {
		b.para = elem("p")
		b.nodes = append(b.nodes, b.para)
	}
	return b.para
}

func (b *htmlBuilder) endPara() error {
	if len(b.inline) > 0 {
		return errUnclosed
	}
	b.para = nil
	return nil
}

// toggle opens or closes a b/i element. Closing an element that is open but
// not innermost is malformed markup and fails the render.
func (b *htmlBuilder) toggle(tag string) error {
	if n := len(b.inline); n > 0 && b.inline[n-1].Data == tag {
		b.inline = b.inline[:n-1]
		return nil
	}
	for _, open := range b.inline {
		if open.Data == tag {
			return errInterleaved
		}
	}
	el := elem(tag)
	b.parent().AppendChild(el)
	b.inline = append(b.inline, el)
	return nil
}

func (b *htmlBuilder) heading(level int, title string) error {
	if err := b.endPara(); err != nil {
		return err
	}
	h := elem("h" + string(rune('0'+level)))
	appendText(h, title)
	b.nodes = append(b.nodes, h)
	return nil
}

func (b *htmlBuilder) link(target, text string) {
	a := elem("a")
	a.Attr = []html.Attribute{{Key: "href", Val: "./" + strings.ReplaceAll(target, " ", "_")}}
	appendText(a, text)
	b.parent().AppendChild(a)
}

// text emits a raw text run, honoring paragraph breaks and '''/'' quote
// markers.
func (b *htmlBuilder) text(s string) error {
	for len(s) > 0 {
		idxPara := strings.Index(s, "\n\n")
		idxQuote := strings.Index(s, "''")

		next := len(s)
		if idxPara >= 0 && idxPara < next {
			next = idxPara
		}
		if idxQuote >= 0 && idxQuote < next {
			next = idxQuote
		}

		if chunk := s[:next]; chunk != "" {
			// Whitespace between blocks does not open a paragraph.
			if b.para != nil || len(b.inline) > 0 || strings.TrimSpace(chunk) != "" {
				appendText(b.parent(), chunk)
			}
		}
		s = s[next:]

		switch {
		case s == "":
		case strings.HasPrefix(s, "\n\n"):
			if err := b.endPara(); err != nil {
				return err
			}
			s = strings.TrimLeft(s, "\n")
		case strings.HasPrefix(s, "'''"):
			if err := b.toggle("b"); err != nil {
				return err
			}
			s = s[3:]
		case strings.HasPrefix(s, "''"):
			if err := b.toggle("i"); err != nil {
				return err
			}
			s = s[2:]
		}
	}
	return nil
}

func (b *htmlBuilder) finish() (string, error) {
	if err := b.endPara(); err != nil {
		return "", err
	}
	var buf bytes.Buffer
	for _, n := range b.nodes {
		if err := html.Render(&buf, n); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}
