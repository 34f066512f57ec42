package wikitext

import "github.com/jlindsey/wikigraph/internal/article"

// RawSection is one contiguous markup span: the implicit lead span before
// the first heading (Heading == nil), or a span starting at a heading line.
// Spans never overlap and concatenating them in order reproduces the source.
type RawSection struct {
	Heading *Token
	Start   int
	End     int
	Tokens  []Token
}

// Wiki returns the raw markup slice of the section, heading line included.
func (s RawSection) Wiki(src string) string {
	return src[s.Start:s.End]
}

// Links returns the wikilink occurrences inside the section span, in
// document order.
func (s RawSection) Links() []article.Link {
	var links []article.Link
	for _, t := range s.Tokens {
		if t.Kind == TokenWikiLink {
			links = append(links, t.Link())
		}
	}
	return links
}

// SplitSections decomposes the token stream into ordered sections: one lead
// span covering everything before the first heading (always present, even
// when empty), then one span per heading running to the next heading or the
// end of the source.
func SplitSections(src string, toks []Token) []RawSection {
	var headings []int
	for i, t := range toks {
		if t.Kind == TokenHeading {
			headings = append(headings, i)
		}
	}

	leadEnd := len(src)
	if len(headings) > 0 {
		leadEnd = toks[headings[0]].Start
	}
	sections := []RawSection{{Start: 0, End: leadEnd}}

	for n, hi := range headings {
		end := len(src)
		if n+1 < len(headings) {
			end = toks[headings[n+1]].Start
		}
		h := toks[hi]
		sections = append(sections, RawSection{Heading: &h, Start: h.Start, End: end})
	}

	// Attribute tokens to their enclosing span.
	si := 0
	for _, t := range toks {
		for si+1 < len(sections) && t.Start >= sections[si+1].Start {
			si++
		}
		sections[si].Tokens = append(sections[si].Tokens, t)
	}
	return sections
}
