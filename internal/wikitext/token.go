// Package wikitext implements the structuring parser for raw wiki markup:
// redirect detection, section decomposition, link extraction and
// classification, best-effort HTML rendering, and assembly of the final
// article record.
package wikitext

import (
	"regexp"
	"strings"

	"github.com/jlindsey/wikigraph/internal/article"
)

// TokenKind tags the token union.
type TokenKind int

const (
	TokenText TokenKind = iota
	TokenHeading
	TokenWikiLink
	TokenComment
)

// Token is one lexical element of the markup. Start and End are byte offsets
// into the source; slicing the source with them yields the raw token text.
type Token struct {
	Kind  TokenKind
	Start int
	End   int

	// Heading fields.
	Level int
	Title string

	// WikiLink fields.
	Target  string
	Text    string
	HasText bool
}

// Link converts a wikilink token into its value form. A piped link with
// empty display text counts as having none.
func (t Token) Link() article.Link {
	if t.HasText {
		return article.NewLinkText(t.Target, t.Text)
	}
	return article.NewLink(t.Target)
}

// headingRe matches a full heading line: 1–6 leading '=' runs, a title, and
// a closing '=' run. Applied to single lines, never across them.
var headingRe = regexp.MustCompile(`^(={1,6})[ \t]*(.*?)[ \t]*={1,6}[ \t]*$`)

// Tokenize splits markup into an ordered token stream in a single
// left-to-right scan. Headings are recognized only at line starts; wikilinks
// never span lines; comments may. Anything else is text.
func Tokenize(src string) []Token {
	var toks []Token
	textStart := -1
	flush := func(end int) {
		if textStart >= 0 && end > textStart {
			toks = append(toks, Token{Kind: TokenText, Start: textStart, End: end})
		}
		textStart = -1
	}

	i := 0
	atLineStart := true
	for i < len(src) {
		if strings.HasPrefix(src[i:], "<!--") {
			flush(i)
			end := len(src)
			if j := strings.Index(src[i+4:], "-->"); j >= 0 {
				end = i + 4 + j + 3
			}
			toks = append(toks, Token{Kind: TokenComment, Start: i, End: end})
			i = end
			atLineStart = false
			continue
		}
		if atLineStart && src[i] == '=' {
			lineEnd := len(src)
			if j := strings.IndexByte(src[i:], '\n'); j >= 0 {
				lineEnd = i + j
			}
			if m := headingRe.FindStringSubmatch(src[i:lineEnd]); m != nil {
				flush(i)
				toks = append(toks, Token{
					Kind:  TokenHeading,
					Start: i,
					End:   lineEnd,
					Level: len(m[1]),
					Title: strings.TrimSpace(m[2]),
				})
				i = lineEnd
				atLineStart = false
				continue
			}
		}
		if strings.HasPrefix(src[i:], "[[") {
			if tok, ok := scanLink(src, i); ok {
				flush(i)
				toks = append(toks, tok)
				i = tok.End
				atLineStart = false
				continue
			}
		}
		if textStart < 0 {
			textStart = i
		}
		atLineStart = src[i] == '\n'
		i++
	}
	flush(len(src))
	return toks
}

// scanLink tries to read a wikilink starting at the "[[" at src[start].
// When another "[[" opens before the closing "]]" the outer brackets are
// left as text so the innermost link wins.
func scanLink(src string, start int) (Token, bool) {
	rest := src[start+2:]
	end := strings.Index(rest, "]]")
	if end < 0 {
		return Token{}, false
	}
	content := rest[:end]
	if strings.Contains(content, "[[") || strings.Contains(content, "\n") {
		return Token{}, false
	}

	tok := Token{Kind: TokenWikiLink, Start: start, End: start + 2 + end + 2}
	if p := strings.Index(content, "|"); p >= 0 {
		tok.Target = content[:p]
		if text := content[p+1:]; text != "" {
			tok.Text = text
			tok.HasText = true
		}
	} else {
		tok.Target = content
	}
	return tok, true
}
