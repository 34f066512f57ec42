package wikitext

import "testing"

func kinds(toks []Token) []TokenKind {
	out := make([]TokenKind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func TestTokenize_HeadingsAndLinks(t *testing.T) {
	src := "intro [[Foo|bar]]\n== History ==\nsee [[Baz]]\n"
	toks := Tokenize(src)

	want := []TokenKind{TokenText, TokenWikiLink, TokenText, TokenHeading, TokenText, TokenWikiLink, TokenText}
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("expected %d tokens, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d: expected kind %v, got %v", i, want[i], got[i])
		}
	}

	h := toks[3]
	if h.Level != 2 || h.Title != "History" {
		t.Errorf("expected level-2 heading %q, got level %d %q", "History", h.Level, h.Title)
	}
	if l := toks[1]; l.Target != "Foo" || !l.HasText || l.Text != "bar" {
		t.Errorf("unexpected piped link: %+v", l)
	}
	if l := toks[5]; l.Target != "Baz" || l.HasText {
		t.Errorf("unexpected bare link: %+v", l)
	}
}

func TestTokenize_HeadingOnlyAtLineStart(t *testing.T) {
	toks := Tokenize("text == not a heading ==\n")
	for _, tok := range toks {
		if tok.Kind == TokenHeading {
			t.Fatal("mid-line '==' must not produce a heading token")
		}
	}

	toks = Tokenize("== at start ==")
	if len(toks) != 1 || toks[0].Kind != TokenHeading {
		t.Fatalf("expected a single heading token, got %v", kinds(toks))
	}
}

func TestTokenize_SpansReconstructSource(t *testing.T) {
	src := "a [[b]] <!-- c -->\n== d ==\ne '''f'''\n"
	var rebuilt string
	for _, tok := range Tokenize(src) {
		rebuilt += src[tok.Start:tok.End]
	}
	if rebuilt != src {
		t.Errorf("token spans do not cover the source:\n got %q\nwant %q", rebuilt, src)
	}
}

func TestTokenize_CommentHidesContent(t *testing.T) {
	toks := Tokenize("before <!-- [[Hidden]]\n== Not a heading == --> after")
	for _, tok := range toks {
		if tok.Kind == TokenWikiLink || tok.Kind == TokenHeading {
			t.Fatalf("commented-out construct leaked as token kind %v", tok.Kind)
		}
	}
}

func TestTokenize_PipedLinkWithEmptyTextHasNone(t *testing.T) {
	toks := Tokenize("[[Foo|]]")
	if len(toks) != 1 || toks[0].Kind != TokenWikiLink {
		t.Fatalf("expected one wikilink token, got %v", kinds(toks))
	}
	if toks[0].HasText {
		t.Error("empty display text should count as absent")
	}
}

func TestTokenize_NestedBracketsInnermostWins(t *testing.T) {
	toks := Tokenize("[[File:x|thumb|[[Inner]]]]")
	var links []Token
	for _, tok := range toks {
		if tok.Kind == TokenWikiLink {
			links = append(links, tok)
		}
	}
	if len(links) != 1 || links[0].Target != "Inner" {
		t.Fatalf("expected the innermost link only, got %+v", links)
	}
}

func TestTokenize_UnclosedLinkIsText(t *testing.T) {
	for _, tok := range Tokenize("broken [[link without close") {
		if tok.Kind != TokenText {
			t.Fatalf("expected only text tokens, got kind %v", tok.Kind)
		}
	}
}
