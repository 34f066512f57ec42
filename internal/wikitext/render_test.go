package wikitext

import (
	"strings"
	"testing"
)

func TestRender_ParagraphAndLink(t *testing.T) {
	got, err := Render("See [[Foo|the foo]] for details.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `<p>See <a href="./Foo">the foo</a> for details.</p>`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRender_HeadingAndParagraphs(t *testing.T) {
	got, err := Render("== History ==\nfirst paragraph\n\nsecond paragraph\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"<h2>History</h2>", "first paragraph", "second paragraph"} {
		if !strings.Contains(got, want) {
			t.Errorf("expected rendering to contain %q, got %q", want, got)
		}
	}
	if strings.Count(got, "<p>") != 2 {
		t.Errorf("expected two paragraphs, got %q", got)
	}
}

func TestRender_BoldItalic(t *testing.T) {
	got, err := Render("plain '''bold''' and ''italic'' text")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(got, "<b>bold</b>") || !strings.Contains(got, "<i>italic</i>") {
		t.Errorf("unexpected quote rendering: %q", got)
	}
}

func TestRender_EscapesText(t *testing.T) {
	got, err := Render("a < b & c")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(got, "< b") || !strings.Contains(got, "&lt; b &amp; c") {
		t.Errorf("expected escaped text, got %q", got)
	}
}

func TestRender_LinkHrefUsesUnderscores(t *testing.T) {
	got, err := Render("[[Otto von Bismarck]]")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(got, `href="./Otto_von_Bismarck"`) {
		t.Errorf("unexpected href in %q", got)
	}
	if !strings.Contains(got, ">Otto von Bismarck</a>") {
		t.Errorf("bare link must display its target, got %q", got)
	}
}

func TestRender_TemplateFails(t *testing.T) {
	if _, err := Render("{{Infobox|name=x}} body"); err == nil {
		t.Fatal("expected template markup to fail rendering")
	}
}

func TestRender_TableFails(t *testing.T) {
	if _, err := Render("{| class=\"wikitable\"\n|-\n| cell\n|}"); err == nil {
		t.Fatal("expected table markup to fail rendering")
	}
}

func TestRender_UnclosedQuoteFails(t *testing.T) {
	if _, err := Render("an '''unclosed bold run"); err == nil {
		t.Fatal("expected unclosed quote markup to fail rendering")
	}
}

func TestRender_Empty(t *testing.T) {
	got, err := Render("")
	if err != nil || got != "" {
		t.Errorf("expected empty rendering, got (%q, %v)", got, err)
	}
}

func TestRender_CommentDropped(t *testing.T) {
	got, err := Render("visible <!-- invisible --> text")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(got, "invisible") {
		t.Errorf("comment content leaked into rendering: %q", got)
	}
}
