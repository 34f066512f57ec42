package article

import (
	"reflect"
	"testing"
)

func TestLinkEqual_Structural(t *testing.T) {
	if !NewLink("Foo").Equal(NewLink("Foo")) {
		t.Error("expected links with equal targets and no text to be equal")
	}
	if !NewLinkText("Foo", "bar").Equal(NewLinkText("Foo", "bar")) {
		t.Error("expected links with equal targets and texts to be equal")
	}
	if NewLink("Foo").Equal(NewLink("Bar")) {
		t.Error("expected links with different targets to differ")
	}
	if NewLinkText("Foo", "a").Equal(NewLinkText("Foo", "b")) {
		t.Error("expected links with different texts to differ")
	}
}

func TestLinkEqual_AbsentTextIsItsOwnValue(t *testing.T) {
	// A link without display text never equals one with display text, even
	// when that text is the empty string.
	if NewLink("Foo").Equal(Link{Target: "Foo", Text: new(string)}) {
		t.Error("expected absent text to differ from empty-string text")
	}
}

func TestLinkSet_Membership(t *testing.T) {
	s := NewLinkSet()
	s.Add(NewLinkText("Foo", "bar"))

	if !s.Contains(NewLinkText("Foo", "bar")) {
		t.Error("expected set to contain structurally equal link")
	}
	if s.Contains(NewLink("Foo")) {
		t.Error("expected textless variant to be a different member")
	}
}

func TestSortLinks_Deterministic(t *testing.T) {
	links := []Link{
		NewLinkText("B", "x"),
		NewLink("B"),
		NewLink("A"),
		NewLinkText("A", "z"),
	}
	SortLinks(links)

	want := []Link{
		NewLink("A"),
		NewLinkText("A", "z"),
		NewLink("B"),
		NewLinkText("B", "x"),
	}
	if !reflect.DeepEqual(links, want) {
		t.Errorf("unexpected order: %+v", links)
	}
}

func TestSplitFragment(t *testing.T) {
	tests := []struct {
		target     string
		wantPage   string
		wantAnchor string
		wantOK     bool
	}{
		{"Foo#Bar", "Foo", "Bar", true},
		{"Foo#Bar#Baz", "Foo", "Bar#Baz", true},
		{"Foo", "", "", false},
		{"#Bar", "", "", false},
		{"Foo#", "Foo", "", true},
	}
	for _, tt := range tests {
		page, anchor, ok := NewLink(tt.target).SplitFragment()
		if page != tt.wantPage || anchor != tt.wantAnchor || ok != tt.wantOK {
			t.Errorf("SplitFragment(%q) = (%q, %q, %v), want (%q, %q, %v)",
				tt.target, page, anchor, ok, tt.wantPage, tt.wantAnchor, tt.wantOK)
		}
	}
}
