package article

import (
	"sort"
	"strings"
)

// Link is a single wikilink occurrence. Text is the display text and is nil
// when the link has none; nil and "" are different values for equality
// purposes, though the parser never produces "".
type Link struct {
	Target string  `json:"target"`
	Text   *string `json:"text"`
}

// NewLink builds a link without display text.
func NewLink(target string) Link {
	return Link{Target: target}
}

// NewLinkText builds a link with display text.
func NewLinkText(target, text string) Link {
	return Link{Target: target, Text: &text}
}

// linkKey is the comparable form of a Link used for set membership.
type linkKey struct {
	target  string
	text    string
	hasText bool
}

func (l Link) key() linkKey {
	k := linkKey{target: l.Target}
	if l.Text != nil {
		k.text = *l.Text
		k.hasText = true
	}
	return k
}

// Equal reports structural equality on (target, text). An absent display
// text only equals another absent display text.
func (l Link) Equal(other Link) bool {
	return l.key() == other.key()
}

// LinkSet tracks which links have been seen, by structural equality,
// preserving nothing but membership.
type LinkSet struct {
	seen map[linkKey]struct{}
}

func NewLinkSet() *LinkSet {
	return &LinkSet{seen: make(map[linkKey]struct{})}
}

func (s *LinkSet) Add(l Link) {
	s.seen[l.key()] = struct{}{}
}

func (s *LinkSet) Contains(l Link) bool {
	_, ok := s.seen[l.key()]
	return ok
}

// SortLinks orders links deterministically: by target, then links without
// display text before links with one, then by display text.
func SortLinks(links []Link) {
	sort.Slice(links, func(i, j int) bool {
		a, b := links[i].key(), links[j].key()
		if a.target != b.target {
			return a.target < b.target
		}
		if a.hasText != b.hasText {
			return !a.hasText
		}
		return a.text < b.text
	})
}

// SplitFragment splits a section-qualified target into its article and
// anchor parts. ok is false when the target has no fragment, or when the
// part before the fragment is empty (a same-page anchor with no external
// article to resolve to).
func (l Link) SplitFragment() (page, anchor string, ok bool) {
	i := strings.Index(l.Target, "#")
	if i < 0 {
		return "", "", false
	}
	page = l.Target[:i]
	if page == "" {
		return "", "", false
	}
	return page, l.Target[i+1:], true
}
