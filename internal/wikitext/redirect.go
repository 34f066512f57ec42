package wikitext

import (
	"regexp"
	"strings"
)

// redirectProbeLen bounds how much of the text the marker check inspects.
// Redirect stubs are a large share of any dump and this check is what lets
// them skip full parsing.
const redirectProbeLen = 100

// firstBracketRe finds the first double-bracketed span anywhere in the text.
var firstBracketRe = regexp.MustCompile(`\[\[(.*?)\]\]`)

// DetectRedirect reports whether the text is a redirect stub. It inspects
// only the leading bytes for one of the known markers, then extracts the
// first [[...]] span as the target, trimmed and fragment-stripped. A marker
// with no usable bracketed span is not a redirect; the caller falls through
// to full parsing.
func DetectRedirect(text string, markers []string) (target string, ok bool) {
	head := text
	if len(head) > redirectProbeLen {
		head = head[:redirectProbeLen]
	}
	head = strings.ToLower(strings.TrimSpace(head))

	found := false
	for _, m := range markers {
		if strings.HasPrefix(head, m) {
			found = true
			break
		}
	}
	if !found {
		return "", false
	}

	m := firstBracketRe.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	target = strings.TrimSpace(m[1])
	if i := strings.Index(target, "#"); i >= 0 {
		target = strings.TrimSpace(target[:i])
	}
	if target == "" {
		return "", false
	}
	return target, true
}
