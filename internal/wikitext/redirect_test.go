package wikitext

import (
	"strings"
	"testing"
)

var markers = DefaultOptions().RedirectMarkers

func TestDetectRedirect_Basic(t *testing.T) {
	target, ok := DetectRedirect("#REDIRECT [[Target Page]]", markers)
	if !ok || target != "Target Page" {
		t.Errorf("expected redirect to %q, got (%q, %v)", "Target Page", target, ok)
	}
}

func TestDetectRedirect_AlternateMarker(t *testing.T) {
	target, ok := DetectRedirect("#WEITERLEITUNG [[Zielseite]]", markers)
	if !ok || target != "Zielseite" {
		t.Errorf("expected redirect to %q, got (%q, %v)", "Zielseite", target, ok)
	}
}

func TestDetectRedirect_LeadingWhitespaceAndCase(t *testing.T) {
	target, ok := DetectRedirect("  \n#ReDiReCt [[Foo]]", markers)
	if !ok || target != "Foo" {
		t.Errorf("expected redirect to %q, got (%q, %v)", "Foo", target, ok)
	}
}

func TestDetectRedirect_FragmentStripped(t *testing.T) {
	target, ok := DetectRedirect("#REDIRECT [[Foo#History]]", markers)
	if !ok || target != "Foo" {
		t.Errorf("expected fragment-stripped target %q, got (%q, %v)", "Foo", target, ok)
	}
}

func TestDetectRedirect_FirstSpanWins(t *testing.T) {
	target, ok := DetectRedirect("#REDIRECT [[First]] see also [[Second]]", markers)
	if !ok || target != "First" {
		t.Errorf("expected first span %q, got (%q, %v)", "First", target, ok)
	}
}

func TestDetectRedirect_MarkerWithoutTargetFallsThrough(t *testing.T) {
	if _, ok := DetectRedirect("#REDIRECT but no brackets anywhere", markers); ok {
		t.Error("marker without a bracketed span must not be a redirect")
	}
}

func TestDetectRedirect_AnchorOnlyTargetFallsThrough(t *testing.T) {
	if _, ok := DetectRedirect("#REDIRECT [[#Section]]", markers); ok {
		t.Error("a same-page anchor target is unusable and must fall through")
	}
}

func TestDetectRedirect_NoMarker(t *testing.T) {
	if _, ok := DetectRedirect("An article that mentions [[links]]", markers); ok {
		t.Error("text without a marker must not be a redirect")
	}
}

func TestDetectRedirect_MarkerBeyondProbeIgnored(t *testing.T) {
	text := strings.Repeat("x", 120) + "#REDIRECT [[Foo]]"
	if _, ok := DetectRedirect(text, markers); ok {
		t.Error("marker past the probe window must be ignored")
	}
}
