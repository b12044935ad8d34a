package mdt

import (
	"sort"
	"strings"
	"testing"
)

func TestAvailableThemesSorted(t *testing.T) {
	names := AvailableThemes()
	if len(names) != len(builtinThemes) {
		t.Fatalf("got %d themes, want %d", len(names), len(builtinThemes))
	}
	if !sort.StringsAreSorted(names) {
		t.Fatalf("theme names not sorted: %v", names)
	}
	for _, name := range names {
		if _, ok := ThemeByName(name); !ok {
			t.Fatalf("listed theme %q not resolvable", name)
		}
	}
}

func TestThemeByName(t *testing.T) {
	if th, ok := ThemeByName(""); !ok || th.Name() != "default" {
		t.Fatalf("empty name: got %v, %v", th, ok)
	}
	if th, ok := ThemeByName("  Gruvbox "); !ok || th.Name() != "gruvbox" {
		t.Fatalf("normalized lookup failed: got %v, %v", th, ok)
	}
	if _, ok := ThemeByName("no-such-theme"); ok {
		t.Fatalf("unknown theme resolved")
	}
}

func TestDefaultThemeStyles(t *testing.T) {
	styles := DefaultTheme().Styles()
	if !strings.Contains(styles.Strong.Prefix, "\x1b[1m") {
		t.Fatalf("strong style lacks bold: %q", styles.Strong.Prefix)
	}
	if !strings.Contains(styles.Emphasis.Prefix, "\x1b[3m") {
		t.Fatalf("emphasis style lacks italic: %q", styles.Emphasis.Prefix)
	}
	if !strings.Contains(styles.Strikethrough.Prefix, "\x1b[9m") {
		t.Fatalf("strikethrough style lacks strike: %q", styles.Strikethrough.Prefix)
	}
	if !strings.Contains(styles.LinkText.Prefix, "\x1b[4m") {
		t.Fatalf("link text style lacks underline: %q", styles.LinkText.Prefix)
	}
	for i, h := range styles.Heading {
		if h.Prefix == "" {
			t.Fatalf("heading level %d has no style", i+1)
		}
	}
}

func TestNewTheme(t *testing.T) {
	th := NewTheme("plain", Styles{})
	if th.Name() != "plain" {
		t.Fatalf("got name %q", th.Name())
	}
	if th.Styles().Text.Prefix != "" {
		t.Fatalf("zero styles should carry no prefix")
	}
}
