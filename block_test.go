package mdt

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTokenizeHeading(t *testing.T) {
	got := Tokenize("## Title\n")
	want := []Token{{Kind: TokenHeading, Level: 2, Content: "Title"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("tokenize heading (-want +got):\n%s", diff)
	}
}

func TestTokenizeHeadingWithoutSpaceIsParagraph(t *testing.T) {
	got := Tokenize("#nope\n")
	want := []Token{{Kind: TokenParagraph, Content: "#nope"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("tokenize bare hashes (-want +got):\n%s", diff)
	}
}

func TestTokenizeIndentedHeadingIsCodeBlock(t *testing.T) {
	got := Tokenize("    # title\n")
	want := []Token{{Kind: TokenCodeBlock, Content: "# title"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("tokenize indented heading line (-want +got):\n%s", diff)
	}
}

func TestTokenizeLightlyIndentedHeadingIsParagraph(t *testing.T) {
	got := Tokenize("  # title\n")
	want := []Token{{Kind: TokenParagraph, Content: "# title"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("tokenize indented heading line (-want +got):\n%s", diff)
	}
}

func TestTokenizeFencedCodePreservesContent(t *testing.T) {
	got := Tokenize("```js\nconst x = 1;\n```\n")
	want := []Token{{Kind: TokenCodeBlock, Language: "js", Content: "const x = 1;"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("tokenize fence (-want +got):\n%s", diff)
	}
}

func TestTokenizeFenceKeepsBlankAndMarkerLines(t *testing.T) {
	got := Tokenize("```\na\n\n# not a heading\n```\n")
	want := []Token{{Kind: TokenCodeBlock, Content: "a\n\n# not a heading"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("tokenize fence verbatim (-want +got):\n%s", diff)
	}
}

func TestTokenizeUnterminatedFenceRunsToEOF(t *testing.T) {
	got := Tokenize("```\nline one\nline two")
	want := []Token{{Kind: TokenCodeBlock, Content: "line one\nline two"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("tokenize unterminated fence (-want +got):\n%s", diff)
	}
}

func TestTokenizeIndentedCode(t *testing.T) {
	got := Tokenize("    first\n\tsecond\n\nafter\n")
	want := []Token{
		{Kind: TokenCodeBlock, Content: "first\nsecond"},
		{Kind: TokenParagraph, Content: "after"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("tokenize indented code (-want +got):\n%s", diff)
	}
}

func TestTokenizeUnorderedList(t *testing.T) {
	got := Tokenize("- a\n- b\n")
	want := []Token{{Kind: TokenList, Items: []string{"a", "b"}}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("tokenize list (-want +got):\n%s", diff)
	}
}

func TestTokenizeOrderedList(t *testing.T) {
	got := Tokenize("1. one\n2. two\n10. ten\n")
	want := []Token{{Kind: TokenList, Ordered: true, Items: []string{"one", "two", "ten"}}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("tokenize ordered list (-want +got):\n%s", diff)
	}
}

func TestTokenizeTableWithHeader(t *testing.T) {
	got := Tokenize("|A|B|\n|-|-|\n|1|2|\n")
	want := []Token{{
		Kind:      TokenTable,
		HasHeader: true,
		Rows:      [][]string{{"A", "B"}, {"1", "2"}},
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("tokenize table (-want +got):\n%s", diff)
	}
}

func TestTokenizeTableSeparatorOnlyEmitsNothing(t *testing.T) {
	got := Tokenize("|-|-|\n")
	if len(got) != 0 {
		t.Fatalf("expected no tokens for separator-only table, got %+v", got)
	}
}

func TestTokenizeHeadingWinsOverTable(t *testing.T) {
	got := Tokenize("# A | B\n")
	want := []Token{{Kind: TokenHeading, Level: 1, Content: "A | B"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("tokenize heading with pipe (-want +got):\n%s", diff)
	}
}

func TestTokenizeThematicBreak(t *testing.T) {
	for _, src := range []string{"---\n", "***\n", "___\n", "-----\n"} {
		got := Tokenize(src)
		if len(got) != 1 || got[0].Kind != TokenRule {
			t.Fatalf("expected rule for %q, got %+v", src, got)
		}
	}
	got := Tokenize("--\n")
	if len(got) != 1 || got[0].Kind != TokenParagraph {
		t.Fatalf("expected paragraph for two dashes, got %+v", got)
	}
}

func TestTokenizeBlockquoteContinuation(t *testing.T) {
	got := Tokenize("> quoted\nstill quoted\n# After\n")
	want := []Token{
		{Kind: TokenBlockquote, Content: "quoted still quoted"},
		{Kind: TokenHeading, Level: 1, Content: "After"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("tokenize blockquote (-want +got):\n%s", diff)
	}
}

func TestTokenizeBlockquoteStripsSingleMarker(t *testing.T) {
	got := Tokenize("> > nested\n")
	want := []Token{{Kind: TokenBlockquote, Content: "> nested"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("tokenize nested quote (-want +got):\n%s", diff)
	}
}

func TestTokenizeStandaloneImage(t *testing.T) {
	got := Tokenize("![cover](https://a.com/i.png)\n")
	want := []Token{{Kind: TokenImage, Alt: "cover", Src: "https://a.com/i.png"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("tokenize image (-want +got):\n%s", diff)
	}
}

func TestTokenizeImageWithTrailingTextIsParagraph(t *testing.T) {
	got := Tokenize("![a](b) trailing\n")
	want := []Token{{Kind: TokenParagraph, Content: "![a](b) trailing"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("tokenize inline image line (-want +got):\n%s", diff)
	}
}

func TestTokenizeParagraphJoinsLines(t *testing.T) {
	got := Tokenize("line one\nline two\n\nnext\n")
	want := []Token{
		{Kind: TokenParagraph, Content: "line one line two"},
		{Kind: TokenParagraph, Content: "next"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("tokenize paragraphs (-want +got):\n%s", diff)
	}
}

func TestTokenizeParagraphStopsAtBlockStart(t *testing.T) {
	got := Tokenize("para\n- item\n")
	want := []Token{
		{Kind: TokenParagraph, Content: "para"},
		{Kind: TokenList, Items: []string{"item"}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("tokenize paragraph before list (-want +got):\n%s", diff)
	}
}

func TestTokenizeParagraphIdempotence(t *testing.T) {
	first := Tokenize("line one\nline two\n")
	if len(first) != 1 || first[0].Kind != TokenParagraph {
		t.Fatalf("expected single paragraph, got %+v", first)
	}
	second := Tokenize(first[0].Content)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("re-tokenized paragraph differs (-first +second):\n%s", diff)
	}
}

func TestTokenizeMixedDocument(t *testing.T) {
	src := strings.Join([]string{
		"# Title",
		"",
		"Intro paragraph",
		"continued here.",
		"",
		"```go",
		"x := 1",
		"```",
		"",
		"- first",
		"- second",
		"",
		"> a quote",
		"",
		"---",
		"",
		"|H1|H2|",
		"|--|--|",
		"|a|b|",
		"",
		"![img](https://a.com/x.png)",
		"",
	}, "\n")
	want := []Token{
		{Kind: TokenHeading, Level: 1, Content: "Title"},
		{Kind: TokenParagraph, Content: "Intro paragraph continued here."},
		{Kind: TokenCodeBlock, Language: "go", Content: "x := 1"},
		{Kind: TokenList, Items: []string{"first", "second"}},
		{Kind: TokenBlockquote, Content: "a quote"},
		{Kind: TokenRule},
		{Kind: TokenTable, HasHeader: true, Rows: [][]string{{"H1", "H2"}, {"a", "b"}}},
		{Kind: TokenImage, Alt: "img", Src: "https://a.com/x.png"},
	}
	if diff := cmp.Diff(want, Tokenize(src)); diff != "" {
		t.Fatalf("tokenize document (-want +got):\n%s", diff)
	}
}

// tokenText flattens every textual payload a token can carry.
func tokenText(tokens []Token) string {
	var b strings.Builder
	for _, tok := range tokens {
		b.WriteString(tok.Content)
		b.WriteString("\n")
		for _, item := range tok.Items {
			b.WriteString(item)
			b.WriteString("\n")
		}
		for _, row := range tok.Rows {
			for _, cell := range row {
				b.WriteString(cell)
				b.WriteString("\n")
			}
		}
		b.WriteString(tok.Alt)
		b.WriteString("\n")
		b.WriteString(tok.Src)
		b.WriteString("\n")
	}
	return b.String()
}

func TestTokenizeEveryLineContributes(t *testing.T) {
	// one unique word per content-bearing line; separator and rule lines
	// contribute structure instead of text
	src := strings.Join([]string{
		"# alpha",
		"",
		"bravo",
		"charlie",
		"",
		"```",
		"delta",
		"```",
		"    echo",
		"",
		"> foxtrot",
		"",
		"- golf",
		"- hotel",
		"",
		"1. india",
		"",
		"|juliet|kilo|",
		"|-|-|",
		"|lima|mike|",
		"",
		"![november](oscar.png)",
		"",
	}, "\n")
	text := tokenText(Tokenize(src))
	words := []string{
		"alpha", "bravo", "charlie", "delta", "echo", "foxtrot",
		"golf", "hotel", "india", "juliet", "kilo", "lima", "mike",
		"november", "oscar.png",
	}
	for _, word := range words {
		if !strings.Contains(text, word) {
			t.Fatalf("line content %q missing from tokens:\n%s", word, text)
		}
	}
}

func TestTokenizeTotality(t *testing.T) {
	inputs := []string{
		"",
		"\n",
		"   \n\t\n",
		"****",
		"|",
		"||",
		"```",
		">",
		"- ",
		"1. ",
		"![",
		"#",
		"###### deep\n####### too deep\n",
		strings.Repeat("*", 100),
		strings.Repeat("|-|\n", 10),
	}
	for _, src := range inputs {
		tokens := Tokenize(src)
		_ = tokens
	}
}
