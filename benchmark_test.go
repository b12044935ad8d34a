package mdt

import (
	"io"
	"strings"
	"testing"
)

const benchmarkDoc = `# Release notes

This paragraph has **bold**, *italic*, ~~dropped~~ and ` + "`code`" + ` spans,
plus a [link](https://example.com/notes) that spans the line break.

## Changes

- faster startup
- new **--width** flag
- fixed table layout

1. unpack
2. configure
3. run

> Upgrades are in place. Back up your configuration first.

| Component | Status |
|-----------|--------|
| parser    | stable |
| renderer  | stable |

` + "```go\nfunc main() {\n\tfmt.Println(\"hello\")\n}\n```" + `

![diagram](images/flow.png)

---

Closing paragraph with a trailing [reference](/docs/index.html).
`

func BenchmarkTokenize(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		Tokenize(benchmarkDoc)
	}
}

func BenchmarkParseInline(b *testing.B) {
	const line = "some **bold** text with a [link](https://example.com) and `code`"
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		ParseInline(line)
	}
}

func BenchmarkRender(b *testing.B) {
	theme := DefaultTheme()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		err := Render(RenderRequest{
			Reader:  strings.NewReader(benchmarkDoc),
			Writer:  io.Discard,
			Width:   80,
			Theme:   theme,
			Options: []RenderOption{WithBaseURL("https://example.com/a/b.html")},
		})
		if err != nil {
			b.Fatal(err)
		}
	}
}
