// Package mdt tokenizes Markdown into renderable block and inline tokens.
//
// The package is built around two pure, total functions: Tokenize splits a
// document into an ordered sequence of block tokens (headings, paragraphs,
// code blocks, blockquotes, lists, tables, images), and ParseInline turns the
// textual content of a block into a tree of inline tokens (emphasis, strong,
// strikethrough, code spans, links, images). Neither function can fail:
// malformed input degrades to paragraph and text tokens.
//
// Core properties:
//   - Fixed-precedence rule matching; first rule wins
//   - Every input line contributes to exactly one block token
//   - Inline parsing always advances, so recursion is bounded by input length
//   - No shared state; safe for concurrent use
//
// ResolveURL and IsValidImageURL are the helpers a renderer calls before
// emitting link and image elements. A themed ANSI renderer over the token
// trees is included:
//
//	err := mdt.Render(mdt.RenderRequest{
//		Reader: strings.NewReader("# Hello\n\nMarkdown in, ANSI out.\n"),
//		Writer: os.Stdout,
//		Width:  80,
//		Theme:  mdt.DefaultTheme(),
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
package mdt
