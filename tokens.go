package mdt

// TokenKind identifies a block-level token.
type TokenKind uint8

const (
	// TokenParagraph is a run of plain text lines joined into one span.
	TokenParagraph TokenKind = iota
	// TokenHeading is an ATX heading; Level holds 1-6.
	TokenHeading
	// TokenCodeBlock is a fenced or indented code block.
	TokenCodeBlock
	// TokenBlockquote is a quoted span with the > markers stripped.
	TokenBlockquote
	// TokenList is an ordered or unordered list; Items holds the raw items.
	TokenList
	// TokenRule is a horizontal rule.
	TokenRule
	// TokenTable is a pipe table; Rows holds the trimmed cells.
	TokenTable
	// TokenImage is a standalone image line.
	TokenImage
)

// Token is a block-level unit of a Markdown document. Content carries the
// raw or joined text for textual kinds and is empty for structural kinds.
type Token struct {
	Kind    TokenKind
	Content string

	// Heading only.
	Level int

	// List only.
	Ordered bool
	Items   []string

	// Table only.
	Rows      [][]string
	HasHeader bool

	// Image only.
	Src string
	Alt string

	// Fenced code blocks only.
	Language string
}

// InlineKind identifies an inline token within a block's text.
type InlineKind uint8

const (
	// InlineText is a literal text run.
	InlineText InlineKind = iota
	// InlineStrong is **bold** or __bold__ text.
	InlineStrong
	// InlineEm is *emphasized* or _emphasized_ text.
	InlineEm
	// InlineCode is an inline code span.
	InlineCode
	// InlineLink is a [text](href) link.
	InlineLink
	// InlineImage is an ![alt](src) image.
	InlineImage
	// InlineStrike is ~~struck~~ text.
	InlineStrike
)

// InlineToken is a node in the inline formatting tree. For text and code
// Content is the literal string; for strong, em, strike and link it is the
// unparsed inner text kept alongside the parsed Children.
type InlineToken struct {
	Kind     InlineKind
	Content  string
	Children []InlineToken

	// Link only.
	Href string

	// Image only.
	Src string
	Alt string
}
