package mdt

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/wordwrap"
)

const ansiReset = "\x1b[0m"

// RenderRequest configures Render.
type RenderRequest struct {
	Reader  io.Reader
	Writer  io.Writer
	Width   int
	Theme   Theme
	Options []RenderOption
}

// Render reads a Markdown document, tokenizes it and writes themed ANSI
// output. Leading front matter is stripped and the input is rejected if it
// is not valid UTF-8 text.
func Render(req RenderRequest) error {
	if req.Reader == nil {
		return fmt.Errorf("render: reader is nil")
	}
	if req.Writer == nil {
		return fmt.Errorf("render: writer is nil")
	}
	src, err := io.ReadAll(req.Reader)
	if err != nil {
		return fmt.Errorf("render: read: %w", err)
	}
	if err := ValidateInput(src); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	tokens := Tokenize(StripFrontMatter(string(src)))
	return RenderTokens(req.Writer, tokens, req.Width, req.Theme, req.Options...)
}

// RenderTokens writes an already tokenized document as themed ANSI output.
// Width 0 disables wrapping. Errors come only from the writer.
func RenderTokens(w io.Writer, tokens []Token, width int, theme Theme, opts ...RenderOption) error {
	cfg := renderConfig{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if theme == nil {
		theme = DefaultTheme()
	}
	r := renderer{
		w:       w,
		width:   width,
		styles:  theme.Styles(),
		osc8:    cfg.osc8,
		baseURL: cfg.baseURL,
	}
	r.renderAll(tokens)
	if r.err != nil {
		return fmt.Errorf("render: write: %w", r.err)
	}
	return nil
}

type renderer struct {
	w       io.Writer
	width   int
	styles  Styles
	osc8    bool
	baseURL string
	err     error
}

func (r *renderer) renderAll(tokens []Token) {
	for i, tok := range tokens {
		if i > 0 {
			r.writeString("\n")
		}
		switch tok.Kind {
		case TokenHeading:
			r.renderHeading(tok)
		case TokenCodeBlock:
			r.renderCodeBlock(tok)
		case TokenBlockquote:
			r.renderBlockquote(tok)
		case TokenList:
			r.renderList(tok)
		case TokenRule:
			r.renderRule()
		case TokenTable:
			r.renderTable(tok)
		case TokenImage:
			r.renderImage(tok.Src, tok.Alt)
		default:
			r.writeWrapped("", "", r.inlineString(ParseInline(tok.Content), r.styles.Text))
		}
	}
}

func (r *renderer) renderHeading(tok Token) {
	level := tok.Level
	if level < 1 {
		level = 1
	} else if level > 6 {
		level = 6
	}
	style := r.styles.Heading[level-1]
	marker := strings.Repeat("#", level) + " "
	text := r.styled(style, marker) + r.inlineString(ParseInline(tok.Content), style)
	r.writeWrapped("", strings.Repeat(" ", len(marker)), text)
}

func (r *renderer) renderCodeBlock(tok Token) {
	for _, line := range strings.Split(tok.Content, "\n") {
		if line == "" {
			r.writeString("\n")
			continue
		}
		r.writeString(r.styled(r.styles.CodeBlock, line))
		r.writeString("\n")
	}
}

func (r *renderer) renderBlockquote(tok Token) {
	prefix := r.styled(r.styles.Quote, ">") + " "
	r.writeWrapped(prefix, prefix, r.inlineString(ParseInline(tok.Content), r.styles.Text))
}

func (r *renderer) renderList(tok Token) {
	for i, item := range tok.Items {
		marker := "- "
		if tok.Ordered {
			marker = fmt.Sprintf("%d. ", i+1)
		}
		first := r.styled(r.styles.ListMarker, strings.TrimRight(marker, " ")) + " "
		cont := strings.Repeat(" ", len(marker))
		r.writeWrapped(first, cont, r.inlineString(ParseInline(item), r.styles.Text))
	}
}

func (r *renderer) renderRule() {
	width := r.width
	if width <= 0 {
		width = 40
	}
	r.writeString(r.styled(r.styles.ThematicBreak, strings.Repeat("─", width)))
	r.writeString("\n")
}

func (r *renderer) renderTable(tok Token) {
	columns := 0
	for _, row := range tok.Rows {
		if len(row) > columns {
			columns = len(row)
		}
	}
	widths := make([]int, columns)
	cells := make([][]string, len(tok.Rows))
	for i, row := range tok.Rows {
		cells[i] = make([]string, len(row))
		for j, cell := range row {
			style := r.styles.Text
			if tok.HasHeader && i == 0 {
				style = r.styles.Strong
			}
			cells[i][j] = r.inlineString(ParseInline(cell), style)
			if w := ansi.PrintableRuneWidth(cells[i][j]); w > widths[j] {
				widths[j] = w
			}
		}
	}
	for i, row := range cells {
		var b strings.Builder
		for j, cell := range row {
			if j > 0 {
				b.WriteString("  ")
			}
			b.WriteString(cell)
			if pad := widths[j] - ansi.PrintableRuneWidth(cell); pad > 0 && j < len(row)-1 {
				b.WriteString(strings.Repeat(" ", pad))
			}
		}
		r.writeString(b.String())
		r.writeString("\n")
		if tok.HasHeader && i == 0 {
			var sep strings.Builder
			for j, w := range widths {
				if j > 0 {
					sep.WriteString("  ")
				}
				sep.WriteString(strings.Repeat("─", w))
			}
			r.writeString(r.styled(r.styles.ThematicBreak, sep.String()))
			r.writeString("\n")
		}
	}
}

func (r *renderer) renderImage(src, alt string) {
	if !IsValidImageURL(src) {
		return
	}
	resolved, ok := ResolveURL(src, r.baseURL)
	if !ok {
		return
	}
	label := alt
	if label == "" {
		label = "image"
	}
	r.writeString(r.styled(r.styles.LinkText, "["+label+"]"))
	r.writeString(" ")
	r.writeString(r.styled(r.styles.LinkURL, "("+r.fitToWidth(resolved)+")"))
	r.writeString("\n")
}

// inlineString renders an inline token tree to a styled string. The base
// style applies to bare text, so headings carry their color through nested
// spans.
func (r *renderer) inlineString(tokens []InlineToken, base Style) string {
	var b strings.Builder
	r.appendSpans(&b, tokens, spanState{base: base})
	return b.String()
}

type spanState struct {
	base   Style
	strong bool
	em     bool
	strike bool
	link   bool
}

func (r *renderer) appendSpans(b *strings.Builder, tokens []InlineToken, st spanState) {
	for _, tok := range tokens {
		switch tok.Kind {
		case InlineText:
			b.WriteString(r.styled(r.spanStyle(st), tok.Content))
		case InlineCode:
			b.WriteString(r.styled(r.styles.CodeInline, tok.Content))
		case InlineStrong:
			next := st
			next.strong = true
			r.appendSpans(b, tok.Children, next)
		case InlineEm:
			next := st
			next.em = true
			r.appendSpans(b, tok.Children, next)
		case InlineStrike:
			next := st
			next.strike = true
			r.appendSpans(b, tok.Children, next)
		case InlineLink:
			r.appendLink(b, tok, st)
		case InlineImage:
			r.appendImage(b, tok)
		}
	}
}

func (r *renderer) appendLink(b *strings.Builder, tok InlineToken, st spanState) {
	resolved, ok := ResolveURL(tok.Href, r.baseURL)
	next := st
	next.link = true
	if !ok {
		r.appendSpans(b, tok.Children, next)
		return
	}
	if r.osc8 {
		b.WriteString(osc8Start + resolved + "\x1b\\")
		r.appendSpans(b, tok.Children, next)
		b.WriteString(osc8End)
		return
	}
	r.appendSpans(b, tok.Children, next)
	b.WriteString(" ")
	b.WriteString(r.styled(r.styles.LinkURL, "("+r.fitToWidth(resolved)+")"))
}

func (r *renderer) appendImage(b *strings.Builder, tok InlineToken) {
	if !IsValidImageURL(tok.Src) {
		if tok.Alt != "" {
			b.WriteString(r.styled(r.styles.Emphasis, tok.Alt))
		}
		return
	}
	resolved, ok := ResolveURL(tok.Src, r.baseURL)
	if !ok {
		if tok.Alt != "" {
			b.WriteString(r.styled(r.styles.Emphasis, tok.Alt))
		}
		return
	}
	label := tok.Alt
	if label == "" {
		label = "image"
	}
	b.WriteString(r.styled(r.styles.LinkText, "["+label+"]"))
	b.WriteString(" ")
	b.WriteString(r.styled(r.styles.LinkURL, "("+r.fitToWidth(resolved)+")"))
}

// spanStyle combines the active emphasis flags into one ANSI prefix.
func (r *renderer) spanStyle(st spanState) Style {
	var b strings.Builder
	switch {
	case st.strong && st.em:
		b.WriteString(r.styles.EmphasisStrong.Prefix)
	case st.strong:
		b.WriteString(r.styles.Strong.Prefix)
	case st.em:
		b.WriteString(r.styles.Emphasis.Prefix)
	case st.link:
		b.WriteString(r.styles.LinkText.Prefix)
	default:
		b.WriteString(st.base.Prefix)
	}
	if st.strike {
		b.WriteString(r.styles.Strikethrough.Prefix)
	}
	return Style{Prefix: b.String()}
}

func (r *renderer) styled(style Style, text string) string {
	if style.Prefix == "" || text == "" {
		return text
	}
	return style.Prefix + text + ansiReset
}

// writeWrapped wraps text at the configured width, emits first before the
// first line and cont before every continuation line. Prefix widths count
// against the limit.
func (r *renderer) writeWrapped(first, cont, text string) {
	wrapped := text
	if limit := r.width - ansi.PrintableRuneWidth(cont); r.width > 0 && limit > 0 {
		wrapped = wordwrap.String(text, limit)
	}
	for i, line := range strings.Split(wrapped, "\n") {
		if i == 0 {
			r.writeString(first)
		} else {
			r.writeString(cont)
		}
		r.writeString(line)
		r.writeString("\n")
	}
}

func (r *renderer) fitToWidth(url string) string {
	if r.width > 8 {
		return fitURL(url, r.width-4)
	}
	return url
}

func (r *renderer) writeString(s string) {
	if r.err != nil || s == "" {
		return
	}
	_, r.err = io.WriteString(r.w, s)
}
