package mdt

import "strings"

// Tokenize splits a Markdown document into an ordered sequence of block
// tokens. It never fails: input that matches no block rule degrades to
// paragraph tokens. Rules are tried in fixed precedence order at each
// non-blank line and the first match wins, so a line that could open a table
// but also parses as a heading becomes a heading.
func Tokenize(src string) []Token {
	lines := strings.Split(src, "\n")
	tokens := make([]Token, 0, 8)
	i := 0
	for i < len(lines) {
		trimmed := strings.TrimSpace(lines[i])
		if trimmed == "" {
			i++
			continue
		}
		if isThematicBreak(trimmed) {
			tokens = append(tokens, Token{Kind: TokenRule})
			i++
			continue
		}
		// headings get no leading whitespace; an indented # line falls
		// through to the code rules
		if level, content, ok := parseHeading(strings.TrimRight(lines[i], " \t\r")); ok {
			tokens = append(tokens, Token{Kind: TokenHeading, Level: level, Content: content})
			i++
			continue
		}
		if strings.HasPrefix(trimmed, "```") {
			var tok Token
			tok, i = consumeFencedCode(lines, i)
			tokens = append(tokens, tok)
			continue
		}
		if isIndentedCodeLine(lines[i]) {
			var tok Token
			tok, i = consumeIndentedCode(lines, i)
			tokens = append(tokens, tok)
			continue
		}
		if strings.HasPrefix(trimmed, ">") {
			var tok Token
			tok, i = consumeBlockquote(lines, i)
			tokens = append(tokens, tok)
			continue
		}
		if isUnorderedItem(trimmed) {
			var tok Token
			tok, i = consumeList(lines, i, false)
			tokens = append(tokens, tok)
			continue
		}
		if isOrderedItem(trimmed) {
			var tok Token
			tok, i = consumeList(lines, i, true)
			tokens = append(tokens, tok)
			continue
		}
		if strings.ContainsRune(lines[i], '|') {
			tok, next, ok := consumeTable(lines, i)
			if ok {
				tokens = append(tokens, tok)
			}
			i = next
			continue
		}
		if src, alt, ok := matchStandaloneImage(trimmed); ok {
			tokens = append(tokens, Token{Kind: TokenImage, Src: src, Alt: alt})
			i++
			continue
		}
		tok, next := consumeParagraph(lines, i)
		if tok.Content != "" {
			tokens = append(tokens, tok)
		}
		i = next
	}
	return tokens
}

// isThematicBreak reports whether text is three or more of the same rule
// character with nothing else on the line.
func isThematicBreak(text string) bool {
	if len(text) < 3 {
		return false
	}
	ch := text[0]
	if ch != '-' && ch != '*' && ch != '_' {
		return false
	}
	for i := 0; i < len(text); i++ {
		if text[i] != ch {
			return false
		}
	}
	return true
}

// parseHeading matches 1-6 leading hashes followed by whitespace and text.
func parseHeading(text string) (int, string, bool) {
	level := 0
	for level < len(text) && text[level] == '#' {
		level++
	}
	if level == 0 || level > 6 {
		return 0, "", false
	}
	if level >= len(text) || !isSpace(text[level]) {
		return 0, "", false
	}
	content := strings.TrimSpace(text[level+1:])
	if content == "" {
		return 0, "", false
	}
	return level, content, true
}

func consumeFencedCode(lines []string, i int) (Token, int) {
	opening := strings.TrimSpace(lines[i])
	language := strings.TrimSpace(strings.TrimPrefix(opening, "```"))
	j := i + 1
	start := j
	for j < len(lines) {
		if strings.HasPrefix(strings.TrimSpace(lines[j]), "```") {
			break
		}
		j++
	}
	content := strings.Join(lines[start:j], "\n")
	if j < len(lines) {
		// closing fence is consumed but never part of the content
		j++
	}
	return Token{Kind: TokenCodeBlock, Content: content, Language: language}, j
}

func isIndentedCodeLine(line string) bool {
	return strings.HasPrefix(line, "    ") || strings.HasPrefix(line, "\t")
}

func consumeIndentedCode(lines []string, i int) (Token, int) {
	j := i
	var parts []string
	for j < len(lines) {
		line := lines[j]
		if isIndentedCodeLine(line) {
			parts = append(parts, stripCodeIndent(line))
			j++
			continue
		}
		if strings.TrimSpace(line) == "" {
			parts = append(parts, "")
			j++
			continue
		}
		break
	}
	content := strings.TrimRight(strings.Join(parts, "\n"), " \t\n")
	return Token{Kind: TokenCodeBlock, Content: content}, j
}

// stripCodeIndent removes one level of indentation: four spaces or one tab.
func stripCodeIndent(line string) string {
	if strings.HasPrefix(line, "    ") {
		return line[4:]
	}
	if strings.HasPrefix(line, "\t") {
		return line[1:]
	}
	return line
}

// consumeBlockquote gathers the opening > line plus continuation lines.
// Continuation is heuristic: any non-blank line that does not open a heading
// or list is pulled into the quote, matching the renderer this grew out of.
func consumeBlockquote(lines []string, i int) (Token, int) {
	j := i
	var parts []string
	for j < len(lines) {
		trimmed := strings.TrimSpace(lines[j])
		if strings.HasPrefix(trimmed, ">") {
			part := strings.TrimPrefix(trimmed, ">")
			part = strings.TrimPrefix(part, " ")
			parts = append(parts, part)
			j++
			continue
		}
		if j > i && trimmed != "" && !isQuoteTerminator(trimmed) {
			parts = append(parts, trimmed)
			j++
			continue
		}
		break
	}
	content := strings.TrimSpace(strings.Join(parts, " "))
	return Token{Kind: TokenBlockquote, Content: content}, j
}

func isQuoteTerminator(trimmed string) bool {
	if _, _, ok := parseHeading(trimmed); ok {
		return true
	}
	return isUnorderedItem(trimmed) || isOrderedItem(trimmed)
}

func isUnorderedItem(text string) bool {
	if len(text) < 2 {
		return false
	}
	switch text[0] {
	case '-', '*', '+':
		return isSpace(text[1])
	}
	return false
}

func isOrderedItem(text string) bool {
	i := 0
	for i < len(text) && text[i] >= '0' && text[i] <= '9' {
		i++
	}
	if i == 0 || i >= len(text) || text[i] != '.' {
		return false
	}
	return i+1 < len(text) && isSpace(text[i+1])
}

func consumeList(lines []string, i int, ordered bool) (Token, int) {
	match := isUnorderedItem
	if ordered {
		match = isOrderedItem
	}
	j := i
	var items []string
	for j < len(lines) {
		trimmed := strings.TrimSpace(lines[j])
		if !match(trimmed) {
			break
		}
		items = append(items, stripListMarker(trimmed, ordered))
		j++
	}
	return Token{Kind: TokenList, Ordered: ordered, Items: items}, j
}

func stripListMarker(text string, ordered bool) string {
	if ordered {
		i := 0
		for i < len(text) && text[i] >= '0' && text[i] <= '9' {
			i++
		}
		// skip the dot after the digits
		return strings.TrimSpace(text[i+1:])
	}
	return strings.TrimSpace(text[1:])
}

func consumeTable(lines []string, i int) (Token, int, bool) {
	j := i
	var consumed []string
	for j < len(lines) && strings.ContainsRune(lines[j], '|') {
		consumed = append(consumed, strings.TrimSpace(lines[j]))
		j++
	}
	var rows [][]string
	hasHeader := false
	for idx, line := range consumed {
		if isTableSeparator(line) {
			if idx == 1 {
				hasHeader = true
			}
			continue
		}
		cells := strings.Split(line, "|")
		for k := range cells {
			cells[k] = strings.TrimSpace(cells[k])
		}
		// a leading or trailing pipe produces an empty edge cell; only the
		// first and last index are filtered
		if len(cells) > 0 && cells[0] == "" {
			cells = cells[1:]
		}
		if len(cells) > 0 && cells[len(cells)-1] == "" {
			cells = cells[:len(cells)-1]
		}
		if len(cells) > 0 {
			rows = append(rows, cells)
		}
	}
	if len(rows) == 0 {
		return Token{}, j, false
	}
	return Token{Kind: TokenTable, Rows: rows, HasHeader: hasHeader}, j, true
}

// isTableSeparator reports whether line consists solely of pipes, dashes,
// colons and whitespace, as in the |---|---| row under a table header.
func isTableSeparator(line string) bool {
	if line == "" {
		return false
	}
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case '|', '-', ':', ' ', '\t':
		default:
			return false
		}
	}
	return true
}

// matchStandaloneImage matches a line that is exactly ![alt](src).
func matchStandaloneImage(text string) (string, string, bool) {
	alt, src, rest, ok := matchImagePrefix(text)
	if !ok || rest != "" {
		return "", "", false
	}
	return src, alt, true
}

func consumeParagraph(lines []string, i int) (Token, int) {
	j := i
	var parts []string
	for j < len(lines) {
		trimmed := strings.TrimSpace(lines[j])
		if trimmed == "" {
			break
		}
		if j > i && isBlockStart(trimmed) {
			break
		}
		parts = append(parts, trimmed)
		j++
	}
	content := strings.TrimSpace(strings.Join(parts, " "))
	return Token{Kind: TokenParagraph, Content: content}, j
}

// isBlockStart reports whether trimmed opens one of the block rules that
// terminate a paragraph: a rule, heading, code fence, blockquote or list.
func isBlockStart(trimmed string) bool {
	if isThematicBreak(trimmed) {
		return true
	}
	if _, _, ok := parseHeading(trimmed); ok {
		return true
	}
	if strings.HasPrefix(trimmed, "```") {
		return true
	}
	if strings.HasPrefix(trimmed, ">") {
		return true
	}
	return isUnorderedItem(trimmed) || isOrderedItem(trimmed)
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t'
}
