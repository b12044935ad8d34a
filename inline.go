package mdt

import (
	"strings"
	"unicode/utf8"
)

// inlineSpecials are the bytes that terminate a plain text run.
const inlineSpecials = "*_`[!~"

// ParseInline scans text into a tree of inline tokens. Patterns are tried in
// fixed precedence order against the unconsumed suffix; the first match wins
// and consumes its span. A special character that opens no valid construct is
// consumed as a single text token, so the scan always advances and the
// function is total.
func ParseInline(text string) []InlineToken {
	var tokens []InlineToken
	rest := text
	for rest != "" {
		if alt, src, tail, ok := matchImagePrefix(rest); ok {
			tokens = append(tokens, InlineToken{Kind: InlineImage, Alt: alt, Src: src})
			rest = tail
			continue
		}
		if inner, href, tail, ok := matchLinkPrefix(rest); ok {
			tokens = append(tokens, InlineToken{
				Kind:     InlineLink,
				Content:  inner,
				Href:     href,
				Children: ParseInline(inner),
			})
			rest = tail
			continue
		}
		if inner, tail, ok := matchDoubleDelim(rest, '*'); ok {
			tokens = append(tokens, spanToken(InlineStrong, inner))
			rest = tail
			continue
		}
		if inner, tail, ok := matchDoubleDelim(rest, '_'); ok {
			tokens = append(tokens, spanToken(InlineStrong, inner))
			rest = tail
			continue
		}
		if inner, tail, ok := matchDoubleDelim(rest, '~'); ok {
			tokens = append(tokens, spanToken(InlineStrike, inner))
			rest = tail
			continue
		}
		if inner, tail, ok := matchSingleDelim(rest, '*'); ok {
			tokens = append(tokens, spanToken(InlineEm, inner))
			rest = tail
			continue
		}
		if inner, tail, ok := matchSingleDelim(rest, '_'); ok {
			tokens = append(tokens, spanToken(InlineEm, inner))
			rest = tail
			continue
		}
		if inner, tail, ok := matchSingleDelim(rest, '`'); ok {
			tokens = append(tokens, InlineToken{Kind: InlineCode, Content: inner})
			rest = tail
			continue
		}
		if idx := strings.IndexAny(rest, inlineSpecials); idx != 0 {
			if idx == -1 {
				idx = len(rest)
			}
			tokens = append(tokens, InlineToken{Kind: InlineText, Content: rest[:idx]})
			rest = rest[idx:]
			continue
		}
		// lone special character; consume it as text to guarantee progress
		_, size := utf8.DecodeRuneInString(rest)
		tokens = append(tokens, InlineToken{Kind: InlineText, Content: rest[:size]})
		rest = rest[size:]
	}
	return tokens
}

func spanToken(kind InlineKind, inner string) InlineToken {
	return InlineToken{Kind: kind, Content: inner, Children: ParseInline(inner)}
}

// matchImagePrefix matches ![alt](src) at the start of s. Alt and src are
// non-greedy: alt runs to the first ] and src to the first ).
func matchImagePrefix(s string) (alt, src, tail string, ok bool) {
	if len(s) < 5 || s[0] != '!' || s[1] != '[' {
		return "", "", "", false
	}
	inner, target, rest, ok := matchBracketPair(s[1:])
	if !ok {
		return "", "", "", false
	}
	return inner, target, rest, true
}

// matchLinkPrefix matches [text](href) at the start of s.
func matchLinkPrefix(s string) (text, href, tail string, ok bool) {
	if len(s) < 4 || s[0] != '[' {
		return "", "", "", false
	}
	return matchBracketPair(s)
}

// matchBracketPair matches [inner](target) at the start of s, which must
// begin with an opening bracket.
func matchBracketPair(s string) (inner, target, tail string, ok bool) {
	close := strings.IndexByte(s, ']')
	if close < 0 {
		return "", "", "", false
	}
	if close+1 >= len(s) || s[close+1] != '(' {
		return "", "", "", false
	}
	end := strings.IndexByte(s[close+2:], ')')
	if end < 0 {
		return "", "", "", false
	}
	inner = s[1:close]
	target = s[close+2 : close+2+end]
	tail = s[close+2+end+1:]
	return inner, target, tail, true
}

// matchDoubleDelim matches a dd...dd span. The closing pair is the first
// occurrence of dd after a non-empty inner; when that occurrence sits inside
// a longer delimiter run the close shifts to the end of the run, which keeps
// a lone inner delimiter inside the span ("**bold *and italic***" nests an
// em inside the strong).
func matchDoubleDelim(s string, d byte) (inner, tail string, ok bool) {
	if len(s) < 5 || s[0] != d || s[1] != d {
		return "", "", false
	}
	for j := 3; j+1 < len(s); j++ {
		if s[j] != d || s[j+1] != d {
			continue
		}
		for j+2 < len(s) && s[j+2] == d {
			j++
		}
		return s[2:j], s[j+2:], true
	}
	return "", "", false
}

// matchSingleDelim matches a d...d span with a non-empty inner that contains
// no further delimiter.
func matchSingleDelim(s string, d byte) (inner, tail string, ok bool) {
	if len(s) < 3 || s[0] != d {
		return "", "", false
	}
	j := strings.IndexByte(s[1:], d)
	if j < 1 {
		return "", "", false
	}
	return s[1 : 1+j], s[1+j+1:], true
}
