package mdt

import "strings"

// StripFrontMatter removes a leading front matter section from src and
// returns the remainder. A front matter section opens with a ---, +++ or ;;;
// line, is followed by a line that plausibly holds metadata (a key:value or
// key=value pair, or a JSON/TOML bracket) and runs to the matching closing
// delimiter. Anything that does not fit that shape, including an unclosed
// section, is returned untouched.
func StripFrontMatter(src string) string {
	openLine, rest, ok := splitLine(trimBOM(src))
	if !ok {
		return src
	}
	delim, isFrontMatter := frontMatterDelimiter(openLine)
	if !isFrontMatter {
		return src
	}
	secondLine, _, ok := splitLine(rest)
	if !ok || !frontMatterMetadataLikely(secondLine) {
		return src
	}
	for body := rest; ; {
		line, tail, ok := splitLine(body)
		if !ok {
			return src
		}
		if strings.TrimSpace(line) == delim {
			return tail
		}
		body = tail
	}
}

func splitLine(src string) (string, string, bool) {
	if src == "" {
		return "", "", false
	}
	if idx := strings.IndexByte(src, '\n'); idx >= 0 {
		return strings.TrimSuffix(src[:idx], "\r"), src[idx+1:], true
	}
	return strings.TrimSuffix(src, "\r"), "", true
}

func frontMatterDelimiter(line string) (string, bool) {
	switch strings.TrimSpace(line) {
	case "---":
		return "---", true
	case "+++":
		return "+++", true
	case ";;;":
		return ";;;", true
	default:
		return "", false
	}
}

func frontMatterMetadataLikely(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}
	if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
		return true
	}
	return strings.ContainsAny(trimmed, ":=")
}

func trimBOM(s string) string {
	return strings.TrimPrefix(s, "\ufeff")
}
