package mdt

import (
	"net/url"
	"strings"
)

// trackingPixelPrefix is the data URI of the ubiquitous 1x1 GIF used by
// analytics beacons; R0lGOD is "GIF8" in base64.
const trackingPixelPrefix = "data:image/gif;base64,R0lGOD"

// IsValidImageURL reports whether src is worth rendering as an image source.
// Empty or whitespace-only sources, bare fragment placeholders and tracking
// pixel GIFs are rejected.
func IsValidImageURL(src string) bool {
	trimmed := strings.TrimSpace(src)
	if trimmed == "" || trimmed == "#" {
		return false
	}
	if strings.HasPrefix(trimmed, trackingPixelPrefix) {
		return false
	}
	return true
}

// ResolveURL turns href into an absolute URL. Absolute http(s) hrefs pass
// through unchanged, protocol-relative hrefs are pinned to https, and
// file URLs are never resolvable. Relative hrefs resolve against base: an
// absolute path replaces the base path wholesale, anything else is appended
// to the base's directory. The path is deliberately not normalized, so a
// ../segment survives resolution as-is. The second return is false when no
// absolute URL can be produced (no base for a relative href, or a base that
// does not parse as an absolute URL).
func ResolveURL(href, base string) (string, bool) {
	if strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
		return href, true
	}
	if strings.HasPrefix(href, "file://") {
		return "", false
	}
	if strings.HasPrefix(href, "//") {
		return "https:" + href, true
	}
	if base == "" {
		return "", false
	}
	u, err := url.Parse(base)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", false
	}
	if strings.HasPrefix(href, "/") {
		return u.Scheme + "://" + u.Host + href, true
	}
	dir := "/"
	if idx := strings.LastIndexByte(u.Path, '/'); idx >= 0 {
		dir = u.Path[:idx+1]
	}
	return u.Scheme + "://" + u.Host + dir + href, true
}
