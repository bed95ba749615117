package textutil

import "regexp"

// reservedRe matches characters that are illegal in file names on at least
// one common file system.
var reservedRe = regexp.MustCompile(`[/\\:*?"<>|]`)

const maxFilenameLen = 50

// SanitizeFilename maps an arbitrary video title to a safe, bounded file
// name stem. Idempotent: sanitizing an already-sanitized title is a no-op.
func SanitizeFilename(title string) string {
	s := reservedRe.ReplaceAllString(title, "_")
	s = whitespaceRe.ReplaceAllString(s, "_")
	runes := []rune(s)
	if len(runes) > maxFilenameLen {
		return string(runes[:maxFilenameLen])
	}
	return s
}
