package preprocess

import "strings"

const tabWidth = 4

// Normalize converts CRLF and lone CR line endings to LF, expands tabs to
// four spaces and trims leading/trailing whitespace of the whole text.
// Normalize never fails and is idempotent.
func Normalize(src string) string {
	s := strings.ReplaceAll(src, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = strings.ReplaceAll(s, "\t", strings.Repeat(" ", tabWidth))
	return strings.TrimSpace(s)
}

// Lines normalizes src and splits it into lines.
func Lines(src string) []string {
	return strings.Split(Normalize(src), "\n")
}
