package util

import (
	"strings"
)

// SplitLines splits source the same way every component indexes it: on "\n" only.
func SplitLines(content string) []string {
	return strings.Split(content, "\n")
}

// ContextWindow joins lines[idx-radius .. idx+radius], clamped at the text boundaries.
// idx is 0-based.
func ContextWindow(lines []string, idx, radius int) string {
	if len(lines) == 0 || idx < 0 || idx >= len(lines) {
		return ""
	}
	s := max(0, idx-radius)
	e := min(len(lines), idx+radius+1)
	return strings.Join(lines[s:e], "\n")
}

// Indentation returns the leading whitespace of line.
func Indentation(line string) string {
	return line[:len(line)-len(strings.TrimLeft(line, " \t\r\f\v"))]
}

// LineAt returns the 1-based line n, reporting false when n is out of range.
func LineAt(lines []string, n int) (string, bool) {
	if n < 1 || n > len(lines) {
		return "", false
	}
	return lines[n-1], true
}
