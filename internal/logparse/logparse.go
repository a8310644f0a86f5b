// Package logparse extracts structured fields from fixed-format log lines.
package logparse

import (
	"regexp"
	"strings"
	"unicode"
)

// Entry is one successfully parsed log line.
type Entry struct {
	Date    string // raw "YYYY-MM-DD HH:MM:SS", millisecond suffix dropped
	Level   string
	Message string
}

// Digits are any Unicode decimal digit. Separators are any rune isSpace
// accepts; RE2's \s alone misses \v, U+001C-U+001F and the Unicode spaces.
const (
	digit = `\p{Nd}`
	space = `[\t-\r\x1c-\x1f\x{85}\p{Z}]`
)

// lineRe matches "YYYY-MM-DD HH:MM:SS,<ms> LEVEL message". The millisecond
// digits are required but never captured.
var lineRe = regexp.MustCompile(`^(?P<date>` +
	digit + `{4}-` + digit + `{2}-` + digit + `{2} ` +
	digit + `{2}:` + digit + `{2}:` + digit + `{2}),` + digit + `+` +
	space + `+(?P<level>[A-Z]+)` + space + `+(?P<message>.*)$`)

var (
	dateIdx    = lineRe.SubexpIndex("date")
	levelIdx   = lineRe.SubexpIndex("level")
	messageIdx = lineRe.SubexpIndex("message")
)

// ParseLine matches line against the fixed log shape. The boolean is false
// when the line does not match; that is a normal outcome, not an error.
func ParseLine(line string) (Entry, bool) {
	m := lineRe.FindStringSubmatch(line)
	if m == nil {
		return Entry{}, false
	}
	return Entry{
		Date:    m[dateIdx],
		Level:   m[levelIdx],
		Message: m[messageIdx],
	}, true
}

// Trim removes leading and trailing whitespace as isSpace defines it.
func Trim(line string) string {
	return strings.TrimFunc(line, isSpace)
}

// isSpace is unicode.IsSpace plus the ASCII information separators
// U+001C-U+001F, which Python's str.isspace also treats as whitespace.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}
