package document

import "strings"

// LineEnding specifies the delimiter inserted for new lines.
type LineEnding uint8

const (
	LineEndingLF   LineEnding = iota // Unix: \n
	LineEndingCRLF                   // Windows: \r\n
	LineEndingCR                     // Old Mac: \r
)

// String returns the escaped representation of the line ending.
func (le LineEnding) String() string {
	switch le {
	case LineEndingCRLF:
		return "\\r\\n"
	case LineEndingCR:
		return "\\r"
	default:
		return "\\n"
	}
}

// Sequence returns the actual line ending characters.
func (le LineEnding) Sequence() string {
	switch le {
	case LineEndingCRLF:
		return "\r\n"
	case LineEndingCR:
		return "\r"
	default:
		return "\n"
	}
}

// ParseLineEnding maps a delimiter sequence or name to a LineEnding.
// Unknown values yield LineEndingLF and false.
func ParseLineEnding(s string) (LineEnding, bool) {
	switch strings.ToLower(s) {
	case "\n", "lf", "\\n", "unix":
		return LineEndingLF, true
	case "\r\n", "crlf", "\\r\\n", "windows":
		return LineEndingCRLF, true
	case "\r", "cr", "\\r", "mac":
		return LineEndingCR, true
	default:
		return LineEndingLF, false
	}
}

// CountDelimiters returns the number of line delimiters in s.
// A "\r\n" pair counts once.
func CountDelimiters(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\r':
			n++
			if i+1 < len(s) && s[i+1] == '\n' {
				i++
			}
		case '\n':
			n++
		}
	}
	return n
}

// ConvertDelimiters rewrites every "\r\n", "\r" and "\n" in text to delim.
func ConvertDelimiters(text, delim string) string {
	if !strings.ContainsAny(text, "\r\n") {
		return text
	}
	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\r':
			b.WriteString(delim)
			if i+1 < len(text) && text[i+1] == '\n' {
				i++
			}
		case '\n':
			b.WriteString(delim)
		default:
			b.WriteByte(text[i])
		}
	}
	return b.String()
}

// isDelimiter reports whether r is part of a line delimiter.
func isDelimiter(r rune) bool {
	return r == '\n' || r == '\r'
}
