package display

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/muesli/reflow/wordwrap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const DefaultWidth = 80

var titleCaser = cases.Title(language.English)

// Wrap word-wraps text to width, or DefaultWidth when width is not positive.
// Existing line breaks are kept.
func Wrap(text string, width int) string {
	if width <= 0 {
		width = DefaultWidth
	}
	return wordwrap.String(text, width)
}

// Capitalize uppercases the first letter of s and lowercases the rest.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}

// Title uppercases the first letter of every word, for headings such as
// location names on the status line.
func Title(s string) string {
	return titleCaser.String(s)
}

// List renders a heading followed by one indented line per entry.
func List(heading, indent string, entries []string) string {
	var b strings.Builder
	b.WriteString(heading)
	for _, e := range entries {
		b.WriteString("\n")
		b.WriteString(indent)
		b.WriteString(e)
	}
	return b.String()
}
