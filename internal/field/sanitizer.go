package field

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Sanitize derives a new raw value from the displayed text after an edit.
//
// When the edit was a deletion and the text's last character is whitespace
// (a separator inserted by the formatter), only that character is dropped
// and the rest of the text is passed through untouched. This lets the user
// delete through inserted formatting one keystroke at a time; the next
// formatting cycle absorbs any separators left behind.
//
// Otherwise the text is filtered down to decimal digits plus a single
// leading +. Everything else is dropped silently.
func Sanitize(text string, deletion bool) string {
	if deletion && text != "" {
		last, size := utf8.DecodeLastRuneInString(text)
		if unicode.IsSpace(last) {
			return text[:len(text)-size]
		}
	}

	var b strings.Builder
	b.Grow(len(text))
	for i, r := range text {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '+' && i == 0:
			b.WriteRune(r)
		}
	}
	return b.String()
}
