package pipeline

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	// Anything outside word characters, whitespace and hyphen. Whitespace
	// is spelled out: RE2's \s lacks \v and the \x1c-\x1f separators.
	slugDisallowed = regexp.MustCompile(`[^\w\t\n\v\f\r\x1c-\x1f -]`)

	// Runs of whitespace and hyphens collapse to a single hyphen.
	slugSeparators = regexp.MustCompile(`[-\t\n\v\f\r\x1c-\x1f ]+`)
)

// Slugify converts heading text into a lowercase, ASCII-only anchor id.
//
// Text is NFKD-decomposed so accented letters lose their diacritics, then
// reduced to ASCII, lowercased, stripped of characters outside [a-z0-9_\s-],
// and whitespace/hyphen runs are collapsed into one hyphen. Leading and
// trailing hyphens are trimmed.
//
//	Slugify("Market Sizing")  -> "market-sizing"
//	Slugify("Café Ünïcode!!") -> "cafe-unicode"
//
// Distinct inputs may yield the same slug.
func Slugify(text string) string {
	if text == "" {
		return ""
	}

	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))
	decomposed, _, err := transform.String(t, text)
	if err != nil {
		decomposed = text
	}

	ascii := strings.Map(func(r rune) rune {
		if r > unicode.MaxASCII {
			return -1
		}
		return r
	}, decomposed)

	s := slugDisallowed.ReplaceAllString(strings.ToLower(ascii), "")
	s = slugSeparators.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
