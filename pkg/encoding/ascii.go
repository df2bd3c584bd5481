// Package encoding provides text folding helpers for ASCII-only glyph atlases.
package encoding

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// punctuation maps common typographic runes onto their closest ASCII form.
var punctuation = map[rune]rune{
	'\u00a0': ' ',  // no-break space
	'\u2007': ' ',  // figure space
	'\u202f': ' ',  // narrow no-break space
	'\u2010': '-',  // hyphen
	'\u2011': '-',  // non-breaking hyphen
	'\u2012': '-',  // figure dash
	'\u2013': '-',  // en dash
	'\u2014': '-',  // em dash
	'\u2018': '\'', // left single quote
	'\u2019': '\'', // right single quote
	'\u201a': '\'', // single low quote
	'\u201c': '"',  // left double quote
	'\u201d': '"',  // right double quote
	'\u201e': '"',  // double low quote
	'\u2032': '\'', // prime
	'\u2033': '"',  // double prime
	'\u00d7': 'x',  // multiplication sign
}

// IsASCII reports whether s contains only code points below 128.
func IsASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

// FoldASCII strips diacritics and replaces typographic punctuation so that
// text renders with an ASCII-only atlas ("Café – naïve" becomes "Cafe - naive").
// Runes without an ASCII equivalent are kept; the font falls back to '?' for them.
// Returns the original string if folding fails.
func FoldASCII(s string) string {
	if IsASCII(s) {
		return s
	}

	t := transform.Chain(
		norm.NFD,
		runes.Remove(runes.In(unicode.Mn)),
		runes.Map(func(r rune) rune {
			if repl, ok := punctuation[r]; ok {
				return repl
			}
			return r
		}),
		norm.NFC,
	)

	result, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return result
}
