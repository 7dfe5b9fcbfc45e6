// Package lexicon turns free-text answers into comparable strings and numbers.
package lexicon

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// punctuation is replaced by whitespace before comparison.
const punctuation = `-,_.;:!"'$%^&*()=+[]{}\/?<>|`

var (
	punctuationReplacer = newPunctuationReplacer()

	// letters that do not decompose into base letter + mark, or whose
	// transliteration differs from plain mark stripping.
	letterReplacer = strings.NewReplacer(
		"ä", "a",
		"ö", "o",
		"ü", "u",
		"ë", "e",
		"š", "s",
		"ß", "ss",
	)
)

func newPunctuationReplacer() *strings.Replacer {
	pairs := make([]string, 0, 2*len(punctuation))
	for _, c := range punctuation {
		pairs = append(pairs, string(c), " ")
	}
	return strings.NewReplacer(pairs...)
}

// Normalize folds s into the form used for every comparison: lower case,
// accents removed, punctuation turned into spaces, whitespace collapsed.
func Normalize(s string) string {
	s = strings.ToLower(s)
	s = punctuationReplacer.Replace(s)
	s = letterReplacer.Replace(s)

	// Remaining accents
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if folded, _, err := transform.String(t, s); err == nil {
		s = folded
	}

	return strings.Join(strings.Fields(s), " ")
}
