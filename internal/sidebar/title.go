package sidebar

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// numericPrefixRe matches a leading "<digits>." with optional trailing
// whitespace. The same pattern drives both title stripping and sort-key
// extraction so the displayed title and the sort position can never
// disagree about what counts as a prefix.
var numericPrefixRe = regexp.MustCompile(`^(\d+)\.\s*`)

// generalTitle is the display label for the ungrouped (root-level) bucket.
const generalTitle = "General"

// FileTitle derives the display text for a file: the filename without its
// extension, with any numeric ordering prefix removed. No capitalization
// is applied; authors name files the way they want them shown.
func FileTitle(name string) string {
	title := strings.TrimSuffix(name, markdownExt)
	return numericPrefixRe.ReplaceAllString(title, "")
}

// GroupTitle derives the display text for a group key: the ungrouped
// sentinel renders as "General"; otherwise the key is split on hyphens
// and underscores and each word gets its first letter capitalized, so
// "api-reference" becomes "Api Reference".
func GroupTitle(key string) string {
	if key == ungroupedKey {
		return generalTitle
	}

	words := strings.FieldsFunc(key, func(r rune) bool {
		return r == '-' || r == '_'
	})
	for i, word := range words {
		words[i] = capitalize(word)
	}
	return strings.Join(words, " ")
}

// capitalize upper-cases the first rune, leaving the rest untouched.
func capitalize(word string) string {
	r, size := utf8.DecodeRuneInString(word)
	if r == utf8.RuneError {
		return word
	}
	return string(unicode.ToUpper(r)) + word[size:]
}
