package textutil

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Placeholder is the token ReplaceIn substitutes
const Placeholder = "[VAR]"

var (
	wordPattern       = regexp.MustCompile(`\w\S*`)
	whitespacePattern = regexp.MustCompile(`\s+`)
	skillNameStrip    = regexp.MustCompile(`[^a-zA-Zа-яА-Я0-9]`)
)

// ProperCase upper-cases the first character of every word and lower-cases
// the rest. A word starts at a letter, digit or underscore and runs to the
// next whitespace, so leading punctuation is left alone.
func ProperCase(s string) string {
	lower := cases.Lower(language.Und)
	upper := cases.Upper(language.Und)

	return wordPattern.ReplaceAllStringFunc(s, func(word string) string {
		_, size := utf8.DecodeRuneInString(word)
		return upper.String(word[:size]) + lower.String(word[size:])
	})
}

// ReplaceIn substitutes the first Placeholder in template with value
func ReplaceIn(template, value string) string {
	return strings.Replace(template, Placeholder, value, 1)
}

// SanitizeSkillName drops whitespace and anything outside Latin or Cyrillic
// letters and digits, giving the suffix of a skill's localization key.
func SanitizeSkillName(name string) string {
	compact := whitespacePattern.ReplaceAllString(name, "")
	return skillNameStrip.ReplaceAllString(compact, "")
}
