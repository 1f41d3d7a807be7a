package graph

import "strings"

// Script identifies which alphabet a rune belongs to.
type Script int

const (
	ScriptOther Script = iota
	ScriptGreek
	ScriptLatin
)

var (
	greekLetters = runeSet(greekMonographs + " " + greekAccented)
	latinLetters = runeSet(latinMonographs + " " + latinAccented)
)

func runeSet(fields string) map[rune]bool {
	set := make(map[rune]bool)
	for _, f := range strings.Fields(fields) {
		for _, r := range f {
			set[r] = true
		}
	}
	return set
}

// ScriptOf classifies a single lowercase rune. Digits and punctuation
// outside both alphabets are ScriptOther; note that 3, 8, 9 and 4 are
// Greeklish letters, not ScriptOther.
func ScriptOf(r rune) Script {
	switch {
	case greekLetters[r]:
		return ScriptGreek
	case latinLetters[r]:
		return ScriptLatin
	default:
		return ScriptOther
	}
}

// IsGreekLetter reports whether the lowercase rune belongs to the
// Greek alphabet, accented forms included.
func IsGreekLetter(r rune) bool { return greekLetters[r] }

// IsLatinLetter reports whether the lowercase rune belongs to the
// Greeklish alphabet, accented forms and letter-digits included.
func IsLatinLetter(r rune) bool { return latinLetters[r] }

// IsGreekWord reports whether every rune of the lowercased word is a
// Greek letter.
func IsGreekWord(word string) bool {
	return wordIs(word, greekLetters)
}

// IsLatinWord reports whether every rune of the lowercased word is a
// Greeklish letter.
func IsLatinWord(word string) bool {
	return wordIs(word, latinLetters)
}

func wordIs(word string, set map[rune]bool) bool {
	if word == "" {
		return false
	}
	for _, r := range strings.ToLower(word) {
		if !set[r] {
			return false
		}
	}
	return true
}
