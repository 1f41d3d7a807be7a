package graph

// Accented letters of both alphabets. Only acute accents occur in
// modern monotonic Greek and in the Greeklish conventions we accept.
var accentedLetters = runeSet(greekAccented + " " + latinAccented)

// AccentIndex returns the rune index of the first accented letter and
// whether one exists.
func AccentIndex(word string) (int, bool) {
	i := 0
	for _, r := range word {
		if accentedLetters[r] {
			return i, true
		}
		i++
	}
	return 0, false
}

// AccentCount returns the number of accented letters in the word.
func AccentCount(word string) int {
	n := 0
	for _, r := range word {
		if accentedLetters[r] {
			n++
		}
	}
	return n
}

// HasAccent reports whether the word carries any accent mark.
func HasAccent(word string) bool {
	_, ok := AccentIndex(word)
	return ok
}

// AccentGraphPosition returns the number of graphs up to and including
// the first accented letter, under the given phoneme table. Words
// without an accent return ok=false; callers comparing positions must
// rank those last rather than treating absence as an error.
func AccentGraphPosition(word string, table *Table) (int, bool) {
	idx, ok := AccentIndex(word)
	if !ok {
		return 0, false
	}
	runes := []rune(word)
	prefix := string(runes[:idx+1])
	prefix = GreekAccents.First(prefix)
	prefix = LatinAccents.First(prefix)
	return len(table.Tokenize(prefix)), true
}
