// Package translit is the public entry point of the engine: it
// segments free text into Greeklish words and separators, resolves
// each word against the canonical index, ranks the homophone
// candidates and splices the winners back between the untouched
// separators.
package translit

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/fsantini/lishgreek/internal/dict"
	"github.com/fsantini/lishgreek/internal/graph"
	"github.com/fsantini/lishgreek/internal/metrics"
	"github.com/fsantini/lishgreek/internal/rank"
	"github.com/samber/lo"
)

// Translator converts Greeklish text to Greek using a pre-built
// canonical index. The index is injected and never mutated, so one
// Translator may serve any number of concurrent callers.
type Translator struct {
	index *dict.Index
}

func New(index *dict.Index) *Translator {
	return &Translator{index: index}
}

// Translate replaces every maximal run of Greeklish letters in text
// with its best Greek guess. All other characters (punctuation,
// digits, whitespace, Greek text) pass through verbatim at their
// original positions.
func (t *Translator) Translate(text string) string {
	var out, word strings.Builder
	out.Grow(len(text))
	for _, r := range text {
		if graph.IsLatinLetter(unicode.ToLower(r)) {
			word.WriteRune(r)
			continue
		}
		if word.Len() > 0 {
			out.WriteString(t.guess(word.String()))
			word.Reset()
		}
		out.WriteRune(r)
	}
	if word.Len() > 0 {
		out.WriteString(t.guess(word.String()))
	}
	return out.String()
}

// Keys returns the canonical keys a Greeklish word fans out to.
func (t *Translator) Keys(word string) []string {
	return graph.CanonicalLatin(word)
}

// Candidates returns every Greek word colliding with any canonical
// key of the Greeklish word, ranked most plausible first. Duplicates
// can occur when a word collides under several keys; they are kept.
func (t *Translator) Candidates(word string) []string {
	found := lo.FlatMap(t.Keys(word), func(key string, _ int) []string {
		return t.index.Lookup(key)
	})
	return rank.Rank(word, found)
}

// guess translates a single word, carrying the original's leading
// capitalization over to the winner. A word with no candidates is
// echoed unchanged.
func (t *Translator) guess(word string) string {
	metrics.WordsTranslated.Inc()
	candidates := t.Candidates(word)
	metrics.CandidatesPerWord.Observe(float64(len(candidates)))
	if len(candidates) == 0 {
		metrics.IndexMisses.Inc()
		return word
	}
	best := candidates[0]

	first, _ := utf8.DecodeRuneInString(word)
	if unicode.IsUpper(first) {
		r, size := utf8.DecodeRuneInString(best)
		best = string(unicode.ToUpper(r)) + best[size:]
	}
	return best
}
