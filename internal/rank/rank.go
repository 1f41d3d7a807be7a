// Package rank orders the Greek candidates retrieved for one Greeklish
// word, most plausible first. Three stable sorts are applied in
// sequence (length fit, accent fit, phoneme tiebreak), so the last
// criterion dominates and the index's frequency order is the final
// tie-break.
package rank

import (
	"math"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/fsantini/lishgreek/internal/graph"
	"github.com/samber/lo"
)

// tiebreakBaseline is the starting inverse-probability score; each
// tiebreaker graph found at the expected position subtracts one.
const tiebreakBaseline = 100

// Rank returns the candidates reordered most-plausible-first. The
// input slice is not modified; candidates are only permuted, never
// added or dropped, and duplicates survive.
func Rank(latin string, candidates []string) []string {
	out := make([]string, len(candidates))
	copy(out, candidates)
	latin = strings.ToLower(latin)
	sortByScores(out, lengthScores(latin, out))
	if accents, ok := accentScores(latin, out); ok {
		sortByScores(out, accents)
	}
	sortByScores(out, tiebreakScores(latin, out))
	return out
}

// Best returns the top candidate after ranking, ok=false when there
// are no candidates at all.
func Best(latin string, candidates []string) (string, bool) {
	if len(candidates) == 0 {
		return "", false
	}
	return Rank(latin, candidates)[0], true
}

// sortByScores stably reorders candidates ascending by score, in place.
func sortByScores(candidates []string, scores []int) {
	idx := make([]int, len(candidates))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return scores[idx[a]] < scores[idx[b]] })
	ordered := lo.Map(idx, func(i int, _ int) string { return candidates[i] })
	copy(candidates, ordered)
}

// lengthScores is |len(candidate) - adjusted Greeklish length|. The
// digraphs ch, th and ps always collapse to a single Greek letter, so
// each occurrence shortens the expected Greek length by one.
func lengthScores(latin string, candidates []string) []int {
	want := utf8.RuneCountInString(latin)
	for _, digraph := range []string{"ch", "th", "ps"} {
		want -= strings.Count(latin, digraph)
	}
	return lo.Map(candidates, func(c string, _ int) int {
		return abs(utf8.RuneCountInString(c) - want)
	})
}

// accentScores is the distance between the accent's graph position in
// the Greeklish word and in each candidate. When the Greeklish word
// carries no accent the stage reports ok=false and is skipped
// entirely, leaving the order untouched. Accent-less candidates sort
// last: a writer who typed an accent almost certainly meant an
// accented word.
func accentScores(latin string, candidates []string) ([]int, bool) {
	latPos, ok := graph.AccentGraphPosition(latin, graph.LatinPhonemes)
	if !ok {
		return nil, false
	}
	scores := lo.Map(candidates, func(c string, _ int) int {
		pos, ok := graph.AccentGraphPosition(c, graph.GreekPhonemes)
		if !ok {
			return math.MaxInt
		}
		return abs(pos - latPos)
	})
	return scores, true
}

// tiebreakScores tokenizes the Greeklish word and every candidate into
// graphs and rewards candidates that carry the expected Greek graph
// wherever the Greeklish graph is a known tiebreaker (e.g. "h" at a
// position where the candidate has "η"). Lower score wins. A candidate
// with fewer tokens than the position under test simply does not match
// there.
func tiebreakScores(latin string, candidates []string) []int {
	latToks := graph.LatinPhonemes.Tokenize(graph.LatinAccents.First(latin))
	tokens := lo.Map(candidates, func(c string, _ int) []string {
		return graph.GreekPhonemes.Tokenize(graph.GreekAccents.First(strings.ToLower(c)))
	})
	scores := make([]int, len(candidates))
	for i := range scores {
		scores[i] = tiebreakBaseline
	}
	for i, tok := range latToks {
		want, ok := graph.Tiebreakers[tok]
		if !ok {
			continue
		}
		for j, candToks := range tokens {
			if i < len(candToks) && candToks[i] == want {
				scores[j]--
			}
		}
	}
	return scores
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
