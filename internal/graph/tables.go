package graph

import (
	"fmt"
	"strings"
)

// The tables below pair source graphs with canonical symbols, written
// as aligned whitespace-separated strings so corresponding columns
// line up. A multi-rune value means the graph fans out into one
// single-rune alternative per rune ("bv" = β or μπ), mirroring how
// Greeklish writers use the same Latin letter for different Greek
// sounds.
//
// The canonical alphabet is ASCII: plain letters for unambiguous
// sounds, digits for sounds with no single Latin letter (8 = θ,
// 3 = ξ, 4 = ψ) and capitals for collapsed diphthongs (A = αυ/αβ/αφ,
// E = ευ/εβ/εφ, G = γγ/γκ, V = μβ, H = γχ).

const (
	greekAccented   = "ά έ ή ί ΐ ό ύ ΰ ώ"
	greekUnaccented = "α ε η ι ϊ ο υ ϋ ω"

	latinAccented   = "à è ì ò ù ẁ á é í ó ú ẃ"
	latinUnaccented = "a e i o u w a e i o u w"

	greekDigraphs       = "αβ αφ αυ αι γγ γκ εβ εφ ευ ει μπ μβ νδ ντ οι ου γχ"
	greekDigraphValues  = "A  A  A  e  G  G  E  E  E  i  b  V  d  d  i  u  H"
	greekMonographs     = "α β γ δ ε ζ η θ ι ϊ κ λ μ ν ξ ο π ρ σ ς τ υ ϋ φ χ ψ ω"
	greekMonographVals  = "a v g d e z i 8 i i k l m n 3 o p r s s t i i f x 4 o"

	latinTrigraphs      = "nch"
	latinTrigraphValues = "H"
	latinDigraphs       = "ai au af av ay ch ei eu ef ev ey gg gk ks ng nk mp mb mv nt nd oi ou ps th"
	latinDigraphValues  = "e  A  A  A  A  x  i  E  E  E  E  G  G  3  G  G  b  bV V  d  d  i  u  4  8"
	latinMonographs     = "a b  c d e f g h  i j k l m n o p q r s t u v w x  y z 3 8 9 4"
	latinMonographVals  = "a bv s d e f g xi i 3 k l m n o p q r s t i v o 3x i z 3 8 8 4"
)

var (
	// GreekAccents and LatinAccents strip acute accents, 1:1.
	GreekAccents = NewTable(pairEntries(greekAccented, greekUnaccented))
	LatinAccents = NewTable(pairEntries(latinAccented, latinUnaccented))

	// GreekPhonemes maps accent-stripped Greek spelling to canonical
	// form. Digraphs precede monographs so greedy matching is
	// longest-match.
	GreekPhonemes = NewTable(pairEntries(
		greekDigraphs+" "+greekMonographs,
		greekDigraphValues+" "+greekMonographVals,
	))

	// LatinPhonemes maps accent-stripped Greeklish spelling to
	// canonical form. The digits 3, 8, 9, 4 are legitimate Greeklish
	// letters (3erw = ξέρω, 8elw = θέλω).
	LatinPhonemes = NewTable(pairEntries(
		latinTrigraphs+" "+latinDigraphs+" "+latinMonographs,
		latinTrigraphValues+" "+latinDigraphValues+" "+latinMonographVals,
	))

	// Tiebreakers maps ambiguous Greeklish graphs to the Greek graph
	// a writer most plausibly meant; a candidate carrying the
	// expected graph at the same token position outranks one that
	// does not.
	Tiebreakers = pairMap(
		"y u h ai au ay ei eu ey oi ou mv",
		"υ υ η αι αυ αυ ει ευ ευ οι ου μβ",
	)
)

// pairEntries zips two aligned whitespace-separated strings into table
// entries, splitting each value into one single-rune alternative per
// rune. Panics on a column count mismatch: the table data is wrong.
func pairEntries(graphs, values string) []Entry {
	gs := strings.Fields(graphs)
	vs := strings.Fields(values)
	if len(gs) != len(vs) {
		panic(fmt.Sprintf("graph: %d graphs paired with %d values", len(gs), len(vs)))
	}
	entries := make([]Entry, len(gs))
	for i, g := range gs {
		var alts []string
		for _, r := range vs[i] {
			alts = append(alts, string(r))
		}
		entries[i] = Entry{Graph: g, Alts: alts}
	}
	return entries
}

func pairMap(keys, values string) map[string]string {
	ks := strings.Fields(keys)
	vs := strings.Fields(values)
	if len(ks) != len(vs) {
		panic(fmt.Sprintf("graph: %d keys paired with %d values", len(ks), len(vs)))
	}
	m := make(map[string]string, len(ks))
	for i, k := range ks {
		m[k] = vs[i]
	}
	return m
}

// CanonicalGreek canonicalizes a Greek word: lowercase, strip the
// accent, apply the Greek phoneme table.
func CanonicalGreek(word string) []string {
	return GreekPhonemes.Transduce(GreekAccents.First(strings.ToLower(word)))
}

// CanonicalLatin canonicalizes a Greeklish word. Ambiguous graphs fan
// out, so one spelling can produce several candidate keys.
func CanonicalLatin(word string) []string {
	return LatinPhonemes.Transduce(LatinAccents.First(strings.ToLower(word)))
}
