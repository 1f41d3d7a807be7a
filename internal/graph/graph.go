// Package graph implements the grapheme transduction layer: ordered
// tables mapping runs of 1-3 source characters ("graphs") to canonical
// phonetic symbols, and a greedy longest-match engine that rewrites or
// tokenizes words according to those tables.
package graph

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Entry maps one source graph to its canonical alternatives. Most
// graphs have a single alternative; ambiguous Greeklish graphs fan out
// (e.g. "b" can stand for β or μπ).
type Entry struct {
	Graph string
	Alts  []string
}

// Table is an ordered list of graph entries. Matching is greedy and
// first-match-wins, so entries sharing a prefix must be declared
// longest first. NewTable enforces that at construction time.
type Table struct {
	entries []Entry
}

// NewTable validates the entry order and returns the table. It panics
// on an empty graph, an entry without alternatives, or an earlier
// graph shadowing a later one; these are programming errors in the
// table data and must not silently mis-tokenize.
func NewTable(entries []Entry) *Table {
	for i, e := range entries {
		if e.Graph == "" {
			panic(fmt.Sprintf("graph: empty graph at entry %d", i))
		}
		if len(e.Alts) == 0 {
			panic(fmt.Sprintf("graph: entry %q has no alternatives", e.Graph))
		}
		for j := i + 1; j < len(entries); j++ {
			if strings.HasPrefix(entries[j].Graph, e.Graph) {
				panic(fmt.Sprintf("graph: entry %q shadows later entry %q", e.Graph, entries[j].Graph))
			}
		}
	}
	return &Table{entries: entries}
}

func (t *Table) match(s string) (Entry, bool) {
	for _, e := range t.entries {
		if strings.HasPrefix(s, e.Graph) {
			return e, true
		}
	}
	return Entry{}, false
}

// Transduce rewrites s by consuming the first declared graph matching
// at the cursor and appending each of its alternatives to every output
// built so far (Cartesian fan-out). A rune matched by no graph is
// copied through unchanged. The empty input yields one empty output.
// Outputs may contain duplicates; callers must tolerate them.
func (t *Table) Transduce(s string) []string {
	outs := []string{""}
	for len(s) > 0 {
		var alts []string
		adv := 0
		if e, ok := t.match(s); ok {
			alts = e.Alts
			adv = len(e.Graph)
		} else {
			_, size := utf8.DecodeRuneInString(s)
			alts = []string{s[:size]}
			adv = size
		}
		next := make([]string, 0, len(outs)*len(alts))
		for _, alt := range alts {
			for _, prefix := range outs {
				next = append(next, prefix+alt)
			}
		}
		outs = next
		s = s[adv:]
	}
	return outs
}

// First is Transduce keeping only the first alternative of every
// matched graph. For 1:1 tables (the accent strippers) this is the
// whole result without the fan-out bookkeeping.
func (t *Table) First(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for len(s) > 0 {
		if e, ok := t.match(s); ok {
			b.WriteString(e.Alts[0])
			s = s[len(e.Graph):]
			continue
		}
		_, size := utf8.DecodeRuneInString(s)
		b.WriteString(s[:size])
		s = s[size:]
	}
	return b.String()
}

// Tokenize splits s into the graphs the table would consume, in order.
// Runes matched by no graph become single-rune tokens.
func (t *Table) Tokenize(s string) []string {
	var toks []string
	for len(s) > 0 {
		if e, ok := t.match(s); ok {
			toks = append(toks, e.Graph)
			s = s[len(e.Graph):]
			continue
		}
		_, size := utf8.DecodeRuneInString(s)
		toks = append(toks, s[:size])
		s = s[size:]
	}
	return toks
}
