package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalGreekAndLatinAgree(t *testing.T) {
	// A Greek word and its Greeklish spellings must land on the same
	// canonical key, or the index lookup can never succeed.
	tests := []struct {
		greek  string
		latin  string
		key    string
	}{
		{"και", "kai", "ke"},
		{"γλώσσα", "glwssa", "glossa"},
		{"θέλω", "8elw", "8elo"},
		{"θέλω", "thelw", "8elo"},
		{"πως", "pws", "pos"},
		{"είσαι", "eisai", "ise"},
		{"καλημέρα", "kalimera", "kalimera"},
		{"ψάρι", "psari", "4ari"},
		{"εύκολο", "eukolo", "Ekolo"},
		{"έφτασε", "eftase", "Etase"},
	}
	for _, tt := range tests {
		gk := CanonicalGreek(tt.greek)
		require.NotEmpty(t, gk, "greek %q", tt.greek)
		assert.Equal(t, tt.key, gk[0], "greek %q", tt.greek)
		assert.Contains(t, CanonicalLatin(tt.latin), tt.key, "latin %q", tt.latin)
	}
}

func TestCanonicalGreekStripsCaseAndAccent(t *testing.T) {
	assert.Equal(t, CanonicalGreek("γλωσσα"), CanonicalGreek("Γλώσσα"))
}

func TestCanonicalIsIdempotent(t *testing.T) {
	// Canonical symbols are not matched by the Greek table's
	// non-identity entries, so re-canonicalizing a key is a no-op.
	for _, w := range []string{"και", "γλώσσα", "θέλω", "άνθρωπος"} {
		for _, key := range CanonicalGreek(w) {
			assert.Equal(t, []string{key}, CanonicalGreek(key), "word %q", w)
		}
	}
}

func TestCanonicalLatinFansOut(t *testing.T) {
	keys := CanonicalLatin("bika")
	assert.ElementsMatch(t, []string{"bika", "vika"}, keys)
}

func TestCanonicalLatinStripsAccents(t *testing.T) {
	assert.Equal(t, CanonicalLatin("kalimera"), CanonicalLatin("kaliméra"))
}

func TestTiebreakersMapToGreekGraphs(t *testing.T) {
	assert.Equal(t, "υ", Tiebreakers["y"])
	assert.Equal(t, "η", Tiebreakers["h"])
	assert.Equal(t, "ου", Tiebreakers["ou"])
	assert.Equal(t, "μβ", Tiebreakers["mv"])
	_, ok := Tiebreakers["a"]
	assert.False(t, ok)
}
