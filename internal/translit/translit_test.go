package translit

import (
	"context"
	"strings"
	"testing"

	"github.com/fsantini/lishgreek/internal/dict"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const corpus = `και 1000000
τα 900000
πως 500000
πώς 400000
καλημέρα 300000
είσαι 250000
γλώσσα 200000
κε 100000
θέλω 90000
`

func newTranslator(t *testing.T) *Translator {
	t.Helper()
	ix, err := dict.Build(context.Background(), strings.NewReader(corpus), dict.BuildOptions{})
	require.NoError(t, err)
	return New(ix)
}

func TestTranslateWords(t *testing.T) {
	tr := newTranslator(t)
	tests := []struct {
		in   string
		want string
	}{
		{"kai", "και"},
		{"glwssa", "γλώσσα"},
		{"pws", "πως"},
		{"eisai", "είσαι"},
		{"8elw", "θέλω"},
		{"thelw", "θέλω"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tr.Translate(tt.in), "input %q", tt.in)
	}
}

func TestTranslatePreservesCapitalization(t *testing.T) {
	tr := newTranslator(t)
	assert.Equal(t, "Τα", tr.Translate("Ta"))
	assert.Equal(t, "Καλημέρα", tr.Translate("Kalimera"))
}

func TestTranslatePreservesSeparators(t *testing.T) {
	tr := newTranslator(t)
	got := tr.Translate("Kalimera, pws eisai?")
	assert.Equal(t, "Καλημέρα, πως είσαι?", got)
}

func TestTranslateUnknownWordEchoes(t *testing.T) {
	tr := newTranslator(t)
	assert.Equal(t, "zzz", tr.Translate("zzz"))
	assert.Equal(t, "(zzz)", tr.Translate("(zzz)"))
}

func TestTranslatePassesGreekTextThrough(t *testing.T) {
	tr := newTranslator(t)
	assert.Equal(t, "η γλώσσα", tr.Translate("η γλώσσα"))
}

func TestTranslateDigitBoundaries(t *testing.T) {
	tr := newTranslator(t)
	// 5 is a separator; 8 is a Greeklish letter and part of the word.
	assert.Equal(t, "και5και", tr.Translate("kai5kai"))
	assert.Equal(t, "θέλω", tr.Translate("8elw"))
}

func TestTranslateEmpty(t *testing.T) {
	tr := newTranslator(t)
	assert.Equal(t, "", tr.Translate(""))
}

func TestCandidatesRanked(t *testing.T) {
	tr := newTranslator(t)
	cands := tr.Candidates("kai")
	require.NotEmpty(t, cands)
	// και (length fit 0) beats the shorter homophone κε.
	assert.Equal(t, "και", cands[0])
	assert.Contains(t, cands, "κε")
}

func TestKeysFanOut(t *testing.T) {
	tr := newTranslator(t)
	assert.Equal(t, []string{"ke"}, tr.Keys("kai"))
	assert.ElementsMatch(t, []string{"bena", "vena"}, tr.Keys("bena"))
}
