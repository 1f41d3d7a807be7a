package dict

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const wordList = `και 1000000
να 800000
the 500000
πως 400000
πώς 300000
κε 200000
ψάρί 100000
γλώσσα 90000
word2 50000
`

func TestBuildFiltersAndBuckets(t *testing.T) {
	ix, err := Build(context.Background(), strings.NewReader(wordList), BuildOptions{})
	require.NoError(t, err)

	// Latin lines and the doubly-accented ψάρί are skipped.
	assert.Equal(t, 6, ix.Words())

	// πως and πώς are homophones; frequency order inside the bucket
	// follows line order.
	assert.Equal(t, []string{"πως", "πώς"}, ix.Lookup("pos"))
	assert.Equal(t, []string{"γλώσσα"}, ix.Lookup("glossa"))

	// και and κε collide on "ke", most frequent first.
	assert.Equal(t, []string{"και", "κε"}, ix.Lookup("ke"))

	assert.Nil(t, ix.Lookup("missing"))
}

func TestBuildLimit(t *testing.T) {
	ix, err := Build(context.Background(), strings.NewReader(wordList), BuildOptions{Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, ix.Words())
	assert.Equal(t, []string{"και"}, ix.Lookup("ke"))
	assert.Equal(t, []string{"να"}, ix.Lookup("na"))
}

func TestBuildSingleWorkerMatchesParallel(t *testing.T) {
	serial, err := Build(context.Background(), strings.NewReader(wordList), BuildOptions{Workers: 1})
	require.NoError(t, err)
	parallel, err := Build(context.Background(), strings.NewReader(wordList), BuildOptions{Workers: 8})
	require.NoError(t, err)
	assert.Equal(t, serial.Buckets(), parallel.Buckets())
}

func TestBuildEmptyInput(t *testing.T) {
	ix, err := Build(context.Background(), strings.NewReader(""), BuildOptions{})
	require.NoError(t, err)
	assert.Equal(t, 0, ix.Keys())
}

func TestIndexAddAndLookup(t *testing.T) {
	ix := NewIndex()
	ix.Add("ke", "και")
	ix.Add("ke", "κε")
	assert.Equal(t, []string{"και", "κε"}, ix.Lookup("ke"))
	assert.Equal(t, 1, ix.Keys())
	assert.Equal(t, 2, ix.Words())

	restored := FromBuckets(ix.Buckets())
	assert.Equal(t, 2, restored.Words())
}
