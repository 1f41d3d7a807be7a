// Package dict holds the canonical index: the mapping from a
// canonical phonetic key to every Greek surface word that shares that
// pronunciation, in descending corpus-frequency order. The index is
// built offline and never mutated during translation, so a loaded
// Index is safe for concurrent readers.
package dict

import "context"

// Index maps canonical keys to homophone buckets. Bucket order is
// insertion order, which the builder keeps equal to corpus frequency
// order; the ranker relies on it as the final tie-break.
type Index struct {
	buckets map[string][]string
	words   int
}

// NewIndex returns an empty index.
func NewIndex() *Index {
	return &Index{buckets: make(map[string][]string)}
}

// FromBuckets wraps an already-materialized bucket map, as decoded by
// a Store. The map is adopted, not copied.
func FromBuckets(buckets map[string][]string) *Index {
	ix := &Index{buckets: buckets}
	for _, words := range buckets {
		ix.words += len(words)
	}
	return ix
}

// Add appends a surface word to the bucket for key.
func (ix *Index) Add(key, word string) {
	ix.buckets[key] = append(ix.buckets[key], word)
	ix.words++
}

// Lookup returns the bucket for key, nil when absent. A miss is an
// expected outcome, not an error: the caller falls back to echoing
// the input word. The returned slice is shared; treat it as read-only.
func (ix *Index) Lookup(key string) []string {
	return ix.buckets[key]
}

// Keys returns the number of distinct canonical keys.
func (ix *Index) Keys() int { return len(ix.buckets) }

// Words returns the total number of indexed surface words.
func (ix *Index) Words() int { return ix.words }

// Buckets exposes the underlying map for serialization. Treat it as
// read-only.
func (ix *Index) Buckets() map[string][]string { return ix.buckets }

// Store loads and saves a serialized index artifact. The engine only
// depends on Load; the concrete storage and compression format is the
// store's concern.
type Store interface {
	Load(ctx context.Context) (*Index, error)
	Save(ctx context.Context, ix *Index) error
}
