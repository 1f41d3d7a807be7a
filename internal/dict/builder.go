package dict

import (
	"bufio"
	"context"
	"io"
	"runtime"
	"strings"

	"github.com/fsantini/lishgreek/internal/graph"
	"golang.org/x/sync/errgroup"
)

// BuildOptions tune the offline index build.
type BuildOptions struct {
	// Limit caps the number of accepted Greek words; 0 means all.
	Limit int
	// Workers bounds the canonicalization goroutines; 0 means
	// GOMAXPROCS.
	Workers int
}

// Build constructs an index from a frequency-ranked word list, one
// word per line (the first whitespace-separated field; the rest,
// typically an occurrence count, is ignored). Words that are not
// purely Greek or carry more than one accent are skipped. Bucket
// order follows line order, i.e. descending frequency.
//
// Canonicalization is fanned out across workers; the append pass
// stays sequential so frequency order is preserved.
func Build(ctx context.Context, r io.Reader, opts BuildOptions) (*Index, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		words = append(words, fields[0])
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	// keys[i] holds the canonical keys of words[i], nil when the word
	// was filtered out.
	keys := make([][]string, len(words))
	g, ctx := errgroup.WithContext(ctx)
	chunk := (len(words) + workers - 1) / workers
	for start := 0; start < len(words); start += chunk {
		end := min(start+chunk, len(words))
		g.Go(func() error {
			for i := start; i < end; i++ {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				w := words[i]
				if !graph.IsGreekWord(w) || graph.AccentCount(w) > 1 {
					continue
				}
				keys[i] = graph.CanonicalGreek(w)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	ix := NewIndex()
	accepted := 0
	for i, ks := range keys {
		if ks == nil {
			continue
		}
		if opts.Limit > 0 && accepted >= opts.Limit {
			break
		}
		accepted++
		for _, k := range ks {
			ix.Add(k, words[i])
		}
	}
	return ix, nil
}
