// dictbuild is the offline index builder. It consumes a
// frequency-ranked Greek word list (most frequent first, word as the
// first field of each line) and writes the canonical index artifact
// the translator loads at startup.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/fsantini/lishgreek/internal/dict"
	"github.com/fsantini/lishgreek/internal/dict/stores"
	"github.com/fsantini/lishgreek/internal/logger"
	"github.com/joho/godotenv"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
)

func main() {
	if err := mainE(); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func mainE() error {
	_ = godotenv.Load()

	fs := ff.NewFlagSet("dictbuild")
	var (
		input   = fs.StringLong("input", "", "Frequency-ranked Greek word list, one word per line")
		output  = fs.StringLong("output", "uglish-dict.json.gz", "Index artifact to write (gzip JSON, sqlite:// path, or postgres:// URL)")
		limit   = fs.IntLong("limit", 0, "Keep only the N most frequent words (0 = all)")
		workers = fs.IntLong("workers", 0, "Canonicalization workers (0 = GOMAXPROCS)")
	)

	if err := ff.Parse(fs, os.Args[1:], ff.WithEnvVarPrefix("LISHGREEK")); err != nil {
		fmt.Printf("%s\n", ffhelp.Flags(fs))
		return fmt.Errorf("parsing flags: %w", err)
	}
	if *input == "" {
		fmt.Printf("%s\n", ffhelp.Flags(fs))
		return fmt.Errorf("input is required")
	}

	log := logger.New()
	ctx := context.Background()

	f, err := os.Open(*input)
	if err != nil {
		return fmt.Errorf("opening word list: %w", err)
	}
	defer f.Close()

	start := time.Now()
	index, err := dict.Build(ctx, f, dict.BuildOptions{Limit: *limit, Workers: *workers})
	if err != nil {
		return fmt.Errorf("building index: %w", err)
	}
	log.Info("built canonical index",
		"keys", index.Keys(),
		"words", index.Words(),
		"duration", time.Since(start),
	)

	store, cleanup, err := stores.Open(ctx, *output)
	if err != nil {
		return fmt.Errorf("opening index store: %w", err)
	}
	defer cleanup()

	if err := store.Save(ctx, index); err != nil {
		return fmt.Errorf("saving index: %w", err)
	}
	log.Info("wrote index artifact", "output", *output)
	return nil
}
