// lishgreek is the line-oriented CLI: Greeklish text in on stdin,
// Greek text out on stdout.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/fsantini/lishgreek/internal/dict/stores"
	"github.com/fsantini/lishgreek/internal/logger"
	"github.com/fsantini/lishgreek/internal/translit"
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

	fs := ff.NewFlagSet("lishgreek")
	var (
		dictPath = fs.StringLong("dict", "uglish-dict.json.gz", "Canonical index artifact (gzip JSON, sqlite:// path, or postgres:// URL)")
		text     = fs.StringLong("text", "", "Translate this text and exit instead of reading stdin")
	)

	if err := ff.Parse(fs, os.Args[1:], ff.WithEnvVarPrefix("LISHGREEK")); err != nil {
		fmt.Printf("%s\n", ffhelp.Flags(fs))
		return fmt.Errorf("parsing flags: %w", err)
	}

	log := logger.New()
	ctx := context.Background()

	store, cleanup, err := stores.Open(ctx, *dictPath)
	if err != nil {
		return fmt.Errorf("opening index store: %w", err)
	}
	defer cleanup()

	index, err := store.Load(ctx)
	if err != nil {
		return fmt.Errorf("loading canonical index: %w", err)
	}
	log.Debug("loaded canonical index", "keys", index.Keys(), "words", index.Words())

	translator := translit.New(index)

	if *text != "" {
		fmt.Println(translator.Translate(*text))
		return nil
	}

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()
	for scanner.Scan() {
		fmt.Fprintln(out, translator.Translate(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading stdin: %w", err)
	}
	return nil
}
