// serve exposes the translator over HTTP, with Prometheus metrics and
// graceful shutdown.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fsantini/lishgreek/internal/dict/stores"
	"github.com/fsantini/lishgreek/internal/logger"
	"github.com/fsantini/lishgreek/internal/translit"
	"github.com/fsantini/lishgreek/internal/web"
	"github.com/joho/godotenv"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
)

func main() {
	if err := mainE(); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
	slog.Info("exiting without error")
}

func mainE() error {
	_ = godotenv.Load()

	fs := ff.NewFlagSet("lishgreek-serve")
	var (
		port     = fs.Int64Long("port", 8080, "HTTP server port")
		dictPath = fs.StringLong("dict", "uglish-dict.json.gz", "Canonical index artifact (gzip JSON, sqlite:// path, or postgres:// URL)")
	)

	if err := ff.Parse(fs, os.Args[1:], ff.WithEnvVarPrefix("LISHGREEK")); err != nil {
		fmt.Printf("%s\n", ffhelp.Flags(fs))
		return fmt.Errorf("parsing flags: %w", err)
	}

	log := logger.New()
	ctx, cancel := context.WithCancelCause(context.Background())
	defer cancel(nil)

	store, cleanup, err := stores.Open(ctx, *dictPath)
	if err != nil {
		return fmt.Errorf("opening index store: %w", err)
	}
	defer cleanup()

	index, err := store.Load(ctx)
	if err != nil {
		return fmt.Errorf("loading canonical index: %w", err)
	}
	log.Info("loaded canonical index", "keys", index.Keys(), "words", index.Words())

	router := web.NewRouter(translit.New(index), log)
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", *port),
		Handler:           router.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		log.Info("received signal, shutting down", "signal", sig)
		cancel(errors.New("signal received"))
	}()

	errChan := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}
	return nil
}
