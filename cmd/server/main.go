// Command server exposes the lingua morphology and transliteration
// engines as a JSON REST API.
//
// Endpoints:
//
//	GET  /api/languages[?service=Info|Lang|Morpho|Trans]
//	GET  /api/{lang}/info
//	GET  /api/{lang}/conjugate?word=<verb>[&tense=…&aspect=…&mood=…&voice=…&number=…&person=…&gender=…]
//	GET  /api/{lang}/declense?word=<noun>[&number=…&case=…&gender=…]
//	GET  /api/{lang}/derivate?word=<word>&src=<pos>&dst=<pos>
//	GET  /api/{lang}/stem?word=<word>
//	GET  /api/{lang}/lemmatize?word=<word>
//	GET  /api/{lang}/number?n=<integer>
//	GET  /api/{lang}/schemes
//	POST /api/{lang}/transliterate    body: {"scheme":"...","text":"..."}
//	POST /api/{lang}/untransliterate  body: {"scheme":"...","text":"..."}
//	GET  /healthz
//
// Configuration is read from CONFIG_PATH (default ./config.yaml) and the
// environment; see internal/config.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/cours-de-latin/lingua"
	"github.com/cours-de-latin/lingua/internal/app"
	"github.com/cours-de-latin/lingua/internal/config"
	"github.com/cours-de-latin/lingua/internal/middleware"
)

func main() {
	dataDir := flag.String("data", "", "language data directory (overrides config; default: embedded tables)")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, *dataDir); err != nil {
		fmt.Fprintln(os.Stderr, "server:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, dataDir string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if dataDir != "" {
		cfg.Data.Dir = dataDir
	}

	logger := app.NewLogger(cfg.Log)
	logger.Info("starting lingua server",
		slog.String("version", app.BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	reg, err := loadRegistry(cfg.Data.Dir)
	if err != nil {
		return fmt.Errorf("load data: %w", err)
	}
	logger.Info("data loaded",
		slog.String("dir", cfg.Data.Dir),
		slog.Any("morpho", reg.Languages(lingua.ServiceMorpho)),
		slog.Any("trans", reg.Languages(lingua.ServiceTrans)),
	)

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      newHandler(reg, cfg, logger),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// loadRegistry reads the tables from dir, or the embedded ones when dir
// is empty.
func loadRegistry(dir string) (*lingua.Registry, error) {
	if dir == "" {
		return lingua.Default()
	}
	return lingua.LoadDir(dir)
}

// newHandler wraps the API routes in the middleware chain.
func newHandler(reg *lingua.Registry, cfg *config.Config, logger *slog.Logger) http.Handler {
	return middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
	)(newRouter(reg))
}
