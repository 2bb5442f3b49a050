package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/okian/pbp/internal/adapters/export"
	"github.com/okian/pbp/internal/adapters/feed"
	"github.com/okian/pbp/internal/adapters/http/api"
	"github.com/okian/pbp/internal/app"
	"github.com/okian/pbp/internal/config"
	"github.com/okian/pbp/pkg/logger"
)

// HTTP server timeout constants.
const (
	readTimeout       = 10 * time.Second
	writeTimeout      = 60 * time.Second
	idleTimeout       = 60 * time.Second
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 30 * time.Second
)

func main() {
	gameID := flag.Int("game", 0, "game id to scrape once and write to -out")
	outPath := flag.String("out", "", "output CSV path (default <output_dir>/game_<id>.csv)")
	serve := flag.Bool("serve", false, "run the HTTP API instead of a one-shot scrape")
	flag.Parse()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}
	defer func() {
		if err := logger.Sync(); err != nil {
			os.Stderr.WriteString("failed to sync logger: " + err.Error() + "\n")
		}
	}()
	log := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return
	}

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	feeds := feed.NewClient(
		feed.WithBaseURL(cfg.BaseURL),
		feed.WithClientCode(cfg.ClientCode),
		feed.WithAPIKey(cfg.APIKey),
		feed.WithLanguage(cfg.Language),
		feed.WithTimeout(time.Duration(cfg.FetchTimeoutMS)*time.Millisecond),
		feed.WithLogger(log),
	)
	svc, err := app.New(
		app.WithFeeds(feeds),
		app.WithLogger(log),
	)
	if err != nil {
		os.Stderr.WriteString("failed to build service: " + err.Error() + "\n")
		return
	}

	if *serve {
		runServer(ctx, cfg, svc, log)
		return
	}

	if *gameID <= 0 {
		os.Stderr.WriteString("usage: pbp -game <id> [-out file.csv] | pbp -serve\n")
		os.Exit(2)
	}
	if err := runOnce(ctx, cfg, svc, *gameID, *outPath, log); err != nil {
		log.Error(ctx, "scrape failed", logger.Int("game_id", *gameID), logger.Error(err))
		os.Exit(1)
	}
}

// runOnce scrapes a single game and writes the table to a CSV file.
func runOnce(ctx context.Context, cfg *config.Config, svc *app.Service, gameID int, outPath string, log logger.Logger) error {
	table, err := svc.Scrape(ctx, gameID)
	if err != nil {
		return err
	}
	if outPath == "" {
		outPath = filepath.Join(cfg.OutputDir, fmt.Sprintf("game_%d.csv", gameID))
	}
	if err := export.WriteFile(outPath, table); err != nil {
		return err
	}
	log.Info(ctx, "table written",
		logger.Int("game_id", gameID),
		logger.String("path", outPath),
		logger.Int("rows", len(table.Records)),
	)
	return nil
}

// runServer runs the long-lived HTTP API until the context is cancelled.
func runServer(ctx context.Context, cfg *config.Config, svc *app.Service, log logger.Logger) {
	mux := http.NewServeMux()
	apiServer := api.NewServer(svc)
	apiServer.Register(ctx, mux)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           mux,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		log.Info(ctx, "starting HTTP server", logger.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			os.Stderr.WriteString("HTTP server failed: " + err.Error() + "\n")
		}
	}()

	<-ctx.Done()
	log.Info(ctx, "shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(ctx, "server shutdown failed", logger.Error(err))
	}
	log.Info(ctx, "server stopped")
}
