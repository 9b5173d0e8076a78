// Command ninexta-server serves the agent directory API over HTTP.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/anthropics/anthropic-sdk-go"

	"github.com/mohithgowdak/ninexta"
	"github.com/mohithgowdak/ninexta/config"
	"github.com/mohithgowdak/ninexta/logging"
	"github.com/mohithgowdak/ninexta/ranker"
	rankeranthropic "github.com/mohithgowdak/ninexta/ranker/anthropic"
	rankeropenai "github.com/mohithgowdak/ninexta/ranker/openai"
	"github.com/mohithgowdak/ninexta/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.NewDefaultSlogLogger().Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := logging.NewSlogLogger(logging.ParseLevel(cfg.LogLevel), cfg.LogFormat, false)

	dir, err := ninexta.New(func(o *ninexta.Options) {
		o.Ranker = buildRanker(cfg, logger)
		o.SearchTimeout = cfg.SearchTimeout
		o.Logger = logger.WithComponent("searcher")
	})
	if err != nil {
		logger.Error("failed to build directory", "error", err)
		os.Exit(1)
	}

	srv := server.New(dir.Store(), dir.Searcher(), func(o *server.Options) {
		o.Logger = logger.WithComponent("server")
		o.CORSOrigins = cfg.CORSOrigins
	})

	httpServer := &http.Server{
		Addr:              cfg.Addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("directory server listening", "addr", cfg.Addr, "provider", cfg.Provider)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		if err != nil {
			logger.Error("http server error", "error", err)
		}
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}

	logger.Info("directory server stopped")
}

// buildRanker selects the remote ranking backend from configuration.
// Provider "none" returns nil, which limits search to local matching.
func buildRanker(cfg *config.Config, logger logging.Logger) ranker.Ranker {
	var gen ranker.TextGenerator
	switch cfg.Provider {
	case "openai":
		gen = rankeropenai.New(func(o *rankeropenai.Options) {
			if cfg.Model != "" {
				o.Model = cfg.Model
			}
		})
	case "anthropic":
		gen = rankeranthropic.New(func(o *rankeranthropic.Options) {
			if cfg.Model != "" {
				o.Model = anthropic.Model(cfg.Model)
			}
			o.APIKey = cfg.APIKey
		})
	default:
		return nil
	}
	return ranker.NewLLMRanker(gen, func(o *ranker.Options) { o.Logger = logger })
}
