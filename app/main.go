package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sportscroll/sportscroll/app/api"
	"github.com/sportscroll/sportscroll/app/cfg"
	"github.com/sportscroll/sportscroll/app/feed"
	"github.com/sportscroll/sportscroll/app/store"
)

func main() {
	appCfg, err := cfg.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if appCfg == nil {
		// Help was shown, exit gracefully
		return
	}

	logLevel := slog.LevelInfo
	if appCfg.Debug {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})))

	slog.Info("Starting SportScroll server", "version", appCfg.Version)

	catalog, err := feed.NewCatalog(appCfg.SourcesFile)
	if err != nil {
		log.Fatalf("Failed to load feed sources: %v", err)
	}
	slog.Info("Feed sources loaded", "categories", len(catalog.Categories()))

	httpClient := &http.Client{}
	fetchTimeout := time.Duration(appCfg.FetchTimeout) * time.Second

	cardStore := store.New()
	parser := feed.NewParser(appCfg.MaxItemsPerFeed)
	fetcher := feed.NewFetcher(httpClient, parser, appCfg.UserAgent, fetchTimeout)
	extractor := feed.NewExtractor()
	normalizer := feed.NewNormalizer()
	sessions := feed.NewSessionRegistry(time.Duration(appCfg.SessionTTL)*time.Minute, 10*time.Minute)
	processor := feed.NewProcessor(catalog, fetcher, extractor, normalizer, sessions, cardStore, appCfg.DefaultLimit)
	contentExtractor := feed.NewContentExtractor(httpClient, appCfg.UserAgent, fetchTimeout)

	if appCfg.Warmup {
		go warmup(processor)
	}

	handler := api.NewHandler(processor, cardStore, contentExtractor, catalog, sessions)
	server := api.NewServer(handler)

	httpServer := &http.Server{
		Addr:         ":" + appCfg.Port,
		Handler:      server,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrChan := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "port", appCfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		slog.Info("Received signal", "signal", sig.String())
	case err := <-serverErrChan:
		slog.Error("Server error", "error", err)
	}

	slog.Info("Shutting down server gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("SportScroll server shutdown complete")
}

// warmup runs one default-mix ingestion so the store has cards before
// the first client request lands.
func warmup(processor *feed.Processor) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	result, err := processor.Run(ctx, feed.Request{SessionID: "warmup"})
	if err != nil {
		slog.Warn("Warmup fetch failed", "error", err)
		return
	}
	slog.Info("Warmup fetch completed", "cards", len(result.Cards))
}
