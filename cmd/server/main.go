package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"visa-route-checker/internal/api"
	"visa-route-checker/internal/app"
	"visa-route-checker/internal/config"
	"visa-route-checker/internal/platform/obs"

	"go.uber.org/zap"
)

// main is the application composition root.
// It wires concrete adapters (Amadeus, Postgres) behind ports and starts the HTTP server.
func main() {
	demo := flag.Bool("demo", false, "serve canned demo offers instead of calling Amadeus")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger, err := obs.Init(cfg.Env, cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	provider, source, err := app.NewOfferProvider(cfg, *demo)
	if err != nil {
		logger.Fatal("offer provider", zap.Error(err))
	}

	// Search history is kept only when DATABASE_URL is set.
	recorder, closeRecorder, err := app.OpenRecorder(ctx, cfg)
	if err != nil {
		logger.Fatal("search history", zap.Error(err))
	}
	defer closeRecorder()

	router := api.NewRouter(api.RouterConfig{
		Provider:    provider,
		Recorder:    recorder,
		OfferSource: source,
		MaxResults:  cfg.MaxResults,
	})

	// Write timeout covers a token fetch plus one offer search.
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("server listening",
			zap.String("addr", srv.Addr),
			zap.String("offer_source", source),
			zap.Bool("history_enabled", recorder != nil),
		)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("listen and serve", zap.Error(err))
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", zap.Error(err))
	}
	logger.Info("server stopped")
}
