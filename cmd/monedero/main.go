package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"monedero/internal/api"
	"monedero/internal/cli"
	apphttp "monedero/internal/http"
	"monedero/internal/log"
	"monedero/internal/session"
)

func main() {
	cli.LoadEnvFile()
	logger := cli.SetupLogger()
	cfg := cli.LoadAndValidateConfig(logger)

	stateDB := cli.OpenStateDB(logger, cfg.StateDBPath)
	defer stateDB.Close()

	// The API client reads the bearer token through the session store; the
	// store itself is constructed right after, so the source is late-bound.
	var sessions *session.Store
	apiClient, err := api.NewClient(cfg.APIBaseURL, &http.Client{Timeout: cfg.RequestTimeout},
		api.TokenSourceFunc(func() (string, bool) {
			if sessions == nil {
				return "", false
			}
			return sessions.Token()
		}))
	if err != nil {
		logger.Error("Failed to build API client", log.FieldError, err, "base_url", cfg.APIBaseURL)
		os.Exit(1)
	}
	sessions = session.New(apiClient, stateDB.Credentials(), logger)

	srv, err := apphttp.NewServer(":"+cfg.Port, sessions, apiClient, logger)
	if err != nil {
		logger.Error("Failed to build server", log.FieldError, err)
		os.Exit(1)
	}
	defer srv.Close()

	srv.ReadTimeout = 10 * time.Second
	srv.WriteTimeout = 15 * time.Second
	srv.IdleTimeout = 60 * time.Second
	srv.MaxHeaderBytes = 1 << 16 // 64KB

	ctx, cancel, grace := cli.NotifyShutdown(30 * time.Second)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)

	// Silent re-authentication runs alongside the server; the route guard
	// shows the loading placeholder until it resolves.
	g.Go(func() error {
		bctx, bcancel := context.WithTimeout(gctx, cfg.BootstrapTimeout)
		defer bcancel()

		sessions.Bootstrap(bctx)
		logger.Info("Session bootstrap resolved", log.FieldPhase, string(sessions.Phase()))
		return nil
	})

	g.Go(func() error {
		logger.Info("Starting monedero client", "port", cfg.Port, "api_base_url", cfg.APIBaseURL)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), grace)
		defer shutdownCancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("Client exited with error", log.FieldError, err)
		os.Exit(1)
	}
	logger.Info("Stopped gracefully")
}
