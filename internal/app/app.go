package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"voyago/internal/amadeus"
	"voyago/internal/config"
	"voyago/internal/httpserver"
	"voyago/internal/httpserver/deps"
	"voyago/internal/ledger"
	"voyago/internal/logger"
	"voyago/internal/sources/refdata"
	"voyago/internal/version"
)

type App struct {
	cfg    *config.Config
	logger logger.Logger
	server *httpserver.Server
}

func New() *App {
	cfg := config.Load()

	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)

	ref, err := refdata.Load(cfg.RefdataFile)
	if err != nil {
		loggerClient.Errorf("Failed to load reference data: %v", err)
		os.Exit(1)
	}
	if cfg.RefdataFile != "" {
		loggerClient.Info("reference data overlay loaded",
			logger.String("file", cfg.RefdataFile))
	}

	// One shared outbound client: the timeout bounds both the token
	// exchange and every search call.
	httpClient := &http.Client{Timeout: cfg.UpstreamTimeout}

	broker := amadeus.NewBroker(
		cfg.AmadeusBaseURL,
		amadeus.Credentials{
			ClientID:     cfg.AmadeusClientID,
			ClientSecret: cfg.AmadeusClientSecret,
		},
		cfg.TokenMargin,
		httpClient,
		loggerClient,
	)
	travel := amadeus.NewClient(cfg.AmadeusBaseURL, broker, httpClient, ref, loggerClient)

	bookings := ledger.New()

	// Dependencies passed to routes (extend as needed).
	d := deps.Deps{
		Logger:    loggerClient,
		StartTime: time.Now(),
		Version:   version.Version,
		Commit:    version.Commit,
		BuildDate: version.BuildDate,
		GoVersion: version.GoVersion,
		TimeNow:   time.Now,
		Travel:    travel,
		Ledger:    bookings,
	}

	server := httpserver.New(cfg, loggerClient, d)

	return &App{
		cfg:    cfg,
		logger: loggerClient,
		server: server,
	}
}

func (a *App) Run() error {
	a.logger.Infof("🚀 Starting Voyago v%s on %s", version.Version, a.cfg.ListenPort)
	a.logger.Infof("Voyago %s (commit=%s, built=%s, go=%s)",
		version.Version, version.Commit, version.BuildDate, version.GoVersion)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("⏳ Shutting down gracefully...")
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	a.logger.Info("✅ Voyago stopped cleanly")
	return nil
}
