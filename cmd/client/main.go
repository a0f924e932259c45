package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-pattern-keeper/internal/adapter"
	"github.com/MKhiriev/go-pattern-keeper/internal/client"
	"github.com/MKhiriev/go-pattern-keeper/internal/config"
	"github.com/MKhiriev/go-pattern-keeper/internal/logger"
	"github.com/MKhiriev/go-pattern-keeper/internal/service"
	"github.com/MKhiriev/go-pattern-keeper/internal/store"
	"github.com/MKhiriev/go-pattern-keeper/internal/tui"
	"github.com/MKhiriev/go-pattern-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewLogger("pattern-keeper-client").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("pattern-keeper-client", cfg.Log.FilePath)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	localStorage, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer func() {
		if err := localStorage.Close(); err != nil {
			log.Err(err).Msg("close local storage")
		}
	}()

	// the token is installed by the startup sign-in so that migration runs
	token := cfg.Adapter.Token
	cfg.Adapter.Token = ""

	documentAdapter, err := adapter.NewHTTPDocumentAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create document adapter")
	}

	services, err := service.NewClientServices(localStorage, documentAdapter, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create client services")
	}

	ui, err := tui.New(services, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, token, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Error().Err(err).Msg("client run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
