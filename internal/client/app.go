package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pattern-keeper/internal/logger"
	"github.com/MKhiriev/go-pattern-keeper/internal/service"
	"github.com/MKhiriev/go-pattern-keeper/internal/workers"
)

type App struct {
	services *service.ClientServices
	ui       UI
	token    string
	logger   *logger.Logger
}

// NewApp builds the client runtime. A non-empty token signs the client in on
// startup, which also migrates documents saved anonymously on this device.
func NewApp(services *service.ClientServices, ui UI, token string, logger *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errors.New("client: services and ui are required")
	}
	return &App{services: services, ui: ui, token: token, logger: logger}, nil
}

func (a *App) Run(ctx context.Context) error {
	defer a.services.Close()

	if a.token != "" {
		report, err := a.services.AuthService.SignIn(ctx, a.token)
		if err != nil {
			a.logger.Err(err).Str("func", "*App.Run").Msg("startup sign-in failed, continuing anonymously")
		} else {
			a.logger.Info().
				Int("migrated", len(report.Migrated)).
				Int("failed", len(report.Failed)).
				Msg("signed in on startup")
		}
	}

	if err := a.services.Load(ctx); err != nil {
		a.logger.Err(err).Str("func", "*App.Run").Msg("could not load documents")
	}

	bgCtx, cancel := context.WithCancel(ctx)
	background := make(chan error, 1)
	go func() {
		background <- workers.New(a.services.Probe, a.services.SyncJob).Run(bgCtx)
	}()

	uiErr := a.ui.Run(ctx)

	cancel()
	if err := <-background; err != nil && !errors.Is(err, context.Canceled) {
		a.logger.Err(err).Str("func", "*App.Run").Msg("background workers stopped with error")
	}

	if uiErr != nil {
		return fmt.Errorf("ui: %w", uiErr)
	}
	return nil
}
