// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-dag-signer/internal/adapter"
	"github.com/MKhiriev/go-dag-signer/internal/config"
	"github.com/MKhiriev/go-dag-signer/internal/fields"
	"github.com/MKhiriev/go-dag-signer/internal/logger"
	"github.com/MKhiriev/go-dag-signer/internal/notify"
	"github.com/MKhiriev/go-dag-signer/internal/service"
	"github.com/MKhiriev/go-dag-signer/internal/tui"
	"github.com/MKhiriev/go-dag-signer/models"
)

// App is the signing client: the provider bridge, the field list, the
// notification center and the terminal UI in one process.
type App struct {
	services *service.ClientServices
	center   *notify.Center
	ui       *tui.TUI
	logger   *logger.Logger
}

// NewApp wires every client component from cfg.
func NewApp(cfg *config.ClientConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	provider, err := adapter.NewHTTPWalletProvider(cfg.Provider, log)
	if err != nil {
		return nil, fmt.Errorf("create wallet provider: %w", err)
	}

	list := fields.New(cfg.Form.PredefinedFields...)
	center := notify.NewCenter(cfg.Notifications.Duration, log)
	services := service.NewClientServices(provider, list, center, cfg.Signing, log)

	return &App{
		services: services,
		center:   center,
		ui:       tui.New(services, list, center, buildInfo, log),
		logger:   log,
	}, nil
}

// Run blocks until the UI exits or ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	defer a.center.Clear()

	a.logger.Info().
		Str("wallet_status", a.services.Session.State().Status.String()).
		Msg("client started")

	if err := a.ui.Run(ctx); err != nil {
		return err
	}

	a.logger.Info().Msg("client stopped")
	return nil
}
