// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui renders the signing form in the terminal with bubbletea.
//
// The model owns no domain state. Every frame is drawn from a
// [service.Snapshot]; provider calls run inside tea.Cmd closures and report
// back with settled messages, so a slow wallet never blocks the UI.
package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-dag-signer/internal/fields"
	"github.com/MKhiriev/go-dag-signer/internal/logger"
	"github.com/MKhiriev/go-dag-signer/internal/notify"
	"github.com/MKhiriev/go-dag-signer/internal/service"
	"github.com/MKhiriev/go-dag-signer/models"
)

type TUI struct {
	services  *service.ClientServices
	fields    *fields.List
	center    *notify.Center
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(
	services *service.ClientServices,
	list *fields.List,
	center *notify.Center,
	buildInfo models.AppBuildInfo,
	log *logger.Logger,
) *TUI {
	return &TUI{
		services:  services,
		fields:    list,
		center:    center,
		buildInfo: buildInfo,
		logger:    log,
	}
}

// Run blocks until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	m := newModel(ctx, t.services, t.fields, t.center, t.buildInfo)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))

	// Send blocks until the program reads it, and the center may call the
	// hook from inside Update.
	t.center.Subscribe(func() { go p.Send(notificationChangedMsg{}) })

	t.logger.Info().Msg("starting terminal UI")
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("run terminal UI: %w", err)
	}
	t.logger.Info().Msg("terminal UI stopped")
	return nil
}
