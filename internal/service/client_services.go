// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-dag-signer/internal/adapter"
	"github.com/MKhiriev/go-dag-signer/internal/config"
	"github.com/MKhiriev/go-dag-signer/internal/logger"
	"github.com/MKhiriev/go-dag-signer/models"
)

// ClientServices bundles the client workflow components. The session and
// the workflow share one loading guard, and a disconnect clears the stored
// result.
type ClientServices struct {
	Session WalletSession
	Signing SigningWorkflow
	Encoder *PayloadEncoder

	fields        FieldSource
	notifications NotificationSource
}

// NewClientServices wires the client workflow around provider.
func NewClientServices(
	provider adapter.WalletProvider,
	fields FieldSource,
	notifications Notifications,
	signingCfg config.ClientSigning,
	log *logger.Logger,
) *ClientServices {
	guard := &loadingGuard{}
	encoder := NewPayloadEncoder(signingCfg)

	session := newWalletSession(provider, notifications, guard, componentLogger(log, "wallet_session"))
	signing := newSigningWorkflow(fields, session, encoder, provider, notifications, guard, componentLogger(log, "signing_workflow"))
	session.OnDisconnect(signing.ClearResult)

	return &ClientServices{
		Session:       session,
		Signing:       signing,
		Encoder:       encoder,
		fields:        fields,
		notifications: notifications,
	}
}

func componentLogger(log *logger.Logger, component string) *logger.Logger {
	return &logger.Logger{Logger: log.With().Str("component", component).Logger()}
}

// Snapshot is everything the view renders, read in one pass.
type Snapshot struct {
	Fields       []models.FieldEntry
	Wallet       models.WalletAccountState
	Loading      bool
	Notification *models.Notification
	Result       *models.SigningResult
}

// Snapshot collects the current state of every component.
func (s *ClientServices) Snapshot() Snapshot {
	snap := Snapshot{
		Fields:  s.fields.Entries(),
		Wallet:  s.Session.State(),
		Loading: s.Signing.Loading(),
	}
	if n, ok := s.notifications.Current(); ok {
		snap.Notification = &n
	}
	if r, ok := s.Signing.Result(); ok {
		snap.Result = &r
	}
	return snap
}
