// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the signing workflow of the client: the wallet
// session, the payload encoder and the workflow that ties them to the field
// list and the notification center.
//
// Operations never return provider failures to the caller. Every failure is
// logged, translated into an Error notification and leaves the observable
// state as it was before the attempt.
package service

import (
	"context"

	"github.com/MKhiriev/go-dag-signer/models"
)

// WalletSession owns the connection state and the active account.
type WalletSession interface {
	// Connect requests accounts from the provider and activates the first
	// one. Failures and an empty account set end in Disconnected with an
	// Error notification. While another provider call is in flight, or when
	// already connected, Connect does nothing and returns the current state.
	Connect(ctx context.Context) models.WalletAccountState

	// Disconnect unconditionally returns to Disconnected, runs the hooks
	// registered with OnDisconnect and shows a Success notification.
	Disconnect()

	// State returns the current connection state.
	State() models.WalletAccountState

	// OnDisconnect registers fn to run on every Disconnect.
	OnDisconnect(fn func())
}

// SigningWorkflow turns the field list and the active account into a
// [models.SigningResult].
type SigningWorkflow interface {
	// Submit connects first when needed and signs once the connect step has
	// settled in Connected. It does nothing while a provider call is in
	// flight.
	Submit(ctx context.Context)

	// Sign encodes the current fields and asks the provider to sign them
	// with the active account. On failure the stored result is untouched.
	Sign(ctx context.Context)

	// Result returns a deep copy of the stored result.
	Result() (models.SigningResult, bool)

	// ClearResult drops the stored result.
	ClearResult()

	// Loading reports whether a provider call is in flight.
	Loading() bool
}
