// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrEmptyAccountSet means the provider answered but offered no account.
	ErrEmptyAccountSet = errors.New("no accounts")
	// ErrNotConnected means a signature was requested without an active
	// account.
	ErrNotConnected = errors.New("wallet not connected")
	// ErrSessionChanged means the wallet disconnected while a signature was
	// being produced; the late signature is discarded.
	ErrSessionChanged = errors.New("wallet disconnected before signature completed")

	// ErrPayloadNotLatin1 means the payload text holds a character outside
	// Latin-1 and cannot be encoded in browser-compatible mode.
	ErrPayloadNotLatin1 = errors.New("payload contains characters outside the Latin-1 range")
)

// Development wallet errors.
var (
	ErrRequestRejected       = errors.New("request rejected by approval policy")
	ErrUnknownAccount        = errors.New("unknown account")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
