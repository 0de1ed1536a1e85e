// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned when configuration groups are incomplete or
// invalid.
var (
	// ErrInvalidAppConfigs indicates invalid process settings
	// (for example, an unknown log level).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidProviderConfigs indicates invalid provider bridge settings
	// (for example, a missing URL or a negative timeout).
	ErrInvalidProviderConfigs = errors.New("invalid provider configuration")
	// ErrInvalidSigningConfigs indicates an unknown key order or charset.
	ErrInvalidSigningConfigs = errors.New("invalid signing configuration")
	// ErrInvalidNotificationConfigs indicates a non-positive toast duration.
	ErrInvalidNotificationConfigs = errors.New("invalid notification configuration")
	// ErrInvalidFormConfigs indicates an invalid predefined field list.
	ErrInvalidFormConfigs = errors.New("invalid form configuration")
	// ErrInvalidDevWalletConfigs indicates invalid development wallet settings
	// (for example, an empty passphrase).
	ErrInvalidDevWalletConfigs = errors.New("invalid devwallet configuration")
)
