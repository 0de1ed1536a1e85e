// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	defaultProviderURL          = "http://127.0.0.1:9400"
	defaultProviderChain        = "constellation"
	defaultNotificationDuration = 3 * time.Second
	defaultLogFile              = "signer.log"
	defaultLogLevel             = "debug"
	defaultDevWalletAddress     = "127.0.0.1:9400"
	defaultDevWalletSalt        = "go-dag-signer/devwallet"
	defaultDevWalletAccounts    = 1
	defaultDevWalletTimeout     = 5 * time.Minute
)

// defaultPredefinedFields are the names offered by the field-name dropdown
// when nothing else is configured.
var defaultPredefinedFields = []string{"name", "age", "gender", "place"}

func defaultConfig() *StructuredConfig {
	predefined := make([]string, len(defaultPredefinedFields))
	copy(predefined, defaultPredefinedFields)

	return &StructuredConfig{
		App: App{
			LogFile:  defaultLogFile,
			LogLevel: defaultLogLevel,
		},
		Provider: Provider{
			URL:   defaultProviderURL,
			Chain: defaultProviderChain,
		},
		Signing: Signing{
			KeyOrder: KeyOrderInsertion,
			Charset:  CharsetLatin1,
		},
		Notifications: Notifications{
			Duration: defaultNotificationDuration,
		},
		Form: Form{
			PredefinedFields: predefined,
		},
		DevWallet: DevWallet{
			HTTPAddress:    defaultDevWalletAddress,
			Salt:           defaultDevWalletSalt,
			Accounts:       defaultDevWalletAccounts,
			Approval:       ApprovalAuto,
			RequestTimeout: defaultDevWalletTimeout,
		},
	}
}
