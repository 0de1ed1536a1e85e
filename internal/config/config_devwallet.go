// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"time"
)

// DevWalletServer holds the listener settings of the development wallet.
type DevWalletServer struct {
	HTTPAddress    string
	RequestTimeout time.Duration
}

// DevWalletKeys holds the key derivation settings.
type DevWalletKeys struct {
	Passphrase string
	Salt       string
	Accounts   int
}

// DevWalletApproval controls how signing prompts are answered.
type DevWalletApproval struct {
	Mode  string
	Delay time.Duration
}

// DevWalletConfig is the development wallet view of [StructuredConfig].
type DevWalletConfig struct {
	Server   DevWalletServer
	Keys     DevWalletKeys
	Approval DevWalletApproval
	// Chain is the only provider namespace the wallet answers on.
	Chain    string
	LogLevel string
}

// GetDevWalletConfig builds and validates the development wallet config view
// from the merged structured configuration.
func GetDevWalletConfig() (*DevWalletConfig, error) {
	return loadDevWalletConfig(os.Args[1:])
}

func loadDevWalletConfig(args []string) (*DevWalletConfig, error) {
	cfg, err := loadStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	walletCfg := &DevWalletConfig{
		Server: DevWalletServer{
			HTTPAddress:    cfg.DevWallet.HTTPAddress,
			RequestTimeout: cfg.DevWallet.RequestTimeout,
		},
		Keys: DevWalletKeys{
			Passphrase: cfg.DevWallet.Passphrase,
			Salt:       cfg.DevWallet.Salt,
			Accounts:   cfg.DevWallet.Accounts,
		},
		Approval: DevWalletApproval{
			Mode:  cfg.DevWallet.Approval,
			Delay: cfg.DevWallet.ApprovalDelay,
		},
		Chain:    cfg.Provider.Chain,
		LogLevel: cfg.App.LogLevel,
	}

	return walletCfg, walletCfg.validate()
}
