// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/rs/zerolog"
)

// validate checks the settings shared by every binary.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.LogLevel != "" {
		if _, err := zerolog.ParseLevel(cfg.App.LogLevel); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidAppConfigs, err)
		}
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.App.LogFile == "" {
		return fmt.Errorf("%w: empty log file", ErrInvalidAppConfigs)
	}

	u, err := url.Parse(cfg.Provider.URL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: provider url %q must include scheme and host", ErrInvalidProviderConfigs, cfg.Provider.URL)
	}
	if strings.TrimSpace(cfg.Provider.Chain) == "" {
		return fmt.Errorf("%w: empty chain", ErrInvalidProviderConfigs)
	}
	if cfg.Provider.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidProviderConfigs)
	}

	switch cfg.Signing.KeyOrder {
	case KeyOrderInsertion, KeyOrderSorted:
	default:
		return fmt.Errorf("%w: unknown key order %q", ErrInvalidSigningConfigs, cfg.Signing.KeyOrder)
	}
	switch cfg.Signing.Charset {
	case CharsetLatin1, CharsetUTF8:
	default:
		return fmt.Errorf("%w: unknown charset %q", ErrInvalidSigningConfigs, cfg.Signing.Charset)
	}

	if cfg.Notifications.Duration <= 0 {
		return ErrInvalidNotificationConfigs
	}

	seen := make(map[string]struct{}, len(cfg.Form.PredefinedFields))
	for _, name := range cfg.Form.PredefinedFields {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("%w: empty predefined field name", ErrInvalidFormConfigs)
		}
		if _, dup := seen[name]; dup {
			return fmt.Errorf("%w: duplicate predefined field name %q", ErrInvalidFormConfigs, name)
		}
		seen[name] = struct{}{}
	}

	return nil
}

func (cfg *DevWalletConfig) validate() error {
	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return fmt.Errorf("%w: address and request timeout are required", ErrInvalidDevWalletConfigs)
	}
	if cfg.Keys.Passphrase == "" {
		return fmt.Errorf("%w: empty passphrase", ErrInvalidDevWalletConfigs)
	}
	if cfg.Keys.Salt == "" || cfg.Keys.Accounts < 0 {
		return fmt.Errorf("%w: invalid key derivation settings", ErrInvalidDevWalletConfigs)
	}
	switch cfg.Approval.Mode {
	case ApprovalAuto, ApprovalReject:
	default:
		return fmt.Errorf("%w: unknown approval mode %q", ErrInvalidDevWalletConfigs, cfg.Approval.Mode)
	}
	if cfg.Approval.Delay < 0 {
		return fmt.Errorf("%w: negative approval delay", ErrInvalidDevWalletConfigs)
	}
	if strings.TrimSpace(cfg.Chain) == "" {
		return fmt.Errorf("%w: empty chain", ErrInvalidDevWalletConfigs)
	}

	return nil
}
