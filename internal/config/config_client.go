// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"time"
)

// ClientApp holds client process settings.
type ClientApp struct {
	// LogFile is the path of the client log file.
	LogFile string
	// LogLevel is the zerolog level name.
	LogLevel string
}

// ClientProvider holds the settings of the wallet provider bridge.
type ClientProvider struct {
	// URL is the base URL of the provider bridge.
	URL string
	// Chain is the provider namespace appended to URL.
	Chain string
	// RequestTimeout bounds provider calls; zero disables the bound.
	RequestTimeout time.Duration
}

// ClientSigning holds the payload encoding settings.
type ClientSigning struct {
	KeyOrder string
	Charset  string
}

// ClientNotifications holds toast settings.
type ClientNotifications struct {
	Duration time.Duration
}

// ClientForm holds field editor settings.
type ClientForm struct {
	PredefinedFields []string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App           ClientApp
	Provider      ClientProvider
	Signing       ClientSigning
	Notifications ClientNotifications
	Form          ClientForm
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	return loadClientConfig(os.Args[1:])
}

func loadClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := loadStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	predefined := make([]string, len(cfg.Form.PredefinedFields))
	copy(predefined, cfg.Form.PredefinedFields)

	return &ClientConfig{
		App: ClientApp{
			LogFile:  cfg.App.LogFile,
			LogLevel: cfg.App.LogLevel,
		},
		Provider: ClientProvider{
			URL:            cfg.Provider.URL,
			Chain:          cfg.Provider.Chain,
			RequestTimeout: cfg.Provider.RequestTimeout,
		},
		Signing: ClientSigning{
			KeyOrder: cfg.Signing.KeyOrder,
			Charset:  cfg.Signing.Charset,
		},
		Notifications: ClientNotifications{
			Duration: cfg.Notifications.Duration,
		},
		Form: ClientForm{
			PredefinedFields: predefined,
		},
	}
}
