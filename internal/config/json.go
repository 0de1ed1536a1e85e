// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the layout of the JSON
// configuration file.
type StructuredJSONConfig struct {
	App struct {
		LogFile  string `json:"log_file"`
		LogLevel string `json:"log_level"`
	} `json:"app,omitempty"`

	Provider struct {
		URL            string   `json:"url"`
		Chain          string   `json:"chain"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"provider,omitempty"`

	Signing struct {
		KeyOrder string `json:"key_order"`
		Charset  string `json:"charset"`
	} `json:"signing,omitempty"`

	Notifications struct {
		Duration Duration `json:"duration"`
	} `json:"notifications,omitempty"`

	Form struct {
		PredefinedFields []string `json:"predefined_fields"`
	} `json:"form,omitempty"`

	DevWallet struct {
		HTTPAddress    string   `json:"http_address"`
		Passphrase     string   `json:"passphrase"`
		Salt           string   `json:"salt"`
		Accounts       int      `json:"accounts"`
		Approval       string   `json:"approval"`
		ApprovalDelay  Duration `json:"approval_delay"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"devwallet,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			LogFile:  jsonCfg.App.LogFile,
			LogLevel: jsonCfg.App.LogLevel,
		},
		Provider: Provider{
			URL:            jsonCfg.Provider.URL,
			Chain:          jsonCfg.Provider.Chain,
			RequestTimeout: time.Duration(jsonCfg.Provider.RequestTimeout),
		},
		Signing: Signing{
			KeyOrder: jsonCfg.Signing.KeyOrder,
			Charset:  jsonCfg.Signing.Charset,
		},
		Notifications: Notifications{
			Duration: time.Duration(jsonCfg.Notifications.Duration),
		},
		Form: Form{
			PredefinedFields: jsonCfg.Form.PredefinedFields,
		},
		DevWallet: DevWallet{
			HTTPAddress:    jsonCfg.DevWallet.HTTPAddress,
			Passphrase:     jsonCfg.DevWallet.Passphrase,
			Salt:           jsonCfg.DevWallet.Salt,
			Accounts:       jsonCfg.DevWallet.Accounts,
			Approval:       jsonCfg.DevWallet.Approval,
			ApprovalDelay:  time.Duration(jsonCfg.DevWallet.ApprovalDelay),
			RequestTimeout: time.Duration(jsonCfg.DevWallet.RequestTimeout),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
