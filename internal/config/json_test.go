// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_AllFields(t *testing.T) {
	// Arrange
	path := writeJSONConfig(t, `{
		"app": {"log_file": "/tmp/signer.log", "log_level": "info"},
		"provider": {"url": "http://127.0.0.1:9500", "chain": "constellation", "request_timeout": "20s"},
		"signing": {"key_order": "sorted", "charset": "utf8"},
		"notifications": {"duration": "1500ms"},
		"form": {"predefined_fields": ["name", "city"]},
		"devwallet": {
			"http_address": "127.0.0.1:9600",
			"passphrase": "secret",
			"salt": "salty",
			"accounts": 4,
			"approval": "reject",
			"approval_delay": "1s",
			"request_timeout": "2m"
		}
	}`)

	// Act
	cfg, err := parseJSON(path)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "/tmp/signer.log", cfg.App.LogFile)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, "http://127.0.0.1:9500", cfg.Provider.URL)
	assert.Equal(t, "constellation", cfg.Provider.Chain)
	assert.Equal(t, 20*time.Second, cfg.Provider.RequestTimeout)
	assert.Equal(t, KeyOrderSorted, cfg.Signing.KeyOrder)
	assert.Equal(t, CharsetUTF8, cfg.Signing.Charset)
	assert.Equal(t, 1500*time.Millisecond, cfg.Notifications.Duration)
	assert.Equal(t, []string{"name", "city"}, cfg.Form.PredefinedFields)
	assert.Equal(t, "127.0.0.1:9600", cfg.DevWallet.HTTPAddress)
	assert.Equal(t, "secret", cfg.DevWallet.Passphrase)
	assert.Equal(t, "salty", cfg.DevWallet.Salt)
	assert.Equal(t, 4, cfg.DevWallet.Accounts)
	assert.Equal(t, ApprovalReject, cfg.DevWallet.Approval)
	assert.Equal(t, time.Second, cfg.DevWallet.ApprovalDelay)
	assert.Equal(t, 2*time.Minute, cfg.DevWallet.RequestTimeout)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_Partial(t *testing.T) {
	path := writeJSONConfig(t, `{"provider": {"chain": "testnet"}}`)

	cfg, err := parseJSON(path)

	require.NoError(t, err)
	assert.Equal(t, "testnet", cfg.Provider.Chain)
	assert.Empty(t, cfg.Provider.URL)
	assert.Zero(t, cfg.Notifications.Duration)
	assert.Nil(t, cfg.Form.PredefinedFields)
}

func TestParseJSON_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		missing bool
	}{
		{name: "missing file", missing: true},
		{name: "malformed json", content: `{"provider": `},
		{name: "bad duration", content: `{"notifications": {"duration": "later"}}`},
		{name: "wrong type", content: `{"devwallet": {"accounts": "two"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "absent.json")
			if !tt.missing {
				path = writeJSONConfig(t, tt.content)
			}

			_, err := parseJSON(path)
			require.Error(t, err)
		})
	}
}

// ── Duration ──

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Duration
		wantErr  bool
	}{
		{name: "string seconds", input: `"30s"`, expected: 30 * time.Second},
		{name: "string hours", input: `"1h"`, expected: time.Hour},
		{name: "nanoseconds number", input: `1000000000`, expected: time.Second},
		{name: "invalid string", input: `"abc"`, wantErr: true},
		{name: "boolean", input: `true`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, time.Duration(d))
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	out, err := json.Marshal(Duration(90 * time.Second))

	require.NoError(t, err)
	assert.JSONEq(t, `"1m30s"`, string(out))
}

// Helpers

func writeJSONConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}
