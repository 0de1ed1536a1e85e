// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// Key order modes for the signing payload encoding.
const (
	// KeyOrderInsertion keeps the browser object order: index-like keys
	// ascending, then the remaining keys in the order they were first entered.
	KeyOrderInsertion = "insertion"

	// KeyOrderSorted sorts keys lexicographically so that logically equal
	// field sets always encode to the same bytes.
	KeyOrderSorted = "sorted"
)

// Charset modes for the base64 step of the signing payload encoding.
const (
	// CharsetLatin1 rejects code points above U+00FF, like the browser's btoa.
	CharsetLatin1 = "latin1"

	// CharsetUTF8 base64-encodes the UTF-8 bytes of the JSON text.
	CharsetUTF8 = "utf8"
)

// Approval modes of the development wallet.
const (
	ApprovalAuto   = "auto"
	ApprovalReject = "reject"
)

// StructuredConfig is the top-level configuration container shared by the
// client and the development wallet. It is populated by merging defaults, an
// optional JSON file, environment variables and command-line flags.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-level settings such as logging.
	App App `envPrefix:"APP_"`

	// Provider holds the wallet provider bridge settings.
	Provider Provider `envPrefix:"PROVIDER_"`

	// Signing controls how the field list is encoded before signing.
	Signing Signing `envPrefix:"SIGNING_"`

	// Notifications controls toast behaviour.
	Notifications Notifications `envPrefix:"NOTIFICATIONS_"`

	// Form controls the field editor.
	Form Form `envPrefix:"FORM_"`

	// DevWallet holds the development wallet settings.
	DevWallet DevWallet `envPrefix:"DEVWALLET_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds process-level settings.
type App struct {
	// LogFile is the file the client writes its logs to. The terminal is
	// owned by the UI, so client logs never go to stdout.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`

	// LogLevel is a zerolog level name (e.g. "debug", "info").
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Provider holds the wallet provider bridge settings.
type Provider struct {
	// URL is the base URL of the provider bridge (e.g. "http://127.0.0.1:9400").
	// Env: PROVIDER_URL
	URL string `env:"URL"`

	// Chain selects the provider namespace; requests go to URL + "/" + Chain.
	// Env: PROVIDER_CHAIN
	Chain string `env:"CHAIN"`

	// RequestTimeout bounds every provider call. Zero means no timeout: the
	// call is awaited until the provider settles it.
	// Env: PROVIDER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Signing controls the payload encoding.
type Signing struct {
	// KeyOrder is one of [KeyOrderInsertion] or [KeyOrderSorted].
	// Env: SIGNING_KEY_ORDER
	KeyOrder string `env:"KEY_ORDER"`

	// Charset is one of [CharsetLatin1] or [CharsetUTF8].
	// Env: SIGNING_CHARSET
	Charset string `env:"CHARSET"`
}

// Notifications controls toast behaviour.
type Notifications struct {
	// Duration is how long a toast stays visible.
	// Env: NOTIFICATIONS_DURATION
	Duration time.Duration `env:"DURATION"`
}

// Form controls the field editor.
type Form struct {
	// PredefinedFields are the names offered by the field-name dropdown.
	// Env: FORM_PREDEFINED_FIELDS (comma separated)
	PredefinedFields []string `env:"PREDEFINED_FIELDS" envSeparator:","`
}

// DevWallet holds the development wallet settings.
type DevWallet struct {
	// HTTPAddress is the listen address in "host:port" format.
	// Env: DEVWALLET_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// Passphrase seeds the wallet keys. Required.
	// Env: DEVWALLET_PASSPHRASE
	Passphrase string `env:"PASSPHRASE"`

	// Salt is mixed into the key derivation.
	// Env: DEVWALLET_SALT
	Salt string `env:"SALT"`

	// Accounts is the number of accounts the wallet exposes.
	// Env: DEVWALLET_ACCOUNTS
	Accounts int `env:"ACCOUNTS"`

	// Approval is one of [ApprovalAuto] or [ApprovalReject].
	// Env: DEVWALLET_APPROVAL
	Approval string `env:"APPROVAL"`

	// ApprovalDelay simulates the time a person takes to approve a prompt.
	// Env: DEVWALLET_APPROVAL_DELAY
	ApprovalDelay time.Duration `env:"APPROVAL_DELAY"`

	// RequestTimeout is the maximum duration of a single inbound request.
	// Env: DEVWALLET_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig loads, merges, and validates the configuration from all
// available sources using the process command-line arguments.
func GetStructuredConfig() (*StructuredConfig, error) {
	return loadStructuredConfig(os.Args[1:])
}

func loadStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
