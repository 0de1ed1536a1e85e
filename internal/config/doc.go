// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for the signing client and the development wallet.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. JSON config file (path taken from CONFIG or -c / -config)
//  3. Environment variables
//  4. Command-line flags
//
// The main entry points are [GetClientConfig] for the terminal client and
// [GetDevWalletConfig] for the development wallet.
package config
