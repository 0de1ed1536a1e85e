// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive signing client runtime.
//
// It wires the wallet provider bridge, the field list, the notification
// center and the terminal UI into a single process lifecycle.
package client
