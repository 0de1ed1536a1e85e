// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	ErrUnknownAddress   = errors.New("address does not belong to the key chain")
	ErrEmptyPassphrase  = errors.New("empty passphrase")
	ErrNegativeAccounts = errors.New("negative account count")
)
