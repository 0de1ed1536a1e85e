// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks inbound requests of the development wallet
// before they reach the service layer.
//
// A Validator accepts any value it knows how to check and can be scoped to
// a subset of fields by name. With no field names every rule applies.
package validators

import "context"

// Validator validates the provided input and optionally restricts
// validation to specific named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}

// AccountOwner reports whether an address belongs to the wallet.
type AccountOwner interface {
	Owns(address string) bool
}
