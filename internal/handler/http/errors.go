// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrUnknownChain is returned when the request path names a chain the
	// wallet does not serve.
	ErrUnknownChain = errors.New("unknown chain")

	// ErrMalformedBody is returned when the request body is not a JSON-RPC
	// object.
	ErrMalformedBody = errors.New("malformed JSON-RPC body")
)
