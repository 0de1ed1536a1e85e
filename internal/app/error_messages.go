// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the
// development wallet handlers.
//
// The Msg* constants are the messages written into JSON-RPC error objects
// when the underlying error must not leak to the caller.
package app

const (
	// MsgRequestAbandoned is returned when the request context ended before
	// the wallet produced an answer (client gone or request timeout).
	MsgRequestAbandoned = "request abandoned"

	// MsgInternalError is returned when an unexpected failure occurs that
	// the caller cannot resolve. The handler appends the trace id.
	MsgInternalError = "internal error"
)
