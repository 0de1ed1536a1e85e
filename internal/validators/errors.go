// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
)

// Request shape errors. Each one maps to a JSON-RPC error code in the
// handler: envelope problems to -32600, method problems to -32601 and
// parameter problems to -32602.
var (
	ErrInvalidJSONRPCVersion = errors.New("invalid jsonrpc version")
	ErrEmptyID               = errors.New("request id is required")
	ErrEmptyMethod           = errors.New("method is required")
	ErrUnknownMethod         = errors.New("method not found")
	ErrInvalidParamsCount    = errors.New("invalid number of params")
	ErrInvalidParam          = errors.New("param must be a non-empty string")
	ErrInvalidPayload        = errors.New("payload is not valid base64")
	ErrUnknownAddress        = errors.New("address does not belong to the wallet")
)
