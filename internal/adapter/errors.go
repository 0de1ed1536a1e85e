// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	// ErrProviderUnavailable means the wallet could not be reached at all:
	// connection refused, DNS failure or an unknown chain path.
	ErrProviderUnavailable = errors.New("wallet provider unavailable")
	// ErrProviderTimeout means the configured request timeout expired before
	// the wallet answered.
	ErrProviderTimeout = errors.New("wallet provider timed out")

	// ErrProviderRejected is wrapped by every JSON-RPC error answer.
	ErrProviderRejected = errors.New("wallet provider rejected the request")
	// ErrUserRejected means the wallet's user declined the prompt (4001).
	ErrUserRejected = errors.New("user rejected the request")
	// ErrUnauthorized means the account or method is not authorized (4100).
	ErrUnauthorized = errors.New("request not authorized by the wallet")
	// ErrUnsupportedMethod means the wallet does not implement the method
	// (4200 or -32601).
	ErrUnsupportedMethod = errors.New("method not supported by the wallet")
	// ErrProviderDisconnected means the wallet is not connected to the
	// chain (4900 or 4901).
	ErrProviderDisconnected = errors.New("wallet provider disconnected")

	// ErrInvalidResponse means the answer could not be decoded or does not
	// belong to the request.
	ErrInvalidResponse = errors.New("invalid wallet provider response")
)
