// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport used to reach the wallet provider.
//
// The primary abstraction is [WalletProvider], which decouples the service
// layer from the bridge protocol. The package ships a JSON-RPC over HTTP
// implementation ([NewHTTPWalletProvider]) built on resty.
//
// Error values defined in errors.go are mapped from transport failures,
// HTTP statuses and JSON-RPC error codes by errors_mapper.go so that callers
// can use [errors.Is] without knowing the wire format (e.g. [ErrUserRejected]
// for code 4001, [ErrProviderUnavailable] for a refused connection).
package adapter

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/wallet_provider_mock.go -package=mock

// WalletProvider is the request/response bridge to an external wallet.
// Implementations never validate addresses or signatures; both are opaque
// strings owned by the wallet.
type WalletProvider interface {
	// RequestAccounts calls dag_requestAccounts and returns the wallet's
	// account addresses in the order the wallet reports them. An empty
	// slice with a nil error means the wallet has no accounts to offer.
	RequestAccounts(ctx context.Context) ([]string, error)

	// SignData calls dag_signData with [address, encodedPayload] and returns
	// the opaque signature. The call blocks until the wallet's user answers
	// the prompt, the wallet rejects it, or ctx ends.
	SignData(ctx context.Context, address, encodedPayload string) (string, error)
}
