// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-dag-signer/models"
)

//go:generate mockgen -source=wallet_interfaces.go -destination=../mock/wallet_services_mock.go -package=mock

// AppInfoService reports build metadata of the running binary.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) models.AppBuildInfo
}

// WalletService answers wallet provider requests on the development wallet
// side of the bridge.
type WalletService interface {
	// RequestAccounts returns the addresses of the key chain.
	RequestAccounts(ctx context.Context) ([]string, error)

	// SignData asks for approval and signs encodedPayload with the key of
	// address. Returns [ErrRequestRejected] when approval is denied and
	// [ErrUnknownAccount] for an address outside the key chain.
	SignData(ctx context.Context, address, encodedPayload string) (string, error)
}
