// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-dag-signer/internal/config"
	"github.com/MKhiriev/go-dag-signer/internal/crypto"
	"github.com/MKhiriev/go-dag-signer/internal/logger"
	"github.com/MKhiriev/go-dag-signer/models"
)

// Services bundles the development wallet services.
type Services struct {
	AppInfoService AppInfoService
	WalletService  WalletService
}

// NewServices wires the development wallet services.
func NewServices(keys crypto.KeyChain, cfg config.DevWalletConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(buildInfo, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AppInfoService: appInfo,
		WalletService:  NewWalletService(keys, cfg.Approval, logger),
	}, nil
}
