// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-dag-signer/internal/config"
	"github.com/MKhiriev/go-dag-signer/internal/crypto"
	"github.com/MKhiriev/go-dag-signer/internal/logger"
)

// walletService is the concrete implementation of [WalletService].
// It stands in for the human approving prompts in a real wallet: the
// approval mode decides every request after an optional delay.
type walletService struct {
	// keys signs on behalf of the wallet's accounts.
	keys crypto.KeyChain

	// approval is either config.ApprovalAuto or config.ApprovalReject.
	approval string

	// delay simulates the time a user needs to answer a prompt.
	delay time.Duration

	logger *logger.Logger
}

// NewWalletService constructs a [WalletService] over keys with the
// approval policy from cfg.
func NewWalletService(keys crypto.KeyChain, cfg config.DevWalletApproval, logger *logger.Logger) WalletService {
	return &walletService{
		keys:     keys,
		approval: cfg.Mode,
		delay:    cfg.Delay,
		logger:   logger,
	}
}

// RequestAccounts implements [WalletService].
func (s *walletService) RequestAccounts(ctx context.Context) ([]string, error) {
	if err := s.approve(ctx); err != nil {
		return nil, err
	}

	accounts := s.keys.Addresses()
	s.logger.Info().Int("accounts", len(accounts)).Msg("accounts shared")
	return accounts, nil
}

// SignData implements [WalletService].
func (s *walletService) SignData(ctx context.Context, address, encodedPayload string) (string, error) {
	if !s.keys.Owns(address) {
		return "", fmt.Errorf("%w: %s", ErrUnknownAccount, address)
	}
	if err := s.approve(ctx); err != nil {
		return "", err
	}

	signature, err := s.keys.SignData(address, encodedPayload)
	if errors.Is(err, crypto.ErrUnknownAddress) {
		return "", fmt.Errorf("%w: %s", ErrUnknownAccount, address)
	}
	if err != nil {
		return "", fmt.Errorf("sign data: %w", err)
	}

	s.logger.Info().Str("address", address).Int("payload_len", len(encodedPayload)).Msg("data signed")
	return signature, nil
}

// approve waits out the configured delay and applies the approval mode.
func (s *walletService) approve(ctx context.Context) error {
	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}

	if s.approval == config.ApprovalReject {
		s.logger.Info().Msg("request rejected by approval policy")
		return ErrRequestRejected
	}
	return nil
}
