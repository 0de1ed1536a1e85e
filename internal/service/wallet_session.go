// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-dag-signer/internal/adapter"
	"github.com/MKhiriev/go-dag-signer/internal/logger"
	"github.com/MKhiriev/go-dag-signer/models"
)

const (
	titleWalletConnected    = "Wallet Connected"
	titleWalletDisconnected = "Wallet Disconnected"
	titleError              = "Error"

	bodyDisconnected  = "You have disconnected from the wallet."
	bodyConnectFailed = "Failed to connect wallet"
)

type walletSession struct {
	mu    sync.RWMutex
	state models.WalletAccountState
	// epoch changes on every Disconnect so that a provider answer started
	// in an earlier session can be recognised and dropped.
	epoch uint64
	hooks []func()

	provider adapter.WalletProvider
	notifier Notifier
	loading  *loadingGuard

	logger *logger.Logger
}

func newWalletSession(provider adapter.WalletProvider, notifier Notifier, guard *loadingGuard, log *logger.Logger) *walletSession {
	return &walletSession{
		provider: provider,
		notifier: notifier,
		loading:  guard,
		logger:   log,
	}
}

// Connect implements [WalletSession].
func (s *walletSession) Connect(ctx context.Context) models.WalletAccountState {
	if !s.loading.tryAcquire() {
		s.logger.Debug().Msg("connect ignored: provider call in flight")
		return s.State()
	}
	defer s.loading.release()

	return s.connect(ctx)
}

// connect runs the account request. The caller holds the loading guard.
func (s *walletSession) connect(ctx context.Context) models.WalletAccountState {
	s.mu.Lock()
	if s.state.Status != models.StatusDisconnected {
		state := s.state
		s.mu.Unlock()
		return state
	}
	s.state = models.WalletAccountState{Status: models.StatusConnecting}
	epoch := s.epoch
	s.mu.Unlock()

	s.logger.Debug().Msg("requesting wallet accounts")
	accounts, err := s.provider.RequestAccounts(ctx)
	if err == nil && len(accounts) == 0 {
		err = ErrEmptyAccountSet
	}

	s.mu.Lock()
	if s.epoch != epoch {
		state := s.state
		s.mu.Unlock()
		s.logger.Info().Msg("connect result dropped: session changed while connecting")
		return state
	}
	if err != nil {
		s.state = models.WalletAccountState{Status: models.StatusDisconnected}
		s.mu.Unlock()

		s.logger.Err(err).Msg("wallet connect failed")
		s.notifier.Show(titleError, failureBody(bodyConnectFailed, err), models.NotificationError)
		return models.WalletAccountState{Status: models.StatusDisconnected}
	}
	s.state = models.WalletAccountState{Status: models.StatusConnected, Address: accounts[0]}
	state := s.state
	s.mu.Unlock()

	s.logger.Info().Str("address", state.Address).Int("accounts", len(accounts)).Msg("wallet connected")
	s.notifier.Show(titleWalletConnected, "Connected to "+models.ShortAddress(state.Address), models.NotificationSuccess)
	return state
}

// Disconnect implements [WalletSession].
func (s *walletSession) Disconnect() {
	s.mu.Lock()
	prev := s.state
	s.state = models.WalletAccountState{Status: models.StatusDisconnected}
	s.epoch++
	hooks := make([]func(), len(s.hooks))
	copy(hooks, s.hooks)
	s.mu.Unlock()

	for _, fn := range hooks {
		fn()
	}

	s.logger.Info().Str("previous", prev.Status.String()).Msg("wallet disconnected")
	s.notifier.Show(titleWalletDisconnected, bodyDisconnected, models.NotificationSuccess)
}

// State implements [WalletSession].
func (s *walletSession) State() models.WalletAccountState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state
}

// OnDisconnect implements [WalletSession].
func (s *walletSession) OnDisconnect(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.hooks = append(s.hooks, fn)
}

// current returns the state together with its session epoch.
func (s *walletSession) current() (models.WalletAccountState, uint64) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state, s.epoch
}

// whileConnected runs fn while holding the session read lock, provided the
// session is still connected to address in epoch. A Disconnect can therefore
// not interleave with fn.
func (s *walletSession) whileConnected(epoch uint64, address string, fn func()) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.epoch != epoch || !s.state.IsConnected() || s.state.Address != address {
		return false
	}
	fn()
	return true
}
