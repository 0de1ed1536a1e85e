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
	titleDataSigned = "Data Signed"

	bodySigned     = "Your data has been successfully signed."
	bodySignFailed = "Failed to sign data"
)

type signingWorkflow struct {
	mu     sync.RWMutex
	result *models.SigningResult

	fields   FieldSource
	session  *walletSession
	encoder  *PayloadEncoder
	provider adapter.WalletProvider
	notifier Notifier
	loading  *loadingGuard

	logger *logger.Logger
}

func newSigningWorkflow(
	fields FieldSource,
	session *walletSession,
	encoder *PayloadEncoder,
	provider adapter.WalletProvider,
	notifier Notifier,
	guard *loadingGuard,
	log *logger.Logger,
) *signingWorkflow {
	return &signingWorkflow{
		fields:   fields,
		session:  session,
		encoder:  encoder,
		provider: provider,
		notifier: notifier,
		loading:  guard,
		logger:   log,
	}
}

// Submit implements [SigningWorkflow]. The loading guard is held across
// both steps so nothing can slip between connect and sign.
func (w *signingWorkflow) Submit(ctx context.Context) {
	if !w.loading.tryAcquire() {
		w.logger.Debug().Msg("submit ignored: provider call in flight")
		return
	}
	defer w.loading.release()

	if state := w.session.State(); !state.IsConnected() {
		if state = w.session.connect(ctx); !state.IsConnected() {
			w.logger.Debug().Msg("submit stopped: connect did not succeed")
			return
		}
	}

	w.sign(ctx)
}

// Sign implements [SigningWorkflow].
func (w *signingWorkflow) Sign(ctx context.Context) {
	if !w.loading.tryAcquire() {
		w.logger.Debug().Msg("sign ignored: provider call in flight")
		return
	}
	defer w.loading.release()

	w.sign(ctx)
}

// sign runs one signature round trip. The caller holds the loading guard.
func (w *signingWorkflow) sign(ctx context.Context) {
	state, epoch := w.session.current()
	if !state.IsConnected() {
		w.fail(ErrNotConnected)
		return
	}

	payload := w.encoder.Reduce(w.fields.Entries())
	encoded, err := w.encoder.Encode(payload)
	if err != nil {
		w.fail(err)
		return
	}

	w.logger.Debug().Str("address", state.Address).Int("keys", payload.Len()).Msg("requesting signature")
	signature, err := w.provider.SignData(ctx, state.Address, encoded)
	if err != nil {
		w.fail(err)
		return
	}

	result := models.SigningResult{
		Payload: payload,
		Proof:   models.Proof{SignerID: state.Address, Signature: signature},
	}
	stored := w.session.whileConnected(epoch, state.Address, func() {
		w.mu.Lock()
		w.result = &result
		w.mu.Unlock()
	})
	if !stored {
		w.fail(ErrSessionChanged)
		return
	}

	w.logger.Info().Str("address", state.Address).Msg("data signed")
	w.notifier.Show(titleDataSigned, bodySigned, models.NotificationSuccess)
}

func (w *signingWorkflow) fail(err error) {
	w.logger.Err(err).Msg("signing failed")
	w.notifier.Show(titleError, failureBody(bodySignFailed, err), models.NotificationError)
}

// Result implements [SigningWorkflow].
func (w *signingWorkflow) Result() (models.SigningResult, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if w.result == nil {
		return models.SigningResult{}, false
	}
	return w.result.Clone(), true
}

// ClearResult implements [SigningWorkflow].
func (w *signingWorkflow) ClearResult() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.result = nil
}

// Loading implements [SigningWorkflow].
func (w *signingWorkflow) Loading() bool {
	return w.loading.loading()
}
