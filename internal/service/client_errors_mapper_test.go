// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-dag-signer/internal/adapter"
)

func TestHumanizeProviderError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"empty accounts", ErrEmptyAccountSet, "no accounts"},
		{"not connected", ErrNotConnected, "wallet not connected"},
		{"session changed", ErrSessionChanged, "wallet disconnected before signature completed"},
		{"latin1", fmt.Errorf("%w: U+1F600", ErrPayloadNotLatin1), "fields contain characters outside Latin-1"},
		{"user rejected", fmt.Errorf("%w: %w: no", adapter.ErrProviderRejected, adapter.ErrUserRejected), "request rejected in wallet"},
		{"unauthorized", fmt.Errorf("%w: %w", adapter.ErrProviderRejected, adapter.ErrUnauthorized), "not authorized by wallet"},
		{"unsupported", fmt.Errorf("%w: %w", adapter.ErrProviderRejected, adapter.ErrUnsupportedMethod), "wallet does not support this request"},
		{"disconnected", fmt.Errorf("%w: %w", adapter.ErrProviderRejected, adapter.ErrProviderDisconnected), "wallet is disconnected from the network"},
		{"other rpc code", fmt.Errorf("%w: code -32000", adapter.ErrProviderRejected), "wallet rejected the request"},
		{"timeout", adapter.ErrProviderTimeout, "wallet did not answer in time"},
		{"unavailable", adapter.ErrProviderUnavailable, "wallet provider not available"},
		{"invalid response", adapter.ErrInvalidResponse, "unexpected answer from wallet"},
		{"canceled", fmt.Errorf("call: %w", context.Canceled), "request canceled"},
		{"unknown", errors.New("boom"), "unexpected error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, humanizeProviderError(tt.err))
		})
	}
}

func TestFailureBody(t *testing.T) {
	assert.Equal(t, "Failed to connect wallet: no accounts", failureBody(bodyConnectFailed, ErrEmptyAccountSet))
	assert.Equal(t, "Failed to sign data: wallet not connected", failureBody(bodySignFailed, ErrNotConnected))
}
