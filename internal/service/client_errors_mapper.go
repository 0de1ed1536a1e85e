// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-dag-signer/internal/adapter"
)

// humanizeProviderError turns a workflow failure into the short reason shown
// in a notification body.
func humanizeProviderError(err error) string {
	switch {
	case errors.Is(err, ErrEmptyAccountSet):
		return "no accounts"
	case errors.Is(err, ErrNotConnected):
		return "wallet not connected"
	case errors.Is(err, ErrSessionChanged):
		return "wallet disconnected before signature completed"
	case errors.Is(err, ErrPayloadNotLatin1):
		return "fields contain characters outside Latin-1"
	case errors.Is(err, adapter.ErrUserRejected):
		return "request rejected in wallet"
	case errors.Is(err, adapter.ErrUnauthorized):
		return "not authorized by wallet"
	case errors.Is(err, adapter.ErrUnsupportedMethod):
		return "wallet does not support this request"
	case errors.Is(err, adapter.ErrProviderDisconnected):
		return "wallet is disconnected from the network"
	case errors.Is(err, adapter.ErrProviderRejected):
		return "wallet rejected the request"
	case errors.Is(err, adapter.ErrProviderTimeout):
		return "wallet did not answer in time"
	case errors.Is(err, adapter.ErrProviderUnavailable):
		return "wallet provider not available"
	case errors.Is(err, adapter.ErrInvalidResponse):
		return "unexpected answer from wallet"
	case errors.Is(err, context.Canceled):
		return "request canceled"
	default:
		return "unexpected error"
	}
}

// failureBody prefixes the humanized reason with the operation summary.
func failureBody(summary string, err error) string {
	return summary + ": " + humanizeProviderError(err)
}
