// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-dag-signer/models"
)

// mapTransportError classifies a failure to exchange a request at all.
func mapTransportError(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded):
		return fmt.Errorf("%w: %v", ErrProviderTimeout, err)
	case errors.Is(err, context.Canceled):
		return fmt.Errorf("provider call canceled: %w", err)
	default:
		return fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}
}

// mapHTTPError translates a non-2xx status without a JSON-RPC error body.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	switch resp.StatusCode() {
	case http.StatusNotFound:
		return fmt.Errorf("%w: unknown chain: %s", ErrProviderUnavailable, body)
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return fmt.Errorf("%w: http %d: %s", ErrProviderUnavailable, resp.StatusCode(), body)
	default:
		return fmt.Errorf("%w: http %d: %s", ErrInvalidResponse, resp.StatusCode(), body)
	}
}

// mapRPCError translates a JSON-RPC error object. Every result wraps
// ErrProviderRejected; known codes additionally wrap their own sentinel.
func mapRPCError(rpcErr *models.RPCError) error {
	var kind error
	switch rpcErr.Code {
	case models.RPCCodeUserRejected:
		kind = ErrUserRejected
	case models.RPCCodeUnauthorized:
		kind = ErrUnauthorized
	case models.RPCCodeUnsupportedMethod, models.RPCCodeMethodNotFound:
		kind = ErrUnsupportedMethod
	case models.RPCCodeDisconnected, models.RPCCodeDisconnected + 1:
		kind = ErrProviderDisconnected
	default:
		return fmt.Errorf("%w: code %d: %s", ErrProviderRejected, rpcErr.Code, rpcErr.Message)
	}

	return fmt.Errorf("%w: %w: %s", ErrProviderRejected, kind, rpcErr.Message)
}
