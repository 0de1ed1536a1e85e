// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-dag-signer/internal/config"
	"github.com/MKhiriev/go-dag-signer/internal/logger"
	"github.com/MKhiriev/go-dag-signer/internal/utils"
	"github.com/MKhiriev/go-dag-signer/models"
)

// traceIDHeader carries the JSON-RPC id so provider logs can be matched
// with client logs.
const traceIDHeader = "X-Trace-ID"

type idGenerator interface {
	Generate() string
}

type httpWalletProvider struct {
	client *utils.HTTPClient
	path   string

	timeout time.Duration
	ids     idGenerator

	logger *logger.Logger
}

// NewHTTPWalletProvider constructs a JSON-RPC over HTTP implementation of
// [WalletProvider]. Every call is a POST to {URL}/{Chain}.
//
// A positive cfg.RequestTimeout bounds each call; zero waits for the wallet
// as long as the caller's context allows. Returns an error if cfg.URL cannot
// be parsed or cfg.Chain is empty.
func NewHTTPWalletProvider(cfg config.ClientProvider, log *logger.Logger) (WalletProvider, error) {
	baseURL, err := normalizeBaseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid provider url: %w", err)
	}

	chain := strings.Trim(strings.TrimSpace(cfg.Chain), "/")
	if chain == "" {
		return nil, fmt.Errorf("empty provider chain")
	}

	return &httpWalletProvider{
		client:  utils.NewHTTPClient(baseURL),
		path:    "/" + url.PathEscape(chain),
		timeout: cfg.RequestTimeout,
		ids:     utils.NewUUIDGenerator(),
		logger:  log,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// RequestAccounts implements [WalletProvider].
func (h *httpWalletProvider) RequestAccounts(ctx context.Context) ([]string, error) {
	result, err := h.call(ctx, models.MethodRequestAccounts)
	if err != nil {
		return nil, err
	}

	var accounts []string
	if err = json.Unmarshal(result, &accounts); err != nil {
		return nil, fmt.Errorf("%w: decode accounts: %v", ErrInvalidResponse, err)
	}

	return accounts, nil
}

// SignData implements [WalletProvider].
func (h *httpWalletProvider) SignData(ctx context.Context, address, encodedPayload string) (string, error) {
	result, err := h.call(ctx, models.MethodSignData, address, encodedPayload)
	if err != nil {
		return "", err
	}

	var signature string
	if err = json.Unmarshal(result, &signature); err != nil {
		return "", fmt.Errorf("%w: decode signature: %v", ErrInvalidResponse, err)
	}

	return signature, nil
}

func (h *httpWalletProvider) call(ctx context.Context, method string, params ...string) (json.RawMessage, error) {
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	req, err := newRPCRequest(h.ids.Generate(), method, params...)
	if err != nil {
		return nil, err
	}

	log := h.logger.With().Str("method", method).Str("rpc_id", req.ID).Logger()
	started := time.Now()
	log.Debug().Msg("calling wallet provider")

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader(traceIDHeader, req.ID).
		SetBody(req).
		Post(h.path)
	if err != nil {
		err = mapTransportError(ctx, err)
		log.Err(err).Dur("elapsed", time.Since(started)).Msg("wallet provider unreachable")
		return nil, err
	}

	var rpcResp models.RPCResponse
	decodeErr := json.Unmarshal(resp.Body(), &rpcResp)
	if decodeErr == nil && rpcResp.Error != nil {
		err = mapRPCError(rpcResp.Error)
		log.Err(err).Int("code", rpcResp.Error.Code).Dur("elapsed", time.Since(started)).Msg("wallet provider rejected call")
		return nil, err
	}
	if err = mapHTTPError(resp); err != nil {
		log.Err(err).Int("status", resp.StatusCode()).Msg("wallet provider http error")
		return nil, err
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, decodeErr)
	}
	if rpcResp.ID != req.ID {
		return nil, fmt.Errorf("%w: response id %q does not match request id %q", ErrInvalidResponse, rpcResp.ID, req.ID)
	}
	if len(rpcResp.Result) == 0 {
		return nil, fmt.Errorf("%w: empty result", ErrInvalidResponse)
	}

	log.Debug().Dur("elapsed", time.Since(started)).Msg("wallet provider answered")
	return rpcResp.Result, nil
}

func newRPCRequest(id, method string, params ...string) (models.RPCRequest, error) {
	raw := make([]json.RawMessage, 0, len(params))
	for _, p := range params {
		b, err := json.Marshal(p)
		if err != nil {
			return models.RPCRequest{}, fmt.Errorf("encode %s params: %w", method, err)
		}
		raw = append(raw, b)
	}

	return models.RPCRequest{
		JSONRPC: models.JSONRPCVersion,
		ID:      id,
		Method:  method,
		Params:  raw,
	}, nil
}
