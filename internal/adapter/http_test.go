// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-dag-signer/internal/config"
	"github.com/MKhiriev/go-dag-signer/internal/logger"
	"github.com/MKhiriev/go-dag-signer/models"
)

// newTestProvider creates an httpWalletProvider pointed at the test server.
func newTestProvider(t *testing.T, serverURL string, timeout time.Duration) *httpWalletProvider {
	t.Helper()
	cfg := config.ClientProvider{URL: serverURL, Chain: "constellation", RequestTimeout: timeout}

	p, err := NewHTTPWalletProvider(cfg, logger.Nop())
	require.NoError(t, err)
	return p.(*httpWalletProvider)
}

// rpcServer decodes every request and answers with reply.
func rpcServer(t *testing.T, reply func(req models.RPCRequest) (int, any)) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req models.RPCRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		status, body := reply(req)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func result(req models.RPCRequest, v any) models.RPCResponse {
	raw, _ := json.Marshal(v)
	return models.RPCResponse{JSONRPC: models.JSONRPCVersion, ID: req.ID, Result: raw}
}

func rpcError(req models.RPCRequest, code int, msg string) models.RPCResponse {
	return models.RPCResponse{JSONRPC: models.JSONRPCVersion, ID: req.ID, Error: &models.RPCError{Code: code, Message: msg}}
}

// ── Constructor ──

func TestNewHTTPWalletProvider(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.ClientProvider
		wantErr  bool
		wantPath string
	}{
		{name: "full url", cfg: config.ClientProvider{URL: "http://127.0.0.1:9400/", Chain: "constellation"}, wantPath: "/constellation"},
		{name: "no scheme", cfg: config.ClientProvider{URL: "127.0.0.1:9400", Chain: "/testnet/"}, wantPath: "/testnet"},
		{name: "empty url", cfg: config.ClientProvider{Chain: "constellation"}, wantErr: true},
		{name: "empty chain", cfg: config.ClientProvider{URL: "http://127.0.0.1:9400"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewHTTPWalletProvider(tt.cfg, logger.Nop())
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantPath, p.(*httpWalletProvider).path)
		})
	}
}

// ── RequestAccounts ──

func TestRequestAccounts_Success(t *testing.T) {
	// Arrange
	srv := rpcServer(t, func(req models.RPCRequest) (int, any) {
		assert.Equal(t, models.JSONRPCVersion, req.JSONRPC)
		assert.Equal(t, models.MethodRequestAccounts, req.Method)
		assert.Empty(t, req.Params)
		assert.NotEmpty(t, req.ID)
		return http.StatusOK, result(req, []string{"DAG123", "DAG456"})
	})
	p := newTestProvider(t, srv.URL, 0)

	// Act
	accounts, err := p.RequestAccounts(context.Background())

	// Assert
	require.NoError(t, err)
	assert.Equal(t, []string{"DAG123", "DAG456"}, accounts)
}

func TestRequestAccounts_PostsToChainPath(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/constellation", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req models.RPCRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, req.ID, r.Header.Get("X-Trace-ID"))
		_ = json.NewEncoder(w).Encode(result(req, []string{}))
	}))
	defer srv.Close()

	accounts, err := newTestProvider(t, srv.URL, 0).RequestAccounts(context.Background())

	require.NoError(t, err)
	assert.Empty(t, accounts)
}

func TestRequestAccounts_UserRejected(t *testing.T) {
	srv := rpcServer(t, func(req models.RPCRequest) (int, any) {
		return http.StatusOK, rpcError(req, models.RPCCodeUserRejected, "User rejected the request.")
	})

	_, err := newTestProvider(t, srv.URL, 0).RequestAccounts(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUserRejected)
	assert.ErrorIs(t, err, ErrProviderRejected)
}

func TestRequestAccounts_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := newTestProvider(t, url, 0).RequestAccounts(context.Background())

	assert.ErrorIs(t, err, ErrProviderUnavailable)
}

func TestRequestAccounts_UnknownChain(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	_, err := newTestProvider(t, srv.URL, 0).RequestAccounts(context.Background())

	assert.ErrorIs(t, err, ErrProviderUnavailable)
}

// ── SignData ──

func TestSignData_Success(t *testing.T) {
	// Arrange
	srv := rpcServer(t, func(req models.RPCRequest) (int, any) {
		assert.Equal(t, models.MethodSignData, req.Method)
		require.Len(t, req.Params, 2)

		var address, payload string
		require.NoError(t, json.Unmarshal(req.Params[0], &address))
		require.NoError(t, json.Unmarshal(req.Params[1], &payload))
		assert.Equal(t, "DAG123", address)
		assert.Equal(t, "eyJrIjoidiJ9", payload)

		return http.StatusOK, result(req, "sig-abc")
	})

	// Act
	sig, err := newTestProvider(t, srv.URL, 0).SignData(context.Background(), "DAG123", "eyJrIjoidiJ9")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "sig-abc", sig)
}

func TestSignData_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	_, err := newTestProvider(t, srv.URL, 30*time.Millisecond).SignData(context.Background(), "DAG123", "e30=")

	assert.ErrorIs(t, err, ErrProviderTimeout)
}

func TestSignData_InvalidResponses(t *testing.T) {
	tests := []struct {
		name  string
		reply func(req models.RPCRequest) (int, any)
	}{
		{name: "id mismatch", reply: func(req models.RPCRequest) (int, any) {
			resp := result(req, "sig")
			resp.ID = "other"
			return http.StatusOK, resp
		}},
		{name: "missing result", reply: func(req models.RPCRequest) (int, any) {
			return http.StatusOK, models.RPCResponse{JSONRPC: models.JSONRPCVersion, ID: req.ID}
		}},
		{name: "result is not a string", reply: func(req models.RPCRequest) (int, any) {
			return http.StatusOK, result(req, 42)
		}},
		{name: "not json rpc", reply: func(models.RPCRequest) (int, any) {
			return http.StatusOK, []int{1, 2}
		}},
		{name: "server error without rpc body", reply: func(models.RPCRequest) (int, any) {
			return http.StatusInternalServerError, "boom"
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := rpcServer(t, tt.reply)

			_, err := newTestProvider(t, srv.URL, 0).SignData(context.Background(), "DAG123", "e30=")

			assert.ErrorIs(t, err, ErrInvalidResponse)
		})
	}
}

// ── Error mapping ──

func TestMapRPCError(t *testing.T) {
	tests := []struct {
		code int
		want error
	}{
		{models.RPCCodeUserRejected, ErrUserRejected},
		{models.RPCCodeUnauthorized, ErrUnauthorized},
		{models.RPCCodeUnsupportedMethod, ErrUnsupportedMethod},
		{models.RPCCodeMethodNotFound, ErrUnsupportedMethod},
		{models.RPCCodeDisconnected, ErrProviderDisconnected},
		{4901, ErrProviderDisconnected},
		{models.RPCCodeInternalError, ErrProviderRejected},
	}

	for _, tt := range tests {
		t.Run(tt.want.Error(), func(t *testing.T) {
			err := mapRPCError(&models.RPCError{Code: tt.code, Message: "msg"})

			assert.ErrorIs(t, err, tt.want)
			assert.ErrorIs(t, err, ErrProviderRejected)
			assert.Contains(t, err.Error(), "msg")
		})
	}
}

func TestMapRPCError_OtherCodeIsOnlyRejected(t *testing.T) {
	err := mapRPCError(&models.RPCError{Code: 5000, Message: "odd"})

	assert.ErrorIs(t, err, ErrProviderRejected)
	assert.False(t, errors.Is(err, ErrUserRejected))
	assert.Contains(t, err.Error(), "5000")
}

func TestMapTransportError_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := mapTransportError(ctx, context.Canceled)

	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, errors.Is(err, ErrProviderUnavailable))
}
