// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-dag-signer/models"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

type staticOwner map[string]bool

func (o staticOwner) Owns(address string) bool { return o[address] }

func params(values ...string) []json.RawMessage {
	out := make([]json.RawMessage, len(values))
	for i, v := range values {
		b, _ := json.Marshal(v)
		out[i] = b
	}
	return out
}

func validSignRequest() models.RPCRequest {
	return models.RPCRequest{
		JSONRPC: models.JSONRPCVersion,
		ID:      "req-1",
		Method:  models.MethodSignData,
		Params:  params("DAG1abc", "eyJrIjoidiJ9"),
	}
}

func newTestValidator() Validator {
	return NewRPCRequestValidator(staticOwner{"DAG1abc": true})
}

// ---------------------------------------------------------------------------
// TestValidate_Dispatch
// ---------------------------------------------------------------------------

func TestValidate_Dispatch(t *testing.T) {
	v := newTestValidator()
	req := validSignRequest()

	assert.NoError(t, v.Validate(context.Background(), req))
	assert.NoError(t, v.Validate(context.Background(), &req))
	assert.ErrorIs(t, v.Validate(context.Background(), (*models.RPCRequest)(nil)), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(context.Background(), "not a request"), ErrUnsupportedType)
}

func TestValidate_RequestAccounts(t *testing.T) {
	v := newTestValidator()
	req := models.RPCRequest{JSONRPC: "2.0", ID: "1", Method: models.MethodRequestAccounts}

	require.NoError(t, v.Validate(context.Background(), req))

	req.Params = params("unexpected")
	assert.ErrorIs(t, v.Validate(context.Background(), req), ErrInvalidParamsCount)
}

// ---------------------------------------------------------------------------
// TestValidate_Rules
// ---------------------------------------------------------------------------

func TestValidate_Rules(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *models.RPCRequest)
		wantErr error
	}{
		{name: "wrong version", mutate: func(r *models.RPCRequest) { r.JSONRPC = "1.0" }, wantErr: ErrInvalidJSONRPCVersion},
		{name: "missing version", mutate: func(r *models.RPCRequest) { r.JSONRPC = "" }, wantErr: ErrInvalidJSONRPCVersion},
		{name: "empty id", mutate: func(r *models.RPCRequest) { r.ID = "" }, wantErr: ErrEmptyID},
		{name: "empty method", mutate: func(r *models.RPCRequest) { r.Method = "" }, wantErr: ErrEmptyMethod},
		{name: "unknown method", mutate: func(r *models.RPCRequest) { r.Method = "eth_sign" }, wantErr: ErrUnknownMethod},
		{name: "too few params", mutate: func(r *models.RPCRequest) { r.Params = params("DAG1abc") }, wantErr: ErrInvalidParamsCount},
		{name: "too many params", mutate: func(r *models.RPCRequest) { r.Params = params("DAG1abc", "e30=", "x") }, wantErr: ErrInvalidParamsCount},
		{name: "non-string param", mutate: func(r *models.RPCRequest) { r.Params[1] = json.RawMessage(`42`) }, wantErr: ErrInvalidParam},
		{name: "empty string param", mutate: func(r *models.RPCRequest) { r.Params = params("", "e30=") }, wantErr: ErrInvalidParam},
		{name: "foreign address", mutate: func(r *models.RPCRequest) { r.Params = params("DAG9zzz", "e30=") }, wantErr: ErrUnknownAddress},
		{name: "payload not base64", mutate: func(r *models.RPCRequest) { r.Params = params("DAG1abc", "not base64!") }, wantErr: ErrInvalidPayload},
		{name: "valid", mutate: func(r *models.RPCRequest) {}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validSignRequest()
			tt.mutate(&req)

			err := newTestValidator().Validate(context.Background(), req)

			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ---------------------------------------------------------------------------
// TestValidate_FieldScoping
// ---------------------------------------------------------------------------

func TestValidate_FieldScoping(t *testing.T) {
	v := newTestValidator()
	req := validSignRequest()
	req.JSONRPC = "1.0"
	req.Params = params("DAG9zzz", "e30=")

	assert.NoError(t, v.Validate(context.Background(), req, FieldID, FieldMethod))
	assert.ErrorIs(t, v.Validate(context.Background(), req, FieldJSONRPC), ErrInvalidJSONRPCVersion)
	assert.ErrorIs(t, v.Validate(context.Background(), req, FieldParams), ErrUnknownAddress)
	assert.ErrorIs(t, v.Validate(context.Background(), req, "nonce"), ErrUnknownField)
}

// ---------------------------------------------------------------------------
// TestStringParams
// ---------------------------------------------------------------------------

func TestStringParams(t *testing.T) {
	got, err := StringParams(params("a", "b"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, got)

	got, err = StringParams(nil)
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = StringParams([]json.RawMessage{json.RawMessage(`null`)})
	assert.ErrorIs(t, err, ErrInvalidParam)
}
