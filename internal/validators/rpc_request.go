// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-dag-signer/models"
)

// Field name constants accepted by [RPCRequestValidator.Validate].
const (
	FieldJSONRPC = "jsonrpc"
	FieldID      = "id"
	FieldMethod  = "method"
	FieldParams  = "params"
)

// paramsArity is the exact number of params each known method takes.
var paramsArity = map[string]int{
	models.MethodRequestAccounts: 0,
	models.MethodSignData:        2,
}

// RPCRequestValidator validates JSON-RPC calls addressed to the wallet.
type RPCRequestValidator struct {
	owner AccountOwner
}

// NewRPCRequestValidator returns a [Validator] for [models.RPCRequest].
// owner decides whether a signing address belongs to the wallet.
func NewRPCRequestValidator(owner AccountOwner) Validator {
	return &RPCRequestValidator{owner: owner}
}

func (v *RPCRequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RPCRequest:
		return v.validateRequest(ctx, value, fields...)
	case *models.RPCRequest:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateRequest(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *RPCRequestValidator) validateRequest(ctx context.Context, request models.RPCRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldJSONRPC, FieldID, FieldMethod, FieldParams}
	}

	for _, f := range fields {
		switch f {
		case FieldJSONRPC:
			if request.JSONRPC != models.JSONRPCVersion {
				return ErrInvalidJSONRPCVersion
			}
		case FieldID:
			if request.ID == "" {
				return ErrEmptyID
			}
		case FieldMethod:
			if request.Method == "" {
				return ErrEmptyMethod
			}
			if _, ok := paramsArity[request.Method]; !ok {
				return fmt.Errorf("%w: %s", ErrUnknownMethod, request.Method)
			}
		case FieldParams:
			if err := v.validateParams(ctx, request); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RPCRequestValidator) validateParams(_ context.Context, request models.RPCRequest) error {
	arity, ok := paramsArity[request.Method]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownMethod, request.Method)
	}
	if len(request.Params) != arity {
		return fmt.Errorf("%w: %s takes %d, got %d", ErrInvalidParamsCount, request.Method, arity, len(request.Params))
	}

	params, err := StringParams(request.Params)
	if err != nil {
		return err
	}

	if request.Method == models.MethodSignData {
		address, payload := params[0], params[1]
		if !v.owner.Owns(address) {
			return fmt.Errorf("%w: %s", ErrUnknownAddress, address)
		}
		if _, err := base64.StdEncoding.DecodeString(payload); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidPayload, err)
		}
	}

	return nil
}

// StringParams decodes every param as a non-empty JSON string.
func StringParams(raw []json.RawMessage) ([]string, error) {
	out := make([]string, len(raw))
	for i, p := range raw {
		if err := json.Unmarshal(p, &out[i]); err != nil || out[i] == "" {
			return nil, fmt.Errorf("%w: index %d", ErrInvalidParam, i)
		}
	}
	return out, nil
}
