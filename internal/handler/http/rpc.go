// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-dag-signer/internal/logger"
	"github.com/MKhiriev/go-dag-signer/internal/utils"
	"github.com/MKhiriev/go-dag-signer/internal/validators"
	"github.com/MKhiriev/go-dag-signer/models"
)

// maxRPCBodySize bounds a JSON-RPC request body.
const maxRPCBodySize = 1 << 20

// handleRPC serves POST /{chain}. Protocol level failures are answered with
// HTTP 200 and a JSON-RPC error object; only an unknown chain is an HTTP
// error.
func (h *Handler) handleRPC(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if chain := chi.URLParam(r, "chain"); chain != h.chain {
		log.Warn().Str("chain", chain).Msg("request for unknown chain")
		http.Error(w, ErrUnknownChain.Error(), http.StatusNotFound)
		return
	}

	var req models.RPCRequest
	body, err := io.ReadAll(io.LimitReader(r.Body, maxRPCBodySize))
	if err == nil {
		err = json.Unmarshal(body, &req)
	}
	if err != nil {
		h.writeRPCError(w, r, req.ID, fmt.Errorf("%w: %v", ErrMalformedBody, err))
		return
	}

	if err = h.validator.Validate(r.Context(), req); err != nil {
		log.Info().Err(err).Str("method", req.Method).Msg("invalid rpc request")
		h.writeRPCError(w, r, req.ID, err)
		return
	}

	result, err := h.dispatch(r, req)
	if err != nil {
		log.Info().Err(err).Str("method", req.Method).Msg("rpc call failed")
		h.writeRPCError(w, r, req.ID, err)
		return
	}

	raw, err := json.Marshal(result)
	if err != nil {
		h.writeRPCError(w, r, req.ID, err)
		return
	}
	h.writeRPC(w, models.RPCResponse{JSONRPC: models.JSONRPCVersion, ID: req.ID, Result: raw})
}

// dispatch runs a validated request against the wallet service.
func (h *Handler) dispatch(r *http.Request, req models.RPCRequest) (any, error) {
	switch req.Method {
	case models.MethodRequestAccounts:
		return h.services.WalletService.RequestAccounts(r.Context())
	case models.MethodSignData:
		params, err := validators.StringParams(req.Params)
		if err != nil {
			return nil, err
		}
		return h.services.WalletService.SignData(r.Context(), params[0], params[1])
	default:
		return nil, fmt.Errorf("%w: %s", validators.ErrUnknownMethod, req.Method)
	}
}

func (h *Handler) writeRPCError(w http.ResponseWriter, r *http.Request, id string, err error) {
	rpcErr := rpcErrorFromError(err)
	if rpcErr.Code == models.RPCCodeInternalError {
		if traceID, ok := utils.GetTraceIDFromContext(r.Context()); ok {
			rpcErr.Message = fmt.Sprintf("%s (trace %s)", rpcErr.Message, traceID)
		}
		logger.FromRequest(r).Err(err).Msg("internal rpc error")
	}
	h.writeRPC(w, models.RPCResponse{JSONRPC: models.JSONRPCVersion, ID: id, Error: rpcErr})
}

func (h *Handler) writeRPC(w http.ResponseWriter, resp models.RPCResponse) {
	if _, err := utils.WriteJSON(w, resp, http.StatusOK); err != nil {
		h.logger.Err(err).Str("rpc_id", resp.ID).Msg("write rpc response")
	}
}
