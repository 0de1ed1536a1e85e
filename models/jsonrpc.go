// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// JSON-RPC methods understood by a wallet provider.
const (
	// MethodRequestAccounts asks the provider for its accounts. No params;
	// the result is an ordered list of address strings.
	MethodRequestAccounts = "dag_requestAccounts"

	// MethodSignData asks the provider to sign an encoded payload.
	// Params are [address, encodedPayload]; the result is a signature string.
	MethodSignData = "dag_signData"
)

// JSONRPCVersion is the protocol version stamped on every message.
const JSONRPCVersion = "2.0"

// Provider error codes. The 4xxx range follows the browser wallet provider
// convention (EIP-1193), the negative ones are JSON-RPC 2.0 codes.
const (
	RPCCodeUserRejected      = 4001
	RPCCodeUnauthorized      = 4100
	RPCCodeUnsupportedMethod = 4200
	RPCCodeDisconnected      = 4900

	RPCCodeParseError     = -32700
	RPCCodeInvalidRequest = -32600
	RPCCodeMethodNotFound = -32601
	RPCCodeInvalidParams  = -32602
	RPCCodeInternalError  = -32603
)

// RPCRequest is a JSON-RPC 2.0 call sent to the wallet provider.
type RPCRequest struct {
	JSONRPC string            `json:"jsonrpc"`
	ID      string            `json:"id"`
	Method  string            `json:"method"`
	Params  []json.RawMessage `json:"params"`
}

// RPCResponse is the provider's answer to an [RPCRequest]. Exactly one of
// Result and Error is set.
type RPCResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      string          `json:"id"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *RPCError       `json:"error,omitempty"`
}

// RPCError describes a rejected call.
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *RPCError) Error() string {
	return e.Message
}
