package http

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-dag-signer/internal/app"
	"github.com/MKhiriev/go-dag-signer/internal/service"
	"github.com/MKhiriev/go-dag-signer/internal/validators"
	"github.com/MKhiriev/go-dag-signer/models"
)

var errorCodeMap = map[error]int{
	ErrMalformedBody: models.RPCCodeParseError,

	validators.ErrInvalidJSONRPCVersion: models.RPCCodeInvalidRequest,
	validators.ErrEmptyID:               models.RPCCodeInvalidRequest,
	validators.ErrEmptyMethod:           models.RPCCodeInvalidRequest,
	validators.ErrUnknownMethod:         models.RPCCodeMethodNotFound,
	validators.ErrInvalidParamsCount:    models.RPCCodeInvalidParams,
	validators.ErrInvalidParam:          models.RPCCodeInvalidParams,
	validators.ErrInvalidPayload:        models.RPCCodeInvalidParams,
	validators.ErrUnknownAddress:        models.RPCCodeUnauthorized,

	service.ErrRequestRejected: models.RPCCodeUserRejected,
	service.ErrUnknownAccount:  models.RPCCodeUnauthorized,
}

// rpcErrorFromError builds the JSON-RPC error object for err. Unmapped
// errors become internal errors with a generic message.
func rpcErrorFromError(err error) *models.RPCError {
	for target, code := range errorCodeMap {
		if errors.Is(err, target) {
			return &models.RPCError{Code: code, Message: err.Error()}
		}
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return &models.RPCError{Code: models.RPCCodeDisconnected, Message: app.MsgRequestAbandoned}
	}
	return &models.RPCError{Code: models.RPCCodeInternalError, Message: app.MsgInternalError}
}
