package http

import (
	"time"

	"github.com/MKhiriev/go-dag-signer/internal/logger"
	"github.com/MKhiriev/go-dag-signer/internal/service"
	"github.com/MKhiriev/go-dag-signer/internal/validators"
)

type Handler struct {
	services  *service.Services
	validator validators.Validator

	// chain is the only provider namespace answered; other paths get 404.
	chain string

	// requestTimeout bounds one request including the approval delay;
	// zero disables the bound.
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, validator validators.Validator, chain string, requestTimeout time.Duration, logger *logger.Logger) *Handler {
	logger.Info().Str("chain", chain).Dur("request_timeout", requestTimeout).Msg("http handler created")
	return &Handler{
		services:       services,
		validator:      validator,
		chain:          chain,
		requestTimeout: requestTimeout,
		logger:         logger,
	}
}
