package server

import (
	"context"
	"fmt"
	"net"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-dag-signer/internal/config"
	"github.com/MKhiriev/go-dag-signer/internal/handler"
	"github.com/MKhiriev/go-dag-signer/internal/logger"
)

type server struct {
	httpServer *httpServer
	address    string

	// ready, when set, receives the bound address once listening.
	ready chan<- string

	logger *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.DevWalletServer, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		address:    cfg.HTTPAddress,
		logger:     logger,
	}, nil
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.Run(ctx); err != nil {
		s.logger.Err(err).Msg("error running server")
	}
}

func (s *server) Run(ctx context.Context) error {
	l, err := net.Listen("tcp", s.address)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.address, err)
	}

	addr := l.Addr().String()
	s.logger.Info().Str("address", addr).Msg("Launching HTTP server")
	if s.ready != nil {
		s.ready <- addr
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.httpServer.serve(l)
	}()

	select {
	case err = <-errCh:
		return err
	case <-ctx.Done():
	}

	s.Shutdown()
	err = <-errCh
	s.logger.Info().Msg("server Shutdown gracefully")
	return err
}

func (s *server) Shutdown() {
	s.httpServer.Shutdown()
}
