package main

import (
	"fmt"

	"github.com/MKhiriev/go-dag-signer/internal/config"
	"github.com/MKhiriev/go-dag-signer/internal/crypto"
	"github.com/MKhiriev/go-dag-signer/internal/handler"
	"github.com/MKhiriev/go-dag-signer/internal/logger"
	"github.com/MKhiriev/go-dag-signer/internal/server"
	"github.com/MKhiriev/go-dag-signer/internal/service"
	"github.com/MKhiriev/go-dag-signer/internal/validators"
	"github.com/MKhiriev/go-dag-signer/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	cfg, err := config.GetDevWalletConfig()
	if err != nil {
		logger.NewLogger("dag-devwallet", logger.ParseLevel("")).Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("dag-devwallet", logger.ParseLevel(cfg.LogLevel))
	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Str("chain", cfg.Chain).
		Int("accounts", cfg.Keys.Accounts).
		Str("approval", cfg.Approval.Mode).
		Msg("received configs")

	keys, err := crypto.NewKeyChain(cfg.Keys.Passphrase, cfg.Keys.Salt, cfg.Keys.Accounts)
	if err != nil {
		log.Fatal().Err(err).Msg("error deriving wallet keys")
	}
	for i, address := range keys.Addresses() {
		log.Info().Int("index", i).Str("address", address).Msg("account ready")
	}

	services, err := service.NewServices(keys, *cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, validators.NewRPCRequestValidator(keys), cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.Version)
	fmt.Printf("Build date: %s\n", info.Date)
	fmt.Printf("Build commit: %s\n", info.Commit)
}
