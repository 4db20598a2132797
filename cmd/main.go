// Package bankapi provides the API to manage customer accounts and money transfers.
package main

import (
	"github.com/rs/zerolog/log"

	"github.com/go-petr/mem-bank/cmd/httpserver"
	"github.com/go-petr/mem-bank/internal/customerrepo"
	"github.com/go-petr/mem-bank/internal/memdb"
	"github.com/go-petr/mem-bank/internal/middleware"
	"github.com/go-petr/mem-bank/pkg/configpkg"
)

func main() {
	config, err := configpkg.Load("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	logger := middleware.GetLogger(config)

	// All state is volatile and lives as long as the process.
	db := memdb.New()

	server, err := httpserver.New(db, customerrepo.DefaultCustomers, logger, config)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot create server")
	}

	logger.Info().Str("address", config.ServerAddress).Msg("BANK API SERVER HAS STARTED")

	err = server.Engine.Run(config.ServerAddress)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot start server")
	}
}
