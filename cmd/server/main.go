package main

import (
	"context"
	"fmt"

	"github.com/happytails/happytails/internal/config"
	handlerHTTP "github.com/happytails/happytails/internal/handler/http"
	"github.com/happytails/happytails/internal/logger"
	"github.com/happytails/happytails/internal/mfacrypt"
	"github.com/happytails/happytails/internal/server"
	"github.com/happytails/happytails/internal/service"
	"github.com/happytails/happytails/internal/store"
	"github.com/happytails/happytails/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("happytails-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	db, err := store.NewConnectPostgres(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error running migrations")
	}

	storages := store.NewStorages(db, log)

	codec, err := mfacrypt.NewCodec(cfg.Security.MfaEncryptionKey, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating MFA secret codec")
	}

	services := service.NewServices(storages, *cfg, codec, log)
	handlers := handlerHTTP.NewHandler(services, log)

	sweeperCtx, stopSweeper := context.WithCancel(context.Background())
	sweeper := workers.NewSweeper(storages.ReminderRepository, cfg.Workers, log)
	go sweeper.Run(sweeperCtx)

	srv, err := server.NewServer(handlers, cfg.Server, log, stopSweeper)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
