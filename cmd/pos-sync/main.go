// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/pos-sync/internal/adapter"
	"github.com/MKhiriev/pos-sync/internal/client"
	"github.com/MKhiriev/pos-sync/internal/config"
	"github.com/MKhiriev/pos-sync/internal/logger"
	"github.com/MKhiriev/pos-sync/internal/service"
	"github.com/MKhiriev/pos-sync/internal/store"
	"github.com/MKhiriev/pos-sync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const devVersion = "dev"

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("pos-sync").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewFileLogger(fmt.Sprintf("pos-sync-%s", cfg.App.Type), cfg.LogFile)
	log.Debug().Any("config", cfg).Msg("received configs")

	if cfg.App.Version == "" {
		cfg.App.Version = devVersion
		if buildInfo.HasVersion() {
			cfg.App.Version = buildInfo.BuildVersion()
		}
	}

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	dataAdapter, err := adapter.NewHTTPDataServiceAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating data service adapter")
	}

	services, err := service.NewServices(storages, dataAdapter, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	app, err := client.NewApp(services, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Err(err).Msg("client run error")
	}
}
