// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/pos-sync/internal/adapter"
	"github.com/MKhiriev/pos-sync/internal/config"
	"github.com/MKhiriev/pos-sync/internal/logger"
	"github.com/MKhiriev/pos-sync/internal/store"
)

type Services struct {
	Initializer InitializerService
	IDFetcher   IDFetcherService
	// Uploader is nil in standalone mode.
	Uploader UploaderService
	AppInfo  AppInfoService
	Ledger   store.LedgerStorage
}

func NewServices(
	storages *store.Storages,
	dataAdapter adapter.DataServiceAdapter,
	cfg config.StructuredConfig,
	logger *logger.Logger,
) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("app info service: %w", err)
	}

	services := &Services{
		Initializer: NewInitializerService(storages.Ledger, dataAdapter, cfg.App, cfg.Workers, logger),
		IDFetcher:   NewIDFetcherService(storages.Ledger, dataAdapter, cfg.App, logger),
		AppInfo:     appInfo,
		Ledger:      storages.Ledger,
	}
	if !cfg.App.Standalone {
		services.Uploader = NewUploaderService(dataAdapter, cfg.App, logger)
	}

	return services, nil
}
