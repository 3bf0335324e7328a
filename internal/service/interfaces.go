// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/pos-sync/models"
)

// InitializerService pushes pending ids to the data service and removes the
// acknowledged ones from the ledger.
type InitializerService interface {
	// Initialize runs one initialize cycle for the configured role. Only ids
	// that were part of a successful request are subtracted; ids merged into
	// the ledger meanwhile stay pending. Returns the first request error, in
	// which case nothing is subtracted.
	Initialize(ctx context.Context) error
}

// IDFetcherService discovers ids that are pending initialization.
type IDFetcherService interface {
	// FetchIDs asks the data service for pending ids and merges every
	// returned list into the ledger. On error the ledger is left untouched.
	FetchIDs(ctx context.Context) error
}

// UploaderService asks the data service to push local changes online.
type UploaderService interface {
	// Upload never fails: transport errors are reported in the result.
	Upload(ctx context.Context) models.UploadResult
}

// AppInfoService exposes static facts about the running instance.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetAppType(ctx context.Context) models.AppType
	IsStandalone(ctx context.Context) bool
}
