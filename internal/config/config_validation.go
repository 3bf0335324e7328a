// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/MKhiriev/pos-sync/models"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if !cfg.App.Type.Valid() {
		return fmt.Errorf("%w: app type %q", ErrInvalidAppConfigs, cfg.App.Type)
	}

	switch cfg.App.Type {
	case models.AppTypeBackOffice:
		if cfg.App.BranchID < 1 {
			return fmt.Errorf("%w: back office requires a branch id", ErrInvalidAppConfigs)
		}
	case models.AppTypeHeadOffice:
		if len(cfg.App.BranchIDs) == 0 {
			return fmt.Errorf("%w: head office requires branch ids", ErrInvalidAppConfigs)
		}
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	w := cfg.Workers
	if w.InitializeInterval <= 0 || w.HeadOfficeInitializeInterval <= 0 ||
		w.FetchIDsInterval <= 0 || w.UploadInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}
	if w.ProductIDsLimit < 1 || w.BranchProductIDsLimit < 1 || w.BalanceUpdateLogIDsLimit < 1 {
		return fmt.Errorf("%w: id caps must be positive", ErrInvalidWorkerConfigs)
	}

	return nil
}
