// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/pos-sync/internal/adapter"
	"github.com/MKhiriev/pos-sync/internal/config"
	"github.com/MKhiriev/pos-sync/internal/logger"
	"github.com/MKhiriev/pos-sync/internal/store"
	"github.com/MKhiriev/pos-sync/internal/validators"
	"github.com/MKhiriev/pos-sync/models"
)

type idFetcherService struct {
	ledger  store.LedgerStorage
	adapter adapter.DataServiceAdapter

	request   models.InitializeIDsRequest
	validator validators.Validator

	logger *logger.Logger
}

func NewIDFetcherService(
	ledger store.LedgerStorage,
	dataAdapter adapter.DataServiceAdapter,
	appCfg config.App,
	logger *logger.Logger,
) IDFetcherService {
	req := models.InitializeIDsRequest{IsHeadOffice: appCfg.Type.IsHeadOffice()}
	if !req.IsHeadOffice {
		branchID := appCfg.BranchID
		req.BranchID = &branchID
	}

	return &idFetcherService{
		ledger:    ledger,
		adapter:   dataAdapter,
		request:   req,
		validator: validators.NewSyncValidator(),
		logger:    logger,
	}
}

func (s *idFetcherService) FetchIDs(ctx context.Context) error {
	resp, err := s.adapter.InitializeIDs(ctx, s.request)
	if err != nil {
		s.logger.Err(err).
			Str("func", "idFetcherService.FetchIDs").
			Bool("is_head_office", s.request.IsHeadOffice).
			Msg("pending ids request failed")
		return fmt.Errorf("%w: %w", ErrFetchIDsFailed, err)
	}

	if err = s.validator.Validate(ctx, resp); err != nil {
		s.logger.Err(err).
			Str("func", "idFetcherService.FetchIDs").
			Msg("data service returned malformed pending ids")
		return fmt.Errorf("%w: %w: %w", ErrFetchIDsFailed, ErrInvalidPayload, err)
	}

	for _, kind := range models.AllIDKinds() {
		ids := resp.IDs(kind)
		if len(ids) == 0 {
			continue
		}

		if err = s.ledger.Merge(ctx, kind, ids); err != nil {
			s.logger.Err(err).
				Str("func", "idFetcherService.FetchIDs").
				Str("kind", string(kind)).
				Int("count", len(ids)).
				Msg("failed to merge pending ids")
			return fmt.Errorf("%w: %w", ErrLedgerUnavailable, err)
		}
	}

	return nil
}
