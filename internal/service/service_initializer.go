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

type initializerService struct {
	ledger  store.LedgerStorage
	adapter adapter.DataServiceAdapter

	appType   models.AppType
	branchID  int64
	branchIDs []int64
	limits    config.Workers
	validator validators.Validator

	logger *logger.Logger
}

// NewInitializerService builds the initializer for the role in appCfg.
// Caps per kind come from workersCfg.
func NewInitializerService(
	ledger store.LedgerStorage,
	dataAdapter adapter.DataServiceAdapter,
	appCfg config.App,
	workersCfg config.Workers,
	logger *logger.Logger,
) InitializerService {
	branchIDs := make([]int64, len(appCfg.BranchIDs))
	copy(branchIDs, appCfg.BranchIDs)

	return &initializerService{
		ledger:    ledger,
		adapter:   dataAdapter,
		appType:   appCfg.Type,
		branchID:  appCfg.BranchID,
		branchIDs: branchIDs,
		limits:    workersCfg,
		validator: validators.NewSyncValidator(),
		logger:    logger,
	}
}

func (s *initializerService) Initialize(ctx context.Context) error {
	pending, err := s.pendingRequest(ctx)
	if err != nil {
		return err
	}

	if s.appType.IsHeadOffice() {
		err = s.initializeHeadOffice(ctx, pending)
	} else {
		err = s.initializeBackOffice(ctx, pending)
	}
	if err != nil {
		return err
	}

	return s.acknowledge(ctx, pending)
}

// pendingRequest takes the capped pending lists of every kind from the ledger.
func (s *initializerService) pendingRequest(ctx context.Context) (models.InitializeRequest, error) {
	var req models.InitializeRequest
	for _, kind := range models.AllIDKinds() {
		ids, err := s.ledger.Take(ctx, kind, s.limits.Limit(kind))
		if err != nil {
			s.logger.Err(err).
				Str("func", "initializerService.pendingRequest").
				Str("kind", string(kind)).
				Msg("failed to read pending ids")
			return models.InitializeRequest{}, fmt.Errorf("%w: %w", ErrLedgerUnavailable, err)
		}
		if len(ids) > 0 {
			req.SetIDs(kind, ids)
		}
	}

	return req, nil
}

func (s *initializerService) initializeBackOffice(ctx context.Context, pending models.InitializeRequest) error {
	branchID := s.branchID
	pending.BranchID = &branchID
	isHeadOffice := false
	pending.IsHeadOffice = &isHeadOffice

	if err := s.validate(ctx, pending); err != nil {
		return err
	}
	if err := s.adapter.Initialize(ctx, pending); err != nil {
		s.logger.Err(err).
			Str("func", "initializerService.initializeBackOffice").
			Int64("branch_id", branchID).
			Msg("initialize request failed")
		return fmt.Errorf("%w: %w", ErrInitializeFailed, err)
	}

	return nil
}

// initializeHeadOffice refreshes every branch in order and stops at the first
// failure, then sends the pending lists in one aggregate request.
func (s *initializerService) initializeHeadOffice(ctx context.Context, pending models.InitializeRequest) error {
	if len(s.branchIDs) == 0 {
		return ErrNoBranchesConfigured
	}

	notMain := true
	for _, branchID := range s.branchIDs {
		branchID := branchID
		req := models.InitializeRequest{
			BranchID:          &branchID,
			NotMainHeadOffice: &notMain,
		}

		if err := s.adapter.Initialize(ctx, req); err != nil {
			s.logger.Err(err).
				Str("func", "initializerService.initializeHeadOffice").
				Int64("branch_id", branchID).
				Msg("branch initialize request failed, skipping remaining branches")
			return fmt.Errorf("%w: branch %d: %w", ErrBranchInitializeFailed, branchID, err)
		}
	}

	if !pending.HasPendingIDs() {
		return nil
	}

	pending.BranchID = nil
	isHeadOffice := true
	pending.IsHeadOffice = &isHeadOffice
	if err := s.validate(ctx, pending); err != nil {
		return err
	}
	if err := s.adapter.Initialize(ctx, pending); err != nil {
		s.logger.Err(err).
			Str("func", "initializerService.initializeHeadOffice").
			Msg("aggregate initialize request failed")
		return fmt.Errorf("%w: %w", ErrInitializeFailed, err)
	}

	return nil
}

func (s *initializerService) validate(ctx context.Context, req models.InitializeRequest) error {
	if err := s.validator.Validate(ctx, req); err != nil {
		s.logger.Err(err).
			Str("func", "initializerService.validate").
			Msg("refusing to send invalid initialize request")
		return fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}
	return nil
}

// acknowledge subtracts exactly the submitted ids.
func (s *initializerService) acknowledge(ctx context.Context, submitted models.InitializeRequest) error {
	for _, kind := range models.AllIDKinds() {
		ids := submitted.IDs(kind)
		if len(ids) == 0 {
			continue
		}

		if err := s.ledger.Subtract(ctx, kind, ids); err != nil {
			s.logger.Err(err).
				Str("func", "initializerService.acknowledge").
				Str("kind", string(kind)).
				Int("count", len(ids)).
				Msg("failed to subtract initialized ids")
			return fmt.Errorf("%w: %w", ErrLedgerUnavailable, err)
		}

		s.logger.Debug().
			Str("func", "initializerService.acknowledge").
			Str("kind", string(kind)).
			Int("count", len(ids)).
			Msg("initialized ids acknowledged")
	}

	return nil
}
