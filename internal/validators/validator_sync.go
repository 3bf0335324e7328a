// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/pos-sync/models"
)

// Field name constants restrict validation to a subset of fields.
const (
	// FieldProductIDs targets the product id list.
	FieldProductIDs = "product_ids"

	// FieldBranchProductIDs targets the branch product id list.
	FieldBranchProductIDs = "branch_product_ids"

	// FieldBalanceUpdateLogIDs targets the balance update log id list.
	FieldBalanceUpdateLogIDs = "branch_product_balance_update_logs_ids"

	// FieldBranchID requires a branch id on requests not sent as head office.
	FieldBranchID = "branch_id"
)

var idFields = []string{FieldProductIDs, FieldBranchProductIDs, FieldBalanceUpdateLogIDs}

type SyncValidator struct{}

func NewSyncValidator() Validator {
	return &SyncValidator{}
}

func (v *SyncValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RecordIDs:
		return validateRecordIDs(value)

	case models.InitializeIDsResponse:
		return v.validateInitializeIDsResponse(ctx, value, fields...)
	case *models.InitializeIDsResponse:
		return v.validateInitializeIDsResponse(ctx, *value, fields...)

	case models.InitializeRequest:
		return v.validateInitializeRequest(ctx, value, fields...)
	case *models.InitializeRequest:
		return v.validateInitializeRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *SyncValidator) validateInitializeIDsResponse(_ context.Context, resp models.InitializeIDsResponse, fields ...string) error {
	if len(fields) == 0 {
		fields = idFields
	}

	for _, f := range fields {
		var ids models.RecordIDs
		switch f {
		case FieldProductIDs:
			ids = resp.ProductIDs
		case FieldBranchProductIDs:
			ids = resp.BranchProductIDs
		case FieldBalanceUpdateLogIDs:
			ids = resp.BalanceUpdateLogIDs
		default:
			return ErrUnknownField
		}

		if err := validateRecordIDs(ids); err != nil {
			return fmt.Errorf("%s: %w", f, err)
		}
	}

	return nil
}

func (v *SyncValidator) validateInitializeRequest(_ context.Context, req models.InitializeRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = append([]string{FieldBranchID}, idFields...)
	}

	for _, f := range fields {
		var ids models.RecordIDs
		switch f {
		case FieldBranchID:
			if !req.SentAsHeadOffice() && req.BranchID == nil {
				return ErrMissingBranchID
			}
			continue
		case FieldProductIDs:
			ids = req.ProductIDs
		case FieldBranchProductIDs:
			ids = req.BranchProductIDs
		case FieldBalanceUpdateLogIDs:
			ids = req.BalanceUpdateLogIDs
		default:
			return ErrUnknownField
		}

		if err := validateRecordIDs(ids); err != nil {
			return fmt.Errorf("%s: %w", f, err)
		}
	}

	return nil
}

// validateRecordIDs rejects ids that would not survive a round trip through
// the comma-joined ledger value.
func validateRecordIDs(ids models.RecordIDs) error {
	for i, id := range ids {
		if strings.TrimSpace(string(id)) == "" {
			return fmt.Errorf("index %d: %w", i, ErrEmptyRecordID)
		}
		if strings.Contains(string(id), ",") {
			return fmt.Errorf("index %d: %w", i, ErrMalformedRecordID)
		}
	}
	return nil
}
