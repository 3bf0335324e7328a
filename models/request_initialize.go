// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// InitializeRequest asks the local data service to create or refresh its local
// copy of the listed records. It is built fresh on every poll and never
// persisted.
type InitializeRequest struct {
	// BranchID scopes the request to one branch. Omitted for the head-office
	// aggregate request.
	BranchID *int64 `json:"branch_id,omitempty"`

	// BranchIDs lists several branches at once.
	BranchIDs []int64 `json:"branch_ids,omitempty"`

	ProductIDs          RecordIDs `json:"product_ids,omitempty"`
	BranchProductIDs    RecordIDs `json:"branch_product_ids,omitempty"`
	BalanceUpdateLogIDs RecordIDs `json:"branch_product_balance_update_logs_ids,omitempty"`

	// IsHeadOffice is set on back-office and head-office aggregate requests
	// and omitted from per-branch head-office requests.
	IsHeadOffice *bool `json:"is_head_office,omitempty"`

	// NotMainHeadOffice marks per-branch requests issued by a head office.
	NotMainHeadOffice *bool `json:"not_main_head_office,omitempty"`
}

// SentAsHeadOffice reports whether the request carries is_head_office=true.
func (r InitializeRequest) SentAsHeadOffice() bool {
	return r.IsHeadOffice != nil && *r.IsHeadOffice
}

// IDs returns the ids submitted for kind.
func (r InitializeRequest) IDs(kind IDKind) RecordIDs {
	switch kind {
	case IDKindProducts:
		return r.ProductIDs
	case IDKindBranchProducts:
		return r.BranchProductIDs
	case IDKindBalanceUpdateLogs:
		return r.BalanceUpdateLogIDs
	default:
		return nil
	}
}

// SetIDs assigns ids to the list matching kind.
func (r *InitializeRequest) SetIDs(kind IDKind, ids RecordIDs) {
	switch kind {
	case IDKindProducts:
		r.ProductIDs = ids
	case IDKindBranchProducts:
		r.BranchProductIDs = ids
	case IDKindBalanceUpdateLogs:
		r.BalanceUpdateLogIDs = ids
	}
}

// HasPendingIDs reports whether any id list is non-empty.
func (r InitializeRequest) HasPendingIDs() bool {
	return len(r.ProductIDs) > 0 || len(r.BranchProductIDs) > 0 || len(r.BalanceUpdateLogIDs) > 0
}

// InitializeIDsRequest asks the data service which records are pending
// initialization, either for one branch or for the head office.
type InitializeIDsRequest struct {
	BranchID     *int64
	IsHeadOffice bool
}

// InitializeIDsResponse lists the pending ids per kind. Absent lists decode
// as nil.
type InitializeIDsResponse struct {
	ProductIDs          RecordIDs `json:"product_ids,omitempty"`
	BranchProductIDs    RecordIDs `json:"branch_product_ids,omitempty"`
	BalanceUpdateLogIDs RecordIDs `json:"branch_product_balance_update_logs_ids,omitempty"`
}

// IDs returns the ids reported for kind.
func (r InitializeIDsResponse) IDs(kind IDKind) RecordIDs {
	switch kind {
	case IDKindProducts:
		return r.ProductIDs
	case IDKindBranchProducts:
		return r.BranchProductIDs
	case IDKindBalanceUpdateLogs:
		return r.BalanceUpdateLogIDs
	default:
		return nil
	}
}
