// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecordID(t *testing.T) {
	tests := []struct {
		name    string
		input   any
		want    RecordID
		wantErr bool
	}{
		{name: "integral float", input: 3.0, want: "3"},
		{name: "fractional float", input: 3.5, want: "3.5"},
		{name: "int", input: 42, want: "42"},
		{name: "int64", input: int64(9007199254740993), want: "9007199254740993"},
		{name: "string keeps leading zero", input: "07", want: "07"},
		{name: "string is trimmed", input: " 12 ", want: "12"},
		{name: "json number", input: json.Number("15"), want: "15"},
		{name: "json number with fraction", input: json.Number("15.0"), want: "15"},
		{name: "bool", input: true, wantErr: true},
		{name: "nil", input: nil, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewRecordID(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnsupportedRecordID)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseRecordIDs(t *testing.T) {
	assert.Nil(t, ParseRecordIDs(""))
	assert.Equal(t, RecordIDs{"1", "2", "3"}, ParseRecordIDs("1,2,3"))
	assert.Equal(t, RecordIDs{"1", "3"}, ParseRecordIDs("1,,3,"))
}

func TestRecordIDs_Join(t *testing.T) {
	assert.Equal(t, "", RecordIDs(nil).Join())
	assert.Equal(t, "4", RecordIDs{"4"}.Join())
	assert.Equal(t, "1,2,3", RecordIDs{"1", "2", "3"}.Join())
}

func TestRecordIDs_UnmarshalJSON_MixedTypes(t *testing.T) {
	var resp InitializeIDsResponse
	body := `{"product_ids":[1,"2",3.0],"branch_product_ids":null}`

	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	assert.Equal(t, RecordIDs{"1", "2", "3"}, resp.ProductIDs)
	assert.Nil(t, resp.BranchProductIDs)
	assert.Nil(t, resp.BalanceUpdateLogIDs)
}

func TestRecordIDs_UnmarshalJSON_SkipsNullElements(t *testing.T) {
	var resp InitializeIDsResponse
	body := `{"product_ids":[1,2],"branch_product_ids":[null,5,""]}`

	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	assert.Equal(t, RecordIDs{"1", "2"}, resp.ProductIDs)
	assert.Equal(t, RecordIDs{"5"}, resp.BranchProductIDs)
}

func TestRecordIDs_UnmarshalJSON_RejectsBools(t *testing.T) {
	var ids RecordIDs
	err := json.Unmarshal([]byte(`[1,true]`), &ids)
	assert.ErrorIs(t, err, ErrUnsupportedRecordID)
}

func TestRecordIDs_UnmarshalJSON_RejectsObjects(t *testing.T) {
	var ids RecordIDs
	err := json.Unmarshal([]byte(`[{"id":1}]`), &ids)
	assert.ErrorIs(t, err, ErrUnsupportedRecordID)
}

func TestInitializeRequest_MarshalOmitsEmpty(t *testing.T) {
	branchID := int64(10)
	isHeadOffice := false
	req := InitializeRequest{BranchID: &branchID, ProductIDs: RecordIDs{"1"}, IsHeadOffice: &isHeadOffice}

	b, err := json.Marshal(req)
	require.NoError(t, err)
	assert.JSONEq(t, `{"branch_id":10,"product_ids":["1"],"is_head_office":false}`, string(b))
}

func TestInitializeRequest_BranchRequestCarriesOnlyBranchAndFlag(t *testing.T) {
	branchID := int64(10)
	notMain := true
	req := InitializeRequest{BranchID: &branchID, NotMainHeadOffice: &notMain}

	b, err := json.Marshal(req)
	require.NoError(t, err)
	assert.JSONEq(t, `{"branch_id":10,"not_main_head_office":true}`, string(b))
	assert.False(t, req.SentAsHeadOffice())
}

func TestInitializeRequest_IDsAndSetIDs(t *testing.T) {
	var req InitializeRequest
	for i, kind := range AllIDKinds() {
		ids := RecordIDs{RecordID(rune('a' + i))}
		req.SetIDs(kind, ids)
		assert.Equal(t, ids, req.IDs(kind))
	}
	assert.True(t, req.HasPendingIDs())
	assert.False(t, InitializeRequest{}.HasPendingIDs())
}

func TestParseIDKind(t *testing.T) {
	kind, err := ParseIDKind("branch_products")
	require.NoError(t, err)
	assert.Equal(t, IDKindBranchProducts, kind)
	assert.Equal(t, "branchProductIds", kind.LedgerKey())

	_, err = ParseIDKind("orders")
	assert.ErrorIs(t, err, ErrUnknownIDKind)
}
