// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrUnsupportedRecordID is returned by [NewRecordID] when a value cannot be
// represented as a record identifier (e.g. bool, object, null).
var ErrUnsupportedRecordID = errors.New("unsupported record id value")

// RecordID is the normalized identifier of a record pending initialization.
//
// The data service reports ids as JSON numbers or strings depending on the
// entity; both are folded into their decimal string form so that set
// comparisons in the ledger never depend on the wire type.
type RecordID string

// NewRecordID coerces v into a [RecordID].
//
// Integral floats lose their fractional part ("3.0" -> "3"); strings are
// trimmed but otherwise kept verbatim, so "07" stays "07".
func NewRecordID(v any) (RecordID, error) {
	switch value := v.(type) {
	case RecordID:
		return value, nil
	case string:
		return RecordID(strings.TrimSpace(value)), nil
	case json.Number:
		if i, err := value.Int64(); err == nil {
			return RecordID(strconv.FormatInt(i, 10)), nil
		}
		f, err := value.Float64()
		if err != nil {
			return "", fmt.Errorf("%w: %q", ErrUnsupportedRecordID, value.String())
		}
		return NewRecordID(f)
	case float64:
		if value == math.Trunc(value) && math.Abs(value) < 1<<63 {
			return RecordID(strconv.FormatInt(int64(value), 10)), nil
		}
		return RecordID(strconv.FormatFloat(value, 'f', -1, 64)), nil
	case float32:
		return NewRecordID(float64(value))
	case int:
		return RecordID(strconv.Itoa(value)), nil
	case int32:
		return RecordID(strconv.FormatInt(int64(value), 10)), nil
	case int64:
		return RecordID(strconv.FormatInt(value, 10)), nil
	case uint:
		return RecordID(strconv.FormatUint(uint64(value), 10)), nil
	case uint32:
		return RecordID(strconv.FormatUint(uint64(value), 10)), nil
	case uint64:
		return RecordID(strconv.FormatUint(value, 10)), nil
	default:
		return "", fmt.Errorf("%w: %T", ErrUnsupportedRecordID, v)
	}
}

// String implements fmt.Stringer.
func (id RecordID) String() string {
	return string(id)
}

// RecordIDs is a list of record identifiers in ledger order.
type RecordIDs []RecordID

// ParseRecordIDs splits a comma-joined ledger value into ids, skipping empty
// segments. An empty string yields an empty (nil) list.
func ParseRecordIDs(joined string) RecordIDs {
	if joined == "" {
		return nil
	}

	parts := strings.Split(joined, ",")
	ids := make(RecordIDs, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			ids = append(ids, RecordID(p))
		}
	}

	return ids
}

// Join returns the comma-joined ledger representation of ids.
func (ids RecordIDs) Join() string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = string(id)
	}
	return strings.Join(parts, ",")
}

// Strings returns ids as plain strings.
func (ids RecordIDs) Strings() []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = string(id)
	}
	return out
}

// UnmarshalJSON accepts an array mixing numbers and strings, or null. Null
// elements are skipped like empty strings; any other non-scalar element fails
// the whole list.
func (ids *RecordIDs) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(strings.NewReader(string(b)))
	dec.UseNumber()

	var raw []any
	if err := dec.Decode(&raw); err != nil {
		return fmt.Errorf("decode record ids: %w", err)
	}
	if raw == nil {
		*ids = nil
		return nil
	}

	out := make(RecordIDs, 0, len(raw))
	for _, v := range raw {
		if v == nil {
			continue
		}
		id, err := NewRecordID(v)
		if err != nil {
			return err
		}
		if id != "" {
			out = append(out, id)
		}
	}

	*ids = out
	return nil
}
