// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"time"
)

// UploadRequest asks the local data service to push its accumulated changes
// to the online service.
type UploadRequest struct {
	IsBackOffice bool `json:"is_back_office"`
}

// UploadResult is the outcome of one upload attempt. Failures are reported in
// Err rather than as a Go error.
type UploadResult struct {
	Uploaded bool      `json:"uploaded"`
	Err      string    `json:"error,omitempty"`
	At       time.Time `json:"at"`
	// Payload is the service response body, passed through untouched.
	Payload json.RawMessage `json:"payload,omitempty"`
}
