// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// JobState is a point-in-time view of a background poller.
type JobState struct {
	Name           string     `json:"name"`
	Interval       string     `json:"interval"`
	InFlight       bool       `json:"in_flight"`
	Runs           int64      `json:"runs"`
	Failures       int64      `json:"failures"`
	LastStartedAt  *time.Time `json:"last_started_at,omitempty"`
	LastFinishedAt *time.Time `json:"last_finished_at,omitempty"`
	LastError      string     `json:"last_error,omitempty"`
}

// LedgerSnapshot is the stored state of one ledger key.
type LedgerSnapshot struct {
	Kind IDKind    `json:"kind"`
	Key  string    `json:"key"`
	IDs  RecordIDs `json:"ids"`
	// Present is false when the key was never written.
	Present bool `json:"present"`
}

// AppStatus is the payload of the operator status endpoint.
type AppStatus struct {
	AppType    AppType    `json:"app_type"`
	Standalone bool       `json:"standalone"`
	Jobs       []JobState `json:"jobs"`
}
