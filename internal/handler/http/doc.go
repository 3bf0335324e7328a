// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the read-only operator status API.
//
// It exposes the build version, the poller states and the pending-id ledger.
// Request tracing, access logging, panic recovery and response compression
// are handled by middleware before requests reach the handlers.
package http
