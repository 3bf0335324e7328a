// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the operator HTTP server.
//
// The server lives as long as the context passed to [Server.Run] and shuts
// down gracefully once that context is cancelled.
package server
