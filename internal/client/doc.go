// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the sync client runtime.
//
// It turns the sync services into periodic pollers, optionally exposes the
// operator HTTP server and runs both until the process is asked to stop.
package client
