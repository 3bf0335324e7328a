// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server defines the lifecycle contract for transport servers managed by this
// package.
type Server interface {
	// Run serves requests until ctx is cancelled, then shuts down gracefully.
	// It returns early with an error if the listener cannot be started.
	Run(ctx context.Context) error
}
