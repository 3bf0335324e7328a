// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"github.com/MKhiriev/pos-sync/internal/config"
	"github.com/MKhiriev/pos-sync/internal/handler/http"
	"github.com/MKhiriev/pos-sync/internal/logger"
	"github.com/MKhiriev/pos-sync/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers builds the operator-facing transport handlers. jobs may be nil
// when no pollers are running.
func NewHandlers(services *service.Services, jobs http.JobStates, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, jobs, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
