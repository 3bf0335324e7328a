// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/pos-sync/internal/logger"
	"github.com/MKhiriev/pos-sync/internal/service"
	"github.com/MKhiriev/pos-sync/models"
)

// JobStates reports the state of the background pollers.
type JobStates interface {
	States() []models.JobState
}

type Handler struct {
	services *service.Services
	jobs     JobStates

	logger *logger.Logger
}

func NewHandler(services *service.Services, jobs JobStates, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		jobs:     jobs,
		logger:   logger,
	}
}
