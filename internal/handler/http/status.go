// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/pos-sync/internal/utils"
	"github.com/MKhiriev/pos-sync/models"
)

func (h *Handler) getStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	status := models.AppStatus{
		AppType:    h.services.AppInfo.GetAppType(ctx),
		Standalone: h.services.AppInfo.IsStandalone(ctx),
		Jobs:       []models.JobState{},
	}
	if h.jobs != nil {
		status.Jobs = append(status.Jobs, h.jobs.States()...)
	}

	_, _ = utils.WriteJSON(w, status, http.StatusOK)
}
