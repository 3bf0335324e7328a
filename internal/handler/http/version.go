// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/pos-sync/internal/utils"
)

type versionResponse struct {
	Version string `json:"version"`
}

func (h *Handler) getAppVersion(w http.ResponseWriter, r *http.Request) {
	version := h.services.AppInfo.GetAppVersion(r.Context())

	_, _ = utils.WriteJSON(w, versionResponse{Version: version}, http.StatusOK)
}
