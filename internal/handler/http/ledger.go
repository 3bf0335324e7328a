// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/pos-sync/internal/app"
	"github.com/MKhiriev/pos-sync/internal/logger"
	"github.com/MKhiriev/pos-sync/internal/utils"
	"github.com/MKhiriev/pos-sync/models"
)

func (h *Handler) getLedger(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	snapshots, err := h.services.Ledger.Snapshot(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.getLedger").Msg("error reading ledger snapshot")
		writeLedgerError(w, err)
		return
	}

	_, _ = utils.WriteJSON(w, snapshots, http.StatusOK)
}

func (h *Handler) getLedgerKind(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	kind, err := models.ParseIDKind(chi.URLParam(r, "kind"))
	if err != nil {
		log.Warn().Err(err).Str("func", "*Handler.getLedgerKind").Msg("unknown id kind requested")
		utils.WriteJSONError(w, err.Error(), statusFromError(err))
		return
	}

	snapshots, err := h.services.Ledger.Snapshot(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.getLedgerKind").Str("kind", string(kind)).Msg("error reading ledger snapshot")
		writeLedgerError(w, err)
		return
	}

	for _, snapshot := range snapshots {
		if snapshot.Kind == kind {
			_, _ = utils.WriteJSON(w, snapshot, http.StatusOK)
			return
		}
	}

	utils.WriteJSONError(w, app.MsgLedgerKindNotFound, http.StatusNotFound)
}

func writeLedgerError(w http.ResponseWriter, err error) {
	status := statusFromError(err)
	msg := app.MsgInternalServerError
	if status == http.StatusServiceUnavailable {
		msg = app.MsgLedgerUnavailable
	}
	utils.WriteJSONError(w, msg, status)
}
