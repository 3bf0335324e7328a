// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/pos-sync/internal/service"
	"github.com/MKhiriev/pos-sync/internal/store"
	"github.com/MKhiriev/pos-sync/models"
)

var errorStatusMap = map[error]int{
	models.ErrUnknownIDKind: http.StatusBadRequest,

	service.ErrLedgerUnavailable: http.StatusServiceUnavailable,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusServiceUnavailable,
	store.ErrBeginningTransaction: http.StatusServiceUnavailable,
	store.ErrCommitingTransaction: http.StatusServiceUnavailable,
	store.ErrExecutingStatement:   http.StatusServiceUnavailable,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
