// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/pos-sync/internal/app"
	"github.com/MKhiriev/pos-sync/internal/utils"
)

// CheckHTTPMethod returns the router's MethodNotAllowed handler. The status
// API is read-only, so any method other than GET or HEAD on a known path gets
// 405 with an Allow header; everything else is forwarded to the router.
//
// Usage:
//
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet || r.Method == http.MethodHead {
			router.NotFoundHandler().ServeHTTP(w, r)
			return
		}

		w.Header().Set("Allow", http.MethodGet)
		utils.WriteJSONError(w, app.MsgReadOnlyAPI, http.StatusMethodNotAllowed)
	}
}
