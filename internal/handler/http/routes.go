// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.GetHead)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Compress(5, "application/json"))

	router.Route("/api", func(r chi.Router) {
		r.Get("/version/", h.getAppVersion)
		r.Get("/status/", h.getStatus)
		r.Get("/ledger/", h.getLedger)
		r.Get("/ledger/{kind}", h.getLedgerKind)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
