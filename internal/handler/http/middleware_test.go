// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/pos-sync/internal/logger"
	"github.com/MKhiriev/pos-sync/internal/utils"
)

func newTestHandler(buf *bytes.Buffer) *Handler {
	if buf == nil {
		return &Handler{logger: logger.Nop()}
	}
	return &Handler{logger: &logger.Logger{Logger: zerolog.New(buf)}}
}

func TestWithTraceID(t *testing.T) {
	tests := []struct {
		name           string
		requestTraceID string
	}{
		{name: "reuses incoming trace id", requestTraceID: "my-custom-trace-id"},
		{name: "generates v7 uuid", requestTraceID: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(nil)
			var ctxTraceID string

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				ctxTraceID, _ = utils.GetTraceIDFromContext(r.Context())
				w.WriteHeader(http.StatusTeapot)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/status/", nil)
			if tt.requestTraceID != "" {
				req.Header.Set(traceIDHeader, tt.requestTraceID)
			}
			rec := httptest.NewRecorder()
			h.withTraceID(next).ServeHTTP(rec, req)

			got := rec.Header().Get(traceIDHeader)
			require.NotEmpty(t, got)
			assert.Equal(t, got, ctxTraceID)
			assert.Equal(t, http.StatusTeapot, rec.Code)

			if tt.requestTraceID != "" {
				assert.Equal(t, tt.requestTraceID, got)
				return
			}
			id, err := uuid.Parse(got)
			require.NoError(t, err)
			assert.Equal(t, uuid.Version(7), id.Version())
		})
	}
}

func TestWithLogging_LogsRequestWithTraceID(t *testing.T) {
	var buf bytes.Buffer
	h := newTestHandler(&buf)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte("hello"))
	})

	req := httptest.NewRequest(http.MethodGet, "/api/ledger/?x=1", nil)
	req.Header.Set(traceIDHeader, "abc")
	rec := httptest.NewRecorder()
	h.withTraceID(h.withLogging(next)).ServeHTTP(rec, req)

	out := buf.String()
	for _, want := range []string{`"method":"GET"`, `"uri":"/api/ledger/?x=1"`, `"status":201`, `"size":5`, `"trace_id":"abc"`, `"duration":`} {
		assert.Contains(t, out, want)
	}
}

func TestResponseWriter_ImplicitOKAndSingleHeader(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	_, err := w.Write([]byte("ab"))
	require.NoError(t, err)
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = w.Write([]byte("c"))

	assert.Equal(t, http.StatusOK, w.status)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 3, w.size)
}
