// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/pos-sync/internal/config"
	"github.com/MKhiriev/pos-sync/internal/logger"
	"github.com/MKhiriev/pos-sync/internal/utils"
	"github.com/MKhiriev/pos-sync/models"
)

func newTestAdapter(t *testing.T, serverURL string) *httpDataServiceAdapter {
	t.Helper()
	cfg := config.Adapter{HTTPAddress: serverURL, RequestTimeout: 2 * time.Second}

	a, err := NewHTTPDataServiceAdapter(cfg, logger.Nop())
	require.NoError(t, err)
	return a.(*httpDataServiceAdapter)
}

func int64Ptr(v int64) *int64 { return &v }
func boolPtr(v bool) *bool    { return &v }

// ── Initialize ──────────────────────────────────────────────────────────────

func TestInitialize_SendsBackOfficeBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/initialize/", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NotEmpty(t, r.Header.Get(TraceIDHeader))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, float64(3), body["branch_id"])
		assert.Equal(t, false, body["is_head_office"])
		assert.Equal(t, []any{"1", "2"}, body["product_ids"])
		assert.NotContains(t, body, "branch_product_ids")
		assert.NotContains(t, body, "not_main_head_office")

		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.Initialize(context.Background(), models.InitializeRequest{
		BranchID:     int64Ptr(3),
		ProductIDs:   models.RecordIDs{"1", "2"},
		IsHeadOffice: boolPtr(false),
	})
	require.NoError(t, err)
}

func TestInitialize_NotMainHeadOfficeFlag(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"branch_id":7,"not_main_head_office":true}`, string(raw))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.Initialize(context.Background(), models.InitializeRequest{
		BranchID:          int64Ptr(7),
		NotMainHeadOffice: boolPtr(true),
	})
	require.NoError(t, err)
}

func TestInitialize_ErrorStatuses(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   error
	}{
		{name: "bad request", status: http.StatusBadRequest, want: ErrBadRequest},
		{name: "unprocessable", status: http.StatusUnprocessableEntity, want: ErrBadRequest},
		{name: "not found", status: http.StatusNotFound, want: ErrNotFound},
		{name: "initialize running", status: http.StatusConflict, want: ErrConflict},
		{name: "throttled", status: http.StatusTooManyRequests, want: ErrThrottled},
		{name: "backend unreachable", status: http.StatusBadGateway, want: ErrBadGateway},
		{name: "unavailable", status: http.StatusServiceUnavailable, want: ErrServiceUnavailable},
		{name: "gateway timeout", status: http.StatusGatewayTimeout, want: ErrServiceUnavailable},
		{name: "internal", status: http.StatusInternalServerError, want: ErrInternalServerError},
		{name: "other 5xx", status: http.StatusNotImplemented, want: ErrInternalServerError},
		{name: "unauthorized", status: http.StatusUnauthorized, want: ErrUnexpectedStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte("nope"))
			}))
			defer srv.Close()

			a := newTestAdapter(t, srv.URL)
			err := a.Initialize(context.Background(), models.InitializeRequest{})
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)

			var statusErr *StatusError
			require.ErrorAs(t, err, &statusErr)
			assert.Equal(t, tt.status, statusErr.Status)
			assert.Equal(t, "nope", statusErr.Detail)
		})
	}
}

func TestInitialize_ThrottledCarriesRetryAfter(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Retry-After", "30")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"detail":"initialize rate exceeded"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.Initialize(context.Background(), models.InitializeRequest{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrThrottled)

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, "initialize rate exceeded", statusErr.Detail)
	assert.Equal(t, 30*time.Second, statusErr.RetryAfter)
	assert.Equal(t, "data service throttled request (http 429): initialize rate exceeded, retry after 30s", err.Error())
}

func TestInitialize_UnavailableWithoutBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.Initialize(context.Background(), models.InitializeRequest{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrServiceUnavailable)
	assert.Equal(t, "data service unavailable (http 503)", err.Error())
}

func TestInitialize_UnexpectedStatusUsesStatusText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.Initialize(context.Background(), models.InitializeRequest{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnexpectedStatus)
	assert.Contains(t, err.Error(), "http 418")
	assert.Contains(t, err.Error(), http.StatusText(http.StatusTeapot))
}

func TestInitialize_DoesNotRetry(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	require.Error(t, a.Initialize(context.Background(), models.InitializeRequest{}))
	assert.Equal(t, int32(1), calls.Load())
}

func TestInitialize_ServerDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	a := newTestAdapter(t, url)
	err := a.Initialize(context.Background(), models.InitializeRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "initialize request")
}

// ── InitializeIDs ───────────────────────────────────────────────────────────

func TestInitializeIDs_BackOfficeQueryAndMixedTypes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/initialize-ids/", r.URL.Path)
		assert.Equal(t, "12", r.URL.Query().Get("branch_id"))
		assert.Equal(t, "false", r.URL.Query().Get("is_head_office"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"product_ids":[1,"2",3.0],"branch_product_ids":null}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.InitializeIDs(context.Background(), models.InitializeIDsRequest{BranchID: int64Ptr(12)})
	require.NoError(t, err)
	assert.Equal(t, models.RecordIDs{"1", "2", "3"}, got.ProductIDs)
	assert.Empty(t, got.BranchProductIDs)
	assert.Empty(t, got.BalanceUpdateLogIDs)
}

func TestInitializeIDs_HeadOfficeOmitsBranch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.False(t, r.URL.Query().Has("branch_id"))
		assert.Equal(t, "true", r.URL.Query().Get("is_head_office"))
		_, _ = w.Write([]byte(`{"branch_product_balance_update_logs_ids":["9"]}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.InitializeIDs(context.Background(), models.InitializeIDsRequest{IsHeadOffice: true})
	require.NoError(t, err)
	assert.Equal(t, models.RecordIDs{"9"}, got.BalanceUpdateLogIDs)
}

func TestInitializeIDs_EmptyBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.InitializeIDs(context.Background(), models.InitializeIDsRequest{IsHeadOffice: true})
	require.NoError(t, err)
	assert.Empty(t, got.ProductIDs)
}

func TestInitializeIDs_BadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"product_ids":[{"id":1}]}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.InitializeIDs(context.Background(), models.InitializeIDsRequest{IsHeadOffice: true})
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrUnsupportedRecordID)
}

func TestInitializeIDs_StatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.InitializeIDs(context.Background(), models.InitializeIDsRequest{IsHeadOffice: true})
	assert.ErrorIs(t, err, ErrBadGateway)
}

// ── Upload ──────────────────────────────────────────────────────────────────

func TestUpload_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/upload/", r.URL.Path)
		raw, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"is_back_office":true}`, string(raw))
		_, _ = w.Write([]byte(`{"uploaded":42}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Upload(context.Background(), models.UploadRequest{IsBackOffice: true})
	require.NoError(t, err)
	assert.True(t, got.Uploaded)
	assert.JSONEq(t, `{"uploaded":42}`, string(got.Payload))
	assert.False(t, got.At.IsZero())
}

func TestUpload_Failure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Upload(context.Background(), models.UploadRequest{})
	assert.ErrorIs(t, err, ErrInternalServerError)
	assert.False(t, got.Uploaded)
}

// ── constructor ─────────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "localhost:8000", want: "http://localhost:8000"},
		{in: " https://pos.local/ ", want: "https://pos.local"},
		{in: "http://127.0.0.1:9000/base/", want: "http://127.0.0.1:9000/base"},
		{in: "", wantErr: true},
		{in: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPDataServiceAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPDataServiceAdapter(config.Adapter{}, logger.Nop())
	assert.ErrorIs(t, err, ErrInvalidAddress)
}

func TestRequest_TraceIDsAreUnique(t *testing.T) {
	seen := make(chan string, 2)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen <- r.Header.Get(TraceIDHeader)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	require.NoError(t, a.Initialize(context.Background(), models.InitializeRequest{}))
	require.NoError(t, a.Initialize(context.Background(), models.InitializeRequest{}))

	first, second := <-seen, <-seen
	assert.NotEmpty(t, first)
	assert.NotEqual(t, first, second)
}

func TestRequest_ReusesContextTraceID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "tick-1", r.Header.Get(TraceIDHeader))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	ctx := utils.WithTraceID(context.Background(), "tick-1")
	require.NoError(t, a.Initialize(ctx, models.InitializeRequest{}))
}
