// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/pos-sync/internal/config"
	"github.com/MKhiriev/pos-sync/internal/logger"
	"github.com/MKhiriev/pos-sync/internal/utils"
	"github.com/MKhiriev/pos-sync/models"
)

const (
	initializePath    = "/api/initialize/"
	initializeIDsPath = "/api/initialize-ids/"
	uploadPath        = "/api/upload/"

	// TraceIDHeader is sent with every request so service-side logs can be
	// correlated with ours.
	TraceIDHeader = "X-Trace-ID"
)

type httpDataServiceAdapter struct {
	client  *utils.HTTPClient
	traceID *utils.UUIDGenerator

	logger *logger.Logger
}

// NewHTTPDataServiceAdapter constructs an HTTP/REST implementation of
// [DataServiceAdapter]. It normalises and validates the base URL from
// cfg.HTTPAddress and configures the underlying HTTP client with the resolved
// base URL and request timeout.
//
// Returns an error if cfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPDataServiceAdapter(cfg config.Adapter, logger *logger.Logger) (DataServiceAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		SetRetryCount(0)

	return &httpDataServiceAdapter{
		client:  client,
		traceID: utils.NewUUIDGenerator(),
		logger:  logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Initialize implements [DataServiceAdapter]. It POSTs req to
// POST /api/initialize/.
func (h *httpDataServiceAdapter) Initialize(ctx context.Context, req models.InitializeRequest) error {
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post(initializePath)
	if err != nil {
		return fmt.Errorf("initialize request: %w", err)
	}

	return mapHTTPError(resp)
}

// InitializeIDs implements [DataServiceAdapter]. It sends
// GET /api/initialize-ids/ with branch_id (when set) and is_head_office as
// query parameters and decodes the three id lists.
func (h *httpDataServiceAdapter) InitializeIDs(ctx context.Context, req models.InitializeIDsRequest) (models.InitializeIDsResponse, error) {
	params := map[string]string{
		"is_head_office": strconv.FormatBool(req.IsHeadOffice),
	}
	if req.BranchID != nil {
		params["branch_id"] = strconv.FormatInt(*req.BranchID, 10)
	}

	resp, err := h.request(ctx).
		SetQueryParams(params).
		Get(initializeIDsPath)
	if err != nil {
		return models.InitializeIDsResponse{}, fmt.Errorf("initialize ids request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.InitializeIDsResponse{}, err
	}

	var out models.InitializeIDsResponse
	if len(resp.Body()) == 0 {
		return out, nil
	}
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return models.InitializeIDsResponse{}, fmt.Errorf("decode initialize ids response: %w", err)
	}

	return out, nil
}

// Upload implements [DataServiceAdapter]. It POSTs req to POST /api/upload/
// and returns the response body as the result payload.
func (h *httpDataServiceAdapter) Upload(ctx context.Context, req models.UploadRequest) (models.UploadResult, error) {
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post(uploadPath)
	if err != nil {
		return models.UploadResult{At: time.Now()}, fmt.Errorf("upload request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UploadResult{At: time.Now()}, err
	}

	result := models.UploadResult{Uploaded: true, At: time.Now()}
	if body := resp.Body(); len(body) > 0 && json.Valid(body) {
		result.Payload = append(json.RawMessage(nil), body...)
	}

	return result, nil
}

// request starts a resty request carrying the poll tick's trace id, or a
// fresh one when ctx has none.
func (h *httpDataServiceAdapter) request(ctx context.Context) *resty.Request {
	traceID, ok := utils.GetTraceIDFromContext(ctx)
	if !ok {
		traceID = h.traceID.Generate()
	}
	h.logger.Debug().
		Str("func", "httpDataServiceAdapter.request").
		Str("trace_id", traceID).
		Msg("sending request to data service")

	return h.client.R().
		SetContext(ctx).
		SetHeader(TraceIDHeader, traceID)
}
