// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer for talking to the local data
// service that owns the POS database.
//
// The primary abstraction is [DataServiceAdapter], which decouples the service
// layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPDataServiceAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrBadGateway] when the online service is unreachable).
package adapter

import (
	"context"

	"github.com/MKhiriev/pos-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/data_service_adapter_mock.go -package=mock

// DataServiceAdapter defines communication with the local data service.
// Implementations are responsible for serialisation, trace headers and
// mapping transport-level errors to the sentinel values defined in this
// package. None of the methods retry.
type DataServiceAdapter interface {
	// Initialize asks the service to initialize the listed records. The
	// response body carries no information the caller needs; only the status
	// matters.
	Initialize(ctx context.Context, req models.InitializeRequest) error

	// InitializeIDs asks the service which records still need
	// initialization. Ids of any JSON scalar type are coerced to
	// [models.RecordID].
	InitializeIDs(ctx context.Context, req models.InitializeIDsRequest) (models.InitializeIDsResponse, error)

	// Upload asks the service to push its accumulated local changes to the
	// online service. The service response is returned as an opaque payload.
	Upload(ctx context.Context, req models.UploadRequest) (models.UploadResult, error)
}
