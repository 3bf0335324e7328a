// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

// Sentinels for the local data service's status vocabulary. Every non-2xx
// response is returned as a *StatusError wrapping one of them.
var (
	// ErrBadRequest means the service rejected the request body or ids.
	ErrBadRequest = errors.New("data service rejected request")
	// ErrNotFound means the requested endpoint or entity does not exist.
	ErrNotFound = errors.New("data service entity not found")
	// ErrConflict means an initialize is already running on the service.
	ErrConflict = errors.New("data service initialize in progress")
	// ErrThrottled means the service asked the client to slow down (429).
	ErrThrottled = errors.New("data service throttled request")
	// ErrBadGateway means the service could not reach the online backend.
	ErrBadGateway = errors.New("online backend unreachable")
	// ErrServiceUnavailable means the service itself is down or starting (503/504).
	ErrServiceUnavailable = errors.New("data service unavailable")
	// ErrInternalServerError covers every other 5xx.
	ErrInternalServerError = errors.New("data service internal error")
	// ErrUnexpectedStatus covers non-2xx codes the service is not known to send.
	ErrUnexpectedStatus = errors.New("unexpected data service status")

	// ErrInvalidAddress is returned by the constructor for an empty or
	// unparsable service address.
	ErrInvalidAddress = errors.New("invalid adapter http address")
)
