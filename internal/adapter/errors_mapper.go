// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// StatusError is a non-2xx answer from the data service.
type StatusError struct {
	Status int
	// Detail is the service's own message, taken from the "detail", "error"
	// or "message" field of a JSON body, or the raw body otherwise.
	Detail string
	// RetryAfter is set from the Retry-After header of 429 and 503 answers.
	RetryAfter time.Duration

	kind error
}

func (e *StatusError) Error() string {
	msg := fmt.Sprintf("%s (http %d)", e.kind, e.Status)
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.RetryAfter > 0 {
		msg += fmt.Sprintf(", retry after %s", e.RetryAfter)
	}
	return msg
}

func (e *StatusError) Unwrap() error { return e.kind }

var statusKinds = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnprocessableEntity: ErrBadRequest,
	http.StatusNotFound:            ErrNotFound,
	http.StatusConflict:            ErrConflict,
	http.StatusTooManyRequests:     ErrThrottled,
	http.StatusBadGateway:          ErrBadGateway,
	http.StatusServiceUnavailable:  ErrServiceUnavailable,
	http.StatusGatewayTimeout:      ErrServiceUnavailable,
}

// mapHTTPError returns nil for 2xx responses and a *StatusError otherwise.
func mapHTTPError(resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	kind, ok := statusKinds[code]
	switch {
	case ok:
	case code >= http.StatusInternalServerError:
		kind = ErrInternalServerError
	default:
		kind = ErrUnexpectedStatus
	}

	detail := serviceDetail(resp.Body())
	if detail == "" && kind == ErrUnexpectedStatus {
		detail = http.StatusText(code)
	}

	return &StatusError{
		Status:     code,
		Detail:     detail,
		RetryAfter: retryAfter(resp.Header().Get("Retry-After")),
		kind:       kind,
	}
}

func serviceDetail(body []byte) string {
	raw := strings.TrimSpace(string(body))
	if !strings.HasPrefix(raw, "{") {
		return raw
	}

	var payload struct {
		Detail  string `json:"detail"`
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return raw
	}
	for _, s := range []string{payload.Detail, payload.Error, payload.Message} {
		if s != "" {
			return s
		}
	}
	return raw
}

// retryAfter accepts the delta-seconds form only.
func retryAfter(header string) time.Duration {
	secs, err := strconv.Atoi(strings.TrimSpace(header))
	if err != nil || secs <= 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}
