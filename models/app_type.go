// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AppType is the deployment role of the point-of-sale installation.
type AppType string

const (
	// AppTypeBackOffice runs at a single branch.
	AppTypeBackOffice AppType = "BACK_OFFICE"
	// AppTypeHeadOffice aggregates several branches.
	AppTypeHeadOffice AppType = "HEAD_OFFICE"
)

// Valid reports whether t is a known role.
func (t AppType) Valid() bool {
	return t == AppTypeBackOffice || t == AppTypeHeadOffice
}

// IsHeadOffice reports whether t is [AppTypeHeadOffice].
func (t AppType) IsHeadOffice() bool {
	return t == AppTypeHeadOffice
}
