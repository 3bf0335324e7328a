// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	defaultInitializeInterval           = 10 * time.Second
	defaultHeadOfficeInitializeInterval = 60 * time.Second
	defaultFetchIDsInterval             = 30 * time.Second
	defaultUploadInterval               = 30 * time.Second
	defaultRequestTimeout               = 30 * time.Second

	defaultProductIDsLimit          = 100
	defaultBranchProductIDsLimit    = 100
	defaultBalanceUpdateLogIDsLimit = 20

	defaultDSN = "pos-sync.db"
)

// defaults returns the lowest-priority configuration layer.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		Storage: Storage{DB: DB{DSN: defaultDSN}},
		Adapter: Adapter{RequestTimeout: defaultRequestTimeout},
		Workers: Workers{
			InitializeInterval:           defaultInitializeInterval,
			HeadOfficeInitializeInterval: defaultHeadOfficeInitializeInterval,
			FetchIDsInterval:             defaultFetchIDsInterval,
			UploadInterval:               defaultUploadInterval,
			ProductIDsLimit:              defaultProductIDsLimit,
			BranchProductIDsLimit:        defaultBranchProductIDsLimit,
			BalanceUpdateLogIDsLimit:     defaultBalanceUpdateLogIDsLimit,
		},
	}
}
