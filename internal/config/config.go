// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/MKhiriev/pos-sync/models"
)

// StructuredConfig is the top-level configuration container for pos-sync. It
// aggregates all sub-configurations and is populated by merging values from
// environment variables, command-line flags, an optional JSON file and the
// built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App describes the deployment role of this installation.
	App App `envPrefix:"APP_"`

	// Storage holds the location of the local ledger database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds the address and timeout of the local data service.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Server holds the address of the operator status API. Empty disables it.
	Server Server `envPrefix:"SERVER_"`

	// Workers holds poll cadences and per-request id caps.
	Workers Workers `envPrefix:"WORKERS_"`

	// LogFile is an optional path for JSON logs. Logs go to stdout when empty.
	// Env: LOG_FILE
	LogFile string `env:"LOG_FILE"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds the role context. It is read once at startup and never mutated
// afterwards.
type App struct {
	// Type is BACK_OFFICE or HEAD_OFFICE.
	// Env: APP_TYPE
	Type models.AppType `env:"TYPE"`

	// Standalone disables uploads to the online service.
	// Env: APP_STANDALONE
	Standalone bool `env:"STANDALONE"`

	// BranchID is the branch served by a back office.
	// Env: APP_BRANCH_ID
	BranchID int64 `env:"BRANCH_ID"`

	// BranchIDs are the branches aggregated by a head office.
	// Env: APP_BRANCH_IDS (comma separated)
	BranchIDs []int64 `env:"BRANCH_IDS" envSeparator:","`

	// Version is the semantic version reported by the status API.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups storage backend settings.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds the ledger database location.
type DB struct {
	// DSN is the SQLite file path, or "memory" for an ephemeral in-process
	// ledger.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Adapter holds outbound settings for the local data service.
type Adapter struct {
	// HTTPAddress is the base URL of the local data service
	// (e.g. "http://127.0.0.1:8000"). The scheme defaults to http.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Server holds inbound settings for the status API.
type Server struct {
	// HTTPAddress is the host:port the status API listens on.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`
}

// Workers holds background poller settings.
type Workers struct {
	// InitializeInterval is the initializer cadence for a back office.
	// Env: WORKERS_INITIALIZE_INTERVAL
	InitializeInterval time.Duration `env:"INITIALIZE_INTERVAL"`

	// HeadOfficeInitializeInterval is the initializer cadence for a head office.
	// Env: WORKERS_HEAD_OFFICE_INITIALIZE_INTERVAL
	HeadOfficeInitializeInterval time.Duration `env:"HEAD_OFFICE_INITIALIZE_INTERVAL"`

	// FetchIDsInterval is the id fetcher cadence.
	// Env: WORKERS_FETCH_IDS_INTERVAL
	FetchIDsInterval time.Duration `env:"FETCH_IDS_INTERVAL"`

	// UploadInterval is the uploader cadence.
	// Env: WORKERS_UPLOAD_INTERVAL
	UploadInterval time.Duration `env:"UPLOAD_INTERVAL"`

	// ProductIDsLimit caps product ids per initialize request. All caps must
	// be positive; an explicit 0 from any source fails validation.
	// Env: WORKERS_PRODUCT_IDS_LIMIT
	ProductIDsLimit int `env:"PRODUCT_IDS_LIMIT"`

	// BranchProductIDsLimit caps branch-product ids per initialize request.
	// Env: WORKERS_BRANCH_PRODUCT_IDS_LIMIT
	BranchProductIDsLimit int `env:"BRANCH_PRODUCT_IDS_LIMIT"`

	// BalanceUpdateLogIDsLimit caps balance-update-log ids per initialize
	// request.
	// Env: WORKERS_BALANCE_UPDATE_LOG_IDS_LIMIT
	BalanceUpdateLogIDsLimit int `env:"BALANCE_UPDATE_LOG_IDS_LIMIT"`
}

// InitializeIntervalFor returns the initializer cadence for the given role.
func (w Workers) InitializeIntervalFor(appType models.AppType) time.Duration {
	if appType.IsHeadOffice() {
		return w.HeadOfficeInitializeInterval
	}
	return w.InitializeInterval
}

// Limit returns the per-request cap for kind.
func (w Workers) Limit(kind models.IDKind) int {
	switch kind {
	case models.IDKindProducts:
		return w.ProductIDsLimit
	case models.IDKindBranchProducts:
		return w.BranchProductIDsLimit
	case models.IDKindBalanceUpdateLogs:
		return w.BalanceUpdateLogIDsLimit
	default:
		return 0
	}
}

// GetStructuredConfig loads, merges, and validates the configuration from all
// available sources. Earlier sources take precedence because mergo only fills
// fields that are still zero:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
