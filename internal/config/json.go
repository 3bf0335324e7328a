// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/MKhiriev/pos-sync/models"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the JSON file layout.
type StructuredJSONConfig struct {
	App struct {
		Type       string  `json:"type"`
		Standalone *bool   `json:"standalone"`
		BranchID   int64   `json:"branch_id"`
		BranchIDs  []int64 `json:"branch_ids"`
		Version    string  `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Server struct {
		HTTPAddress string `json:"http_address"`
	} `json:"server,omitempty"`

	Workers struct {
		InitializeInterval           Duration `json:"initialize_interval"`
		HeadOfficeInitializeInterval Duration `json:"head_office_initialize_interval"`
		FetchIDsInterval             Duration `json:"fetch_ids_interval"`
		UploadInterval               Duration `json:"upload_interval"`
		ProductIDsLimit              *int     `json:"product_ids_limit"`
		BranchProductIDsLimit        *int     `json:"branch_product_ids_limit"`
		BalanceUpdateLogIDsLimit     *int     `json:"balance_update_log_ids_limit"`
	} `json:"workers,omitempty"`

	LogFile string `json:"log_file"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonCfg, err := readJSON(jsonFilePath)
	if err != nil {
		return nil, err
	}
	return jsonCfg.structured(), nil
}

func readJSON(jsonFilePath string) (*StructuredJSONConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	return &jsonCfg, nil
}

// overrides reports the fields the file set explicitly, zero values included.
func (jsonCfg *StructuredJSONConfig) overrides() layerOverrides {
	return layerOverrides{
		Standalone:               jsonCfg.App.Standalone,
		ProductIDsLimit:          jsonCfg.Workers.ProductIDsLimit,
		BranchProductIDsLimit:    jsonCfg.Workers.BranchProductIDsLimit,
		BalanceUpdateLogIDsLimit: jsonCfg.Workers.BalanceUpdateLogIDsLimit,
	}
}

func (jsonCfg *StructuredJSONConfig) structured() *StructuredConfig {
	cfg := &StructuredConfig{
		App: App{
			Type:       models.AppType(strings.ToUpper(jsonCfg.App.Type)),
			Standalone: deref(jsonCfg.App.Standalone),
			BranchID:   jsonCfg.App.BranchID,
			BranchIDs:  jsonCfg.App.BranchIDs,
			Version:    jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Server: Server{
			HTTPAddress: jsonCfg.Server.HTTPAddress,
		},
		Workers: Workers{
			InitializeInterval:           time.Duration(jsonCfg.Workers.InitializeInterval),
			HeadOfficeInitializeInterval: time.Duration(jsonCfg.Workers.HeadOfficeInitializeInterval),
			FetchIDsInterval:             time.Duration(jsonCfg.Workers.FetchIDsInterval),
			UploadInterval:               time.Duration(jsonCfg.Workers.UploadInterval),
			ProductIDsLimit:              deref(jsonCfg.Workers.ProductIDsLimit),
			BranchProductIDsLimit:        deref(jsonCfg.Workers.BranchProductIDsLimit),
			BalanceUpdateLogIDsLimit:     deref(jsonCfg.Workers.BalanceUpdateLogIDsLimit),
		},
		LogFile:      jsonCfg.LogFile,
		JSONFilePath: "",
	}

	return cfg
}

func deref[T any](v *T) T {
	var zero T
	if v == nil {
		return zero
	}
	return *v
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
