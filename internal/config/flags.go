// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/pos-sync/models"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// BranchIDList is a comma separated list of branch ids.
// It implements the flag.Value interface.
type BranchIDList []int64

// ParseFlags parses all configuration flags from flag.CommandLine.
//
// Flags:
//
//	-a status API address in format [host]:[port]
//	-adapter local data service base URL
//	-d ledger database DSN
//	-c/-config json file path with configs
//	-type app type (BACK_OFFICE or HEAD_OFFICE)
//	-standalone run without an online counterpart
//	-branch-id branch id served by a back office
//	-branch-ids comma separated branch ids aggregated by a head office
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-initialize-interval initializer cadence (back office)
//	-head-office-initialize-interval initializer cadence (head office)
//	-fetch-ids-interval id fetcher cadence
//	-upload-interval uploader cadence
//	-log-file log file path
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var branchIDs BranchIDList
	var adapterAddress string
	var databaseDSN string
	var jsonConfigPath string
	var appType string
	var standalone bool
	var branchID int64
	var requestTimeout time.Duration
	var initializeInterval, headOfficeInitializeInterval time.Duration
	var fetchIDsInterval, uploadInterval time.Duration
	var logFile string

	flag.Var(&serverAddress, "a", "Status API net address host:port")
	flag.Var(&branchIDs, "branch-ids", "Comma separated branch ids (head office)")
	flag.StringVar(&adapterAddress, "adapter", "", "Local data service base URL")
	flag.StringVar(&databaseDSN, "d", "", "Ledger database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&appType, "type", "", "App type: BACK_OFFICE or HEAD_OFFICE")
	flag.BoolVar(&standalone, standaloneFlag, false, "Run without an online counterpart")
	flag.Int64Var(&branchID, "branch-id", 0, "Branch id (back office)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&initializeInterval, "initialize-interval", 0, "Initializer cadence (back office)")
	flag.DurationVar(&headOfficeInitializeInterval, "head-office-initialize-interval", 0, "Initializer cadence (head office)")
	flag.DurationVar(&fetchIDsInterval, "fetch-ids-interval", 0, "ID fetcher cadence")
	flag.DurationVar(&uploadInterval, "upload-interval", 0, "Uploader cadence")
	flag.StringVar(&logFile, "log-file", "", "Log file path")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			Type:       models.AppType(strings.ToUpper(appType)),
			Standalone: standalone,
			BranchID:   branchID,
			BranchIDs:  branchIDs,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress,
			RequestTimeout: requestTimeout,
		},
		Server: Server{
			HTTPAddress: serverAddress.String(),
		},
		Workers: Workers{
			InitializeInterval:           initializeInterval,
			HeadOfficeInitializeInterval: headOfficeInitializeInterval,
			FetchIDsInterval:             fetchIDsInterval,
			UploadInterval:               uploadInterval,
		},
		LogFile:      logFile,
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

// String joins the ids with commas.
func (l *BranchIDList) String() string {
	parts := make([]string, len(*l))
	for i, id := range *l {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return strings.Join(parts, ",")
}

// Set parses a comma separated list of positive branch ids.
func (l *BranchIDList) Set(s string) error {
	ids := make(BranchIDList, 0)
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return err
		}
		if id < 1 {
			return errors.New("branch id is a positive integer")
		}
		ids = append(ids, id)
	}

	*l = ids
	return nil
}
