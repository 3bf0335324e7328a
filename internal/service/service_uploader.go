// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/pos-sync/internal/adapter"
	"github.com/MKhiriev/pos-sync/internal/config"
	"github.com/MKhiriev/pos-sync/internal/logger"
	"github.com/MKhiriev/pos-sync/models"
)

type uploaderService struct {
	adapter      adapter.DataServiceAdapter
	isBackOffice bool

	logger *logger.Logger
}

func NewUploaderService(dataAdapter adapter.DataServiceAdapter, appCfg config.App, logger *logger.Logger) UploaderService {
	return &uploaderService{
		adapter:      dataAdapter,
		isBackOffice: !appCfg.Type.IsHeadOffice(),
		logger:       logger,
	}
}

// Upload converts transport errors into a failed result. The next tick is the
// retry.
func (s *uploaderService) Upload(ctx context.Context) models.UploadResult {
	result, err := s.adapter.Upload(ctx, models.UploadRequest{IsBackOffice: s.isBackOffice})
	if err != nil {
		s.logger.Warn().Err(err).
			Str("func", "uploaderService.Upload").
			Bool("is_back_office", s.isBackOffice).
			Msg("upload failed, will retry on next tick")
		return models.UploadResult{Uploaded: false, Err: err.Error(), At: time.Now()}
	}

	if result.At.IsZero() {
		result.At = time.Now()
	}
	return result
}
