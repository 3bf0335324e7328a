// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/pos-sync/internal/config"
	"github.com/MKhiriev/pos-sync/internal/handler"
	"github.com/MKhiriev/pos-sync/internal/logger"
	"github.com/MKhiriev/pos-sync/internal/server"
	"github.com/MKhiriev/pos-sync/internal/service"
	"github.com/MKhiriev/pos-sync/internal/workers"
)

const (
	initializerJob = "initializer"
	idFetcherJob   = "id-fetcher"
	uploaderJob    = "uploader"
)

// ErrUploadFailed wraps the error text reported by a failed upload tick.
var ErrUploadFailed = errors.New("upload failed")

type App struct {
	workers *workers.Workers
	// server is nil when no HTTP address is configured.
	server server.Server

	logger *logger.Logger
}

func NewApp(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) (*App, error) {
	logger.Info().Msg("creating new client app...")

	jobs, err := newPollers(services, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("create pollers: %w", err)
	}

	app := &App{
		workers: jobs,
		logger:  logger,
	}

	if cfg.Server.HTTPAddress != "" {
		handlers, err := handler.NewHandlers(services, jobs, cfg.Server, logger)
		if err != nil {
			return nil, fmt.Errorf("create handlers: %w", err)
		}
		if app.server, err = server.NewServer(handlers, cfg.Server, logger); err != nil {
			return nil, fmt.Errorf("create server: %w", err)
		}
	}

	return app, nil
}

// Run starts every poller and the optional HTTP server. It returns once ctx
// is cancelled, SIGINT, SIGTERM or SIGQUIT arrives, or the server fails.
func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return a.workers.Run(gctx)
	})
	if a.server != nil {
		g.Go(func() error {
			return a.server.Run(gctx)
		})
	}

	a.logger.Info().Msg("client app started")
	err := g.Wait()
	a.logger.Info().Msg("client app stopped")

	return err
}

func newPollers(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) (*workers.Workers, error) {
	jobs := workers.NewWorkers()

	initializer, err := workers.NewPoller(
		initializerJob,
		cfg.Workers.InitializeIntervalFor(cfg.App.Type),
		services.Initializer.Initialize,
		logger,
	)
	if err != nil {
		return nil, err
	}
	jobs.Add(initializer)

	fetcher, err := workers.NewPoller(idFetcherJob, cfg.Workers.FetchIDsInterval, services.IDFetcher.FetchIDs, logger)
	if err != nil {
		return nil, err
	}
	jobs.Add(fetcher)

	if services.Uploader == nil {
		logger.Info().Msg("standalone mode: uploader disabled")
		return jobs, nil
	}

	uploader, err := workers.NewPoller(uploaderJob, cfg.Workers.UploadInterval, uploadTask(services.Uploader), logger)
	if err != nil {
		return nil, err
	}
	jobs.Add(uploader)

	return jobs, nil
}

// uploadTask adapts the result-returning uploader to a poller task so failed
// uploads are counted in the job state.
func uploadTask(uploader service.UploaderService) workers.Task {
	return func(ctx context.Context) error {
		result := uploader.Upload(ctx)
		if result.Err != "" {
			return fmt.Errorf("%w: %s", ErrUploadFailed, result.Err)
		}
		return nil
	}
}
