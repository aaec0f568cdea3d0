// SPDX-License-Identifier: Apache-2.0

// Package app assembles the application from its parts: configuration,
// logging, local storage, cloud adapters, the sync service, and the remote
// operation queue. The CLI commands drive an App; nothing here is global.
package app

import (
	"context"
	"fmt"

	"github.com/bytesforge/laano-sync/internal/cloud"
	"github.com/bytesforge/laano-sync/internal/config"
	"github.com/bytesforge/laano-sync/internal/logger"
	"github.com/bytesforge/laano-sync/internal/queue"
	"github.com/bytesforge/laano-sync/internal/service"
	"github.com/bytesforge/laano-sync/internal/store"
	"github.com/bytesforge/laano-sync/internal/utils"
	"github.com/bytesforge/laano-sync/internal/workers"
	"github.com/bytesforge/laano-sync/models"
)

// App owns every long-lived component of the process.
type App struct {
	Config        *config.StructuredConfig
	Logger        *logger.Logger
	Storages      *store.Storages
	Notifications *service.BroadcastNotifications
	Sync          service.SyncAdapter
	Queue         *queue.RemoteOperationQueue
	Job           *workers.SyncJob
}

// New loads the configuration (flag overrides win over environment, JSON
// file, and defaults) and wires the full component graph.
func New(overrides *config.StructuredConfig) (*App, error) {
	cfg, err := config.Load(overrides)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log := buildLogger(cfg)

	storages, err := store.NewStorages(cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	client, err := cloud.NewClient(cfg.Cloud, cfg.App.Version)
	if err != nil {
		return nil, fmt.Errorf("create cloud client: %w", err)
	}

	adapters := service.CloudAdapters{
		Links:     cloud.NewWebDAVAdapter(client, cfg.Cloud, store.CollectionLinks, models.LinkFromJSON, storages.Settings, log),
		Favorites: cloud.NewWebDAVAdapter(client, cfg.Cloud, store.CollectionFavorites, models.FavoriteFromJSON, storages.Settings, log),
		Notes:     cloud.NewWebDAVAdapter(client, cfg.Cloud, store.CollectionNotes, models.NoteFromJSON, storages.Settings, log),
	}

	notifications := service.NewBroadcastNotifications(log)
	orchestrator := service.NewOrchestrator(storages, adapters, notifications, cfg.Sync, log)

	return &App{
		Config:        cfg,
		Logger:        log,
		Storages:      storages,
		Notifications: notifications,
		Sync:          orchestrator,
		Queue:         queue.NewRemoteOperationQueue(clientFactory(cfg.Cloud, cfg.App.Version), log),
		Job:           workers.NewSyncJob(orchestrator, log),
	}, nil
}

// Close shuts the background pieces down in dependency order.
func (a *App) Close() error {
	a.Job.Stop()
	a.Queue.Close()
	return a.Storages.Close()
}

// Target returns the queue target of the configured account.
func (a *App) Target() queue.Target {
	return queue.Target{
		Account:   a.Config.Cloud.Username,
		ServerURL: a.Config.Cloud.BaseURL,
	}
}

// CheckCredentials runs a serialized credentials probe against the
// configured account.
func (a *App) CheckCredentials(ctx context.Context) (bool, error) {
	value, err := a.Queue.Submit(queue.CheckCredentials{Endpoint: a.Target()}).Wait(ctx)
	if err != nil {
		return false, err
	}
	ok, _ := value.(bool)
	return ok, nil
}

// ServerInfo runs a serialized server-info probe against the configured
// account.
func (a *App) ServerInfo(ctx context.Context) (queue.ServerInfo, error) {
	value, err := a.Queue.Submit(queue.GetServerInfo{Endpoint: a.Target()}).Wait(ctx)
	if err != nil {
		return queue.ServerInfo{}, err
	}
	info, _ := value.(queue.ServerInfo)
	return info, nil
}

func buildLogger(cfg *config.StructuredConfig) *logger.Logger {
	if cfg.Log.File != "" {
		return logger.NewFileLogger("laano-sync", cfg.Log.File, cfg.Log.MaxSizeMB, cfg.Log.MaxBackups)
	}
	return logger.NewLogger("laano-sync")
}

// clientFactory builds authenticated clients for queue targets. The
// configured app password applies; target account and URL override the
// config so a probe can point at a different account of the same server.
func clientFactory(cfg config.Cloud, version string) queue.ClientFactory {
	return func(target queue.Target) (*utils.HTTPClient, error) {
		c := cfg
		if target.ServerURL != "" {
			c.BaseURL = target.ServerURL
		}
		if target.Account != "" {
			c.Username = target.Account
		}
		return cloud.NewClient(c, version)
	}
}
