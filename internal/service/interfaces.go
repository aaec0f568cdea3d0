// SPDX-License-Identifier: Apache-2.0

// Package service reconciles the local collections against the cloud store.
// SyncItem runs one collection pass, the orchestrator sequences the three
// collections and settles the terminal status of a run.
package service

import (
	"context"

	"github.com/bytesforge/laano-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// SyncAdapter runs one full synchronization and returns its terminal status.
type SyncAdapter interface {
	Sync(ctx context.Context) (models.SyncStatus, error)
}

// NotificationSink receives sync progress events and failure alerts.
type NotificationSink interface {
	// Broadcast publishes one progress event. ID and count are zero for
	// start/stop markers.
	Broadcast(action string, status Status, id string, count int64)

	// NotifyFailure raises a user-facing alert about a failed run.
	NotifyFailure(title, text string)
}
