// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/bytesforge/laano-sync/internal/cloud"
	"github.com/bytesforge/laano-sync/internal/config"
	"github.com/bytesforge/laano-sync/internal/logger"
	"github.com/bytesforge/laano-sync/internal/store"
	"github.com/bytesforge/laano-sync/models"
)

// CloudAdapters bundles the per-collection remote adapters of one account.
type CloudAdapters struct {
	Links     cloud.CollectionAdapter[models.Link]
	Favorites cloud.CollectionAdapter[models.Favorite]
	Notes     cloud.CollectionAdapter[models.Note]
}

// Orchestrator runs full synchronizations: favorites first, then links, then
// notes, so that relation targets exist before the records pointing at them.
type Orchestrator struct {
	storages *store.Storages
	adapters CloudAdapters
	notify   NotificationSink
	cfg      config.Sync
	logger   *logger.Logger

	now func() time.Time
}

func NewOrchestrator(
	storages *store.Storages,
	adapters CloudAdapters,
	notify NotificationSink,
	cfg config.Sync,
	logger *logger.Logger,
) *Orchestrator {
	return &Orchestrator{
		storages: storages,
		adapters: adapters,
		notify:   notify,
		cfg:      cfg,
		logger:   logger,
		now:      time.Now,
	}
}

var _ SyncAdapter = (*Orchestrator)(nil)

// Sync implements [SyncAdapter]. A fatal collection result (local storage
// broken, cloud not ready) skips the remaining collections; item-level
// failures do not. The terminal status of the run is persisted and returned.
func (o *Orchestrator) Sync(ctx context.Context) (models.SyncStatus, error) {
	ctx = o.logger.WithContext(ctx)
	log := logger.FromContext(ctx)

	started := o.now().UnixMilli()

	o.notify.Broadcast(ActionSync, StatusSyncStart, "", 0)
	defer o.notify.Broadcast(ActionSync, StatusSyncStop, "", 0)

	if _, err := o.storages.SyncResults.Cleanup(ctx); err != nil {
		log.Err(err).Str("func", "Orchestrator.Sync").
			Msg("previous sync results were not cleaned up")
	}

	var links, notes *models.ItemResult

	favorites := runCollection(ctx, o, ActionSyncFavorites, o.storages.Favorites, o.adapters.Favorites, started)
	if !favorites.IsFatal() {
		links = runCollection(ctx, o, ActionSyncLinks, o.storages.Links, o.adapters.Links, started)
	}
	if links != nil && !links.IsFatal() {
		notes = runCollection(ctx, o, ActionSyncNotes, o.storages.Notes, o.adapters.Notes, started)
	}

	o.updateLastSyncTimes(ctx, started, links, favorites, notes)
	o.alert(links, favorites, notes)

	status := o.settleStatus(ctx, links, favorites, notes)
	if err := o.storages.Settings.SetSyncStatus(ctx, status); err != nil {
		return status, fmt.Errorf("persist sync status: %w", err)
	}

	log.Info().Str("func", "Orchestrator.Sync").
		Int64("started", started).
		Str("status", status.String()).
		Msg("synchronization finished")

	return status, nil
}

// runCollection executes one collection pass bracketed by its start/stop
// broadcasts. A free function because methods cannot carry type parameters.
func runCollection[T models.Item](
	ctx context.Context,
	o *Orchestrator,
	action string,
	local store.LocalItemStore[T],
	remote cloud.CollectionAdapter[T],
	started int64,
) *models.ItemResult {
	o.notify.Broadcast(action, StatusSyncStart, "", 0)
	defer o.notify.Broadcast(action, StatusSyncStop, "", 0)

	item := NewSyncItem(local, remote, o.notify, action, o.cfg.UploadToEmpty, o.cfg.ProtectLocal, started)
	return item.Sync(ctx)
}

// updateLastSyncTimes records the pass time of every successful collection.
// A successful notes pass also refreshes the links timestamp: notes carry
// link relations, so the links view is effectively revalidated with them.
func (o *Orchestrator) updateLastSyncTimes(ctx context.Context, started int64, links, favorites, notes *models.ItemResult) {
	log := logger.FromContext(ctx)

	set := func(collection string) {
		if err := o.storages.Settings.UpdateLastSyncTime(ctx, collection, started); err != nil {
			log.Err(err).Str("func", "Orchestrator.updateLastSyncTimes").
				Str("collection", collection).
				Msg("last sync time was not persisted")
		}
	}

	if favorites.IsSuccess() {
		set(store.CollectionFavorites)
	}
	if links != nil && links.IsSuccess() {
		set(store.CollectionLinks)
	}
	if notes != nil && notes.IsSuccess() {
		set(store.CollectionNotes)
		set(store.CollectionLinks)
	}
}

// alert raises user-facing failure notifications: one for a fatal condition,
// one summarizing item-level failures.
func (o *Orchestrator) alert(links, favorites, notes *models.ItemResult) {
	switch {
	case anyDBAccessError(links, favorites, notes):
		o.notify.NotifyFailure("Local storage error",
			"Synchronization was interrupted by a database failure")
	case anySourceNotReady(links, favorites, notes):
		o.notify.NotifyFailure("Cloud is not ready",
			"The cloud collections are unreachable or not provisioned")
	}

	if fails := failsCount(links) + failsCount(favorites) + failsCount(notes); fails > 0 {
		o.notify.NotifyFailure("Synchronization failed",
			fmt.Sprintf("%d links, %d favorites, %d notes failed",
				failsCount(links), failsCount(favorites), failsCount(notes)))
	}
}

// settleStatus derives the terminal status of the run. Failures dominate,
// then unresolved conflicts, then leftover unsynced records.
func (o *Orchestrator) settleStatus(ctx context.Context, links, favorites, notes *models.ItemResult) models.SyncStatus {
	log := logger.FromContext(ctx)

	fatal := isFatal(links) || isFatal(favorites) || isFatal(notes)
	fails := failsCount(links) + failsCount(favorites) + failsCount(notes)
	if fatal || fails > 0 {
		return models.SyncStatusError
	}

	conflicted, unsynced, err := o.storageFlags(ctx)
	if err != nil {
		log.Err(err).Str("func", "Orchestrator.settleStatus").
			Msg("post-run storage flags are unreadable")
		return models.SyncStatusError
	}

	switch {
	case conflicted:
		return models.SyncStatusConflict
	case unsynced:
		// a clean run should leave nothing behind
		log.Warn().Str("func", "Orchestrator.settleStatus").
			Msg("run finished without errors but unsynced records remain")
		return models.SyncStatusUnsynced
	default:
		return models.SyncStatusSynced
	}
}

func (o *Orchestrator) storageFlags(ctx context.Context) (conflicted, unsynced bool, err error) {
	type flagStore interface {
		IsConflicted(ctx context.Context) (bool, error)
		IsUnsynced(ctx context.Context) (bool, error)
	}

	for _, st := range []flagStore{o.storages.Links, o.storages.Favorites, o.storages.Notes} {
		c, flagErr := st.IsConflicted(ctx)
		if flagErr != nil {
			return false, false, flagErr
		}
		u, flagErr := st.IsUnsynced(ctx)
		if flagErr != nil {
			return false, false, flagErr
		}
		conflicted = conflicted || c
		unsynced = unsynced || u
	}

	return conflicted, unsynced, nil
}

func isFatal(r *models.ItemResult) bool { return r != nil && r.IsFatal() }

func failsCount(r *models.ItemResult) int {
	if r == nil {
		return 0
	}
	return r.FailsCount()
}

func anyDBAccessError(results ...*models.ItemResult) bool {
	for _, r := range results {
		if r != nil && r.IsDBAccessError() {
			return true
		}
	}
	return false
}

func anySourceNotReady(results ...*models.ItemResult) bool {
	for _, r := range results {
		if r != nil && r.IsSourceNotReady() {
			return true
		}
	}
	return false
}
