// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/bytesforge/laano-sync/internal/cloud"
	"github.com/bytesforge/laano-sync/internal/logger"
	"github.com/bytesforge/laano-sync/internal/store"
	"github.com/bytesforge/laano-sync/models"
)

// SyncItem reconciles one collection between local storage and the cloud.
// A value is built per run and not reused: it accumulates upload/download
// counters and stamps the durable result log with the run's start time.
type SyncItem[T models.Item] struct {
	local  store.LocalItemStore[T]
	remote cloud.CollectionAdapter[T]
	notify NotificationSink
	action string

	uploadToEmpty bool
	protectLocal  bool
	started       int64

	uploaded   int64
	downloaded int64
}

func NewSyncItem[T models.Item](
	local store.LocalItemStore[T],
	remote cloud.CollectionAdapter[T],
	notify NotificationSink,
	action string,
	uploadToEmpty bool,
	protectLocal bool,
	started int64,
) *SyncItem[T] {
	return &SyncItem[T]{
		local:         local,
		remote:        remote,
		notify:        notify,
		action:        action,
		uploadToEmpty: uploadToEmpty,
		protectLocal:  protectLocal,
		started:       started,
	}
}

// Sync runs one collection pass. The aggregate collection ETag gates the run:
// if it cannot be fetched, no local state is touched. An unchanged aggregate
// takes the fast path over pending local records only; otherwise the full
// local set is resolved against the remote listing, record by record.
func (s *SyncItem[T]) Sync(ctx context.Context) *models.ItemResult {
	log := logger.FromContext(ctx)
	result := models.NewItemResult(models.StatusFailsCount)

	eTag, err := s.remote.CollectionETag(ctx)
	if err != nil {
		log.Err(err).Str("func", "SyncItem.Sync").Str("action", s.action).
			Msg("cloud collection is not ready")
		return models.NewItemResult(models.StatusSourceNotReady)
	}

	changed, err := s.remote.IsChanged(ctx, eTag)
	if err != nil {
		log.Err(err).Str("func", "SyncItem.Sync").Str("action", s.action).
			Msg("last synced etag is unreadable")
		return models.NewItemResult(models.StatusDBAccessError)
	}

	if changed {
		if fatal := s.fullPass(ctx, result); fatal != nil {
			return fatal
		}
	} else {
		items, localErr := s.local.Unsynced(ctx)
		if localErr != nil {
			log.Err(localErr).Str("func", "SyncItem.Sync").Str("action", s.action).
				Msg("unsynced records are unreadable")
			return models.NewItemResult(models.StatusDBAccessError)
		}
		for _, item := range items {
			// nothing moved remotely, so the record's own cached eTag
			// still names the cloud object version
			s.syncItem(ctx, result, item, item.SyncState().ETag())
		}
	}

	if result.IsSuccess() {
		if err = s.remote.UpdateLastSyncedETag(ctx, eTag); err != nil {
			log.Err(err).Str("func", "SyncItem.Sync").Str("action", s.action).
				Msg("new collection etag was not persisted")
			result.IncFailsCount()
		}
	}

	if s.uploaded > 0 {
		s.notify.Broadcast(s.action, StatusUploaded, "", s.uploaded)
	}
	if s.downloaded > 0 {
		s.notify.Broadcast(s.action, StatusDownloaded, "", s.downloaded)
	}

	return result
}

// fullPass resolves every local record against the remote listing and then
// downloads the remote-only ids. Returns a non-nil fatal result when the pass
// could not run at all.
func (s *SyncItem[T]) fullPass(ctx context.Context, result *models.ItemResult) *models.ItemResult {
	log := logger.FromContext(ctx)

	cloudMap, err := s.remote.IDETagMap(ctx)
	if err != nil {
		log.Err(err).Str("func", "SyncItem.fullPass").Str("action", s.action).
			Msg("cloud collection listing failed")
		return models.NewItemResult(models.StatusSourceNotReady)
	}

	if len(cloudMap) == 0 && s.uploadToEmpty {
		reset, resetErr := s.local.ResetSyncState(ctx)
		if resetErr != nil {
			log.Err(resetErr).Str("func", "SyncItem.fullPass").Str("action", s.action).
				Msg("sync state reset failed")
			return models.NewItemResult(models.StatusDBAccessError)
		}
		if reset > 0 {
			log.Info().Str("func", "SyncItem.fullPass").Str("action", s.action).
				Int64("records", reset).
				Msg("remote collection is empty, re-uploading everything")
		}
	}

	items, err := s.local.All(ctx)
	if err != nil {
		log.Err(err).Str("func", "SyncItem.fullPass").Str("action", s.action).
			Msg("local records are unreadable")
		return models.NewItemResult(models.StatusDBAccessError)
	}

	local := make(map[string]struct{}, len(items))
	for _, item := range items {
		local[item.ItemID()] = struct{}{}
		s.syncItem(ctx, result, item, cloudMap[item.ItemID()])
	}

	for id := range cloudMap {
		if _, ok := local[id]; !ok {
			s.download(ctx, result, id)
		}
	}

	return nil
}

// syncItem resolves one local record against the eTag the remote listing
// reports for its id ("" when the id is absent remotely).
func (s *SyncItem[T]) syncItem(ctx context.Context, result *models.ItemResult, item T, cloudETag string) {
	state := item.SyncState()
	if state.IsConflicted() {
		// parked until the user resolves it
		return
	}

	switch itemETag := state.ETag(); {
	case itemETag == "":
		// never synced
		if state.IsDeleted() {
			s.deleteLocal(ctx, result, item)
		} else {
			s.upload(ctx, result, item)
		}

	case itemETag == cloudETag:
		switch {
		case state.IsSynced():
			// both sides untouched
		case state.IsDeleted():
			s.deleteRemote(ctx, result, item)
		case !state.IsDuplicated():
			s.upload(ctx, result, item)
		}

	case cloudETag == "":
		// the cloud object vanished
		switch {
		case state.IsSynced():
			if s.protectLocal {
				s.markConflicted(ctx, result, item, models.StateConflictedUpdate)
			} else {
				s.deleteLocal(ctx, result, item)
			}
		case state.IsDeleted():
			s.deleteLocal(ctx, result, item)
		default:
			s.markConflicted(ctx, result, item, models.StateConflictedUpdate)
		}

	default:
		s.resolveDiverged(ctx, result, item)
	}
}

// resolveDiverged handles a record whose cached eTag no longer matches the
// remote object: the cloud copy is fetched and compared before deciding.
func (s *SyncItem[T]) resolveDiverged(ctx context.Context, result *models.ItemResult, item T) {
	state := item.SyncState()
	id := item.ItemID()

	downloaded, err := s.remote.Download(ctx, id)
	if err != nil {
		s.fail(ctx, result, id, err)
		return
	}

	switch {
	case state.IsSynced() && !state.IsDeleted():
		// local copy untouched since the last run: the cloud simply wins
		s.saveDownloaded(ctx, result, downloaded, true)

	case downloaded.ContentEquals(item):
		// same content on both sides, only the version marker moved
		if state.IsDeleted() {
			s.deleteRemote(ctx, result, item)
			return
		}
		next := models.NewSyncStateFromWithETag(state, downloaded.SyncState().ETag(), models.StateSynced)
		s.applyState(ctx, result, item, next, models.ResultSynced)

	case state.IsDeleted():
		s.markConflicted(ctx, result, item, models.StateConflictedDelete)

	default:
		s.markConflicted(ctx, result, item, models.StateConflictedUpdate)
	}
}

func (s *SyncItem[T]) upload(ctx context.Context, result *models.ItemResult, item T) {
	outcome, err := s.remote.Upload(ctx, item)
	if err != nil {
		s.fail(ctx, result, item.ItemID(), err)
		return
	}
	if outcome.IsSyncConflict() {
		s.markConflicted(ctx, result, item, models.StateConflictedUpdate)
		return
	}

	next := models.NewSyncStateFromWithETag(item.SyncState(), outcome.ETag, models.StateSynced)
	if s.applyState(ctx, result, item, next, models.ResultUploaded) {
		s.uploaded++
	}
}

// download fetches a record that exists only remotely and saves it locally.
func (s *SyncItem[T]) download(ctx context.Context, result *models.ItemResult, id string) {
	item, err := s.remote.Download(ctx, id)
	if err != nil {
		if cloud.IsNotFound(err) {
			// vanished between the listing and the fetch; the next run settles it
			return
		}
		s.fail(ctx, result, id, err)
		return
	}

	s.saveDownloaded(ctx, result, item, false)
}

// saveDownloaded persists a freshly downloaded record. With overwrite the
// existing local copy is replaced; otherwise an id collision falls back to a
// duplicate-conflict save.
func (s *SyncItem[T]) saveDownloaded(ctx context.Context, result *models.ItemResult, item T, overwrite bool) {
	id := item.ItemID()

	if overwrite {
		if _, err := s.local.Delete(ctx, id); err != nil {
			s.fail(ctx, result, id, err)
			return
		}
	}

	_, err := s.local.Save(ctx, item)
	switch {
	case err == nil:
		s.logResult(ctx, id, item.RelatedID(), models.ResultDownloaded)
		s.downloaded++
		if overwrite {
			s.notify.Broadcast(s.action, StatusUpdated, id, 1)
		} else {
			s.notify.Broadcast(s.action, StatusCreated, id, 1)
		}

	case errors.Is(err, store.ErrConstraint):
		if _, dupErr := s.local.SaveDuplicated(ctx, item); dupErr != nil {
			s.fail(ctx, result, id, dupErr)
			return
		}
		s.logResult(ctx, id, item.RelatedID(), models.ResultConflict)
		s.downloaded++
		s.notify.Broadcast(s.action, StatusCreated, id, 1)

	default:
		s.fail(ctx, result, id, err)
	}
}

func (s *SyncItem[T]) deleteLocal(ctx context.Context, result *models.ItemResult, item T) {
	id := item.ItemID()

	ok, err := s.local.Delete(ctx, id)
	if err != nil {
		s.fail(ctx, result, id, err)
		return
	}

	s.logResult(ctx, id, item.RelatedID(), models.ResultDeleted)
	if ok {
		s.notify.Broadcast(s.action, StatusDeleted, id, 1)
	}
}

// deleteRemote removes the cloud object and, when that sticks, the local
// record. A lost race parks the record as a delete conflict instead.
func (s *SyncItem[T]) deleteRemote(ctx context.Context, result *models.ItemResult, item T) {
	outcome, err := s.remote.Delete(ctx, item.ItemID())
	if err != nil {
		s.fail(ctx, result, item.ItemID(), err)
		return
	}
	if outcome.IsSyncConflict() {
		s.markConflicted(ctx, result, item, models.StateConflictedDelete)
		return
	}

	s.deleteLocal(ctx, result, item)
}

func (s *SyncItem[T]) markConflicted(ctx context.Context, result *models.ItemResult, item T, target models.State) {
	next := models.NewSyncStateFrom(item.SyncState(), target)
	s.applyState(ctx, result, item, next, models.ResultConflict)
}

// applyState replaces the record's sync state and writes the result log entry.
func (s *SyncItem[T]) applyState(ctx context.Context, result *models.ItemResult, item T, state models.SyncState, kind models.ResultKind) bool {
	id := item.ItemID()

	ok, err := s.local.Update(ctx, id, state)
	if err != nil {
		s.fail(ctx, result, id, err)
		return false
	}
	if !ok {
		s.fail(ctx, result, id, fmt.Errorf("record %s vanished during the run", id))
		return false
	}

	s.logResult(ctx, id, item.RelatedID(), kind)
	return true
}

// logResult appends the durable log entry of one outcome, plus a RELATED
// marker for the record's relation so its view can refresh too. Log writes are
// best effort: the state change itself already happened.
func (s *SyncItem[T]) logResult(ctx context.Context, id, relatedID string, kind models.ResultKind) {
	log := logger.FromContext(ctx)

	if err := s.local.LogSyncResult(ctx, s.started, id, kind); err != nil {
		log.Err(err).Str("func", "SyncItem.logResult").Str("action", s.action).
			Str("id", id).
			Msg("sync result entry was not written")
	}
	if relatedID == "" {
		return
	}
	if err := s.local.LogSyncResult(ctx, s.started, relatedID, models.ResultRelated); err != nil {
		log.Err(err).Str("func", "SyncItem.logResult").Str("action", s.action).
			Str("id", relatedID).
			Msg("related sync result entry was not written")
	}
}

func (s *SyncItem[T]) fail(ctx context.Context, result *models.ItemResult, id string, err error) {
	logger.FromContext(ctx).Err(err).Str("func", "SyncItem.fail").Str("action", s.action).
		Str("id", id).
		Msg("record was not synchronized")

	result.IncFailsCount()

	if logErr := s.local.LogSyncResult(ctx, s.started, id, models.ResultError); logErr != nil {
		logger.FromContext(ctx).Err(logErr).Str("func", "SyncItem.fail").Str("action", s.action).
			Str("id", id).
			Msg("error entry was not written")
	}
}
