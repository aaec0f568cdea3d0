// SPDX-License-Identifier: Apache-2.0

package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bytesforge/laano-sync/internal/cloud"
	"github.com/bytesforge/laano-sync/internal/config"
	"github.com/bytesforge/laano-sync/internal/logger"
	"github.com/bytesforge/laano-sync/internal/mock"
	"github.com/bytesforge/laano-sync/internal/service"
	"github.com/bytesforge/laano-sync/internal/store"
	"github.com/bytesforge/laano-sync/models"
)

type orchestratorFixture struct {
	links     *mock.MockLocalItemStore[models.Link]
	favorites *mock.MockLocalItemStore[models.Favorite]
	notes     *mock.MockLocalItemStore[models.Note]
	results   *mock.MockSyncResultRepository
	settings  *mock.MockSettingsRepository

	linksCloud     *mock.MockCollectionAdapter[models.Link]
	favoritesCloud *mock.MockCollectionAdapter[models.Favorite]
	notesCloud     *mock.MockCollectionAdapter[models.Note]

	sink *captureSink
	orch *service.Orchestrator
}

func newOrchestratorFixture(t *testing.T) *orchestratorFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &orchestratorFixture{
		links:          mock.NewMockLocalItemStore[models.Link](ctrl),
		favorites:      mock.NewMockLocalItemStore[models.Favorite](ctrl),
		notes:          mock.NewMockLocalItemStore[models.Note](ctrl),
		results:        mock.NewMockSyncResultRepository(ctrl),
		settings:       mock.NewMockSettingsRepository(ctrl),
		linksCloud:     mock.NewMockCollectionAdapter[models.Link](ctrl),
		favoritesCloud: mock.NewMockCollectionAdapter[models.Favorite](ctrl),
		notesCloud:     mock.NewMockCollectionAdapter[models.Note](ctrl),
		sink:           &captureSink{},
	}

	storages := &store.Storages{
		Links:       f.links,
		Favorites:   f.favorites,
		Notes:       f.notes,
		SyncResults: f.results,
		Settings:    f.settings,
	}
	adapters := service.CloudAdapters{
		Links:     f.linksCloud,
		Favorites: f.favoritesCloud,
		Notes:     f.notesCloud,
	}
	cfg := config.Sync{UploadToEmpty: true, ProtectLocal: true}

	f.orch = service.NewOrchestrator(storages, adapters, f.sink, cfg, logger.Nop())
	return f
}

// cleanPass arms one collection for an unchanged remote with nothing pending.
func cleanPass[T models.Item](local *mock.MockLocalItemStore[T], remote *mock.MockCollectionAdapter[T]) {
	remote.EXPECT().CollectionETag(gomock.Any()).Return("agg", nil)
	remote.EXPECT().IsChanged(gomock.Any(), "agg").Return(false, nil)
	local.EXPECT().Unsynced(gomock.Any()).Return(nil, nil)
	remote.EXPECT().UpdateLastSyncedETag(gomock.Any(), "agg").Return(nil)
}

func noLeftovers[T models.Item](local *mock.MockLocalItemStore[T]) {
	local.EXPECT().IsConflicted(gomock.Any()).Return(false, nil)
	local.EXPECT().IsUnsynced(gomock.Any()).Return(false, nil)
}

func TestOrchestrator_CleanRun(t *testing.T) {
	f := newOrchestratorFixture(t)
	ctx := context.Background()

	f.results.EXPECT().Cleanup(gomock.Any()).Return(int64(3), nil)

	cleanPass(f.favorites, f.favoritesCloud)
	cleanPass(f.links, f.linksCloud)
	cleanPass(f.notes, f.notesCloud)

	// notes refresh the links timestamp as well
	f.settings.EXPECT().UpdateLastSyncTime(gomock.Any(), store.CollectionFavorites, gomock.Any()).Return(nil)
	f.settings.EXPECT().UpdateLastSyncTime(gomock.Any(), store.CollectionLinks, gomock.Any()).Return(nil).Times(2)
	f.settings.EXPECT().UpdateLastSyncTime(gomock.Any(), store.CollectionNotes, gomock.Any()).Return(nil)

	noLeftovers(f.links)
	noLeftovers(f.favorites)
	noLeftovers(f.notes)

	f.settings.EXPECT().SetSyncStatus(gomock.Any(), models.SyncStatusSynced).Return(nil)

	status, err := f.orch.Sync(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.SyncStatusSynced, status)

	// collections run favorites → links → notes
	var order []string
	for _, e := range f.sink.events {
		if e.Status == service.StatusSyncStart {
			order = append(order, e.Action)
		}
	}
	assert.Equal(t, []string{
		service.ActionSync,
		service.ActionSyncFavorites,
		service.ActionSyncLinks,
		service.ActionSyncNotes,
	}, order)
	assert.Equal(t, service.StatusSyncStop, f.sink.events[len(f.sink.events)-1].Status)
	assert.Empty(t, f.sink.failures)
}

func TestOrchestrator_FatalCloudSkipsRemainingCollections(t *testing.T) {
	f := newOrchestratorFixture(t)

	f.results.EXPECT().Cleanup(gomock.Any()).Return(int64(0), nil)

	// favorites run first and hit an unreachable cloud
	f.favoritesCloud.EXPECT().CollectionETag(gomock.Any()).Return("", cloud.ErrSourceNotReady)

	f.settings.EXPECT().SetSyncStatus(gomock.Any(), models.SyncStatusError).Return(nil)

	status, err := f.orch.Sync(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.SyncStatusError, status)

	require.Len(t, f.sink.failures, 1)
	assert.Contains(t, f.sink.failures[0], "Cloud is not ready")
}

func TestOrchestrator_FatalStorageRaisesStorageAlert(t *testing.T) {
	f := newOrchestratorFixture(t)

	f.results.EXPECT().Cleanup(gomock.Any()).Return(int64(0), nil)

	f.favoritesCloud.EXPECT().CollectionETag(gomock.Any()).Return("agg", nil)
	f.favoritesCloud.EXPECT().IsChanged(gomock.Any(), "agg").Return(false, nil)
	f.favorites.EXPECT().Unsynced(gomock.Any()).Return(nil, errors.New("database is locked"))

	f.settings.EXPECT().SetSyncStatus(gomock.Any(), models.SyncStatusError).Return(nil)

	status, err := f.orch.Sync(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.SyncStatusError, status)

	require.Len(t, f.sink.failures, 1)
	assert.Contains(t, f.sink.failures[0], "Local storage error")
}

func TestOrchestrator_ItemFailuresAreSummarized(t *testing.T) {
	f := newOrchestratorFixture(t)

	f.results.EXPECT().Cleanup(gomock.Any()).Return(int64(0), nil)

	cleanPass(f.favorites, f.favoritesCloud)
	cleanPass(f.notes, f.notesCloud)

	// one link fails to upload
	link := models.Link{ID: "id-1", URL: "http://x", State: models.NewSyncState()}
	f.linksCloud.EXPECT().CollectionETag(gomock.Any()).Return("agg", nil)
	f.linksCloud.EXPECT().IsChanged(gomock.Any(), "agg").Return(false, nil)
	f.links.EXPECT().Unsynced(gomock.Any()).Return([]models.Link{link}, nil)
	f.linksCloud.EXPECT().Upload(gomock.Any(), link).
		Return(cloud.Outcome{Code: cloud.OutcomeFailed}, cloud.ErrServerError)
	f.links.EXPECT().LogSyncResult(gomock.Any(), gomock.Any(), "id-1", models.ResultError).Return(nil)

	f.settings.EXPECT().UpdateLastSyncTime(gomock.Any(), store.CollectionFavorites, gomock.Any()).Return(nil)
	f.settings.EXPECT().UpdateLastSyncTime(gomock.Any(), store.CollectionNotes, gomock.Any()).Return(nil)
	f.settings.EXPECT().UpdateLastSyncTime(gomock.Any(), store.CollectionLinks, gomock.Any()).Return(nil)

	f.settings.EXPECT().SetSyncStatus(gomock.Any(), models.SyncStatusError).Return(nil)

	status, err := f.orch.Sync(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.SyncStatusError, status)

	require.Len(t, f.sink.failures, 1)
	assert.Contains(t, f.sink.failures[0], "1 links, 0 favorites, 0 notes failed")
}

func TestOrchestrator_ConflictsSettleTheStatus(t *testing.T) {
	f := newOrchestratorFixture(t)

	f.results.EXPECT().Cleanup(gomock.Any()).Return(int64(0), nil)

	cleanPass(f.favorites, f.favoritesCloud)
	cleanPass(f.links, f.linksCloud)
	cleanPass(f.notes, f.notesCloud)

	f.settings.EXPECT().UpdateLastSyncTime(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(4)

	f.links.EXPECT().IsConflicted(gomock.Any()).Return(true, nil)
	f.links.EXPECT().IsUnsynced(gomock.Any()).Return(false, nil)
	noLeftovers(f.favorites)
	noLeftovers(f.notes)

	f.settings.EXPECT().SetSyncStatus(gomock.Any(), models.SyncStatusConflict).Return(nil)

	status, err := f.orch.Sync(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.SyncStatusConflict, status)
}

func TestOrchestrator_LeftoverUnsyncedIsAnAnomaly(t *testing.T) {
	f := newOrchestratorFixture(t)

	f.results.EXPECT().Cleanup(gomock.Any()).Return(int64(0), nil)

	cleanPass(f.favorites, f.favoritesCloud)
	cleanPass(f.links, f.linksCloud)
	cleanPass(f.notes, f.notesCloud)

	f.settings.EXPECT().UpdateLastSyncTime(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(4)

	noLeftovers(f.links)
	noLeftovers(f.favorites)
	f.notes.EXPECT().IsConflicted(gomock.Any()).Return(false, nil)
	f.notes.EXPECT().IsUnsynced(gomock.Any()).Return(true, nil)

	f.settings.EXPECT().SetSyncStatus(gomock.Any(), models.SyncStatusUnsynced).Return(nil)

	status, err := f.orch.Sync(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.SyncStatusUnsynced, status)
}

func TestOrchestrator_StatusPersistenceFailureIsReturned(t *testing.T) {
	f := newOrchestratorFixture(t)

	f.results.EXPECT().Cleanup(gomock.Any()).Return(int64(0), nil)

	f.favoritesCloud.EXPECT().CollectionETag(gomock.Any()).Return("", cloud.ErrSourceNotReady)

	f.settings.EXPECT().SetSyncStatus(gomock.Any(), models.SyncStatusError).
		Return(errors.New("database is locked"))

	status, err := f.orch.Sync(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "persist sync status")
	assert.Equal(t, models.SyncStatusError, status)
}

func TestOrchestrator_CleanupFailureDoesNotStopTheRun(t *testing.T) {
	f := newOrchestratorFixture(t)

	f.results.EXPECT().Cleanup(gomock.Any()).Return(int64(0), errors.New("database is locked"))

	cleanPass(f.favorites, f.favoritesCloud)
	cleanPass(f.links, f.linksCloud)
	cleanPass(f.notes, f.notesCloud)

	f.settings.EXPECT().UpdateLastSyncTime(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(4)

	noLeftovers(f.links)
	noLeftovers(f.favorites)
	noLeftovers(f.notes)

	f.settings.EXPECT().SetSyncStatus(gomock.Any(), models.SyncStatusSynced).Return(nil)

	status, err := f.orch.Sync(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.SyncStatusSynced, status)
}
