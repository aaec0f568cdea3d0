package cloud

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bytesforge/laano-sync/internal/config"
	"github.com/bytesforge/laano-sync/internal/logger"
	"github.com/bytesforge/laano-sync/internal/store"
	"github.com/bytesforge/laano-sync/models"
)

// fakeSettings is an in-memory stand-in for the settings repository.
type fakeSettings struct {
	eTags  map[string]string
	status models.SyncStatus
	times  map[string]int64
}

func newFakeSettings() *fakeSettings {
	return &fakeSettings{eTags: map[string]string{}, times: map[string]int64{}}
}

func (f *fakeSettings) LastSyncedETag(_ context.Context, collection string) (string, error) {
	return f.eTags[collection], nil
}

func (f *fakeSettings) SetLastSyncedETag(_ context.Context, collection, eTag string) error {
	f.eTags[collection] = eTag
	return nil
}

func (f *fakeSettings) SyncStatus(context.Context) (models.SyncStatus, error) {
	return f.status, nil
}

func (f *fakeSettings) SetSyncStatus(_ context.Context, status models.SyncStatus) error {
	f.status = status
	return nil
}

func (f *fakeSettings) LastSyncTime(_ context.Context, collection string) (int64, error) {
	return f.times[collection], nil
}

func (f *fakeSettings) UpdateLastSyncTime(_ context.Context, collection string, at int64) error {
	f.times[collection] = at
	return nil
}

var _ store.SettingsRepository = (*fakeSettings)(nil)

func newTestAdapter(t *testing.T, handler http.Handler) (*WebDAVAdapter[models.Link], *fakeSettings) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := config.Cloud{
		BaseURL:        srv.URL,
		Username:       "alice",
		AppPassword:    "secret",
		Directory:      "/.laano",
		RequestTimeout: 5 * time.Second,
	}

	client, err := NewClient(cfg, "test")
	require.NoError(t, err)

	settings := newFakeSettings()
	adapter := NewWebDAVAdapter(client, cfg, store.CollectionLinks, models.LinkFromJSON, settings, logger.Nop())
	return adapter, settings
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "scheme kept", in: "https://cloud.example.com/dav/", want: "https://cloud.example.com/dav"},
		{name: "scheme added", in: "cloud.example.com", want: "https://cloud.example.com"},
		{name: "empty", in: "  ", wantErr: true},
		{name: "no host", in: "https://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeETag(t *testing.T) {
	assert.Equal(t, "abc", normalizeETag(`"abc"`))
	assert.Equal(t, "abc", normalizeETag(`W/"abc"`))
	assert.Equal(t, "abc", normalizeETag("abc"))
	assert.Empty(t, normalizeETag(""))
}

func TestCollectionETag(t *testing.T) {
	adapter, _ := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodHead, r.Method)
		assert.Equal(t, "/.laano/links/", r.URL.Path)

		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "alice", user)
		assert.Equal(t, "secret", pass)

		w.Header().Set("ETag", `"agg-1"`)
		w.WriteHeader(http.StatusOK)
	}))

	eTag, err := adapter.CollectionETag(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "agg-1", eTag)
}

func TestCollectionETag_MissingHeader(t *testing.T) {
	adapter, _ := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	_, err := adapter.CollectionETag(context.Background())
	assert.ErrorIs(t, err, ErrSourceNotReady)
}

func TestCollectionETag_ServerDown(t *testing.T) {
	adapter, _ := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))

	_, err := adapter.CollectionETag(context.Background())
	assert.ErrorIs(t, err, ErrSourceNotReady)
}

func TestIsChanged(t *testing.T) {
	adapter, settings := newTestAdapter(t, http.NotFoundHandler())
	ctx := context.Background()

	// never synced: everything counts as changed
	changed, err := adapter.IsChanged(ctx, "agg-1")
	require.NoError(t, err)
	assert.True(t, changed)

	require.NoError(t, adapter.UpdateLastSyncedETag(ctx, "agg-1"))
	assert.Equal(t, "agg-1", settings.eTags[store.CollectionLinks])

	changed, err = adapter.IsChanged(ctx, "agg-1")
	require.NoError(t, err)
	assert.False(t, changed)

	changed, err = adapter.IsChanged(ctx, "agg-2")
	require.NoError(t, err)
	assert.True(t, changed)
}

func TestIDETagMap(t *testing.T) {
	adapter, _ := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))

		_ = json.NewEncoder(w).Encode(listing{Files: []fileEntry{
			{Name: "id-1.json", ETag: `"e1"`},
			{Name: "id-2.json", ETag: "e2"},
			{Name: "README.txt", ETag: "ignored"},
		}})
	}))

	m, err := adapter.IDETagMap(context.Background())
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"id-1": "e1", "id-2": "e2"}, m)
}

func TestDownload(t *testing.T) {
	link := models.Link{ID: "id-1", URL: "http://example.com", Name: "example"}

	adapter, _ := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/.laano/links/id-1.json", r.URL.Path)

		w.Header().Set("ETag", `"obj-7"`)
		data, _ := json.Marshal(link)
		_, _ = w.Write(data)
	}))

	got, err := adapter.Download(context.Background(), "id-1")
	require.NoError(t, err)

	assert.True(t, link.ContentEquals(got))
	assert.True(t, got.State.IsSynced())
	assert.Equal(t, "obj-7", got.State.ETag())
}

func TestDownload_NotFound(t *testing.T) {
	adapter, _ := newTestAdapter(t, http.NotFoundHandler())

	_, err := adapter.Download(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.True(t, IsNotFound(err))
}

func TestDownload_IDMismatch(t *testing.T) {
	adapter, _ := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		data, _ := json.Marshal(models.Link{ID: "other", URL: "http://x"})
		_, _ = w.Write(data)
	}))

	_, err := adapter.Download(context.Background(), "id-1")
	assert.ErrorContains(t, err, "id mismatch")
}

func TestUpload_NewRecord(t *testing.T) {
	adapter, _ := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/.laano/links/id-1.json", r.URL.Path)
		// a never-synced record must not overwrite an existing object
		assert.Equal(t, "*", r.Header.Get("If-None-Match"))
		assert.Empty(t, r.Header.Get("If-Match"))

		w.Header().Set("ETag", `"new-etag"`)
		w.WriteHeader(http.StatusCreated)
	}))

	outcome, err := adapter.Upload(context.Background(), models.Link{ID: "id-1", URL: "http://x"})
	require.NoError(t, err)

	assert.True(t, outcome.IsOK())
	assert.Equal(t, "new-etag", outcome.ETag)
}

func TestUpload_KnownRecordSendsIfMatch(t *testing.T) {
	adapter, _ := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, `"old-etag"`, r.Header.Get("If-Match"))

		w.Header().Set("ETag", `"next-etag"`)
		w.WriteHeader(http.StatusOK)
	}))

	item := models.Link{
		ID: "id-1", URL: "http://x",
		State: models.NewSyncStateWithETag("old-etag", models.StateSynced),
	}

	outcome, err := adapter.Upload(context.Background(), item)
	require.NoError(t, err)
	assert.Equal(t, "next-etag", outcome.ETag)
}

func TestUpload_LostRace(t *testing.T) {
	adapter, _ := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusPreconditionFailed)
	}))

	outcome, err := adapter.Upload(context.Background(), models.Link{ID: "id-1", URL: "http://x"})
	require.NoError(t, err, "a lost race is an outcome, not an error")
	assert.True(t, outcome.IsSyncConflict())
}

func TestUpload_ServerError(t *testing.T) {
	adapter, _ := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	outcome, err := adapter.Upload(context.Background(), models.Link{ID: "id-1", URL: "http://x"})
	assert.ErrorIs(t, err, ErrServerError)
	assert.Equal(t, OutcomeFailed, outcome.Code)
}

func TestDelete(t *testing.T) {
	adapter, _ := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	}))

	outcome, err := adapter.Delete(context.Background(), "id-1")
	require.NoError(t, err)
	assert.True(t, outcome.IsOK())
}

func TestDelete_AlreadyGone(t *testing.T) {
	adapter, _ := newTestAdapter(t, http.NotFoundHandler())

	outcome, err := adapter.Delete(context.Background(), "missing")
	require.NoError(t, err)
	assert.True(t, outcome.IsOK())
}
