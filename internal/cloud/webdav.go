// SPDX-License-Identifier: Apache-2.0

package cloud

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/bytesforge/laano-sync/internal/config"
	"github.com/bytesforge/laano-sync/internal/logger"
	"github.com/bytesforge/laano-sync/internal/store"
	"github.com/bytesforge/laano-sync/internal/utils"
	"github.com/bytesforge/laano-sync/models"
)

// fileEntry is one element of the JSON directory listing returned by the
// remote store.
type fileEntry struct {
	Name string `json:"name"`
	ETag string `json:"etag"`
}

type listing struct {
	Files []fileEntry `json:"files"`
}

// WebDAVAdapter implements [CollectionAdapter] over a WebDAV-style HTTP
// endpoint: object reads and writes via GET/PUT/DELETE with ETag
// preconditions, directory state via the aggregate ETag header, and the
// listing as JSON.
type WebDAVAdapter[T models.Item] struct {
	client     *utils.HTTPClient
	settings   store.SettingsRepository
	collection string
	dir        string
	decode     models.ItemDecoder[T]
	logger     *logger.Logger
}

// NewClient builds a resty client authenticated against the remote account.
func NewClient(cfg config.Cloud, version string) (*utils.HTTPClient, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid cloud base url: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		SetBasicAuth(cfg.Username, cfg.AppPassword).
		SetHeader("User-Agent", "laano-sync/"+version)

	return client, nil
}

// NewWebDAVAdapter constructs the remote adapter of one collection. The
// collection directory is <cfg.Directory>/<collection>/ relative to the
// account base URL.
func NewWebDAVAdapter[T models.Item](
	client *utils.HTTPClient,
	cfg config.Cloud,
	collection string,
	decode models.ItemDecoder[T],
	settings store.SettingsRepository,
	logger *logger.Logger,
) *WebDAVAdapter[T] {
	dir := "/" + strings.Trim(cfg.Directory, "/") + "/" + collection

	return &WebDAVAdapter[T]{
		client:     client,
		settings:   settings,
		collection: collection,
		dir:        dir,
		decode:     decode,
		logger:     logger,
	}
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// normalizeETag strips the weak prefix and surrounding quotes so values from
// headers and listings compare equal.
func normalizeETag(raw string) string {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "W/")
	return strings.Trim(raw, `"`)
}

func (a *WebDAVAdapter[T]) objectPath(id string) string {
	return a.dir + "/" + url.PathEscape(id) + ".json"
}

// CollectionETag implements [CollectionAdapter].
func (a *WebDAVAdapter[T]) CollectionETag(ctx context.Context) (string, error) {
	log := logger.FromContext(ctx)

	resp, err := a.client.R().SetContext(ctx).Head(a.dir + "/")
	if err != nil {
		log.Err(err).Str("func", "WebDAVAdapter.CollectionETag").Str("collection", a.collection).
			Msg("collection directory unreachable")
		return "", fmt.Errorf("%w: %v", ErrSourceNotReady, err)
	}
	if mapErr := mapHTTPError(resp); mapErr != nil {
		return "", fmt.Errorf("%w: %v", ErrSourceNotReady, mapErr)
	}

	eTag := normalizeETag(resp.Header().Get("ETag"))
	if eTag == "" {
		log.Warn().Str("func", "WebDAVAdapter.CollectionETag").Str("collection", a.collection).
			Msg("collection directory reports no etag")
		return "", fmt.Errorf("%w: missing collection etag", ErrSourceNotReady)
	}

	return eTag, nil
}

// IsChanged implements [CollectionAdapter].
func (a *WebDAVAdapter[T]) IsChanged(ctx context.Context, eTag string) (bool, error) {
	last, err := a.settings.LastSyncedETag(ctx, a.collection)
	if err != nil {
		return false, fmt.Errorf("read last synced etag: %w", err)
	}

	return last == "" || last != eTag, nil
}

// IDETagMap implements [CollectionAdapter].
func (a *WebDAVAdapter[T]) IDETagMap(ctx context.Context) (map[string]string, error) {
	log := logger.FromContext(ctx)

	resp, err := a.client.R().SetContext(ctx).
		SetHeader("Accept", "application/json").
		Get(a.dir + "/")
	if err != nil {
		log.Err(err).Str("func", "WebDAVAdapter.IDETagMap").Str("collection", a.collection).
			Msg("listing request failed")
		return nil, fmt.Errorf("list collection: %w", err)
	}
	if mapErr := mapHTTPError(resp); mapErr != nil {
		return nil, mapErr
	}

	var list listing
	if err = json.Unmarshal(resp.Body(), &list); err != nil {
		return nil, fmt.Errorf("decode collection listing: %w", err)
	}

	m := make(map[string]string, len(list.Files))
	for _, f := range list.Files {
		id, ok := strings.CutSuffix(f.Name, ".json")
		if !ok || id == "" {
			// foreign files in the collection directory are ignored
			continue
		}
		m[id] = normalizeETag(f.ETag)
	}

	return m, nil
}

// Download implements [CollectionAdapter].
func (a *WebDAVAdapter[T]) Download(ctx context.Context, id string) (T, error) {
	log := logger.FromContext(ctx)
	var zero T

	resp, err := a.client.R().SetContext(ctx).Get(a.objectPath(id))
	if err != nil {
		log.Err(err).Str("func", "WebDAVAdapter.Download").Str("collection", a.collection).
			Str("id", id).
			Msg("download request failed")
		return zero, fmt.Errorf("download %s: %w", id, err)
	}
	if mapErr := mapHTTPError(resp); mapErr != nil {
		return zero, mapErr
	}

	eTag := normalizeETag(resp.Header().Get("ETag"))
	state := models.NewSyncStateWithETag(eTag, models.StateSynced)

	item, err := a.decode(resp.Body(), state)
	if err != nil {
		return zero, fmt.Errorf("download %s: %w", id, err)
	}
	if item.ItemID() != id {
		return zero, fmt.Errorf("download %s: document id mismatch (%s)", id, item.ItemID())
	}

	return item, nil
}

// Upload implements [CollectionAdapter]. The record's cached ETag guards the
// write: a known ETag must still match (If-Match), a never-synced record must
// not overwrite an existing object (If-None-Match: *).
func (a *WebDAVAdapter[T]) Upload(ctx context.Context, item T) (Outcome, error) {
	log := logger.FromContext(ctx)

	body, err := json.Marshal(item)
	if err != nil {
		return Outcome{Code: OutcomeFailed}, fmt.Errorf("encode %s: %w", item.ItemID(), err)
	}

	req := a.client.R().SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body)

	if eTag := item.SyncState().ETag(); eTag != "" {
		req.SetHeader("If-Match", `"`+eTag+`"`)
	} else {
		req.SetHeader("If-None-Match", "*")
	}

	resp, err := req.Put(a.objectPath(item.ItemID()))
	if err != nil {
		log.Err(err).Str("func", "WebDAVAdapter.Upload").Str("collection", a.collection).
			Str("id", item.ItemID()).
			Msg("upload request failed")
		return Outcome{Code: OutcomeFailed}, fmt.Errorf("upload %s: %w", item.ItemID(), err)
	}

	if resp.StatusCode() == http.StatusPreconditionFailed || resp.StatusCode() == http.StatusConflict {
		log.Debug().Str("func", "WebDAVAdapter.Upload").Str("collection", a.collection).
			Str("id", item.ItemID()).
			Msg("upload lost a race against another client")
		return Outcome{Code: OutcomeSyncConflict}, nil
	}
	if mapErr := mapHTTPError(resp); mapErr != nil {
		return Outcome{Code: OutcomeFailed}, mapErr
	}

	return Outcome{Code: OutcomeOK, ETag: normalizeETag(resp.Header().Get("ETag"))}, nil
}

// Delete implements [CollectionAdapter].
func (a *WebDAVAdapter[T]) Delete(ctx context.Context, id string) (Outcome, error) {
	log := logger.FromContext(ctx)

	resp, err := a.client.R().SetContext(ctx).Delete(a.objectPath(id))
	if err != nil {
		log.Err(err).Str("func", "WebDAVAdapter.Delete").Str("collection", a.collection).
			Str("id", id).
			Msg("delete request failed")
		return Outcome{Code: OutcomeFailed}, fmt.Errorf("delete %s: %w", id, err)
	}

	// already gone is as good as deleted
	if resp.StatusCode() == http.StatusNotFound {
		return Outcome{Code: OutcomeOK}, nil
	}
	if resp.StatusCode() == http.StatusPreconditionFailed || resp.StatusCode() == http.StatusConflict {
		return Outcome{Code: OutcomeSyncConflict}, nil
	}
	if mapErr := mapHTTPError(resp); mapErr != nil {
		return Outcome{Code: OutcomeFailed}, mapErr
	}

	return Outcome{Code: OutcomeOK}, nil
}

// UpdateLastSyncedETag implements [CollectionAdapter].
func (a *WebDAVAdapter[T]) UpdateLastSyncedETag(ctx context.Context, eTag string) error {
	if err := a.settings.SetLastSyncedETag(ctx, a.collection, eTag); err != nil {
		return fmt.Errorf("persist last synced etag: %w", err)
	}
	return nil
}

// sanity check against interface drift
var _ CollectionAdapter[models.Link] = (*WebDAVAdapter[models.Link])(nil)

// IsNotFound reports whether err marks a vanished remote object.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }
