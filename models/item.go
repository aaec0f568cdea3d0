// SPDX-License-Identifier: Apache-2.0

// Package models holds the domain types shared by every layer of laano-sync:
// the closed family of syncable records (Link, Favorite, Note), the
// per-record SyncState machine, and the per-run result accumulators.
package models

import (
	"encoding/json"
	"fmt"
	"slices"
)

// jsonVersion is the container version written into every record document.
const jsonVersion = 1

// Item is the capability surface the sync engine needs from a record.
// The family is closed: Link, Favorite and Note are the only implementations.
//
// ContentEquals compares CONTENT fields only and deliberately ignores sync
// metadata (SyncState, timestamps). The reconciler's false-conflict detection
// depends on this scoping: two copies that converged independently must
// compare equal even though their eTags differ.
type Item interface {
	ItemID() string

	// RelatedID returns the id of a record in another collection this one
	// depends on (a Note's owning Link), or "" if there is none.
	RelatedID() string

	SyncState() SyncState

	ContentEquals(other Item) bool
}

// Link is a stored hyperlink. Notes may reference it via their LinkID.
type Link struct {
	ID       string
	Created  int64 // unix millis
	Updated  int64 // unix millis
	URL      string
	Name     string
	Disabled bool
	Tags     []string
	State    SyncState
}

func (l Link) ItemID() string       { return l.ID }
func (l Link) RelatedID() string    { return "" }
func (l Link) SyncState() SyncState { return l.State }

func (l Link) ContentEquals(other Item) bool {
	o, ok := other.(Link)
	return ok && l.ID == o.ID && l.URL == o.URL && l.Name == o.Name
}

// Favorite is a stored tag filter.
type Favorite struct {
	ID      string
	Created int64
	Updated int64
	Name    string
	AndGate bool
	Tags    []string
	State   SyncState
}

func (f Favorite) ItemID() string       { return f.ID }
func (f Favorite) RelatedID() string    { return "" }
func (f Favorite) SyncState() SyncState { return f.State }

func (f Favorite) ContentEquals(other Item) bool {
	o, ok := other.(Favorite)
	return ok && f.ID == o.ID && f.Name == o.Name && f.AndGate == o.AndGate &&
		slices.Equal(f.Tags, o.Tags)
}

// Note is a free-form text record, optionally bound to a Link.
type Note struct {
	ID      string
	Created int64
	Updated int64
	Note    string
	LinkID  string // "" if the note is unbound
	Tags    []string
	State   SyncState
}

func (n Note) ItemID() string       { return n.ID }
func (n Note) RelatedID() string    { return n.LinkID }
func (n Note) SyncState() SyncState { return n.State }

func (n Note) ContentEquals(other Item) bool {
	o, ok := other.(Note)
	return ok && n.ID == o.ID && n.Note == o.Note
}

// Wire documents. Each record is stored remotely as a single JSON file
// wrapping the content fields in a versioned, kind-named container; sync
// metadata never leaves the local store.

type linkDocument struct {
	ID       string   `json:"id"`
	Created  int64    `json:"created"`
	Updated  int64    `json:"updated"`
	Link     string   `json:"link"`
	Name     string   `json:"name,omitempty"`
	Disabled bool     `json:"disabled"`
	Tags     []string `json:"tags,omitempty"`
}

type favoriteDocument struct {
	ID      string   `json:"id"`
	Created int64    `json:"created"`
	Updated int64    `json:"updated"`
	Name    string   `json:"name"`
	AndGate bool     `json:"and_gate"`
	Tags    []string `json:"tags,omitempty"`
}

type noteDocument struct {
	ID      string   `json:"id"`
	Created int64    `json:"created"`
	Updated int64    `json:"updated"`
	Note    string   `json:"note"`
	LinkID  string   `json:"link_id,omitempty"`
	Tags    []string `json:"tags,omitempty"`
}

type linkContainer struct {
	Version int          `json:"version"`
	Link    linkDocument `json:"link"`
}

type favoriteContainer struct {
	Version  int              `json:"version"`
	Favorite favoriteDocument `json:"favorite"`
}

type noteContainer struct {
	Version int          `json:"version"`
	Note    noteDocument `json:"note"`
}

// MarshalJSON encodes the link as its remote document.
func (l Link) MarshalJSON() ([]byte, error) {
	return json.Marshal(linkContainer{
		Version: jsonVersion,
		Link: linkDocument{
			ID:       l.ID,
			Created:  l.Created,
			Updated:  l.Updated,
			Link:     l.URL,
			Name:     l.Name,
			Disabled: l.Disabled,
			Tags:     l.Tags,
		},
	})
}

// MarshalJSON encodes the favorite as its remote document.
func (f Favorite) MarshalJSON() ([]byte, error) {
	return json.Marshal(favoriteContainer{
		Version: jsonVersion,
		Favorite: favoriteDocument{
			ID:      f.ID,
			Created: f.Created,
			Updated: f.Updated,
			Name:    f.Name,
			AndGate: f.AndGate,
			Tags:    f.Tags,
		},
	})
}

// MarshalJSON encodes the note as its remote document.
func (n Note) MarshalJSON() ([]byte, error) {
	return json.Marshal(noteContainer{
		Version: jsonVersion,
		Note: noteDocument{
			ID:      n.ID,
			Created: n.Created,
			Updated: n.Updated,
			Note:    n.Note,
			LinkID:  n.LinkID,
			Tags:    n.Tags,
		},
	})
}

// ItemDecoder turns a downloaded remote document into a concrete item
// carrying the supplied sync state (normally SYNCED with the file's eTag).
type ItemDecoder[T Item] func(data []byte, state SyncState) (T, error)

// LinkFromJSON decodes a remote link document. Returns an error when the
// document is malformed or carries an empty id.
func LinkFromJSON(data []byte, state SyncState) (Link, error) {
	var c linkContainer
	if err := json.Unmarshal(data, &c); err != nil {
		return Link{}, fmt.Errorf("decode link document: %w", err)
	}
	if c.Link.ID == "" {
		return Link{}, fmt.Errorf("link document has no id")
	}
	return Link{
		ID:       c.Link.ID,
		Created:  c.Link.Created,
		Updated:  c.Link.Updated,
		URL:      c.Link.Link,
		Name:     c.Link.Name,
		Disabled: c.Link.Disabled,
		Tags:     c.Link.Tags,
		State:    state,
	}, nil
}

// FavoriteFromJSON decodes a remote favorite document.
func FavoriteFromJSON(data []byte, state SyncState) (Favorite, error) {
	var c favoriteContainer
	if err := json.Unmarshal(data, &c); err != nil {
		return Favorite{}, fmt.Errorf("decode favorite document: %w", err)
	}
	if c.Favorite.ID == "" {
		return Favorite{}, fmt.Errorf("favorite document has no id")
	}
	return Favorite{
		ID:      c.Favorite.ID,
		Created: c.Favorite.Created,
		Updated: c.Favorite.Updated,
		Name:    c.Favorite.Name,
		AndGate: c.Favorite.AndGate,
		Tags:    c.Favorite.Tags,
		State:   state,
	}, nil
}

// NoteFromJSON decodes a remote note document.
func NoteFromJSON(data []byte, state SyncState) (Note, error) {
	var c noteContainer
	if err := json.Unmarshal(data, &c); err != nil {
		return Note{}, fmt.Errorf("decode note document: %w", err)
	}
	if c.Note.ID == "" {
		return Note{}, fmt.Errorf("note document has no id")
	}
	return Note{
		ID:      c.Note.ID,
		Created: c.Note.Created,
		Updated: c.Note.Updated,
		Note:    c.Note.Note,
		LinkID:  c.Note.LinkID,
		Tags:    c.Note.Tags,
		State:   state,
	}, nil
}
