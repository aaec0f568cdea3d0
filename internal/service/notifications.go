// SPDX-License-Identifier: Apache-2.0

package service

import (
	"sync"

	"github.com/bytesforge/laano-sync/internal/logger"
)

// Actions name the scope of a broadcast: the whole run or one collection pass.
const (
	ActionSync          = "sync"
	ActionSyncLinks     = "sync_links"
	ActionSyncFavorites = "sync_favorites"
	ActionSyncNotes     = "sync_notes"
)

// Status is the event vocabulary of sync broadcasts.
type Status string

const (
	StatusSyncStart  Status = "SYNC_START"
	StatusSyncStop   Status = "SYNC_STOP"
	StatusCreated    Status = "CREATED"
	StatusUpdated    Status = "UPDATED"
	StatusDeleted    Status = "DELETED"
	StatusUploaded   Status = "UPLOADED"
	StatusDownloaded Status = "DOWNLOADED"
	StatusFailure    Status = "FAILURE"
)

// Notification is one sync event delivered to subscribers. ID and Count are
// set for per-record events, Title and Text only for failure alerts.
type Notification struct {
	Action string
	Status Status
	ID     string
	Count  int64
	Title  string
	Text   string
}

// BroadcastNotifications fans sync events out to subscriber channels. Delivery
// is non-blocking: a subscriber that does not keep up loses events rather than
// stalling the run.
type BroadcastNotifications struct {
	mu     sync.RWMutex
	nextID int
	subs   map[int]chan Notification
	logger *logger.Logger
}

func NewBroadcastNotifications(logger *logger.Logger) *BroadcastNotifications {
	return &BroadcastNotifications{
		subs:   make(map[int]chan Notification),
		logger: logger,
	}
}

// Subscribe registers a channel with the given buffer size and returns it
// together with an unsubscribe function. Unsubscribing closes the channel.
func (b *BroadcastNotifications) Subscribe(buffer int) (<-chan Notification, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++

	ch := make(chan Notification, buffer)
	b.subs[id] = ch

	unsubscribe := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if sub, ok := b.subs[id]; ok {
			delete(b.subs, id)
			close(sub)
		}
	}

	return ch, unsubscribe
}

// Broadcast implements [NotificationSink].
func (b *BroadcastNotifications) Broadcast(action string, status Status, id string, count int64) {
	b.publish(Notification{Action: action, Status: status, ID: id, Count: count})
}

// NotifyFailure implements [NotificationSink].
func (b *BroadcastNotifications) NotifyFailure(title, text string) {
	b.logger.Warn().Str("func", "BroadcastNotifications.NotifyFailure").
		Str("title", title).
		Msg(text)

	b.publish(Notification{Action: ActionSync, Status: StatusFailure, Title: title, Text: text})
}

func (b *BroadcastNotifications) publish(n Notification) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, sub := range b.subs {
		select {
		case sub <- n:
		default:
			b.logger.Debug().Str("func", "BroadcastNotifications.publish").
				Str("action", n.Action).Str("status", string(n.Status)).
				Msg("subscriber is not keeping up, event dropped")
		}
	}
}

var _ NotificationSink = (*BroadcastNotifications)(nil)
