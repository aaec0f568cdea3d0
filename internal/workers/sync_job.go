// SPDX-License-Identifier: Apache-2.0

// Package workers hosts the background jobs of the daemon.
package workers

import (
	"context"
	"sync"
	"time"

	"github.com/bytesforge/laano-sync/internal/logger"
	"github.com/bytesforge/laano-sync/internal/service"
)

const defaultSyncInterval = 15 * time.Minute

// SyncJob triggers a full synchronization on a ticker. Runs are single
// flight: a tick arriving while a pass is still going is skipped, never
// queued up behind it. The job is idle until Start is called.
type SyncJob struct {
	sync   service.SyncAdapter
	logger *logger.Logger

	mu      sync.Mutex
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	running bool
}

func NewSyncJob(sync service.SyncAdapter, logger *logger.Logger) *SyncJob {
	return &SyncJob{sync: sync, logger: logger}
}

// Start stops any previously running job, then launches a goroutine that
// syncs every interval. Zero or negative intervals fall back to the default.
// The goroutine exits when ctx is cancelled or Stop is called.
func (j *SyncJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultSyncInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.runOnce(jobCtx)
			}
		}
	}()
}

// RunNow triggers one pass immediately, e.g. right after the daemon started.
// Skipped when a pass is already going.
func (j *SyncJob) RunNow(ctx context.Context) {
	j.runOnce(ctx)
}

func (j *SyncJob) runOnce(ctx context.Context) {
	j.mu.Lock()
	if j.running {
		j.mu.Unlock()
		j.logger.Debug().Str("func", "SyncJob.runOnce").
			Msg("previous pass still going, tick skipped")
		return
	}
	j.running = true
	j.mu.Unlock()

	defer func() {
		j.mu.Lock()
		j.running = false
		j.mu.Unlock()
	}()

	if _, err := j.sync.Sync(ctx); err != nil {
		j.logger.Err(err).Str("func", "SyncJob.runOnce").Msg("periodic sync failed")
	}
}

// Stop cancels the background goroutine and blocks until it exited. A no-op
// when the job is not running.
func (j *SyncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
