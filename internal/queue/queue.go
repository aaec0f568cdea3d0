// SPDX-License-Identifier: Apache-2.0

// Package queue serializes ancillary remote calls (credential checks, server
// probes) through a single background worker, so at most one such call is in
// flight regardless of caller concurrency.
package queue

import (
	"context"
	"errors"
	"sync"

	"github.com/bytesforge/laano-sync/internal/logger"
	"github.com/bytesforge/laano-sync/internal/utils"
)

// ErrClosed is returned by operations submitted after Close.
var ErrClosed = errors.New("operation queue is closed")

// Target identifies the remote endpoint an operation runs against. Two
// operations with equal targets reuse the worker's cached client.
type Target struct {
	Account   string
	ServerURL string
}

// Operation is one serialized remote call.
type Operation interface {
	Target() Target
	Run(ctx context.Context, client *utils.HTTPClient) (any, error)
}

// ClientFactory builds an authenticated client for a target. The worker calls
// it whenever the target differs from the cached one.
type ClientFactory func(target Target) (*utils.HTTPClient, error)

// Handle is the future of a submitted operation.
type Handle struct {
	done  chan struct{}
	value any
	err   error
}

// Wait blocks until the operation completed or ctx is done.
func (h *Handle) Wait(ctx context.Context) (any, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-h.done:
		return h.value, h.err
	}
}

type task struct {
	op     Operation
	handle *Handle // nil for fire-and-forget
}

// RemoteOperationQueue runs operations one at a time in FIFO order on a
// dedicated worker goroutine. Every enqueue schedules a drain tick, so
// fire-and-forget operations can never stall behind an idle queue.
type RemoteOperationQueue struct {
	factory ClientFactory
	logger  *logger.Logger

	mu     sync.Mutex
	tasks  []task
	closed bool

	wake chan struct{}
	done chan struct{}
}

func NewRemoteOperationQueue(factory ClientFactory, logger *logger.Logger) *RemoteOperationQueue {
	q := &RemoteOperationQueue{
		factory: factory,
		logger:  logger,
		wake:    make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
	go q.worker()
	return q
}

// Submit enqueues the operation and returns a handle the caller can await.
func (q *RemoteOperationQueue) Submit(op Operation) *Handle {
	h := &Handle{done: make(chan struct{})}
	if !q.push(task{op: op, handle: h}) {
		h.err = ErrClosed
		close(h.done)
	}
	return h
}

// Enqueue runs the operation fire-and-forget: it is still drained and
// executed, only its result goes nowhere but the log.
func (q *RemoteOperationQueue) Enqueue(op Operation) {
	if !q.push(task{op: op}) {
		q.logger.Warn().Str("func", "RemoteOperationQueue.Enqueue").
			Msg("operation dropped, queue is closed")
	}
}

// Close stops the worker after the pending operations drained and blocks
// until it exited. Safe to call twice.
func (q *RemoteOperationQueue) Close() {
	q.mu.Lock()
	alreadyClosed := q.closed
	q.closed = true
	q.mu.Unlock()

	if !alreadyClosed {
		q.tick()
	}
	<-q.done
}

func (q *RemoteOperationQueue) push(t task) bool {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return false
	}
	q.tasks = append(q.tasks, t)
	q.mu.Unlock()

	q.tick()
	return true
}

// tick wakes the worker; a pending tick coalesces with this one.
func (q *RemoteOperationQueue) tick() {
	select {
	case q.wake <- struct{}{}:
	default:
	}
}

func (q *RemoteOperationQueue) next() (task, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.tasks) == 0 {
		return task{}, false
	}
	t := q.tasks[0]
	q.tasks = q.tasks[1:]
	return t, true
}

func (q *RemoteOperationQueue) idleAndClosed() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.closed && len(q.tasks) == 0
}

func (q *RemoteOperationQueue) worker() {
	defer close(q.done)

	var (
		client     *utils.HTTPClient
		target     Target
		haveClient bool
	)

	for {
		t, ok := q.next()
		if !ok {
			if q.idleAndClosed() {
				return
			}
			<-q.wake
			continue
		}

		// the cached client is only touched here, on the worker goroutine
		if !haveClient || target != t.op.Target() {
			fresh, err := q.factory(t.op.Target())
			if err != nil {
				haveClient = false
				q.complete(t, nil, err)
				continue
			}
			client, target, haveClient = fresh, t.op.Target(), true
		}

		value, err := t.op.Run(context.Background(), client)
		q.complete(t, value, err)
	}
}

func (q *RemoteOperationQueue) complete(t task, value any, err error) {
	if t.handle != nil {
		t.handle.value = value
		t.handle.err = err
		close(t.handle.done)
		return
	}
	if err != nil {
		q.logger.Warn().Err(err).Str("func", "RemoteOperationQueue.complete").
			Str("account", t.op.Target().Account).
			Msg("fire-and-forget operation failed")
	}
}
