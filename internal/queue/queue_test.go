// SPDX-License-Identifier: Apache-2.0

package queue

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bytesforge/laano-sync/internal/cloud"
	"github.com/bytesforge/laano-sync/internal/logger"
	"github.com/bytesforge/laano-sync/internal/utils"
)

// probe is a scripted operation recording when and with which client it ran.
type probe struct {
	target Target
	run    func(client *utils.HTTPClient) (any, error)
}

func (p *probe) Target() Target { return p.target }

func (p *probe) Run(_ context.Context, client *utils.HTTPClient) (any, error) {
	return p.run(client)
}

func newTestQueue(factory ClientFactory) *RemoteOperationQueue {
	return NewRemoteOperationQueue(factory, logger.Nop())
}

func staticFactory(t *testing.T, counter *int) ClientFactory {
	t.Helper()
	return func(Target) (*utils.HTTPClient, error) {
		if counter != nil {
			*counter++
		}
		return utils.NewHTTPClient(), nil
	}
}

func TestQueue_SubmitDeliversResult(t *testing.T) {
	q := newTestQueue(staticFactory(t, nil))
	defer q.Close()

	op := &probe{
		target: Target{Account: "alice", ServerURL: "https://a"},
		run:    func(*utils.HTTPClient) (any, error) { return 42, nil },
	}

	value, err := q.Submit(op).Wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 42, value)
}

func TestQueue_SubmitDeliversError(t *testing.T) {
	q := newTestQueue(staticFactory(t, nil))
	defer q.Close()

	boom := errors.New("boom")
	op := &probe{
		target: Target{Account: "alice"},
		run:    func(*utils.HTTPClient) (any, error) { return nil, boom },
	}

	_, err := q.Submit(op).Wait(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestQueue_FIFOWithSingleWorker(t *testing.T) {
	q := newTestQueue(staticFactory(t, nil))
	defer q.Close()

	var (
		mu       sync.Mutex
		order    []int
		inFlight int
	)

	mk := func(n int) *probe {
		return &probe{
			target: Target{Account: "alice"},
			run: func(*utils.HTTPClient) (any, error) {
				mu.Lock()
				inFlight++
				assert.Equal(t, 1, inFlight, "worker must serialize operations")
				order = append(order, n)
				inFlight--
				mu.Unlock()
				return n, nil
			},
		}
	}

	handles := make([]*Handle, 0, 5)
	for i := range 5 {
		handles = append(handles, q.Submit(mk(i)))
	}
	for _, h := range handles {
		_, err := h.Wait(context.Background())
		require.NoError(t, err)
	}

	assert.Equal(t, []int{0, 1, 2, 3, 4}, order)
}

func TestQueue_ClientReusedForEqualTargets(t *testing.T) {
	var built int
	q := newTestQueue(staticFactory(t, &built))
	defer q.Close()

	same := Target{Account: "alice", ServerURL: "https://a"}
	other := Target{Account: "bob", ServerURL: "https://b"}

	noop := func(*utils.HTTPClient) (any, error) { return nil, nil }

	_, _ = q.Submit(&probe{target: same, run: noop}).Wait(context.Background())
	_, _ = q.Submit(&probe{target: same, run: noop}).Wait(context.Background())
	assert.Equal(t, 1, built, "equal consecutive targets reuse the client")

	_, _ = q.Submit(&probe{target: other, run: noop}).Wait(context.Background())
	assert.Equal(t, 2, built, "a different target forces a rebuild")

	_, _ = q.Submit(&probe{target: same, run: noop}).Wait(context.Background())
	assert.Equal(t, 3, built)
}

func TestQueue_ClientFactoryErrorFailsOperation(t *testing.T) {
	q := newTestQueue(func(Target) (*utils.HTTPClient, error) {
		return nil, errors.New("bad credentials store")
	})
	defer q.Close()

	op := &probe{run: func(*utils.HTTPClient) (any, error) { return nil, nil }}

	_, err := q.Submit(op).Wait(context.Background())
	assert.ErrorContains(t, err, "bad credentials store")
}

func TestQueue_EnqueueDrainsWithoutListener(t *testing.T) {
	q := newTestQueue(staticFactory(t, nil))
	defer q.Close()

	ran := make(chan struct{})
	q.Enqueue(&probe{run: func(*utils.HTTPClient) (any, error) {
		close(ran)
		return nil, nil
	}})

	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatal("fire-and-forget operation stalled in the queue")
	}
}

func TestQueue_CloseDrainsPendingOperations(t *testing.T) {
	q := newTestQueue(staticFactory(t, nil))

	var (
		mu  sync.Mutex
		ran int
	)
	for range 3 {
		q.Enqueue(&probe{run: func(*utils.HTTPClient) (any, error) {
			mu.Lock()
			ran++
			mu.Unlock()
			return nil, nil
		}})
	}

	q.Close()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 3, ran)
}

func TestQueue_SubmitAfterClose(t *testing.T) {
	q := newTestQueue(staticFactory(t, nil))
	q.Close()

	op := &probe{run: func(*utils.HTTPClient) (any, error) { return nil, nil }}

	_, err := q.Submit(op).Wait(context.Background())
	assert.ErrorIs(t, err, ErrClosed)

	// must not panic or block
	q.Enqueue(op)
	q.Close()
}

func TestQueue_WaitHonoursContext(t *testing.T) {
	q := newTestQueue(staticFactory(t, nil))
	defer q.Close()

	release := make(chan struct{})
	h := q.Submit(&probe{run: func(*utils.HTTPClient) (any, error) {
		<-release
		return nil, nil
	}})
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := h.Wait(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestCheckCredentials(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		wantOK     bool
		wantErr    error
	}{
		{name: "accepted", statusCode: http.StatusOK, wantOK: true},
		{name: "rejected", statusCode: http.StatusUnauthorized, wantErr: cloud.ErrUnauthorized},
		{name: "forbidden", statusCode: http.StatusForbidden, wantErr: cloud.ErrUnauthorized},
		{name: "server down", statusCode: http.StatusBadGateway, wantErr: cloud.ErrServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodHead, r.Method)
				w.WriteHeader(tt.statusCode)
			}))
			defer srv.Close()

			client := utils.NewHTTPClient()
			client.SetBaseURL(srv.URL)

			op := CheckCredentials{Endpoint: Target{Account: "alice", ServerURL: srv.URL}}
			value, err := op.Run(context.Background(), client)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantOK, value)
		})
	}
}

func TestGetServerInfo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/status.php", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"installed":true,"maintenance":false,"version":"29.0.1"}`))
	}))
	defer srv.Close()

	client := utils.NewHTTPClient()
	client.SetBaseURL(srv.URL)

	op := GetServerInfo{Endpoint: Target{Account: "alice", ServerURL: srv.URL}}
	value, err := op.Run(context.Background(), client)
	require.NoError(t, err)

	info, ok := value.(ServerInfo)
	require.True(t, ok)
	assert.True(t, info.Installed)
	assert.False(t, info.Maintenance)
	assert.Equal(t, "29.0.1", info.Version)
}

func TestGetServerInfo_Maintenance(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"installed":true,"maintenance":true,"version":"29.0.1"}`))
	}))
	defer srv.Close()

	client := utils.NewHTTPClient()
	client.SetBaseURL(srv.URL)

	op := GetServerInfo{}
	value, err := op.Run(context.Background(), client)
	require.NoError(t, err)

	info := value.(ServerInfo)
	assert.True(t, info.Maintenance)
}
