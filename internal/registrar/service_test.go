// ABOUTME: Tests for the AgentRegistrar gRPC service
// ABOUTME: Covers registration against a real tracker, dedupe skips, and error mapping

package registrar

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/2389/kas-gateway/internal/store"
	"github.com/2389/kas-gateway/internal/tracker"
	"github.com/2389/kas-gateway/proto/agentregistrar/rpc"
	"github.com/2389/kas-gateway/proto/agenttracker"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestTracker(t *testing.T) *tracker.HashTracker {
	t.Helper()
	s, err := store.NewSQLiteStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return tracker.NewHashTracker(testLogger(), s, "kas:agent_tracker", time.Minute, 30*time.Second, time.Minute)
}

func newTestService(t *testing.T, tr Tracker) *Service {
	t.Helper()
	svc := NewService(tr, time.Minute, 100, testLogger())
	t.Cleanup(svc.Close)
	return svc
}

func registerReq(agentID, projectID, podID int64, version string) *rpc.RegisterRequest {
	return &rpc.RegisterRequest{
		AgentMeta: &agenttracker.AgentMeta{
			Version:      version,
			CommitId:     "abc123",
			PodNamespace: "gitlab-agent",
			PodName:      "agentk-0",
		},
		PodId:     podID,
		AgentId:   agentID,
		ProjectId: projectID,
	}
}

// countingTracker wraps a tracker and counts writes.
type countingTracker struct {
	Tracker
	mu            sync.Mutex
	registrations int
	registerErr   error
	unregisterErr error
	queryErr      error
}

func (c *countingTracker) RegisterConnection(ctx context.Context, info *agenttracker.ConnectedAgentInfo) error {
	c.mu.Lock()
	c.registrations++
	c.mu.Unlock()
	if c.registerErr != nil {
		return c.registerErr
	}
	return c.Tracker.RegisterConnection(ctx, info)
}

func (c *countingTracker) UnregisterConnection(ctx context.Context, info *agenttracker.ConnectedAgentInfo) error {
	if c.unregisterErr != nil {
		return c.unregisterErr
	}
	return c.Tracker.UnregisterConnection(ctx, info)
}

func (c *countingTracker) GetConnectionsByAgentID(ctx context.Context, agentID int64, cb tracker.ConnectedAgentInfoCallback) error {
	if c.queryErr != nil {
		return c.queryErr
	}
	return c.Tracker.GetConnectionsByAgentID(ctx, agentID, cb)
}

func (c *countingTracker) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.registrations
}

func collect(t *testing.T, tr *tracker.HashTracker, agentID int64) []*agenttracker.ConnectedAgentInfo {
	t.Helper()
	var infos tracker.ConnectedAgentInfoCollector
	require.NoError(t, tr.GetConnectionsByAgentID(context.Background(), agentID, infos.Collect))
	return infos
}

func TestService_Register(t *testing.T) {
	tr := newTestTracker(t)
	svc := newTestService(t, tr)
	fixed := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	resp, err := svc.Register(context.Background(), registerReq(1, 100, 11, "v17.0.0"))
	require.NoError(t, err)
	assert.NotNil(t, resp)

	infos := collect(t, tr, 1)
	require.Len(t, infos, 1)
	assert.Equal(t, int64(11), infos[0].GetConnectionId())
	assert.Equal(t, int64(100), infos[0].GetProjectId())
	assert.Equal(t, "v17.0.0", infos[0].GetAgentMeta().GetVersion())
	assert.True(t, fixed.Equal(infos[0].GetConnectedAt().AsTime()))

	var byProject tracker.ConnectedAgentInfoCollector
	require.NoError(t, tr.GetConnectionsByProjectID(context.Background(), 100, byProject.Collect))
	assert.Len(t, byProject, 1)
}

func TestService_Register_KeepsConnectedAt(t *testing.T) {
	tr := newTestTracker(t)
	svc := newTestService(t, tr)
	first := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return first }

	_, err := svc.Register(context.Background(), registerReq(1, 100, 11, "v17.0.0"))
	require.NoError(t, err)

	// A changed request bypasses the dedupe cache and is rewritten
	svc.now = func() time.Time { return first.Add(time.Hour) }
	_, err = svc.Register(context.Background(), registerReq(1, 100, 11, "v17.1.0"))
	require.NoError(t, err)

	infos := collect(t, tr, 1)
	require.Len(t, infos, 1)
	assert.Equal(t, "v17.1.0", infos[0].GetAgentMeta().GetVersion())
	assert.True(t, first.Equal(infos[0].GetConnectedAt().AsTime()))
}

func TestService_Register_SkipsIdenticalRepeat(t *testing.T) {
	ct := &countingTracker{Tracker: newTestTracker(t)}
	svc := newTestService(t, ct)

	for range 3 {
		_, err := svc.Register(context.Background(), registerReq(1, 100, 11, "v17.0.0"))
		require.NoError(t, err)
	}
	assert.Equal(t, 1, ct.count())

	// Different content for the same pod is written
	_, err := svc.Register(context.Background(), registerReq(1, 100, 11, "v17.1.0"))
	require.NoError(t, err)
	assert.Equal(t, 2, ct.count())

	// A different pod is a different connection
	_, err = svc.Register(context.Background(), registerReq(1, 100, 12, "v17.1.0"))
	require.NoError(t, err)
	assert.Equal(t, 3, ct.count())
}

func TestService_Unregister(t *testing.T) {
	tr := newTestTracker(t)
	ct := &countingTracker{Tracker: tr}
	svc := newTestService(t, ct)

	_, err := svc.Register(context.Background(), registerReq(1, 100, 11, "v17.0.0"))
	require.NoError(t, err)
	_, err = svc.Register(context.Background(), registerReq(1, 100, 12, "v17.0.0"))
	require.NoError(t, err)

	resp, err := svc.Unregister(context.Background(), &rpc.UnregisterRequest{PodId: 11, AgentId: 1, ProjectId: 100})
	require.NoError(t, err)
	assert.NotNil(t, resp)

	infos := collect(t, tr, 1)
	require.Len(t, infos, 1)
	assert.Equal(t, int64(12), infos[0].GetConnectionId())

	// The dedupe entry is gone, so registering again writes through
	_, err = svc.Register(context.Background(), registerReq(1, 100, 11, "v17.0.0"))
	require.NoError(t, err)
	assert.Equal(t, 3, ct.count())
	assert.Len(t, collect(t, tr, 1), 2)
}

func TestService_Errors(t *testing.T) {
	storeErr := errors.New("database is locked")

	tests := []struct {
		name    string
		tracker *countingTracker
		call    func(*Service) error
	}{
		{
			name:    "register write fails",
			tracker: &countingTracker{registerErr: storeErr},
			call: func(s *Service) error {
				_, err := s.Register(context.Background(), registerReq(1, 100, 11, "v1"))
				return err
			},
		},
		{
			name:    "connection lookup fails",
			tracker: &countingTracker{queryErr: storeErr},
			call: func(s *Service) error {
				_, err := s.Register(context.Background(), registerReq(1, 100, 11, "v1"))
				return err
			},
		},
		{
			name:    "unregister fails",
			tracker: &countingTracker{unregisterErr: storeErr},
			call: func(s *Service) error {
				_, err := s.Unregister(context.Background(), &rpc.UnregisterRequest{PodId: 11, AgentId: 1, ProjectId: 100})
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.tracker.Tracker = newTestTracker(t)
			svc := newTestService(t, tt.tracker)

			err := tt.call(svc)
			require.Error(t, err)
			assert.Equal(t, codes.Unavailable, status.Code(err))
			assert.NotContains(t, err.Error(), "database is locked")
		})
	}
}

func TestService_Register_FailureIsNotCached(t *testing.T) {
	ct := &countingTracker{Tracker: newTestTracker(t), registerErr: errors.New("boom")}
	svc := newTestService(t, ct)

	_, err := svc.Register(context.Background(), registerReq(1, 100, 11, "v1"))
	require.Error(t, err)

	ct.registerErr = nil
	_, err = svc.Register(context.Background(), registerReq(1, 100, 11, "v1"))
	require.NoError(t, err)
	assert.Equal(t, 2, ct.count())
}
