// ABOUTME: Tests for HashTracker against an in-memory SQLite store
// ABOUTME: Covers register/unregister, per-key queries, counting, decode skips, and Run

package tracker

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/testing/protocmp"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/2389/kas-gateway/internal/store"
	"github.com/2389/kas-gateway/proto/agenttracker"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestStore(t *testing.T) *store.SQLiteStore {
	t.Helper()
	s, err := store.NewSQLiteStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func newTestTracker(t *testing.T) *HashTracker {
	t.Helper()
	return NewHashTracker(testLogger(), newTestStore(t), "kas:agent_tracker", time.Minute, 30*time.Second, time.Minute)
}

func connInfo(agentID, projectID, connectionID int64) *agenttracker.ConnectedAgentInfo {
	return &agenttracker.ConnectedAgentInfo{
		AgentMeta: &agenttracker.AgentMeta{
			Version:      "v17.0.0",
			CommitId:     "abc123",
			PodNamespace: "gitlab-agent",
			PodName:      "agentk-0",
		},
		ConnectedAt:  timestamppb.New(time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)),
		ConnectionId: connectionID,
		AgentId:      agentID,
		ProjectId:    projectID,
	}
}

func TestHashTracker_RegisterAndQuery(t *testing.T) {
	tr := newTestTracker(t)
	ctx := context.Background()

	a := connInfo(1, 100, 11)
	b := connInfo(1, 100, 12)
	c := connInfo(2, 200, 21)
	for _, info := range []*agenttracker.ConnectedAgentInfo{a, b, c} {
		require.NoError(t, tr.RegisterConnection(ctx, info))
	}

	var byAgent ConnectedAgentInfoCollector
	require.NoError(t, tr.GetConnectionsByAgentID(ctx, 1, byAgent.Collect))
	assert.Empty(t, cmp.Diff([]*agenttracker.ConnectedAgentInfo{a, b}, []*agenttracker.ConnectedAgentInfo(byAgent), protocmp.Transform()))

	var byProject ConnectedAgentInfoCollector
	require.NoError(t, tr.GetConnectionsByProjectID(ctx, 200, byProject.Collect))
	assert.Empty(t, cmp.Diff([]*agenttracker.ConnectedAgentInfo{c}, []*agenttracker.ConnectedAgentInfo(byProject), protocmp.Transform()))

	count, err := tr.GetConnectedAgentsCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestHashTracker_QueryUnknownKeyIsEmpty(t *testing.T) {
	tr := newTestTracker(t)

	var infos ConnectedAgentInfoCollector
	require.NoError(t, tr.GetConnectionsByProjectID(context.Background(), 404, infos.Collect))
	assert.Empty(t, infos)
}

func TestHashTracker_Unregister(t *testing.T) {
	tr := newTestTracker(t)
	ctx := context.Background()

	info := connInfo(1, 100, 11)
	require.NoError(t, tr.RegisterConnection(ctx, info))
	require.NoError(t, tr.UnregisterConnection(ctx, info))

	var byAgent, byProject ConnectedAgentInfoCollector
	require.NoError(t, tr.GetConnectionsByAgentID(ctx, 1, byAgent.Collect))
	require.NoError(t, tr.GetConnectionsByProjectID(ctx, 100, byProject.Collect))
	assert.Empty(t, byAgent)
	assert.Empty(t, byProject)

	// The agent count entry is only forgotten, so it lingers until it expires
	count, err := tr.GetConnectedAgentsCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestHashTracker_CallbackStopsEarly(t *testing.T) {
	tr := newTestTracker(t)
	ctx := context.Background()

	for i := int64(1); i <= 3; i++ {
		require.NoError(t, tr.RegisterConnection(ctx, connInfo(5, 50, i)))
	}

	var seen []int64
	err := tr.GetConnectionsByAgentID(ctx, 5, func(info *agenttracker.ConnectedAgentInfo) (bool, error) {
		seen = append(seen, info.GetConnectionId())
		return true, nil
	})
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, seen)

	boom := errors.New("boom")
	err = tr.GetConnectionsByAgentID(ctx, 5, func(*agenttracker.ConnectedAgentInfo) (bool, error) {
		return false, boom
	})
	assert.ErrorIs(t, err, boom)
}

func TestHashTracker_SkipsUndecodableRecords(t *testing.T) {
	s := newTestStore(t)
	byAgent := store.NewExpiringHash[int64, int64](s, "t:a:", store.Int64Key, store.Int64Key, time.Minute)
	byProject := store.NewExpiringHash[int64, int64](s, "t:p:", store.Int64Key, store.Int64Key, time.Minute)
	connected := store.NewExpiringHash[int64, int64](s, "t:c", func(int64) string { return "" }, store.Int64Key, time.Minute)
	tr := newHashTracker(testLogger(), byAgent, byProject, connected, time.Minute, time.Minute)
	ctx := context.Background()

	require.NoError(t, tr.RegisterConnection(ctx, connInfo(1, 10, 1)))
	// Field 1 with a truncated length-delimited value is not a valid message
	require.NoError(t, byAgent.Set(ctx, 1, 2, []byte{0x0a, 0x05, 0x01}))
	require.NoError(t, tr.RegisterConnection(ctx, connInfo(1, 10, 3)))

	var infos ConnectedAgentInfoCollector
	require.NoError(t, tr.GetConnectionsByAgentID(ctx, 1, infos.Collect))
	require.Len(t, infos, 2)
	assert.Equal(t, int64(1), infos[0].GetConnectionId())
	assert.Equal(t, int64(3), infos[1].GetConnectionId())
}

func TestHashTracker_RunStopsOnCancel(t *testing.T) {
	tr := NewHashTracker(testLogger(), newTestStore(t), "kas:agent_tracker", time.Minute, 10*time.Millisecond, 10*time.Millisecond)
	require.NoError(t, tr.RegisterConnection(context.Background(), connInfo(1, 1, 1)))

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- tr.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}

	// Refresh and GC must not have disturbed the live registration
	count, err := tr.GetConnectedAgentsCount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

// recordingHash wraps an ExpiringHash and records refresh activity.
type recordingHash struct {
	store.ExpiringHash[int64, int64]
	mu        sync.Mutex
	refreshes int
	inRefresh chan struct{}
	release   chan struct{}
}

func (h *recordingHash) Refresh(ctx context.Context, next time.Time) error {
	h.mu.Lock()
	h.refreshes++
	h.mu.Unlock()
	if h.inRefresh != nil {
		close(h.inRefresh)
		<-h.release
	}
	return h.ExpiringHash.Refresh(ctx, next)
}

func TestHashTracker_UnregisterWaitsForRefresh(t *testing.T) {
	s := newTestStore(t)
	byProject := &recordingHash{
		ExpiringHash: store.NewExpiringHash[int64, int64](s, "t:p:", store.Int64Key, store.Int64Key, time.Minute),
		inRefresh:    make(chan struct{}),
		release:      make(chan struct{}),
	}
	byAgent := store.NewExpiringHash[int64, int64](s, "t:a:", store.Int64Key, store.Int64Key, time.Minute)
	connected := store.NewExpiringHash[int64, int64](s, "t:c", func(int64) string { return "" }, store.Int64Key, time.Minute)
	tr := newHashTracker(testLogger(), byAgent, byProject, connected, time.Minute, time.Minute)
	ctx := context.Background()

	info := connInfo(1, 10, 1)
	require.NoError(t, tr.RegisterConnection(ctx, info))

	refreshDone := make(chan struct{})
	go func() {
		tr.refreshRegistrations(ctx, time.Now().Add(2*time.Minute))
		close(refreshDone)
	}()
	<-byProject.inRefresh

	unregistered := make(chan error, 1)
	go func() { unregistered <- tr.UnregisterConnection(ctx, info) }()

	select {
	case <-unregistered:
		t.Fatal("unregister ran while refresh held the lock")
	case <-time.After(50 * time.Millisecond):
	}

	close(byProject.release)
	<-refreshDone
	require.NoError(t, <-unregistered)

	var infos ConnectedAgentInfoCollector
	require.NoError(t, tr.GetConnectionsByProjectID(ctx, 10, infos.Collect))
	assert.Empty(t, infos, "refresh must not resurrect an unregistered connection")
}

func TestHashTracker_RunGCCountsDeleted(t *testing.T) {
	tr := NewHashTracker(testLogger(), newTestStore(t), "kas:agent_tracker", time.Millisecond, time.Minute, time.Minute)
	ctx := context.Background()

	require.NoError(t, tr.RegisterConnection(ctx, connInfo(1, 10, 1)))
	time.Sleep(5 * time.Millisecond)

	assert.Equal(t, 3, tr.runGC(ctx))
	assert.Equal(t, 0, tr.runGC(ctx))
}
