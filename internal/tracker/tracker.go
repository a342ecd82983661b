// ABOUTME: Expiring registry of connected agents indexed by agent ID and project ID
// ABOUTME: Refreshes its own registrations periodically and garbage-collects expired ones

package tracker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"google.golang.org/protobuf/proto"

	"github.com/2389/kas-gateway/internal/store"
	"github.com/2389/kas-gateway/proto/agenttracker"
)

const (
	// refreshOverlap is how long before the next refresh an entry must still be
	// valid for. Entries expiring sooner are rewritten on this refresh.
	refreshOverlap = 5 * time.Second

	// connectedAgentsKey is the single key of the connected agents hash
	connectedAgentsKey int64 = 0
)

// ConnectedAgentInfoCallback receives each connection found by a query.
// Returning done stops the iteration.
type ConnectedAgentInfoCallback func(*agenttracker.ConnectedAgentInfo) (done bool, err error)

// Registerer records agent connections.
type Registerer interface {
	// RegisterConnection registers connection with the tracker.
	RegisterConnection(ctx context.Context, info *agenttracker.ConnectedAgentInfo) error
	// UnregisterConnection unregisters connection with the tracker.
	UnregisterConnection(ctx context.Context, info *agenttracker.ConnectedAgentInfo) error
}

// Querier looks up agent connections.
type Querier interface {
	GetConnectionsByAgentID(ctx context.Context, agentID int64, cb ConnectedAgentInfoCallback) error
	GetConnectionsByProjectID(ctx context.Context, projectID int64, cb ConnectedAgentInfoCallback) error
	GetConnectedAgentsCount(ctx context.Context) (int64, error)
}

// Tracker registers, queries, and maintains agent connections.
type Tracker interface {
	Registerer
	Querier
	Run(ctx context.Context) error
}

// HashTracker implements Tracker on three expiring hashes.
type HashTracker struct {
	logger        *slog.Logger
	refreshPeriod time.Duration
	gcPeriod      time.Duration

	// refreshMu is held exclusively while refreshing and shared while unregistering,
	// so a refresh never writes back a connection that was just removed.
	refreshMu sync.RWMutex

	connectionsByAgentID   store.ExpiringHash[int64, int64] // agentID -> connectionID -> info
	connectionsByProjectID store.ExpiringHash[int64, int64] // projectID -> connectionID -> info
	connectedAgents        store.ExpiringHash[int64, int64] // connectedAgentsKey -> agentID -> ""
}

var _ Tracker = (*HashTracker)(nil)

// NewHashTracker creates a tracker whose hashes live in s under keyPrefix.
func NewHashTracker(logger *slog.Logger, s *store.SQLiteStore, keyPrefix string, ttl, refreshPeriod, gcPeriod time.Duration) *HashTracker {
	return newHashTracker(logger,
		store.NewExpiringHash[int64, int64](s, keyPrefix+":conn_by_agent_id:", store.Int64Key, store.Int64Key, ttl),
		store.NewExpiringHash[int64, int64](s, keyPrefix+":conn_by_project_id:", store.Int64Key, store.Int64Key, ttl),
		store.NewExpiringHash[int64, int64](s, keyPrefix+":connected_agents", func(int64) string { return "" }, store.Int64Key, ttl),
		refreshPeriod, gcPeriod,
	)
}

func newHashTracker(logger *slog.Logger, byAgent, byProject, connected store.ExpiringHash[int64, int64], refreshPeriod, gcPeriod time.Duration) *HashTracker {
	if logger == nil {
		logger = slog.Default()
	}
	return &HashTracker{
		logger:                 logger.With("component", "tracker"),
		refreshPeriod:          refreshPeriod,
		gcPeriod:               gcPeriod,
		connectionsByAgentID:   byAgent,
		connectionsByProjectID: byProject,
		connectedAgents:        connected,
	}
}

// Run refreshes registrations and collects garbage until ctx is done.
func (t *HashTracker) Run(ctx context.Context) error {
	refreshTicker := time.NewTicker(t.refreshPeriod)
	defer refreshTicker.Stop()
	gcTicker := time.NewTicker(t.gcPeriod)
	defer gcTicker.Stop()
	done := ctx.Done()
	for {
		select {
		case <-done:
			return nil
		case <-refreshTicker.C:
			t.refreshRegistrations(ctx, time.Now().Add(t.refreshPeriod-refreshOverlap))
		case <-gcTicker.C:
			deleted := t.runGC(ctx)
			if deleted > 0 {
				t.logger.Info("deleted expired agent connection records", "removed", deleted)
			}
		}
	}
}

// RegisterConnection writes the connection to all three hashes concurrently.
func (t *HashTracker) RegisterConnection(ctx context.Context, info *agenttracker.ConnectedAgentInfo) error {
	infoBytes, err := proto.Marshal(info)
	if err != nil {
		return fmt.Errorf("marshaling connection info: %w", err)
	}

	var g errgroup.Group
	g.Go(func() error {
		return t.connectionsByProjectID.Set(ctx, info.GetProjectId(), info.GetConnectionId(), infoBytes)
	})
	g.Go(func() error {
		return t.connectionsByAgentID.Set(ctx, info.GetAgentId(), info.GetConnectionId(), infoBytes)
	})
	g.Go(func() error {
		return t.connectedAgents.Set(ctx, connectedAgentsKey, info.GetAgentId(), nil)
	})
	return g.Wait()
}

// UnregisterConnection removes the connection. The agent stays counted until
// its entry expires, since other connections of the same agent may still be live.
func (t *HashTracker) UnregisterConnection(ctx context.Context, info *agenttracker.ConnectedAgentInfo) error {
	t.refreshMu.RLock()
	defer t.refreshMu.RUnlock()

	t.connectedAgents.Forget(connectedAgentsKey, info.GetAgentId())

	var g errgroup.Group
	g.Go(func() error {
		return t.connectionsByProjectID.Unset(ctx, info.GetProjectId(), info.GetConnectionId())
	})
	g.Go(func() error {
		return t.connectionsByAgentID.Unset(ctx, info.GetAgentId(), info.GetConnectionId())
	})
	return g.Wait()
}

// GetConnectionsByAgentID visits the live connections of an agent.
func (t *HashTracker) GetConnectionsByAgentID(ctx context.Context, agentID int64, cb ConnectedAgentInfoCallback) error {
	return t.getConnectionsByKey(ctx, t.connectionsByAgentID, agentID, cb)
}

// GetConnectionsByProjectID visits the live connections of a project's agents.
func (t *HashTracker) GetConnectionsByProjectID(ctx context.Context, projectID int64, cb ConnectedAgentInfoCallback) error {
	return t.getConnectionsByKey(ctx, t.connectionsByProjectID, projectID, cb)
}

// GetConnectedAgentsCount returns the number of distinct connected agents.
func (t *HashTracker) GetConnectedAgentsCount(ctx context.Context) (int64, error) {
	return t.connectedAgents.Len(ctx, connectedAgentsKey)
}

func (t *HashTracker) refreshRegistrations(ctx context.Context, nextRefresh time.Time) {
	t.refreshMu.Lock()
	defer t.refreshMu.Unlock()

	// Sequential on purpose: refresh is background work.
	for _, h := range []store.ExpiringHash[int64, int64]{t.connectionsByProjectID, t.connectionsByAgentID, t.connectedAgents} {
		if err := h.Refresh(ctx, nextRefresh); err != nil {
			if isContextDone(err) {
				t.logger.Debug("hash refresh interrupted", "error", err)
				return
			}
			t.logger.Error("failed to refresh hash data", "error", err)
		}
	}
}

func (t *HashTracker) runGC(ctx context.Context) int {
	gcFuncs := []func(context.Context) (int, error){
		t.connectionsByProjectID.GC(),
		t.connectionsByAgentID.GC(),
		t.connectedAgents.GC(),
	}
	deleted := 0
	for _, gc := range gcFuncs {
		n, err := gc(ctx)
		deleted += n
		if err != nil {
			if isContextDone(err) {
				t.logger.Debug("hash GC interrupted", "error", err)
				break
			}
			t.logger.Error("failed to GC hash data", "error", err)
		}
	}
	return deleted
}

func (t *HashTracker) getConnectionsByKey(ctx context.Context, hash store.ExpiringHash[int64, int64], key int64, cb ConnectedAgentInfoCallback) error {
	return hash.Scan(ctx, key, func(field string, value []byte) (bool, error) {
		var info agenttracker.ConnectedAgentInfo
		if err := proto.Unmarshal(value, &info); err != nil {
			t.logger.Error("skipping undecodable connection record", "key", key, "connection_id", field, "error", err)
			return false, nil
		}
		return cb(&info)
	})
}

func isContextDone(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// ConnectedAgentInfoCollector accumulates query results in order.
type ConnectedAgentInfoCollector []*agenttracker.ConnectedAgentInfo

// Collect is a ConnectedAgentInfoCallback that appends every record.
func (c *ConnectedAgentInfoCollector) Collect(info *agenttracker.ConnectedAgentInfo) (bool, error) {
	*c = append(*c, info)
	return false, nil
}
