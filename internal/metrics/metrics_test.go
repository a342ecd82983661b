// ABOUTME: Tests for the gateway Prometheus collectors
// ABOUTME: Gathers from the dedicated registry and checks the exposition handler

package metrics

import (
	"context"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2389/kas-gateway/internal/notifications"
	"github.com/2389/kas-gateway/proto/notifications/rpc"
)

type fakeCounter struct {
	count       int64
	err         error
	sawDeadline bool
}

func (f *fakeCounter) GetConnectedAgentsCount(ctx context.Context) (int64, error) {
	_, f.sawDeadline = ctx.Deadline()
	return f.count, f.err
}

func gather(t *testing.T, m *Metrics, name string) *dto.Metric {
	t.Helper()
	families, err := m.Registry().Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() == name {
			require.Len(t, mf.GetMetric(), 1)
			return mf.GetMetric()[0]
		}
	}
	t.Fatalf("metric %s not gathered", name)
	return nil
}

func TestConnectedAgentsCount(t *testing.T) {
	counter := &fakeCounter{count: 3}
	m, err := New(counter)
	require.NoError(t, err)

	assert.Equal(t, 3.0, gather(t, m, "connected_agents_count").GetGauge().GetValue())
	assert.True(t, counter.sawDeadline)

	counter.err = errors.New("database is locked")
	assert.True(t, math.IsNaN(gather(t, m, "connected_agents_count").GetGauge().GetValue()))
}

func TestGitPushEventsTotal(t *testing.T) {
	m, err := New(&fakeCounter{})
	require.NoError(t, err)

	project := &rpc.Project{Id: 1, FullPath: "group/project"}
	require.NoError(t, m.Publish(context.Background(), notifications.GitPushEventsChannel, project))
	require.NoError(t, m.Publish(context.Background(), notifications.GitPushEventsChannel, project))
	require.NoError(t, m.Publish(context.Background(), "other", project))

	assert.Equal(t, 2.0, gather(t, m, "git_push_events_total").GetCounter().GetValue())
}

func TestHandler(t *testing.T) {
	m, err := New(&fakeCounter{count: 5})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "connected_agents_count 5")
	assert.Contains(t, rec.Body.String(), "git_push_events_total 0")
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestNew_IndependentRegistries(t *testing.T) {
	_, err := New(&fakeCounter{})
	require.NoError(t, err)
	_, err = New(&fakeCounter{})
	require.NoError(t, err)
}
