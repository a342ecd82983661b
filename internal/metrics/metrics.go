// ABOUTME: Prometheus collectors for connected agents and git push notifications
// ABOUTME: Registered on a dedicated registry served by the gateway's HTTP server

package metrics

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"google.golang.org/protobuf/proto"

	"github.com/2389/kas-gateway/internal/notifications"
)

// countTimeout bounds each connected agents count query made during a scrape.
const countTimeout = time.Second

// AgentCounter reports the number of distinct connected agents.
type AgentCounter interface {
	GetConnectedAgentsCount(ctx context.Context) (int64, error)
}

// Metrics owns the gateway's collectors.
type Metrics struct {
	registry      *prometheus.Registry
	gitPushEvents prometheus.Counter
}

// New creates the collectors and registers them, together with the Go runtime
// and process collectors, on a fresh registry.
func New(counter AgentCounter) (*Metrics, error) {
	connectedAgents := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "connected_agents_count",
		Help: "The number of unique connected agents",
	}, func() float64 {
		ctx, cancel := context.WithTimeout(context.Background(), countTimeout)
		defer cancel()
		size, err := counter.GetConnectedAgentsCount(ctx)
		if err != nil {
			return math.NaN()
		}
		return float64(size)
	})
	gitPushEvents := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "git_push_events_total",
		Help: "The number of git push notifications received",
	})

	registry := prometheus.NewRegistry()
	for _, c := range []prometheus.Collector{
		connectedAgents,
		gitPushEvents,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	} {
		if err := registry.Register(c); err != nil {
			return nil, fmt.Errorf("registering collector: %w", err)
		}
	}

	return &Metrics{
		registry:      registry,
		gitPushEvents: gitPushEvents,
	}, nil
}

// Registry returns the registry the collectors live on.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Publish counts git push notifications. Other channels are ignored.
func (m *Metrics) Publish(_ context.Context, channel string, _ proto.Message) error {
	if channel == notifications.GitPushEventsChannel {
		m.gitPushEvents.Inc()
	}
	return nil
}

var _ notifications.Publisher = (*Metrics)(nil)
