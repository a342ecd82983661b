// Package gateway assembles kas-gateway: it opens the SQLite store, builds
// the agent connection tracker, and serves the AgentTracker, Notifications
// and AgentRegistrar gRPC services alongside a small HTTP API.
//
// # Listeners
//
// gRPC and HTTP listen on server.grpc_addr and server.http_addr, or on a
// Tailscale node (ports 50051 and 80) when tailscale.enabled is set.
//
// # HTTP Routes
//
//   - /health: liveness
//   - /health/ready: 200 once the store answers
//   - /api/agents?project_id=N | agent_id=N: connected agents as protojson
//   - /api/events/git-push?project_id=&limit=: recorded pushes, newest first
//   - /api/events/git-push/stream: live pushes as server-sent events
//   - metrics.path: Prometheus metrics when metrics.enabled
//
// The /api routes require a bearer JWT when auth.jwt_secret is set.
//
// # Lifecycle
//
//	gw, err := gateway.New(cfg, logger)
//	if err != nil {
//		return err
//	}
//	return gw.Run(ctx) // blocks until ctx is canceled
//
// Run stops the servers within five seconds of cancellation and closes the store.
package gateway
