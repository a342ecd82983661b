// Package tracker records which agent connections are live, keyed by agent
// and by project, in expiring hashes that the owning process keeps refreshed.
// It also serves the AgentTracker gRPC service over that registry.
package tracker
