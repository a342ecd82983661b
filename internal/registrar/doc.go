// Package registrar serves the AgentRegistrar gRPC service. Agents call it to
// announce a live connection and to withdraw it when they go away. Identical
// re-registrations inside the dedupe window are answered without touching the
// tracker, whose own refresh loop keeps those entries alive.
package registrar
