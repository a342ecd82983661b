// Package store provides persistent storage for the gateway using SQLite.
//
// SQLiteStore backs two things:
//
//   - ExpiringHash: a two-level map (key, field) -> value where every field
//     carries its own expiry. The agent tracker keeps its by-agent,
//     by-project and connected-agents indexes in it.
//   - GitPushEventStore: an append-only log of received git push events.
//
// The schema is created on open and the database runs in WAL mode:
//
//	PRAGMA journal_mode=WAL;
//
// Use NewSQLiteStore(":memory:") for integration tests with real SQLite and
// NewMockStore() where a test needs to inject storage failures.
package store
