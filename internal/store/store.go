// ABOUTME: Store interface and data types for kas-gateway persistence
// ABOUTME: Defines the expiring hash contract and the git push event log records

package store

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a requested entity does not exist
var ErrNotFound = errors.New("not found")

// ErrClosed is returned for operations on a closed store
var ErrClosed = errors.New("store closed")

// GitPushEvent is a recorded push notification for a project
type GitPushEvent struct {
	ID         string
	ProjectID  int64
	FullPath   string
	ReceivedAt time.Time
}

// DefaultEventLimit caps ListGitPushEvents when no limit is given
const DefaultEventLimit = 100

// GitPushEventStore persists push notifications
type GitPushEventStore interface {
	// RecordGitPushEvent stores an event. ID and ReceivedAt are filled in when empty.
	RecordGitPushEvent(ctx context.Context, event *GitPushEvent) error

	// ListGitPushEvents returns events newest first. A zero projectID matches all projects.
	ListGitPushEvents(ctx context.Context, projectID int64, limit int) ([]*GitPushEvent, error)
}

// Store is the persistence layer used by the gateway
type Store interface {
	GitPushEventStore

	// Ping reports whether the database is reachable
	Ping(ctx context.Context) error

	// Close releases the database handle
	Close() error
}
