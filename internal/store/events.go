// ABOUTME: Git push event log persisted in SQLite
// ABOUTME: Records pushes as they are received and lists them newest first

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// RecordGitPushEvent stores a push event
func (s *SQLiteStore) RecordGitPushEvent(ctx context.Context, event *GitPushEvent) error {
	if event.ID == "" {
		event.ID = uuid.New().String()
	}
	if event.ReceivedAt.IsZero() {
		event.ReceivedAt = time.Now().UTC()
	}

	query := `
		INSERT INTO git_push_events (id, project_id, full_path, received_at)
		VALUES (?, ?, ?, ?)
	`
	_, err := s.db.ExecContext(ctx, query,
		event.ID,
		event.ProjectID,
		event.FullPath,
		event.ReceivedAt.UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("inserting git push event: %w", err)
	}
	return nil
}

// ListGitPushEvents returns up to limit events, newest first.
// A projectID of 0 lists events for every project.
func (s *SQLiteStore) ListGitPushEvents(ctx context.Context, projectID int64, limit int) ([]*GitPushEvent, error) {
	if limit <= 0 {
		limit = DefaultEventLimit
	}

	query := `
		SELECT id, project_id, full_path, received_at
		FROM git_push_events
		WHERE (? = 0 OR project_id = ?)
		ORDER BY received_at DESC, rowid DESC
		LIMIT ?
	`
	rows, err := s.db.QueryContext(ctx, query, projectID, projectID, limit)
	if err != nil {
		return nil, fmt.Errorf("querying git push events: %w", err)
	}
	defer rows.Close()

	events := make([]*GitPushEvent, 0)
	for rows.Next() {
		var event GitPushEvent
		var receivedAt int64
		if err := rows.Scan(&event.ID, &event.ProjectID, &event.FullPath, &receivedAt); err != nil {
			return nil, fmt.Errorf("scanning git push event: %w", err)
		}
		event.ReceivedAt = time.Unix(0, receivedAt).UTC()
		events = append(events, &event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating git push events: %w", err)
	}
	return events, nil
}
