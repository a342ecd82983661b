// ABOUTME: Mock Store implementation for testing
// ABOUTME: Keeps git push events in memory and can be told to fail

package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MockStore is an in-memory Store implementation for testing.
type MockStore struct {
	mu     sync.RWMutex
	events []*GitPushEvent
	err    error
	closed bool
}

// NewMockStore creates a new MockStore.
func NewMockStore() *MockStore {
	return &MockStore{}
}

// SetError makes every subsequent call return err. Pass nil to clear it.
func (m *MockStore) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

func (m *MockStore) check() error {
	if m.closed {
		return ErrClosed
	}
	return m.err
}

// RecordGitPushEvent stores a copy of event.
func (m *MockStore) RecordGitPushEvent(_ context.Context, event *GitPushEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.check(); err != nil {
		return err
	}
	if event.ID == "" {
		event.ID = uuid.New().String()
	}
	if event.ReceivedAt.IsZero() {
		event.ReceivedAt = time.Now().UTC()
	}

	// Make a copy to avoid external modification
	e := *event
	m.events = append(m.events, &e)
	return nil
}

// ListGitPushEvents returns up to limit events, newest first.
func (m *MockStore) ListGitPushEvents(_ context.Context, projectID int64, limit int) ([]*GitPushEvent, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if err := m.check(); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = DefaultEventLimit
	}

	result := make([]*GitPushEvent, 0)
	// Walk backwards so equal timestamps keep newest-inserted first
	for i := len(m.events) - 1; i >= 0; i-- {
		e := m.events[i]
		if projectID != 0 && e.ProjectID != projectID {
			continue
		}
		c := *e
		result = append(result, &c)
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].ReceivedAt.After(result[j].ReceivedAt)
	})
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// Ping returns the injected error, or ErrClosed after Close.
func (m *MockStore) Ping(context.Context) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.check()
}

// Close marks the store closed.
func (m *MockStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

var _ Store = (*MockStore)(nil)
