// ABOUTME: Publisher abstraction for notification channels plus fan-out and event log sinks
// ABOUTME: Fanout joins the errors of every sink so one failing sink does not hide another

package notifications

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/protobuf/proto"

	"github.com/2389/kas-gateway/internal/store"
	"github.com/2389/kas-gateway/proto/notifications/rpc"
)

// GitPushEventsChannel carries the project of every received push.
const GitPushEventsChannel = "git_push_events"

// Publisher delivers a message on a named channel.
type Publisher interface {
	Publish(ctx context.Context, channel string, message proto.Message) error
}

// PublisherFunc adapts a function to the Publisher interface.
type PublisherFunc func(ctx context.Context, channel string, message proto.Message) error

// Publish calls f.
func (f PublisherFunc) Publish(ctx context.Context, channel string, message proto.Message) error {
	return f(ctx, channel, message)
}

// Fanout publishes to each publisher in order.
type Fanout []Publisher

// Publish delivers to every publisher, even after a failure, and joins the errors.
func (f Fanout) Publish(ctx context.Context, channel string, message proto.Message) error {
	var errs []error
	for _, p := range f {
		if err := p.Publish(ctx, channel, message); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// EventLog records push events in the store.
type EventLog struct {
	events store.GitPushEventStore
}

// NewEventLog creates an EventLog.
func NewEventLog(events store.GitPushEventStore) *EventLog {
	return &EventLog{events: events}
}

// Publish stores projects published on GitPushEventsChannel and ignores other channels.
func (l *EventLog) Publish(ctx context.Context, channel string, message proto.Message) error {
	if channel != GitPushEventsChannel {
		return nil
	}
	project, ok := message.(*rpc.Project)
	if !ok {
		return fmt.Errorf("event log: unexpected message %T on %s", message, channel)
	}
	err := l.events.RecordGitPushEvent(ctx, &store.GitPushEvent{
		ProjectID: project.GetId(),
		FullPath:  project.GetFullPath(),
	})
	if err != nil {
		return fmt.Errorf("event log: %w", err)
	}
	return nil
}
