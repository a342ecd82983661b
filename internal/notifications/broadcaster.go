// ABOUTME: In-memory fan-out broadcaster for notification channels
// ABOUTME: Delivers published messages to every live subscriber of a channel without blocking

package notifications

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"google.golang.org/protobuf/proto"
)

const (
	// subscriberBufferSize is the channel buffer for each subscriber.
	subscriberBufferSize = 64
)

// Broadcaster provides in-memory pub/sub keyed by channel name.
type Broadcaster struct {
	mu          sync.RWMutex
	subscribers map[string]map[string]chan proto.Message // channel -> subID -> ch
	closed      bool
	logger      *slog.Logger
}

var _ Publisher = (*Broadcaster)(nil)

// NewBroadcaster creates a broadcaster. Pass nil logger for default.
func NewBroadcaster(logger *slog.Logger) *Broadcaster {
	if logger == nil {
		logger = slog.Default()
	}
	return &Broadcaster{
		subscribers: make(map[string]map[string]chan proto.Message),
		logger:      logger.With("component", "broadcaster"),
	}
}

// Subscribe registers a subscriber for messages on channel. The returned
// channel is closed when ctx is done or the broadcaster is closed.
func (b *Broadcaster) Subscribe(ctx context.Context, channel string) (<-chan proto.Message, string) {
	subID := uuid.New().String()
	ch := make(chan proto.Message, subscriberBufferSize)

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		close(ch)
		return ch, subID
	}
	if _, ok := b.subscribers[channel]; !ok {
		b.subscribers[channel] = make(map[string]chan proto.Message)
	}
	b.subscribers[channel][subID] = ch
	b.mu.Unlock()

	b.logger.Debug("subscriber added", "channel", channel, "sub_id", subID)

	go func() {
		<-ctx.Done()
		b.Unsubscribe(channel, subID)
	}()

	return ch, subID
}

// Publish sends message to all subscribers of channel.
// Non-blocking: messages are dropped for subscribers whose buffers are full.
func (b *Broadcaster) Publish(_ context.Context, channel string, message proto.Message) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for subID, ch := range b.subscribers[channel] {
		select {
		case ch <- message:
		default:
			b.logger.Debug("dropped message for slow subscriber", "channel", channel, "sub_id", subID)
		}
	}
	return nil
}

// SubscriberCount returns the number of subscribers on channel.
func (b *Broadcaster) SubscriberCount(channel string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers[channel])
}

// Unsubscribe removes a subscription and closes its channel.
func (b *Broadcaster) Unsubscribe(channel, subID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs, ok := b.subscribers[channel]
	if !ok {
		return
	}
	ch, exists := subs[subID]
	if !exists {
		return
	}

	delete(subs, subID)
	close(ch)

	if len(subs) == 0 {
		delete(b.subscribers, channel)
	}

	b.logger.Debug("subscriber removed", "channel", channel, "sub_id", subID)
}

// Close shuts down the broadcaster and closes all subscriber channels.
func (b *Broadcaster) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	for name, subs := range b.subscribers {
		for subID, ch := range subs {
			close(ch)
			delete(subs, subID)
		}
		delete(b.subscribers, name)
	}
	b.closed = true

	b.logger.Debug("broadcaster closed")
}
