// Package alertbus provides the publish/subscribe channel for risk alerts.
//
// Each subscriber owns a bounded buffer: publishing never blocks, and a
// subscriber that cannot keep up loses alerts (counted per subscriber)
// instead of stalling the monitor's polling loop. Durability is the
// responsibility of subscribers such as the alert store.
package alertbus

import (
	"context"
	"sync"

	"github.com/talentscan/talentscan/internal/domain/model"
	"github.com/talentscan/talentscan/pkg/logger"
	"github.com/talentscan/talentscan/pkg/metrics"
)

// defaultBuffer is the per-subscriber channel capacity.
const defaultBuffer = 256

// Bus broadcasts alerts to all registered subscribers.
type Bus struct {
	mu          sync.RWMutex
	subscribers map[string]chan model.RiskAlert
	closed      bool
	buffer      int
	logger      logger.Logger
}

// New creates an alert bus.
func New(opts ...Option) *Bus {
	b := &Bus{
		subscribers: make(map[string]chan model.RiskAlert),
		buffer:      defaultBuffer,
		logger:      logger.Get().Named("alertbus"),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Subscribe registers a named subscriber and returns its alert channel and
// a cancel function. Subscribing twice under the same name replaces the
// previous subscription, closing its channel. buffer <= 0 uses the bus
// default.
func (b *Bus) Subscribe(name string, buffer int) (<-chan model.RiskAlert, func()) {
	if buffer <= 0 {
		buffer = b.buffer
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		ch := make(chan model.RiskAlert)
		close(ch)
		return ch, func() {}
	}

	if prev, ok := b.subscribers[name]; ok {
		close(prev)
	}
	ch := make(chan model.RiskAlert, buffer)
	b.subscribers[name] = ch
	metrics.UpdateAlertSubscribers(len(b.subscribers))

	cancel := func() { b.unsubscribe(name, ch) }
	return ch, cancel
}

func (b *Bus) unsubscribe(name string, ch chan model.RiskAlert) {
	b.mu.Lock()
	defer b.mu.Unlock()

	// Only remove if this exact channel is still registered; a replaced
	// subscription keeps its own cancel harmless.
	if cur, ok := b.subscribers[name]; ok && cur == ch {
		delete(b.subscribers, name)
		close(ch)
		metrics.UpdateAlertSubscribers(len(b.subscribers))
	}
}

// Publish delivers the alert to every subscriber's buffer. Full buffers
// drop the alert for that subscriber only.
func (b *Bus) Publish(ctx context.Context, alert model.RiskAlert) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return
	}

	for name, ch := range b.subscribers {
		select {
		case ch <- alert:
		default:
			metrics.RecordAlertDropped(name)
			b.logger.Warn(ctx, "alert dropped: subscriber buffer full",
				logger.String("subscriber", name),
				logger.String("candidateID", alert.CandidateID),
			)
		}
	}
}

// SubscriberCount returns the number of active subscribers.
func (b *Bus) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}

// Close shuts the bus down, closing every subscriber channel. Publishing
// after Close is a no-op.
func (b *Bus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true
	for name, ch := range b.subscribers {
		close(ch)
		delete(b.subscribers, name)
	}
	metrics.UpdateAlertSubscribers(0)
	return nil
}
