// Package eventlog writes each status event to the structured log and keeps the most
// recent ones in memory for the HTTP events endpoint. When a broker is configured the
// events are forwarded to it afterwards.
package eventlog

import (
	"context"
	"log/slog"
	"sync"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/ports"
)

// DefaultCapacity is the number of recent events kept when none is given.
const DefaultCapacity = 100

// Publisher implements ports.EventPublisher. Without a forward target it never fails.
type Publisher struct {
	logger  *slog.Logger
	forward ports.EventPublisher

	mu     sync.Mutex
	recent []order.StatusChanged
	next   int
	full   bool
}

func NewPublisher(logger *slog.Logger, capacity int) *Publisher {
	if logger == nil {
		logger = slog.Default()
	}
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Publisher{
		logger: logger.With("component", "event_log"),
		recent: make([]order.StatusChanged, capacity),
	}
}

// Forward sends every event on to next once it has been recorded.
func (p *Publisher) Forward(next ports.EventPublisher) *Publisher {
	p.forward = next
	return p
}

// Publish records the events and returns the forward target's error, if any.
func (p *Publisher) Publish(ctx context.Context, events ...order.StatusChanged) error {
	p.record(ctx, events)

	if p.forward == nil {
		return nil
	}
	return p.forward.Publish(ctx, events...)
}

func (p *Publisher) record(ctx context.Context, events []order.StatusChanged) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, e := range events {
		p.logger.DebugContext(ctx, "order event",
			"event_id", e.EventID.String(),
			"routing_key", e.RoutingKey(),
			"order_id", e.OrderID,
			"customer_id", e.CustomerID,
			"total", e.Total.String(),
		)

		p.recent[p.next] = e
		p.next = (p.next + 1) % len(p.recent)
		if p.next == 0 {
			p.full = true
		}
	}
}

// Recent returns the kept events, oldest first.
func (p *Publisher) Recent() []order.StatusChanged {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.full {
		out := make([]order.StatusChanged, p.next)
		copy(out, p.recent[:p.next])
		return out
	}

	out := make([]order.StatusChanged, 0, len(p.recent))
	out = append(out, p.recent[p.next:]...)
	return append(out, p.recent[:p.next]...)
}
