package events

import (
	"context"
	"sync"
)

// EventHandler handles a published event.
type EventHandler func(context.Context, Event) error

// Dispatcher interface allows event publication/subscription.
type Dispatcher interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType EventType, handler EventHandler)
}

// asyncDispatcher runs handlers on their own goroutine so publication never
// blocks the caller-facing path. Handler errors are the handler's problem to
// log; they never surface to the publisher.
type asyncDispatcher struct {
	mu        sync.RWMutex
	listeners map[EventType][]EventHandler
}

// NewAsyncDispatcher creates a dispatcher instance.
func NewAsyncDispatcher() Dispatcher {
	return &asyncDispatcher{
		listeners: make(map[EventType][]EventHandler),
	}
}

// Publish invokes handlers for the given event without awaiting them. The
// handlers get a detached context: delivery outlives the request.
func (d *asyncDispatcher) Publish(_ context.Context, event Event) error {
	d.mu.RLock()
	handlers := append([]EventHandler{}, d.listeners[event.Type]...)
	d.mu.RUnlock()

	go func() {
		ctx := context.Background()
		for _, handler := range handlers {
			_ = handler(ctx, event)
		}
	}()
	return nil
}

// Subscribe registers a handler for the given event type.
func (d *asyncDispatcher) Subscribe(eventType EventType, handler EventHandler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.listeners[eventType] = append(d.listeners[eventType], handler)
}
