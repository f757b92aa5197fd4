// Package eventbus provides the in-process publish/subscribe registry
// bridging transport events to application state.
//
// It offers best-effort synchronous delivery with no guarantees regarding
// durability or cross-event ordering. The bus is not a message broker.
package eventbus

import (
	"log/slog"
	"reflect"
	"sync"

	"consultation-lab/domain/event"
)

// Callback receives a published event. Callbacks registered under the same
// name run synchronously, in registration order.
type Callback func(event.Event)

// Bus is a minimal pub/sub registry keyed by event name. Duplicate
// registrations are allowed and each one fires. Bus is safe for concurrent
// use by multiple goroutines.
type Bus struct {
	log       *slog.Logger
	mu        sync.RWMutex
	listeners map[string][]Callback
}

func New(log *slog.Logger) *Bus {
	return &Bus{log: log, listeners: make(map[string][]Callback)}
}

// On registers callback for the given event name.
func (b *Bus) On(name string, callback Callback) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.listeners[name] = append(b.listeners[name], callback)
}

// Off removes the first registration of callback under name, matched by
// function identity. Removing an absent callback is a no-op. Removal keeps
// the relative order of the remaining listeners.
func (b *Bus) Off(name string, callback Callback) {
	b.mu.Lock()
	defer b.mu.Unlock()

	target := reflect.ValueOf(callback).Pointer()
	registered := b.listeners[name]
	for i, cb := range registered {
		if reflect.ValueOf(cb).Pointer() == target {
			b.listeners[name] = append(registered[:i:i], registered[i+1:]...)
			return
		}
	}
}

// Emit invokes every callback currently registered for evt.Name(), in
// registration order. A panicking callback is logged and must not prevent
// the remaining callbacks of the same emit from running.
func (b *Bus) Emit(evt event.Event) {
	b.mu.RLock()
	registered := make([]Callback, len(b.listeners[evt.Name()]))
	copy(registered, b.listeners[evt.Name()])
	b.mu.RUnlock()

	for _, cb := range registered {
		b.dispatch(evt, cb)
	}
}

func (b *Bus) dispatch(evt event.Event, cb Callback) {
	defer func() {
		if r := recover(); r != nil {
			b.log.Error("Event callback panicked", "event", evt.Name(), "panic", r)
		}
	}()
	cb(evt)
}
