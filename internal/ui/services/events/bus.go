package events

import (
	"fmt"
	"sync"
)

// Bus is a simple event bus for UI services
type Bus struct {
	mu        sync.RWMutex
	listeners map[string][]func(interface{})
}

// NewBus creates a new event bus
func NewBus() *Bus {
	return &Bus{
		listeners: make(map[string][]func(interface{})),
	}
}

// Subscribe registers a listener for an event type name, see NameOf
func (b *Bus) Subscribe(eventType string, handler func(interface{})) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.listeners[eventType] = append(b.listeners[eventType], handler)
}

// Publish sends an event to all listeners. Listeners run synchronously on
// the publishing goroutine, which for UI services is the Bubble Tea update loop,
// so they must not block.
func (b *Bus) Publish(event interface{}) {
	b.mu.RLock()
	handlers := b.listeners[NameOf(event)]
	b.mu.RUnlock()

	for _, handler := range handlers {
		handler(event)
	}
}

// NameOf returns the type name used to route event, e.g. "selection.SelectionChangedEvent"
func NameOf(event interface{}) string {
	return fmt.Sprintf("%T", event)
}
