package tjs

import "sync"

type EventHandler func(data any)

// ListenerID identifies a handler registered with On or Once.
type ListenerID uint64

type listener struct {
	id      ListenerID
	handler EventHandler
}

type EventEmitter struct {
	events map[EventType][]listener
	nextID ListenerID
	mutex  sync.RWMutex
}

func NewEventEmitter() *EventEmitter {
	return &EventEmitter{
		events: make(map[EventType][]listener),
	}
}

func (e *EventEmitter) On(event EventType, handler EventHandler) ListenerID {
	e.mutex.Lock()
	defer e.mutex.Unlock()

	e.nextID++
	e.events[event] = append(e.events[event], listener{id: e.nextID, handler: handler})
	return e.nextID
}

// Emit calls the handlers registered for event in registration order.
// Handlers may add or remove listeners while being called.
func (e *EventEmitter) Emit(event EventType, data any) {
	e.mutex.RLock()
	listeners := make([]listener, len(e.events[event]))
	copy(listeners, e.events[event])
	e.mutex.RUnlock()

	for _, l := range listeners {
		l.handler(data)
	}
}

func (e *EventEmitter) RemoveListener(event EventType, id ListenerID) {
	e.mutex.Lock()
	defer e.mutex.Unlock()

	listeners := e.events[event]
	for i, l := range listeners {
		if l.id == id {
			e.events[event] = append(listeners[:i:i], listeners[i+1:]...)
			return
		}
	}
}

func (e *EventEmitter) Once(event EventType, handler EventHandler) ListenerID {
	var id ListenerID
	id = e.On(event, func(data any) {
		e.RemoveListener(event, id)
		handler(data)
	})
	return id
}

func (e *EventEmitter) ListenerCount(event EventType) int {
	e.mutex.RLock()
	defer e.mutex.RUnlock()

	return len(e.events[event])
}
