package pos

import "sync"

// Event types published by the register.
const (
	EventSessionStart = "session_start"
	EventCartUpdate   = "cart_update"
	EventOrderCreate  = "order_create"
	EventOrderUpdate  = "order_update"
)

type Event struct {
	Kind string      `json:"kind"`
	Data interface{} `json:"data"`
}

// Listener receives register events synchronously, on the goroutine
// that performed the mutation. Listeners must not call back into the
// engine's mutating actions.
type Listener func(Event)

// Hub fans register events out to subscribed screens (kitchen
// display, cart sidebar). Everything is in-process; there is no
// transport behind it.
type Hub struct {
	mu        sync.Mutex
	listeners []Listener
}

func (h *Hub) Subscribe(fn Listener) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.listeners = append(h.listeners, fn)
}

func (h *Hub) publish(kind string, data interface{}) {
	h.mu.Lock()
	listeners := make([]Listener, len(h.listeners))
	copy(listeners, h.listeners)
	h.mu.Unlock()

	evt := Event{Kind: kind, Data: data}
	for _, fn := range listeners {
		fn(evt)
	}
}
