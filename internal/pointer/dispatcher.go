// Package pointer is the program-wide registry of pointer-down listeners.
//
// A component that needs to react to presses anywhere on screen, such as a
// dropdown that closes on outside clicks, registers a listener while it is
// mounted and releases it when it goes away. The root model dispatches every
// press to the registry before routing it anywhere else.
package pointer

import (
	"sync"
)

// Event is a pointer press in absolute screen cells
type Event struct {
	X, Y int
}

// Listener is called for every dispatched press
type Listener func(Event)

// Registration is the handle returned by Listen
type Registration struct {
	d    *Dispatcher
	id   uint64
	once sync.Once
}

// Release detaches the listener. Only the first call has an effect.
func (r *Registration) Release() {
	if r == nil || r.d == nil {
		return
	}
	r.once.Do(func() {
		r.d.remove(r.id)
	})
}

type entry struct {
	id uint64
	fn Listener
}

// Dispatcher fans presses out to registered listeners
type Dispatcher struct {
	mu        sync.Mutex
	listeners []entry
	nextID    uint64
}

// NewDispatcher creates an empty dispatcher
func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// Listen registers fn and returns its registration
func (d *Dispatcher) Listen(fn Listener) *Registration {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.nextID++
	d.listeners = append(d.listeners, entry{id: d.nextID, fn: fn})
	return &Registration{d: d, id: d.nextID}
}

// Dispatch calls every registered listener synchronously, in registration
// order. Listeners may release themselves or others while being called;
// the set of listeners is fixed when Dispatch starts.
func (d *Dispatcher) Dispatch(ev Event) {
	d.mu.Lock()
	snapshot := make([]Listener, len(d.listeners))
	for i, e := range d.listeners {
		snapshot[i] = e.fn
	}
	d.mu.Unlock()

	for _, fn := range snapshot {
		fn(ev)
	}
}

// Len returns the number of live listeners
func (d *Dispatcher) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.listeners)
}

func (d *Dispatcher) remove(id uint64) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i, e := range d.listeners {
		if e.id == id {
			d.listeners = append(d.listeners[:i:i], d.listeners[i+1:]...)
			return
		}
	}
}
