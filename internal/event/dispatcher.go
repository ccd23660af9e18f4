package event

import (
	"context"
	"fmt"
	"sync"
)

// Listener consumes one event payload. A returned error aborts the Raise and
// propagates to the workflow caller; by that point the triggering state
// change has already been committed, so listeners must tolerate re-delivery
// when the caller retries.
type Listener func(ctx context.Context, e AssignmentEvent) error

// Dispatcher fans events out to registered listeners, synchronously and in
// registration order. It is an explicit instance constructed at process
// start and handed to the workflow, not a process-wide registry.
//
// Safe for concurrent use; Register is expected at startup but may race with
// Raise without corrupting the listener list.
type Dispatcher struct {
	mu        sync.RWMutex
	listeners map[string][]Listener
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[string][]Listener),
	}
}

// Register attaches a listener to an event name. There is no deregistration;
// listeners live for the life of the process.
func (d *Dispatcher) Register(name string, l Listener) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.listeners[name] = append(d.listeners[name], l)
}

// Raise invokes every listener registered for name with the payload, in the
// calling goroutine. The first listener error stops dispatch and is returned
// wrapped with the event name; listener failures are the caller's problem,
// not the dispatcher's.
func (d *Dispatcher) Raise(ctx context.Context, name string, e AssignmentEvent) error {
	d.mu.RLock()
	ls := d.listeners[name]
	d.mu.RUnlock()

	for _, l := range ls {
		if err := l(ctx, e); err != nil {
			return fmt.Errorf("event %s: %w", name, err)
		}
	}
	return nil
}
