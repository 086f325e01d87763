package app

import (
	"sync"

	"github.com/randomtoy/bingo-go/internal/domain"
)

// notifier fans events out to registered listeners. Callers enqueue while
// holding the lock that guards the state change, then flush after
// releasing it, so listeners see events in the order the state changed.
// Delivery is serial: a flush that finds another delivery running leaves
// its events to that delivery.
type notifier struct {
	mu          sync.Mutex
	nextID      int
	listeners   map[int]func(domain.Event)
	order       []int
	queue       []domain.Event
	dispatching bool
}

func (n *notifier) subscribe(fn func(domain.Event)) (unsubscribe func()) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.listeners == nil {
		n.listeners = make(map[int]func(domain.Event))
	}
	id := n.nextID
	n.nextID++
	n.listeners[id] = fn
	n.order = append(n.order, id)

	var once sync.Once
	return func() {
		once.Do(func() {
			n.mu.Lock()
			defer n.mu.Unlock()
			delete(n.listeners, id)
			for i, v := range n.order {
				if v == id {
					n.order = append(n.order[:i:i], n.order[i+1:]...)
					break
				}
			}
		})
	}
}

func (n *notifier) enqueue(events ...domain.Event) {
	n.mu.Lock()
	n.queue = append(n.queue, events...)
	n.mu.Unlock()
}

// flush delivers queued events. It must not be called while holding the
// engine lock. A panicking listener loses the event it was handed; later
// flushes keep delivering.
func (n *notifier) flush() {
	n.mu.Lock()
	if n.dispatching {
		n.mu.Unlock()
		return
	}
	n.dispatching = true
	finished := false
	defer func() {
		if !finished {
			n.mu.Lock()
			n.dispatching = false
			n.mu.Unlock()
		}
	}()

	for len(n.queue) > 0 {
		ev := n.queue[0]
		n.queue = n.queue[1:]
		fns := make([]func(domain.Event), 0, len(n.order))
		for _, id := range n.order {
			fns = append(fns, n.listeners[id])
		}
		n.mu.Unlock()

		for _, fn := range fns {
			fn(ev)
		}

		n.mu.Lock()
	}
	n.dispatching = false
	finished = true
	n.mu.Unlock()
}
