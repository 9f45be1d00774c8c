package notify

import (
	"context"
	"log"
	"sync"
)

const queueSize = 100

// Dispatcher fans notifications out to its sinks from a single worker.
// Dispatch never blocks: with a full queue the notification is dropped.
type Dispatcher struct {
	sinks []Sink
	queue chan Notification
	done  chan struct{}

	mu     sync.RWMutex
	closed bool
}

func NewDispatcher(sinks ...Sink) *Dispatcher {
	d := &Dispatcher{
		sinks: sinks,
		queue: make(chan Notification, queueSize),
		done:  make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)

	for n := range d.queue {
		for _, s := range d.sinks {
			if err := s.Send(n); err != nil {
				log.Println("notify error:", err)
			}
		}
	}
}

func (d *Dispatcher) Notify(ctx context.Context, n Notification) {
	if n.Variant == "" {
		n.Variant = VariantDefault
	}
	if n.CorrelationID == "" {
		n.CorrelationID = CorrelationID(ctx)
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		log.Println("notify: dispatcher closed, dropping notification")
		return
	}

	select {
	case d.queue <- n:
	default:
		log.Println("notify queue full, dropping notification")
	}
}

// Close stops accepting notifications and waits until the queued ones
// reached every sink.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	<-d.done
}

// Compile-time check
var _ Notifier = (*Dispatcher)(nil)
