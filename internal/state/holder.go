package state

import (
	"context"
	"log"
	"sync"
)

// Mutation computes the next snapshot from the current one and names the
// collections it changed. It must not modify current.
type Mutation func(current Snapshot) (next Snapshot, dirty Dirty, err error)

// Holder owns the application state. All mutations go through Apply, one at
// a time, and the changed collections are persisted before the new snapshot
// becomes visible.
type Holder struct {
	mu    sync.Mutex
	snap  Snapshot
	store *Store
}

func NewHolder(ctx context.Context, st *Store) *Holder {
	return &Holder{
		snap:  st.Load(ctx),
		store: st,
	}
}

func (h *Holder) Current() Snapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.snap
}

// Apply runs m against the current snapshot. On error nothing changes. A
// failed write is logged and the in-memory state still advances.
func (h *Holder) Apply(ctx context.Context, m Mutation) (Snapshot, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	next, dirty, err := m(h.snap)
	if err != nil {
		return h.snap, err
	}
	if dirty == 0 {
		return h.snap, nil
	}

	if err := h.store.Persist(ctx, next, dirty); err != nil {
		log.Printf("state: persist failed: %v", err)
	}

	h.snap = next
	return next, nil
}

// Reload replaces the in-memory state with what the store holds now.
// Another process sharing the store becomes visible only after a reload.
func (h *Holder) Reload(ctx context.Context) Snapshot {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.snap = h.store.Load(ctx)
	return h.snap
}
