// Package idgen mints entity ids. Ids are millisecond timestamps, bumped
// forward when two are requested within the same millisecond so they stay
// unique and increasing.
package idgen

import (
	"sync"
	"time"
)

type Sequence struct {
	mu   sync.Mutex
	last int64
	now  func() time.Time
}

func New(now func() time.Time) *Sequence {
	if now == nil {
		now = time.Now
	}
	return &Sequence{now: now}
}

func (s *Sequence) Next() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.now().UnixMilli()
	if id <= s.last {
		id = s.last + 1
	}
	s.last = id
	return id
}

// Observe records an id that already exists so Next never hands it out again.
func (s *Sequence) Observe(ids ...int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range ids {
		if id > s.last {
			s.last = id
		}
	}
}
