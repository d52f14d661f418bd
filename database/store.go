package database

import (
	"errors"
	"sync"
	"time"

	"github.com/rpupo63/portfolio-site-backend/notifier"
)

// store is the state every repo of one Database shares
type store struct {
	backend  Backend
	notifier *notifier.Notifier
	prefix   string
	now      func() time.Time

	mu  sync.Mutex // serializes read-modify-write cycles
	ids idSource
}

func (s *store) key(name string) string {
	return s.prefix + name
}

// mutate runs fn under the store lock and publishes one signal once the lock
// is released, unless fn failed or reported errUnchanged.
func (s *store) mutate(fn func() error) error {
	s.mu.Lock()
	err := fn()
	s.mu.Unlock()

	if errors.Is(err, errUnchanged) {
		return nil
	}
	if err != nil {
		return err
	}
	s.notifier.Publish()
	return nil
}

// idSource issues identities that are unique within a list even when several
// are created inside one clock tick. Callers hold store.mu.
type idSource struct {
	last int64
}

func (g *idSource) next(now time.Time, existing []int64) int64 {
	id := now.UnixMilli()
	if id <= g.last {
		id = g.last + 1
	}
	for _, e := range existing {
		if id <= e {
			id = e + 1
		}
	}
	g.last = id
	return id
}
