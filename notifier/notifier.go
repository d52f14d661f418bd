// Package notifier is a payload-less publish/subscribe channel. A signal only
// says that something changed; subscribers re-read whatever they care about.
package notifier

import "sync"

type subscriber struct {
	id uint64
	fn func()
}

// Notifier fans a Publish out to every subscriber in registration order.
//
// Dispatch is queued: a Publish that arrives while a round is running (from a
// subscriber or from another goroutine) is delivered as one more round by the
// goroutine already dispatching, so subscribers that mutate state cannot
// recurse into Publish.
type Notifier struct {
	mu          sync.Mutex
	subs        []subscriber
	nextID      uint64
	pending     int
	dispatching bool
}

func New() *Notifier {
	return &Notifier{}
}

// Subscribe registers fn for every future signal. The returned func removes it
// and is safe to call more than once.
func (n *Notifier) Subscribe(fn func()) (unsubscribe func()) {
	n.mu.Lock()
	n.nextID++
	id := n.nextID
	n.subs = append(n.subs, subscriber{id: id, fn: fn})
	n.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { n.remove(id) })
	}
}

func (n *Notifier) remove(id uint64) {
	n.mu.Lock()
	defer n.mu.Unlock()
	for i, s := range n.subs {
		if s.id == id {
			// copy so a snapshot taken by a running dispatch stays intact
			next := make([]subscriber, 0, len(n.subs)-1)
			next = append(next, n.subs[:i]...)
			n.subs = append(next, n.subs[i+1:]...)
			return
		}
	}
}

// Publish signals every current subscriber once.
func (n *Notifier) Publish() {
	n.mu.Lock()
	n.pending++
	if n.dispatching {
		n.mu.Unlock()
		return
	}
	n.dispatching = true
	for n.pending > 0 {
		n.pending--
		round := n.subs
		n.mu.Unlock()
		for _, s := range round {
			s.fn()
		}
		n.mu.Lock()
	}
	n.dispatching = false
	n.mu.Unlock()
}

// Len returns the number of registered subscribers.
func (n *Notifier) Len() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.subs)
}
