package stream

import (
	"sync"
	"sync/atomic"
)

// Relay is a live-only multicast channel.
// Subscribers receive emissions sent after they subscribed; nothing is buffered.
type Relay[T any] struct {
	mu      sync.RWMutex
	subs    []*subscriber[T]
	counter atomic.Uint64
}

// NewRelay creates an empty relay.
func NewRelay[T any]() *Relay[T] {
	return &Relay[T]{}
}

// Send delivers v to every current subscriber.
func (r *Relay[T]) Send(v T) {
	for _, s := range r.snapshot() {
		if s.closed.Load() {
			continue
		}
		s.fn(v)
	}
}

// Subscribe registers fn for future emissions.
func (r *Relay[T]) Subscribe(fn func(T)) Subscription {
	s := r.add(fn)
	return SubscriptionFunc(func() { r.remove(s) })
}

// Len returns the number of active subscribers.
func (r *Relay[T]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.subs)
}

func (r *Relay[T]) add(fn func(T)) *subscriber[T] {
	s := &subscriber[T]{id: r.counter.Add(1), fn: fn}
	r.mu.Lock()
	r.subs = append(r.subs, s)
	r.mu.Unlock()
	return s
}

func (r *Relay[T]) remove(s *subscriber[T]) {
	if s.closed.Swap(true) {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, cur := range r.subs {
		if cur.id == s.id {
			// Copy so in-flight snapshots are not disturbed.
			next := make([]*subscriber[T], 0, len(r.subs)-1)
			next = append(next, r.subs[:i]...)
			r.subs = append(next, r.subs[i+1:]...)
			return
		}
	}
}

// snapshot returns the subscriber list so callbacks run without the lock held.
func (r *Relay[T]) snapshot() []*subscriber[T] {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.subs
}
