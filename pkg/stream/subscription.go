package stream

import (
	"sync"
	"sync/atomic"
)

// Subscription represents an active subscription that can be cancelled.
type Subscription interface {
	// Unsubscribe stops delivery to this subscriber. It is safe to call more
	// than once and never affects other subscribers.
	Unsubscribe()
}

// SubscriptionFunc adapts a plain function to Subscription.
type SubscriptionFunc func()

func (f SubscriptionFunc) Unsubscribe() {
	if f != nil {
		f()
	}
}

// Group collects subscriptions so they can be torn down together.
type Group struct {
	mu   sync.Mutex
	subs []Subscription
}

// Add registers subs with the group.
func (g *Group) Add(subs ...Subscription) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.subs = append(g.subs, subs...)
}

// Unsubscribe cancels every subscription in the group and empties it.
func (g *Group) Unsubscribe() {
	g.mu.Lock()
	subs := g.subs
	g.subs = nil
	g.mu.Unlock()

	for _, s := range subs {
		s.Unsubscribe()
	}
}

type subscriber[T any] struct {
	id     uint64
	fn     func(T)
	closed atomic.Bool
}
