package stream

import "sync"

// Subject is a replay-latest multicast channel.
// It caches the most recent value and hands it to each new subscriber before
// any live emission.
type Subject[T any] struct {
	relay Relay[T]

	mu    sync.RWMutex
	value T
	has   bool
}

// NewSubject creates a subject with no value yet. Late subscribers get
// nothing until the first Send.
func NewSubject[T any]() *Subject[T] {
	return &Subject[T]{}
}

// NewSubjectWith creates a subject holding initial.
func NewSubjectWith[T any](initial T) *Subject[T] {
	return &Subject[T]{value: initial, has: true}
}

// Send stores v as the current value and delivers it to every subscriber.
func (s *Subject[T]) Send(v T) {
	s.mu.Lock()
	s.value = v
	s.has = true
	s.mu.Unlock()

	s.relay.Send(v)
}

// Value returns the current value and whether one has been emitted.
func (s *Subject[T]) Value() (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value, s.has
}

// Subscribe registers fn. If a value is cached, fn receives it immediately.
func (s *Subject[T]) Subscribe(fn func(T)) Subscription {
	sub := s.relay.add(fn)

	if v, ok := s.Value(); ok && !sub.closed.Load() {
		fn(v)
	}
	return SubscriptionFunc(func() { s.relay.remove(sub) })
}

// Len returns the number of active subscribers.
func (s *Subject[T]) Len() int {
	return s.relay.Len()
}
