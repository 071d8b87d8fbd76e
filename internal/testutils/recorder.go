// Package testutils holds helpers shared by the package tests.
package testutils

import (
	"sync"
	"testing"

	"github.com/aretw0/splitcalc/pkg/stream"
)

// Recorder collects every value a stream delivers to it.
type Recorder[T any] struct {
	mu     sync.Mutex
	values []T
}

// Record subscribes a Recorder to src. The subscription ends with the test.
func Record[T any](t *testing.T, src stream.Source[T]) *Recorder[T] {
	t.Helper()
	r := &Recorder[T]{}
	sub := src.Subscribe(func(v T) {
		r.mu.Lock()
		r.values = append(r.values, v)
		r.mu.Unlock()
	})
	t.Cleanup(sub.Unsubscribe)
	return r
}

// Values returns a copy of everything received so far.
func (r *Recorder[T]) Values() []T {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]T, len(r.values))
	copy(out, r.values)
	return out
}

// Len returns the number of values received.
func (r *Recorder[T]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.values)
}
