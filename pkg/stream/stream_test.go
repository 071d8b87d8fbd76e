package stream_test

import (
	"sync"
	"testing"

	"github.com/aretw0/splitcalc/pkg/stream"
	"github.com/stretchr/testify/assert"
)

func collect[T any](src stream.Source[T]) (*[]T, stream.Subscription) {
	got := &[]T{}
	sub := src.Subscribe(func(v T) { *got = append(*got, v) })
	return got, sub
}

func TestRelay_LiveOnly(t *testing.T) {
	r := stream.NewRelay[int]()
	r.Send(1) // nobody listening

	a, _ := collect[int](r)
	r.Send(2)
	b, _ := collect[int](r)
	r.Send(3)

	assert.Equal(t, []int{2, 3}, *a)
	assert.Equal(t, []int{3}, *b)
}

func TestSubject_ReplaysLatest(t *testing.T) {
	s := stream.NewSubject[string]()
	early, _ := collect[string](s)

	s.Send("a")
	s.Send("b")

	late, _ := collect[string](s)
	s.Send("c")

	assert.Equal(t, []string{"a", "b", "c"}, *early)
	assert.Equal(t, []string{"b", "c"}, *late)

	v, ok := s.Value()
	assert.True(t, ok)
	assert.Equal(t, "c", v)
}

func TestSubject_EmptyDoesNotReplay(t *testing.T) {
	s := stream.NewSubject[int]()
	got, _ := collect[int](s)
	assert.Empty(t, *got)

	_, ok := s.Value()
	assert.False(t, ok)
}

func TestSubject_InitialValue(t *testing.T) {
	s := stream.NewSubjectWith(1)
	got, _ := collect[int](s)
	assert.Equal(t, []int{1}, *got)
}

func TestUnsubscribe_IsolatedAndIdempotent(t *testing.T) {
	s := stream.NewSubjectWith(0)
	a, subA := collect[int](s)
	b, _ := collect[int](s)
	assert.Equal(t, 2, s.Len())

	subA.Unsubscribe()
	subA.Unsubscribe()
	assert.Equal(t, 1, s.Len())

	s.Send(7)
	assert.Equal(t, []int{0}, *a)
	assert.Equal(t, []int{0, 7}, *b)
}

func TestUnsubscribe_FromInsideCallback(t *testing.T) {
	r := stream.NewRelay[int]()
	var sub stream.Subscription
	calls := 0
	sub = r.Subscribe(func(int) {
		calls++
		sub.Unsubscribe()
	})
	other, _ := collect[int](r)

	assert.NotPanics(t, func() {
		r.Send(1)
		r.Send(2)
	})
	assert.Equal(t, 1, calls)
	assert.Equal(t, []int{1, 2}, *other)
}

func TestRelay_ReentrantSend(t *testing.T) {
	upstream := stream.NewRelay[int]()
	downstream := stream.NewSubject[int]()
	upstream.Subscribe(func(v int) { downstream.Send(v * 10) })

	got, _ := collect[int](downstream)
	upstream.Send(1)
	upstream.Send(2)

	assert.Equal(t, []int{10, 20}, *got)
}

func TestGroup_Unsubscribe(t *testing.T) {
	r := stream.NewRelay[int]()
	var g stream.Group
	a, subA := collect[int](r)
	b, subB := collect[int](r)
	g.Add(subA, subB)

	g.Unsubscribe()
	g.Unsubscribe()
	r.Send(1)

	assert.Empty(t, *a)
	assert.Empty(t, *b)
	assert.Zero(t, r.Len())
}

func TestRelay_ConcurrentTeardown(t *testing.T) {
	r := stream.NewRelay[int]()
	var subs []stream.Subscription
	for i := 0; i < 50; i++ {
		subs = append(subs, r.Subscribe(func(int) {}))
	}

	var wg sync.WaitGroup
	for _, s := range subs {
		wg.Add(1)
		go func(s stream.Subscription) {
			defer wg.Done()
			s.Unsubscribe()
		}(s)
	}
	r.Send(1)
	wg.Wait()

	assert.Zero(t, r.Len())
}
