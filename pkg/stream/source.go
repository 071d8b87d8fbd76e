package stream

// Source is anything that can be subscribed to.
// Both Relay and Subject satisfy it.
type Source[T any] interface {
	Subscribe(fn func(T)) Subscription
}

// Sink accepts emissions.
type Sink[T any] interface {
	Send(v T)
}

var (
	_ Source[int] = (*Relay[int])(nil)
	_ Source[int] = (*Subject[int])(nil)
	_ Sink[int]   = (*Relay[int])(nil)
	_ Sink[int]   = (*Subject[int])(nil)
)
